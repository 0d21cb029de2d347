package service

import "time"

// Clock abstracts timers so that retry delays can be observed in tests.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

// NewRealClock returns a [Clock] backed by the time package.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
