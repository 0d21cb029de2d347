package models

import "time"

// IncomingMessage is a text message received by the linked account.
type IncomingMessage struct {
	ID        string
	From      string
	PushName  string
	Text      string
	Timestamp time.Time
}
