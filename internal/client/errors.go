package client

import "errors"

var (
	ErrNoServices    = errors.New("client: services are not provided")
	ErrEmptyMessage  = errors.New("client: message text is empty")
	ErrNotDispatched = errors.New("client: session stopped before the message was sent")
)
