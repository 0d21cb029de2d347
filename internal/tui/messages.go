package tui

import (
	"github.com/MKhiriev/go-wa-sender/models"
)

// Messages delivered by the notifier from the connection manager.

type stateChangedMsg struct {
	state models.ConnectionState
}

type pairingCodeMsg struct {
	code string
}

type incomingMsg struct {
	message models.IncomingMessage
}

// dispatchDoneMsg carries the outcome of one send cycle.
type dispatchDoneMsg struct {
	result models.DispatchResult
	err    error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
