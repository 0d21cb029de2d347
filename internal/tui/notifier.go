// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
	tea "github.com/charmbracelet/bubbletea"
)

const notifierBuffer = 64

var _ service.Notifier = (*Notifier)(nil)

// Notifier turns connection manager notifications into TUI messages.
//
// Notifications are queued without blocking the manager. The queue is drained
// into the running program by forward, so nothing emitted before the program
// starts is lost as long as the queue does not overflow.
type Notifier struct {
	msgs   chan tea.Msg
	logger *logger.Logger
}

// NewNotifier creates a Notifier with an empty queue.
func NewNotifier(log *logger.Logger) *Notifier {
	return &Notifier{
		msgs:   make(chan tea.Msg, notifierBuffer),
		logger: log,
	}
}

func (n *Notifier) PairingRequired(code string) {
	n.push(pairingCodeMsg{code: code})
}

func (n *Notifier) StateChanged(state models.ConnectionState) {
	n.push(stateChangedMsg{state: state})
}

func (n *Notifier) MessageReceived(msg models.IncomingMessage) {
	n.push(incomingMsg{message: msg})
}

func (n *Notifier) push(msg tea.Msg) {
	select {
	case n.msgs <- msg:
	default:
		n.logger.Warn().Str("func", "Notifier.push").Msgf("tui queue is full, dropping %T", msg)
	}
}

// forward delivers queued messages to p until ctx is done.
func (n *Notifier) forward(ctx context.Context, p interface{ Send(tea.Msg) }) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-n.msgs:
			p.Send(msg)
		}
	}
}
