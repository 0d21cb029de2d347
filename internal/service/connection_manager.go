// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/store"
	"github.com/MKhiriev/go-wa-sender/models"
)

type connectionManager struct {
	transport   adapter.Transport
	versions    adapter.VersionSource
	credentials store.CredentialStore

	policy   ReconnectPolicy
	fallback models.ProtocolVersion
	clock    Clock
	notifier Notifier

	state   atomic.Int32
	running atomic.Bool

	// mu guards session and account.
	mu      sync.RWMutex
	session adapter.Session
	account string

	logger *logger.Logger
}

// ManagerOption customizes a connection manager.
type ManagerOption func(*connectionManager)

// WithClock replaces the real clock used for retry delays.
func WithClock(clock Clock) ManagerOption {
	return func(m *connectionManager) {
		m.clock = clock
	}
}

// WithNotifier registers a receiver of lifecycle notifications.
func WithNotifier(notifier Notifier) ManagerOption {
	return func(m *connectionManager) {
		m.notifier = notifier
	}
}

// NewConnectionManager creates the manager of the single messaging session.
// versions may be nil, in which case the configured fallback version is
// always announced.
func NewConnectionManager(
	transport adapter.Transport,
	versions adapter.VersionSource,
	credentials store.CredentialStore,
	cfg *config.ClientConfig,
	log *logger.Logger,
	opts ...ManagerOption,
) ConnectionManager {
	m := &connectionManager{
		transport:   transport,
		versions:    versions,
		credentials: credentials,
		policy:      NewReconnectPolicy(cfg.Connection),
		fallback:    cfg.Version.Fallback,
		clock:       NewRealClock(),
		notifier:    nopNotifier{},
		logger:      log,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state.Store(int32(models.StateInitializing))

	return m
}

func (m *connectionManager) State() models.ConnectionState {
	return models.ConnectionState(m.state.Load())
}

func (m *connectionManager) Session() (adapter.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil || m.State() != models.StateConnected {
		return nil, false
	}
	return m.session, true
}

func (m *connectionManager) Account() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.account
}

func (m *connectionManager) Run(ctx context.Context, onReady ReadyFunc) error {
	if !m.running.CompareAndSwap(false, true) {
		return ErrManagerRunning
	}
	defer m.running.Store(false)

	for attempt := 1; ; attempt++ {
		m.setState(models.StateInitializing)

		closed := m.attempt(ctx, onReady)
		if ctx.Err() != nil {
			m.logger.Info().Msg("connection manager stopped")
			return nil
		}

		reason := models.ClassifyDisconnect(closed.StatusCode)
		delay, retry := m.policy.Next(reason)
		if !retry {
			m.setState(models.StateTerminated)
			m.logger.Error().
				Err(closed.Err).
				Int("status", closed.StatusCode).
				Str("reason", reason.String()).
				Msg("session terminated, stored credentials must be cleared")

			return &TerminatedError{Reason: reason, StatusCode: closed.StatusCode, Err: closed.Err}
		}

		m.setState(models.StateReconnecting)
		m.logger.Warn().
			Err(closed.Err).
			Int("attempt", attempt).
			Int("status", closed.StatusCode).
			Str("reason", reason.String()).
			Dur("retry_in", delay).
			Msg("session closed, reconnecting")

		select {
		case <-ctx.Done():
			m.logger.Info().Msg("connection manager stopped")
			return nil
		case <-m.clock.After(delay):
		}
	}
}

// attempt opens one session and consumes its events until it closes.
func (m *connectionManager) attempt(ctx context.Context, onReady ReadyFunc) adapter.Closed {
	creds := m.credentials.Load(ctx)
	version := m.protocolVersion(ctx)

	session, err := m.transport.Open(ctx, creds, version)
	if err != nil {
		code, _ := adapter.StatusCodeOf(err)
		m.logger.Err(err).Str("func", "connectionManager.attempt").Msg("error opening session")
		return adapter.Closed{StatusCode: code, Err: err}
	}
	defer m.detach(session)

	ready := false
	for {
		select {
		case <-ctx.Done():
			return adapter.Closed{Err: ctx.Err()}

		case evt, ok := <-session.Events():
			if !ok {
				return adapter.Closed{StatusCode: models.StatusUnknown, Err: ErrEventStreamEnded}
			}

			switch e := evt.(type) {
			case adapter.PairingChallenge:
				m.setState(models.StateAwaitingPairing)
				m.notifier.PairingRequired(e.Code)

			case adapter.Opened:
				m.attach(session, e.Account)
				m.setState(models.StateConnected)
				if ready {
					m.logger.Debug().Msg("duplicate open notification ignored")
					continue
				}
				ready = true
				m.logger.Info().Str("account", e.Account).Msg("session connected")
				if onReady != nil {
					onReady(ctx, m)
				}

			case adapter.CredentialUpdate:
				if err = m.credentials.Update(ctx, e.Delta); err != nil {
					m.logger.Err(err).Str("func", "connectionManager.attempt").Msg("error persisting credentials")
				}

			case adapter.IncomingMessage:
				m.logger.Info().
					Str("from", e.Message.From).
					Str("push_name", e.Message.PushName).
					Str("text", e.Message.Text).
					Msg("message received")
				m.notifier.MessageReceived(e.Message)

			case adapter.Closed:
				return e
			}
		}
	}
}

func (m *connectionManager) protocolVersion(ctx context.Context) models.ProtocolVersion {
	if m.versions == nil {
		return m.fallback
	}

	version, err := m.versions.Latest(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Str("fallback", m.fallback.String()).Msg("protocol version discovery failed")
		return m.fallback
	}

	return version
}

func (m *connectionManager) attach(session adapter.Session, account string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = session
	if account != "" {
		m.account = account
	}
}

func (m *connectionManager) detach(session adapter.Session) {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	session.Close()
}

func (m *connectionManager) setState(state models.ConnectionState) {
	if models.ConnectionState(m.state.Swap(int32(state))) == state {
		return
	}
	m.logger.Debug().Str("state", state.String()).Msg("connection state changed")
	m.notifier.StateChanged(state)
}

type nopNotifier struct{}

func (nopNotifier) PairingRequired(string)                 {}
func (nopNotifier) StateChanged(models.ConnectionState)    {}
func (nopNotifier) MessageReceived(models.IncomingMessage) {}
