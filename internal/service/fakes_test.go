package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/models"
)

// fakeClock records requested delays and fires only when the test says so.
type fakeClock struct {
	requested chan time.Duration
	fire      chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		requested: make(chan time.Duration, 16),
		fire:      make(chan time.Time),
	}
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.requested <- d
	return c.fire
}

// openCall is a single Transport.Open invocation.
type openCall struct {
	creds   models.Credentials
	version models.ProtocolVersion
}

type openResult struct {
	session adapter.Session
	err     error
}

// fakeTransport hands out the results queued on next, one per Open.
type fakeTransport struct {
	next  chan openResult
	calls chan openCall
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		next:  make(chan openResult, 8),
		calls: make(chan openCall, 8),
	}
}

func (t *fakeTransport) Open(ctx context.Context, creds models.Credentials, version models.ProtocolVersion) (adapter.Session, error) {
	t.calls <- openCall{creds: creds, version: version}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-t.next:
		return res.session, res.err
	}
}

type fakeSession struct {
	events chan adapter.Event

	registered  bool
	registerErr error
	sendID      string
	sendErr     error

	sends     atomic.Int32
	closeOnce sync.Once
	closed    atomic.Bool
}

func newFakeSession() *fakeSession {
	return &fakeSession{events: make(chan adapter.Event, 16), registered: true, sendID: "MSG-1"}
}

func (s *fakeSession) Events() <-chan adapter.Event { return s.events }

func (s *fakeSession) Send(context.Context, models.Address, string) (string, error) {
	s.sends.Add(1)
	return s.sendID, s.sendErr
}

func (s *fakeSession) IsRegistered(context.Context, models.Address) (bool, error) {
	return s.registered, s.registerErr
}

func (s *fakeSession) Close() {
	s.closeOnce.Do(func() { s.closed.Store(true) })
}

type staticVersions struct {
	version models.ProtocolVersion
	err     error
}

func (v staticVersions) Latest(context.Context) (models.ProtocolVersion, error) {
	return v.version, v.err
}

type recordingNotifier struct {
	mu       sync.Mutex
	codes    []string
	states   []models.ConnectionState
	messages []models.IncomingMessage
}

func (n *recordingNotifier) PairingRequired(code string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.codes = append(n.codes, code)
}

func (n *recordingNotifier) StateChanged(state models.ConnectionState) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.states = append(n.states, state)
}

func (n *recordingNotifier) MessageReceived(msg models.IncomingMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) snapshot() ([]string, []models.ConnectionState, []models.IncomingMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.codes...),
		append([]models.ConnectionState(nil), n.states...),
		append([]models.IncomingMessage(nil), n.messages...)
}
