package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/mock"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const waitTimeout = 2 * time.Second

var fallbackVersion = models.ProtocolVersion{2, 3000, 1023223821}

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		Session: config.ClientSession{AuthDir: "auth_info"},
		Connection: config.ClientConnection{
			RetryDelay:         5 * time.Second,
			FallbackRetryDelay: 3 * time.Second,
			MinRecipientDigits: 10,
		},
		Version: config.ClientVersion{Fallback: fallbackVersion},
	}
}

// managerHarness runs a connection manager against fakes.
type managerHarness struct {
	manager   *connectionManager
	transport *fakeTransport
	clock     *fakeClock
	store     *mock.MockCredentialStore
	notifier  *recordingNotifier

	ready  atomic.Int32
	cancel context.CancelFunc
	done   chan error

	waitOnce sync.Once
	result   error
}

func newManagerHarness(t *testing.T, versions adapter.VersionSource) *managerHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &managerHarness{
		transport: newFakeTransport(),
		clock:     newFakeClock(),
		store:     mock.NewMockCredentialStore(ctrl),
		notifier:  &recordingNotifier{},
	}
	h.manager = NewConnectionManager(h.transport, versions, h.store, testClientConfig(), logger.Nop(),
		WithClock(h.clock), WithNotifier(h.notifier)).(*connectionManager)

	return h
}

func (h *managerHarness) start(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.done = make(chan error, 1)

	go func() {
		h.done <- h.manager.Run(ctx, func(context.Context, SessionHandle) {
			h.ready.Add(1)
		})
	}()

	t.Cleanup(func() {
		cancel()
		_ = h.wait(t)
	})
}

func (h *managerHarness) wait(t *testing.T) error {
	t.Helper()
	h.waitOnce.Do(func() {
		select {
		case h.result = <-h.done:
		case <-time.After(waitTimeout):
			t.Error("connection manager did not stop")
		}
	})
	return h.result
}

func (h *managerHarness) queue(session adapter.Session, err error) {
	h.transport.next <- openResult{session: session, err: err}
}

func (h *managerHarness) expectOpen(t *testing.T) openCall {
	t.Helper()
	select {
	case call := <-h.transport.calls:
		return call
	case <-time.After(waitTimeout):
		t.Fatal("transport was not opened")
		return openCall{}
	}
}

func (h *managerHarness) expectDelay(t *testing.T) time.Duration {
	t.Helper()
	select {
	case d := <-h.clock.requested:
		return d
	case <-time.After(waitTimeout):
		t.Fatal("no retry timer was scheduled")
		return 0
	}
}

func (h *managerHarness) waitState(t *testing.T, state models.ConnectionState) {
	t.Helper()
	require.Eventually(t, func() bool { return h.manager.State() == state },
		waitTimeout, 5*time.Millisecond, "state never became %s", state)
}

func freshCredentials() models.Credentials {
	return models.Credentials{RegistrationID: 42, Keys: map[string][]byte{}}
}

// ── Terminal closes ──

func TestConnectionManager_TerminalCloses(t *testing.T) {
	tests := []struct {
		name   string
		code   int
		reason models.DisconnectReason
	}{
		{"logged out", models.StatusLoggedOut, models.ReasonLoggedOut},
		{"bad session", models.StatusBadSession, models.ReasonBadSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newManagerHarness(t, nil)
			h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

			session := newFakeSession()
			h.queue(session, nil)
			h.start(t)

			session.events <- adapter.Opened{Account: "79001234567@s.whatsapp.net"}
			h.waitState(t, models.StateConnected)
			session.events <- adapter.Closed{StatusCode: tt.code, Err: errors.New("rejected")}

			err := h.wait(t)
			var terminated *TerminatedError
			require.ErrorAs(t, err, &terminated)
			assert.Equal(t, tt.reason, terminated.Reason)
			assert.Equal(t, tt.code, terminated.StatusCode)
			assert.NotEmpty(t, terminated.Recovery())

			assert.Equal(t, models.StateTerminated, h.manager.State())
			assert.Empty(t, h.clock.requested, "terminal close must not schedule a retry")
			assert.True(t, session.closed.Load())
			assert.Equal(t, int32(1), h.ready.Load())
		})
	}
}

func TestConnectionManager_TerminalCloseWhileInitializing(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.Closed{StatusCode: models.StatusLoggedOut}

	var terminated *TerminatedError
	require.ErrorAs(t, h.wait(t), &terminated)
	assert.Equal(t, models.ReasonLoggedOut, terminated.Reason)
	assert.Zero(t, h.ready.Load())
}

// ── Retry delays ──

func TestConnectionManager_RetryDelays(t *testing.T) {
	tests := []struct {
		name  string
		code  int
		delay time.Duration
	}{
		{"timed out", models.StatusTimedOut, 5 * time.Second},
		{"connection lost", models.StatusConnectionLost, 5 * time.Second},
		{"connection closed", models.StatusConnectionClosed, 3 * time.Second},
		{"no status", models.StatusUnknown, 3 * time.Second},
		{"connection replaced", models.StatusConnectionReplaced, 3 * time.Second},
		{"service unavailable", models.StatusServiceUnavailable, 3 * time.Second},
		{"restart required", models.StatusRestartRequired, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newManagerHarness(t, nil)
			h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

			session := newFakeSession()
			h.queue(session, nil)
			h.start(t)

			session.events <- adapter.Opened{}
			session.events <- adapter.Closed{StatusCode: tt.code}

			assert.Equal(t, tt.delay, h.expectDelay(t))
			assert.Equal(t, models.StateReconnecting, h.manager.State())
			assert.True(t, session.closed.Load())

			h.cancel()
			assert.NoError(t, h.wait(t))
		})
	}
}

func TestConnectionManager_PairingTimeoutRetries(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials()).Times(2)

	first := newFakeSession()
	second := newFakeSession()
	h.queue(first, nil)
	h.queue(second, nil)
	h.start(t)

	first.events <- adapter.PairingChallenge{Code: "2@first"}
	h.waitState(t, models.StateAwaitingPairing)
	first.events <- adapter.Closed{StatusCode: models.StatusTimedOut}

	assert.Equal(t, 5*time.Second, h.expectDelay(t))
	h.clock.fire <- time.Now()

	h.expectOpen(t)
	h.expectOpen(t)
	second.events <- adapter.PairingChallenge{Code: "2@second"}
	h.waitState(t, models.StateAwaitingPairing)

	codes, _, _ := h.notifier.snapshot()
	assert.Equal(t, []string{"2@first", "2@second"}, codes)
}

// ── Ready callback ──

func TestConnectionManager_DuplicateOpenedInvokesReadyOnce(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	for range 3 {
		session.events <- adapter.Opened{Account: "79001234567@s.whatsapp.net"}
	}
	session.events <- adapter.Closed{StatusCode: models.StatusConnectionLost}
	h.expectDelay(t)

	assert.Equal(t, int32(1), h.ready.Load())
}

func TestConnectionManager_ReconnectsWithFreshCredentials(t *testing.T) {
	h := newManagerHarness(t, nil)

	before := freshCredentials()
	after := freshCredentials()
	after.Account = "79001234567@s.whatsapp.net"
	after.Registered = true

	gomock.InOrder(
		h.store.EXPECT().Load(gomock.Any()).Return(before),
		h.store.EXPECT().Load(gomock.Any()).Return(after),
	)

	first := newFakeSession()
	second := newFakeSession()
	h.queue(first, nil)
	h.queue(second, nil)
	h.start(t)

	assert.Equal(t, before, h.expectOpen(t).creds)

	first.events <- adapter.Opened{}
	first.events <- adapter.Closed{StatusCode: models.StatusConnectionLost}
	h.expectDelay(t)
	h.clock.fire <- time.Now()

	assert.Equal(t, after, h.expectOpen(t).creds)

	second.events <- adapter.Opened{Account: after.Account}
	h.waitState(t, models.StateConnected)

	assert.Equal(t, int32(2), h.ready.Load(), "ready fires once per connection attempt")
	assert.True(t, first.closed.Load())
	assert.False(t, second.closed.Load())
}

// ── Pairing ──

func TestConnectionManager_PairingChallenge(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.PairingChallenge{Code: "2@abc,def"}
	h.waitState(t, models.StateAwaitingPairing)
	assert.Empty(t, h.clock.requested)

	session.events <- adapter.Opened{Account: "79001234567@s.whatsapp.net"}
	h.waitState(t, models.StateConnected)

	codes, states, _ := h.notifier.snapshot()
	assert.Equal(t, []string{"2@abc,def"}, codes)
	assert.Equal(t, []models.ConnectionState{models.StateAwaitingPairing, models.StateConnected}, states)
	assert.Equal(t, "79001234567@s.whatsapp.net", h.manager.Account())
}

// ── Credentials ──

func TestConnectionManager_PersistsCredentialUpdates(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	account := "79001234567@s.whatsapp.net"
	registered := true
	delta := models.CredentialDelta{Account: &account, Registered: &registered}

	persisted := make(chan struct{})
	h.store.EXPECT().Update(gomock.Any(), delta).DoAndReturn(
		func(context.Context, models.CredentialDelta) error {
			close(persisted)
			return nil
		})

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.CredentialUpdate{Delta: delta}

	select {
	case <-persisted:
	case <-time.After(waitTimeout):
		t.Fatal("credential update was not persisted")
	}
	assert.Equal(t, models.StateInitializing, h.manager.State())
}

func TestConnectionManager_CredentialUpdateFailureKeepsSession(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())
	h.store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.CredentialUpdate{Delta: models.CredentialDelta{Keys: map[string][]byte{"k": {1}}}}
	session.events <- adapter.Opened{}
	h.waitState(t, models.StateConnected)
	assert.False(t, session.closed.Load())
}

// ── Abnormal ends ──

func TestConnectionManager_StreamEndedWithoutClose(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.Opened{}
	close(session.events)

	assert.Equal(t, 3*time.Second, h.expectDelay(t))
}

func TestConnectionManager_OpenFailure(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		delay time.Duration
	}{
		{"plain error", errors.New("dial tcp: connection refused"), 3 * time.Second},
		{"timeout status", &adapter.StatusError{Code: models.StatusTimedOut, Err: adapter.ErrConnectTimeout}, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newManagerHarness(t, nil)
			h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

			h.queue(nil, tt.err)
			h.start(t)

			assert.Equal(t, tt.delay, h.expectDelay(t))
			assert.Equal(t, models.StateReconnecting, h.manager.State())
		})
	}
}

func TestConnectionManager_OpenFailureWithTerminalStatus(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	h.queue(nil, &adapter.StatusError{Code: models.StatusBadSession, Err: adapter.ErrDeviceStore})
	h.start(t)

	var terminated *TerminatedError
	require.ErrorAs(t, h.wait(t), &terminated)
	assert.Equal(t, models.ReasonBadSession, terminated.Reason)
	assert.ErrorIs(t, terminated, adapter.ErrDeviceStore)
}

// ── Version discovery ──

func TestConnectionManager_ProtocolVersion(t *testing.T) {
	discovered := models.ProtocolVersion{2, 3000, 1030000000}

	tests := []struct {
		name     string
		versions adapter.VersionSource
		want     models.ProtocolVersion
	}{
		{"discovered", staticVersions{version: discovered}, discovered},
		{"discovery failed", staticVersions{err: adapter.ErrVersionNotFound}, fallbackVersion},
		{"no source", nil, fallbackVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newManagerHarness(t, tt.versions)
			h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

			h.queue(newFakeSession(), nil)
			h.start(t)

			assert.Equal(t, tt.want, h.expectOpen(t).version)
		})
	}
}

// ── Session handle ──

func TestConnectionManager_SessionHandle(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	_, ok := h.manager.Session()
	assert.False(t, ok)

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.Opened{Account: "79001234567@s.whatsapp.net"}
	h.waitState(t, models.StateConnected)

	live, ok := h.manager.Session()
	require.True(t, ok)
	assert.Same(t, session, live)

	session.events <- adapter.Closed{StatusCode: models.StatusConnectionLost}
	h.expectDelay(t)

	_, ok = h.manager.Session()
	assert.False(t, ok)
	assert.Equal(t, "79001234567@s.whatsapp.net", h.manager.Account(), "account survives reconnects")
}

func TestConnectionManager_RunTwice(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	h.queue(newFakeSession(), nil)
	h.start(t)
	h.expectOpen(t)

	err := h.manager.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrManagerRunning)
}

func TestConnectionManager_IncomingMessage(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	msg := models.IncomingMessage{ID: "A1", From: "79007654321@s.whatsapp.net", Text: "hello"}
	session.events <- adapter.Opened{}
	session.events <- adapter.IncomingMessage{Message: msg}

	require.Eventually(t, func() bool {
		_, _, messages := h.notifier.snapshot()
		return len(messages) == 1
	}, waitTimeout, 5*time.Millisecond)

	_, _, messages := h.notifier.snapshot()
	assert.Equal(t, msg, messages[0])
}

func TestConnectionManager_StopsOnCancel(t *testing.T) {
	h := newManagerHarness(t, nil)
	h.store.EXPECT().Load(gomock.Any()).Return(freshCredentials())

	session := newFakeSession()
	h.queue(session, nil)
	h.start(t)

	session.events <- adapter.Opened{}
	h.waitState(t, models.StateConnected)

	h.cancel()
	assert.NoError(t, h.wait(t))
	assert.True(t, session.closed.Load())
}

// ── ReconnectPolicy ──

func TestReconnectPolicy_Next(t *testing.T) {
	policy := NewReconnectPolicy(config.ClientConnection{RetryDelay: 5 * time.Second, FallbackRetryDelay: 3 * time.Second})

	tests := []struct {
		reason models.DisconnectReason
		delay  time.Duration
		retry  bool
	}{
		{models.ReasonLoggedOut, 0, false},
		{models.ReasonBadSession, 0, false},
		{models.ReasonTimedOut, 5 * time.Second, true},
		{models.ReasonConnectionLost, 5 * time.Second, true},
		{models.ReasonOther, 3 * time.Second, true},
	}

	for _, tt := range tests {
		t.Run(tt.reason.String(), func(t *testing.T) {
			delay, retry := policy.Next(tt.reason)
			assert.Equal(t, tt.delay, delay)
			assert.Equal(t, tt.retry, retry)
		})
	}
}
