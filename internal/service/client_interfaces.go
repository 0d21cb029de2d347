package service

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/internal/adapter"
	"github.com/MKhiriev/go-wa-sender/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

// SessionHandle gives read access to the live session owned by the
// connection manager. It replaces any process-wide session variable: every
// consumer receives the handle explicitly.
type SessionHandle interface {
	// State returns the current connection state.
	State() models.ConnectionState

	// Session returns the live session. ok is false unless the state is
	// Connected.
	Session() (session adapter.Session, ok bool)

	// Account returns the address of the linked account, or "" before the
	// first successful connection.
	Account() string
}

// ReadyFunc is invoked when a connection attempt reaches Connected. It runs
// on the coordinator goroutine and must not block.
type ReadyFunc func(ctx context.Context, handle SessionHandle)

// ConnectionManager owns the lifecycle of the single messaging session.
type ConnectionManager interface {
	SessionHandle

	// Run drives the session until ctx is cancelled (returning nil) or the
	// network rejects the stored credentials (returning *TerminatedError).
	// onReady is invoked at most once per connection attempt.
	Run(ctx context.Context, onReady ReadyFunc) error
}

// Notifier receives lifecycle notifications from the connection manager.
// Calls are made from the coordinator goroutine and must not block.
type Notifier interface {
	PairingRequired(code string)
	StateChanged(state models.ConnectionState)
	MessageReceived(msg models.IncomingMessage)
}

// RecipientResolver turns operator input into a network address.
type RecipientResolver interface {
	// Resolve normalizes raw into an address. It returns ErrInvalidFormat
	// when too few digits remain.
	Resolve(raw string) (models.Address, error)

	// ConfirmReachable reports whether addr is a registered account. Any
	// transport error is logged and reported as false.
	ConfirmReachable(ctx context.Context, session adapter.Session, addr models.Address) bool
}

// Dispatcher sends a single text message.
type Dispatcher interface {
	// Dispatch validates the recipient and sends text. The returned error is
	// ErrNotConnected or ErrInvalidFormat; every transport outcome is
	// reported through the result.
	Dispatch(ctx context.Context, rawRecipient, text string) (models.DispatchResult, error)
}

// AppInfoService reports the build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
