package store

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore persists the credential set of the linked device.
//
// Writes are serialized and synchronous: when Update returns nil the full
// set is committed to disk.
type CredentialStore interface {
	// Load returns the persisted credentials, creating and persisting a fresh
	// unregistered identity when none exist. It never fails; storage errors
	// are logged and a fresh identity is returned.
	Load(ctx context.Context) models.Credentials

	// Update applies delta to the current set and persists the full result
	// before returning.
	Update(ctx context.Context, delta models.CredentialDelta) error

	// Clear removes every persisted file of the session. Only an explicit
	// operator action may call it.
	Clear(ctx context.Context) error

	// Close releases the database connection.
	Close() error
}
