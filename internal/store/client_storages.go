package store

import (
	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/crypto"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// Credentials is the SQLite-backed store of the linked device identity.
	Credentials CredentialStore
}

// NewClientStorages initialises the client storage layer. The database is
// opened lazily on the first Load, so a missing auth directory is not an
// error here.
func NewClientStorages(cfg config.ClientSession, keychain crypto.KeyChainService, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("auth_dir", cfg.AuthDir).Msg("creating new storages...")

	return &ClientStorages{
		Credentials: NewCredentialStore(cfg.AuthDir, keychain, logger),
	}
}
