package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

// File names inside the auth directory.
const (
	// CredentialsFile holds the credential set managed by [CredentialStore].
	CredentialsFile = "credentials.db"
	// DeviceFile holds the transport's own device and signal session store.
	DeviceFile = "device.db"
)

// SQLiteDSN returns a DSN for the database file at path with foreign keys on
// and fully synchronous writes, so a committed transaction survives a crash.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_synchronous=FULL&_busy_timeout=5000", path)
}

// DeviceDBPath returns the path of the transport device store in authDir.
func DeviceDBPath(authDir string) string {
	return filepath.Join(authDir, DeviceFile)
}

// NewConnectSQLite opens the SQLite database at path, creating the parent
// directory if needed, and verifies the connection.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", SQLiteDSN(path))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// a single writer connection keeps SQLite from reporting "database is locked"
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}
