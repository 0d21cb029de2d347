// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/crypto"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/models"
)

// credentialStore is the SQLite implementation of [CredentialStore]. The
// whole set lives in credentials.db inside the auth directory; removing the
// directory forces the next run into pairing.
type credentialStore struct {
	dir      string
	keychain crypto.KeyChainService
	logger   *logger.Logger

	// connect opens and migrates the database. Replaced in tests.
	connect func(ctx context.Context) (*DB, error)

	mu      sync.Mutex
	db      *DB
	current *models.Credentials
}

// NewCredentialStore returns a [CredentialStore] rooted at authDir.
func NewCredentialStore(authDir string, keychain crypto.KeyChainService, log *logger.Logger) CredentialStore {
	s := &credentialStore{
		dir:      authDir,
		keychain: keychain,
		logger:   log,
	}
	s.connect = s.openSQLite
	return s
}

func (s *credentialStore) openSQLite(ctx context.Context) (*DB, error) {
	db, err := NewConnectSQLite(ctx, filepath.Join(s.dir, CredentialsFile), s.logger)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

// Load implements [CredentialStore].
func (s *credentialStore) Load(ctx context.Context) models.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked(ctx).Clone()
}

func (s *credentialStore) loadLocked(ctx context.Context) models.Credentials {
	log := s.logger

	db, err := s.database(ctx)
	if err != nil {
		log.Err(err).Str("func", "credentialStore.Load").Msg("credential store unavailable, using a fresh identity")
		fresh := s.freshIdentity()
		s.current = &fresh
		return fresh
	}

	creds, found, err := s.read(ctx, db)
	if err != nil {
		log.Err(err).Str("func", "credentialStore.Load").Msg("failed to read credentials, using a fresh identity")
		fresh := s.freshIdentity()
		s.current = &fresh
		return fresh
	}

	if !found {
		creds = s.freshIdentity()
		if err = s.write(ctx, db, creds); err != nil {
			log.Err(err).Str("func", "credentialStore.Load").Msg("failed to persist fresh identity")
		} else {
			log.Info().Str("func", "credentialStore.Load").Msg("created fresh unregistered identity")
		}
	}

	s.current = &creds
	return creds
}

// Update implements [CredentialStore].
func (s *credentialStore) Update(ctx context.Context, delta models.CredentialDelta) error {
	if delta.IsEmpty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.current
	if base == nil {
		loaded := s.loadLocked(ctx)
		base = &loaded
	}

	next := base.Apply(delta)
	next.UpdatedAt = time.Now().UTC()

	db, err := s.database(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCredentialsNotSaved, err)
	}
	if err = s.write(ctx, db, next); err != nil {
		s.logger.Err(err).Str("func", "credentialStore.Update").Msg("failed to persist credential update")
		return fmt.Errorf("%w: %w", ErrCredentialsNotSaved, err)
	}

	s.current = &next
	s.logger.Debug().
		Str("func", "credentialStore.Update").
		Bool("registered", next.Registered).
		Int("keys", len(next.Keys)).
		Msg("credentials persisted")

	return nil
}

// Clear implements [CredentialStore].
func (s *credentialStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Err(err).Str("func", "credentialStore.Clear").Msg("failed to close credential database")
		}
		s.db = nil
	}
	s.current = nil

	if err := os.RemoveAll(s.dir); err != nil {
		s.logger.Err(err).Str("func", "credentialStore.Clear").Str("dir", s.dir).Msg("failed to remove auth directory")
		return fmt.Errorf("%w: %w", ErrCredentialsNotCleared, err)
	}

	s.logger.Warn().Str("func", "credentialStore.Clear").Str("dir", s.dir).Msg("session material removed")
	return nil
}

// Close implements [CredentialStore].
func (s *credentialStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *credentialStore) database(ctx context.Context) (*DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	db, err := s.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	s.db = db
	return db, nil
}

func (s *credentialStore) freshIdentity() models.Credentials {
	creds, err := s.keychain.NewIdentity()
	if err != nil {
		// the transport generates its own keys when none are given
		s.logger.Err(err).Str("func", "credentialStore.freshIdentity").Msg("failed to generate identity keys")
		now := time.Now().UTC()
		return models.Credentials{Keys: map[string][]byte{}, CreatedAt: now, UpdatedAt: now}
	}
	return creds
}

func (s *credentialStore) read(ctx context.Context, db *DB) (models.Credentials, bool, error) {
	query, args, err := buildSelectCredentialsQuery()
	if err != nil {
		return models.Credentials{}, false, err
	}

	var creds models.Credentials
	err = db.QueryRowContext(ctx, query, args...).Scan(
		&creds.Account,
		&creds.Registered,
		&creds.Platform,
		&creds.RegistrationID,
		&creds.CreatedAt,
		&creds.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credentials{}, false, nil
	}
	if err != nil {
		return models.Credentials{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	query, args, err = buildSelectCredentialKeysQuery()
	if err != nil {
		return models.Credentials{}, false, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.Credentials{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	creds.Keys = make(map[string][]byte)
	for rows.Next() {
		var (
			name  string
			value []byte
		)
		if err = rows.Scan(&name, &value); err != nil {
			return models.Credentials{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		creds.Keys[name] = value
	}
	if err = rows.Err(); err != nil {
		return models.Credentials{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return creds, true, nil
}

// write replaces the persisted set with creds in a single transaction.
func (s *credentialStore) write(ctx context.Context, db *DB, creds models.Credentials) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query, args, err := buildUpsertCredentialsQuery(creds)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildDeleteCredentialKeysQuery()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(creds.Keys) > 0 {
		query, args, err = buildInsertCredentialKeysQuery(creds.Keys)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func sortedKeyNames(keys map[string][]byte) []string {
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
