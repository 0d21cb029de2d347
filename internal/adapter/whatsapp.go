// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-wa-sender/internal/config"
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/store"
	"github.com/MKhiriev/go-wa-sender/models"
	_ "github.com/mattn/go-sqlite3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waCompanionReg"
	wastore "go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/util/keys"
)

// whatsmeow keeps the announced version and device properties in package
// globals.
var announceMu sync.Mutex

type whatsAppTransport struct {
	session config.ClientSession
	conn    config.ClientConnection
	logger  *logger.Logger
}

// NewWhatsAppTransport returns a [Transport] backed by whatsmeow. The device
// session is kept in a SQLite database inside session.AuthDir, next to the
// credential store.
//
// Automatic reconnects of the library are disabled; every close is reported
// as a [Closed] event and retrying is left to the caller.
func NewWhatsAppTransport(session config.ClientSession, conn config.ClientConnection, log *logger.Logger) Transport {
	if conn.KeepAliveInterval > 0 {
		whatsmeow.KeepAliveIntervalMin = conn.KeepAliveInterval
		whatsmeow.KeepAliveIntervalMax = conn.KeepAliveInterval + conn.KeepAliveInterval/2
	}

	return &whatsAppTransport{
		session: session,
		conn:    conn,
		logger:  log,
	}
}

func (t *whatsAppTransport) Open(ctx context.Context, creds models.Credentials, version models.ProtocolVersion) (Session, error) {
	t.announce(version)

	if err := os.MkdirAll(t.session.AuthDir, 0o700); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceStore, err)
	}

	waLogger := newWALogger(t.logger, "whatsmeow")
	dsn := store.SQLiteDSN(store.DeviceDBPath(t.session.AuthDir))

	container, err := sqlstore.New(ctx, "sqlite3", dsn, waLogger.Sub("Database"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceStore, err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		_ = container.Close()
		return nil, fmt.Errorf("%w: %w", ErrDeviceStore, err)
	}

	if device.ID == nil {
		if creds.Registered {
			_ = container.Close()
			return nil, &StatusError{
				Code: models.StatusBadSession,
				Err:  fmt.Errorf("%w: credentials are registered but no linked device is stored", ErrDeviceStore),
			}
		}
		if !seedDevice(device, creds) {
			t.logger.Warn().Msg("stored key material is incomplete, pairing with library-generated keys")
		}
	}

	client := whatsmeow.NewClient(device, waLogger.Sub("Client"))
	client.EnableAutoReconnect = false
	client.DisableLoginAutoReconnect = true

	sess := newWhatsAppSession(ctx, client, container, t.logger)
	if err = sess.connect(t.conn.ConnectTimeout); err != nil {
		sess.Close()
		return nil, err
	}

	t.logger.Info().
		Str("version", version.String()).
		Bool("paired", device.ID != nil).
		Msg("session opened")

	return sess, nil
}

func (t *whatsAppTransport) announce(version models.ProtocolVersion) {
	announceMu.Lock()
	defer announceMu.Unlock()

	if !version.IsZero() {
		wastore.SetWAVersion(wastore.WAVersionContainer(version))
	}
	wastore.SetOSInfo(t.session.DeviceName, [3]uint32{1, 0, 0})
	wastore.DeviceProps.PlatformType = platformType(t.session.OSName).Enum()
}

func platformType(osName string) waCompanionReg.DeviceProps_PlatformType {
	switch strings.ToLower(osName) {
	case "chrome":
		return waCompanionReg.DeviceProps_CHROME
	case "firefox":
		return waCompanionReg.DeviceProps_FIREFOX
	case "safari":
		return waCompanionReg.DeviceProps_SAFARI
	case "edge":
		return waCompanionReg.DeviceProps_EDGE
	case "desktop":
		return waCompanionReg.DeviceProps_DESKTOP
	default:
		return waCompanionReg.DeviceProps_UNKNOWN
	}
}

// seedDevice replaces the key material of an unpaired device with the stored
// identity so that the linked device keeps the keys we generated and
// persisted. It reports false and leaves device untouched when the stored
// material is incomplete.
func seedDevice(device *wastore.Device, creds models.Credentials) bool {
	noise, ok := key32(creds.Key(models.KeyNoise))
	if !ok {
		return false
	}
	identity, ok := key32(creds.Key(models.KeyIdentity))
	if !ok {
		return false
	}
	adv := creds.Key(models.KeyAdvSecret)
	if len(adv) != 32 || creds.RegistrationID == 0 {
		return false
	}

	device.NoiseKey = keys.NewKeyPairFromPrivateKey(noise)
	device.IdentityKey = keys.NewKeyPairFromPrivateKey(identity)
	device.SignedPreKey = device.IdentityKey.CreateSignedPreKey(1)
	device.RegistrationID = creds.RegistrationID
	device.AdvSecretKey = append([]byte(nil), adv...)

	return true
}

func key32(b []byte) ([32]byte, bool) {
	var out [32]byte
	if len(b) != len(out) {
		return out, false
	}
	copy(out[:], b)
	return out, true
}
