package adapter

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/crypto"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waCompanionReg"
	"go.mau.fi/whatsmeow/proto/waE2E"
	wastore "go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

func fixedAccount() string { return "79001234567@s.whatsapp.net" }

// ── translateEvent: closes ──

func TestTranslateEvent_Closes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		code int
	}{
		{"logged out", &events.LoggedOut{}, models.StatusLoggedOut},
		{"stream replaced", &events.StreamReplaced{}, models.StatusConnectionReplaced},
		{"keep-alive timeout", &events.KeepAliveTimeout{ErrorCount: 3}, models.StatusConnectionLost},
		{"disconnected", &events.Disconnected{}, models.StatusConnectionClosed},
		{"connect failure logged out", &events.ConnectFailure{Reason: events.ConnectFailureReason(401)}, models.StatusLoggedOut},
		{"connect failure main device gone", &events.ConnectFailure{Reason: events.ConnectFailureReason(403)}, models.StatusLoggedOut},
		{"connect failure unavailable", &events.ConnectFailure{Reason: events.ConnectFailureReason(503)}, models.StatusServiceUnavailable},
		{"connect failure internal", &events.ConnectFailure{Reason: events.ConnectFailureReason(500)}, models.StatusBadSession},
		{"client outdated", &events.ClientOutdated{}, statusClientOutdated},
		{"stream error restart", &events.StreamError{Code: "515"}, models.StatusRestartRequired},
		{"stream error garbage", &events.StreamError{Code: "conflict"}, models.StatusUnknown},
		{"manual login reconnect", &events.ManualLoginReconnect{}, models.StatusRestartRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, ok := translateEvent(tt.raw, fixedAccount)
			require.True(t, ok)

			closed, isClosed := evt.(Closed)
			require.True(t, isClosed, "expected Closed, got %T", evt)
			assert.Equal(t, tt.code, closed.StatusCode)
			assert.Error(t, closed.Err)
		})
	}
}

func TestTranslateEvent_ClosesClassify(t *testing.T) {
	loggedOut, _ := translateEvent(&events.LoggedOut{}, fixedAccount)
	assert.Equal(t, models.ReasonLoggedOut, models.ClassifyDisconnect(loggedOut.(Closed).StatusCode))

	replaced, _ := translateEvent(&events.StreamReplaced{}, fixedAccount)
	assert.Equal(t, models.ReasonOther, models.ClassifyDisconnect(replaced.(Closed).StatusCode))

	lost, _ := translateEvent(&events.KeepAliveTimeout{ErrorCount: 1}, fixedAccount)
	assert.Equal(t, models.ReasonTimedOut, models.ClassifyDisconnect(lost.(Closed).StatusCode))

	dropped, _ := translateEvent(&events.Disconnected{}, fixedAccount)
	assert.Equal(t, models.ReasonOther, models.ClassifyDisconnect(dropped.(Closed).StatusCode))
}

// ── translateEvent: lifecycle ──

func TestTranslateEvent_Connected(t *testing.T) {
	evt, ok := translateEvent(&events.Connected{}, fixedAccount)
	require.True(t, ok)
	assert.Equal(t, Opened{Account: fixedAccount()}, evt)
}

func TestTranslateEvent_PairSuccess(t *testing.T) {
	evt, ok := translateEvent(&events.PairSuccess{
		ID:       types.JID{User: "79001234567", Device: 12, Server: types.DefaultUserServer},
		Platform: "android",
	}, fixedAccount)
	require.True(t, ok)

	update, isUpdate := evt.(CredentialUpdate)
	require.True(t, isUpdate)
	require.NotNil(t, update.Delta.Account)
	require.NotNil(t, update.Delta.Registered)
	require.NotNil(t, update.Delta.Platform)
	assert.Equal(t, "79001234567@s.whatsapp.net", *update.Delta.Account)
	assert.True(t, *update.Delta.Registered)
	assert.Equal(t, "android", *update.Delta.Platform)
}

// ── translateEvent: messages ──

func TestTranslateEvent_Message(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sender := types.NewJID("79007654321", types.DefaultUserServer)

	newMessage := func(fromMe bool, msg *waE2E.Message) *events.Message {
		return &events.Message{
			Info: types.MessageInfo{
				MessageSource: types.MessageSource{Sender: sender, Chat: sender, IsFromMe: fromMe},
				ID:            "3EB0ABC",
				PushName:      "Bob",
				Timestamp:     ts,
			},
			Message: msg,
		}
	}

	t.Run("conversation", func(t *testing.T) {
		evt, ok := translateEvent(newMessage(false, &waE2E.Message{Conversation: proto.String("hello")}), fixedAccount)
		require.True(t, ok)
		assert.Equal(t, IncomingMessage{Message: models.IncomingMessage{
			ID:        "3EB0ABC",
			From:      "79007654321@s.whatsapp.net",
			PushName:  "Bob",
			Text:      "hello",
			Timestamp: ts,
		}}, evt)
	})

	t.Run("extended text", func(t *testing.T) {
		evt, ok := translateEvent(newMessage(false, &waE2E.Message{
			ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("see https://example.com")},
		}), fixedAccount)
		require.True(t, ok)
		assert.Equal(t, "see https://example.com", evt.(IncomingMessage).Message.Text)
	})

	t.Run("own message skipped", func(t *testing.T) {
		_, ok := translateEvent(newMessage(true, &waE2E.Message{Conversation: proto.String("echo")}), fixedAccount)
		assert.False(t, ok)
	})

	t.Run("non-text skipped", func(t *testing.T) {
		_, ok := translateEvent(newMessage(false, &waE2E.Message{}), fixedAccount)
		assert.False(t, ok)
	})
}

func TestTranslateEvent_Ignored(t *testing.T) {
	for _, raw := range []any{&events.Receipt{}, &events.Presence{}, "not an event", nil} {
		_, ok := translateEvent(raw, fixedAccount)
		assert.False(t, ok, "%T", raw)
	}
}

// ── mapClientError ──

func TestMapClientError(t *testing.T) {
	t.Run("iq error carries status", func(t *testing.T) {
		err := mapClientError(fmt.Errorf("usync: %w", &whatsmeow.IQError{Code: 404, Text: "item-not-found"}))

		code, ok := StatusCodeOf(err)
		require.True(t, ok)
		assert.Equal(t, 404, code)
	})

	t.Run("not connected", func(t *testing.T) {
		err := mapClientError(whatsmeow.ErrNotConnected)
		assert.ErrorIs(t, err, ErrSessionClosed)
		assert.ErrorIs(t, err, whatsmeow.ErrNotConnected)
	})

	t.Run("passthrough", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, mapClientError(plain))
	})
}

// ── seedDevice ──

func TestSeedDevice(t *testing.T) {
	keychain := crypto.NewKeyChainService()
	creds, err := keychain.NewIdentity()
	require.NoError(t, err)

	device := &wastore.Device{}
	require.True(t, seedDevice(device, creds))

	noisePub, err := keychain.PublicKey(creds.Key(models.KeyNoise))
	require.NoError(t, err)
	identityPub, err := keychain.PublicKey(creds.Key(models.KeyIdentity))
	require.NoError(t, err)

	assert.Equal(t, noisePub, device.NoiseKey.Pub[:])
	assert.Equal(t, identityPub, device.IdentityKey.Pub[:])
	assert.Equal(t, creds.RegistrationID, device.RegistrationID)
	assert.Equal(t, creds.Key(models.KeyAdvSecret), device.AdvSecretKey)
	require.NotNil(t, device.SignedPreKey)
}

func TestSeedDevice_Incomplete(t *testing.T) {
	creds := models.Credentials{
		RegistrationID: 7,
		Keys:           map[string][]byte{models.KeyNoise: make([]byte, 16)},
	}

	device := &wastore.Device{RegistrationID: 99}
	assert.False(t, seedDevice(device, creds))
	assert.Equal(t, uint32(99), device.RegistrationID)
	assert.Nil(t, device.NoiseKey)
}

func TestPlatformType(t *testing.T) {
	assert.Equal(t, waCompanionReg.DeviceProps_CHROME, platformType("Chrome"))
	assert.Equal(t, waCompanionReg.DeviceProps_FIREFOX, platformType("firefox"))
	assert.Equal(t, waCompanionReg.DeviceProps_UNKNOWN, platformType("TempleOS"))
}
