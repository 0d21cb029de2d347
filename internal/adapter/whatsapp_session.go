package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/models"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"
)

const sessionEventBuffer = 32

var (
	errConnectionClosed = errors.New("connection closed")
	errStreamReplaced   = errors.New("stream replaced by another client")
	errPairingTimeout   = errors.New("pairing code was not scanned in time")
	errClientOutdated   = errors.New("client version rejected as outdated")
	errRestartRequired  = errors.New("restart required after pairing")
)

type whatsAppSession struct {
	client    *whatsmeow.Client
	container *sqlstore.Container
	logger    *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once

	// mu guards the two flags below and serializes sends on events.
	mu         sync.Mutex
	closedSent bool
	finished   bool
}

func newWhatsAppSession(ctx context.Context, client *whatsmeow.Client, container *sqlstore.Container, log *logger.Logger) *whatsAppSession {
	sessCtx, cancel := context.WithCancel(ctx)

	s := &whatsAppSession{
		client:    client,
		container: container,
		logger:    log,
		ctx:       sessCtx,
		cancel:    cancel,
		events:    make(chan Event, sessionEventBuffer),
		done:      make(chan struct{}),
	}
	client.AddEventHandler(s.handle)

	return s
}

func (s *whatsAppSession) Events() <-chan Event {
	return s.events
}

func (s *whatsAppSession) Send(ctx context.Context, addr models.Address, text string) (string, error) {
	jid := types.NewJID(addr.Phone, types.DefaultUserServer)

	resp, err := s.client.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(text),
	})
	if err != nil {
		return "", mapClientError(err)
	}

	return string(resp.ID), nil
}

func (s *whatsAppSession) IsRegistered(ctx context.Context, addr models.Address) (bool, error) {
	resp, err := s.client.IsOnWhatsApp(ctx, []string{"+" + addr.Phone})
	if err != nil {
		return false, mapClientError(err)
	}

	for _, r := range resp {
		if r.IsIn {
			return true, nil
		}
	}

	return false, nil
}

func (s *whatsAppSession) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.cancel()
		s.client.Disconnect()

		if err := s.container.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("error closing device store")
		}

		s.mu.Lock()
		s.finished = true
		close(s.events)
		s.mu.Unlock()
	})
}

// connect starts the websocket and, for an unpaired device, the pairing code
// feed. It gives up after timeout.
func (s *whatsAppSession) connect(timeout time.Duration) error {
	if s.client.Store.ID == nil {
		qrChan, err := s.client.GetQRChannel(s.ctx)
		if err != nil {
			return fmt.Errorf("get pairing channel: %w", err)
		}
		go s.forwardPairing(qrChan)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.client.Connect()
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-errCh:
		if err != nil {
			return mapClientError(err)
		}
		return nil
	case <-timer.C:
		return &StatusError{Code: models.StatusTimedOut, Err: ErrConnectTimeout}
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

func (s *whatsAppSession) forwardPairing(qrChan <-chan whatsmeow.QRChannelItem) {
	for item := range qrChan {
		switch item.Event {
		case whatsmeow.QRChannelEventCode:
			s.emit(PairingChallenge{Code: item.Code})
		case whatsmeow.QRChannelSuccess.Event:
			s.logger.Info().Msg("pairing code scanned")
		case whatsmeow.QRChannelTimeout.Event:
			s.emit(Closed{StatusCode: models.StatusTimedOut, Err: errPairingTimeout})
		case whatsmeow.QRChannelClientOutdated.Event:
			s.emit(Closed{StatusCode: statusClientOutdated, Err: errClientOutdated})
		default:
			err := item.Error
			if err == nil {
				err = fmt.Errorf("pairing failed: %s", item.Event)
			}
			s.emit(Closed{StatusCode: models.StatusUnknown, Err: err})
		}
	}
}

func (s *whatsAppSession) handle(raw any) {
	if _, ok := raw.(*events.KeepAliveTimeout); ok {
		go s.client.Disconnect()
	}

	evt, ok := translateEvent(raw, s.account)
	if !ok {
		return
	}
	s.emit(evt)
}

func (s *whatsAppSession) emit(evt Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.finished || s.closedSent {
		return
	}
	if _, ok := evt.(Closed); ok {
		s.closedSent = true
	}

	select {
	case s.events <- evt:
	case <-s.done:
	}
}

func (s *whatsAppSession) account() string {
	if id := s.client.Store.ID; id != nil {
		return id.ToNonAD().String()
	}
	return ""
}

// Status codes of closes the network reports outside the stream error path.
const (
	statusTemporaryBan   = 402
	statusClientOutdated = 405
)

// translateEvent maps a whatsmeow event to a session [Event]. It reports false
// for events the session does not forward.
func translateEvent(raw any, account func() string) (Event, bool) {
	switch evt := raw.(type) {
	case *events.Connected:
		return Opened{Account: account()}, true

	case *events.PairSuccess:
		jid := evt.ID.ToNonAD().String()
		registered := true
		platform := evt.Platform
		return CredentialUpdate{Delta: models.CredentialDelta{
			Account:    &jid,
			Registered: &registered,
			Platform:   &platform,
		}}, true

	case *events.LoggedOut:
		return Closed{
			StatusCode: models.StatusLoggedOut,
			Err:        fmt.Errorf("logged out (reason %d, on connect %t)", int(evt.Reason), evt.OnConnect),
		}, true

	case *events.StreamReplaced:
		return Closed{StatusCode: models.StatusConnectionReplaced, Err: errStreamReplaced}, true

	case *events.KeepAliveTimeout:
		return Closed{
			StatusCode: models.StatusConnectionLost,
			Err:        fmt.Errorf("keep-alive timed out after %d failures", evt.ErrorCount),
		}, true

	case *events.Disconnected:
		return Closed{StatusCode: models.StatusConnectionClosed, Err: errConnectionClosed}, true

	case *events.ConnectFailure:
		code := int(evt.Reason)
		if evt.Reason.IsLoggedOut() {
			code = models.StatusLoggedOut
		}
		return Closed{
			StatusCode: code,
			Err:        fmt.Errorf("connect failure %d: %s", int(evt.Reason), evt.Message),
		}, true

	case *events.TemporaryBan:
		return Closed{StatusCode: statusTemporaryBan, Err: fmt.Errorf("temporary ban: %s", evt.String())}, true

	case *events.ClientOutdated:
		return Closed{StatusCode: statusClientOutdated, Err: errClientOutdated}, true

	case *events.StreamError:
		code, err := strconv.Atoi(evt.Code)
		if err != nil {
			code = models.StatusUnknown
		}
		return Closed{StatusCode: code, Err: fmt.Errorf("stream error %q", evt.Code)}, true

	case *events.ManualLoginReconnect:
		return Closed{StatusCode: models.StatusRestartRequired, Err: errRestartRequired}, true

	case *events.Message:
		if evt.Info.IsFromMe {
			return nil, false
		}
		text := messageText(evt.Message)
		if text == "" {
			return nil, false
		}
		return IncomingMessage{Message: models.IncomingMessage{
			ID:        string(evt.Info.ID),
			From:      evt.Info.Sender.ToNonAD().String(),
			PushName:  evt.Info.PushName,
			Text:      text,
			Timestamp: evt.Info.Timestamp,
		}}, true
	}

	return nil, false
}

func messageText(msg *waE2E.Message) string {
	if msg == nil {
		return ""
	}
	if text := msg.GetConversation(); text != "" {
		return text
	}
	return msg.GetExtendedTextMessage().GetText()
}

func mapClientError(err error) error {
	var iqErr *whatsmeow.IQError
	switch {
	case errors.As(err, &iqErr):
		return &StatusError{Code: iqErr.Code, Err: err}
	case errors.Is(err, whatsmeow.ErrNotConnected), errors.Is(err, whatsmeow.ErrNotLoggedIn):
		return fmt.Errorf("%w: %w", ErrSessionClosed, err)
	default:
		return err
	}
}
