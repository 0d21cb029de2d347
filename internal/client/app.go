package client

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/internal/store"
	"github.com/MKhiriev/go-wa-sender/internal/workers"
	"github.com/MKhiriev/go-wa-sender/models"
)

var _ Client = (*App)(nil)

// App owns the process lifecycle of the sender.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	logger   *logger.Logger

	ui     workers.Worker
	server workers.Worker

	readyOnce sync.Once
}

// Option attaches an optional front end to the App.
type Option func(*App)

// WithUI runs the operator interface next to the connection manager. When
// the operator quits, the whole application stops.
func WithUI(ui workers.Worker) Option {
	return func(a *App) {
		a.ui = ui
	}
}

// WithServer runs the HTTP API next to the connection manager.
func WithServer(server workers.Worker) Option {
	return func(a *App) {
		a.server = server
	}
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, log *logger.Logger, opts ...Option) (*App, error) {
	if services == nil || storages == nil {
		return nil, ErrNoServices
	}

	a := &App{
		services: services,
		storages: storages,
		logger:   log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Run drives the session together with the attached front ends until ctx is
// cancelled, the operator quits, or the session is terminated. A terminated
// session is reported as *service.TerminatedError.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	w := workers.NewWorkers(a.logger)
	w.Add("connection-manager", workers.WorkerFunc(func(ctx context.Context) error {
		return a.services.Manager.Run(ctx, a.onReady)
	}))
	if a.server != nil {
		w.Add("http-api", a.server)
	}
	if a.ui != nil {
		w.Add("tui", a.ui)
	}

	return w.Run(ctx)
}

func (a *App) onReady(_ context.Context, handle service.SessionHandle) {
	a.readyOnce.Do(func() {
		a.logger.Info().Str("account", handle.Account()).Msg("application is ready to send messages")
	})
	a.logger.Debug().Str("account", handle.Account()).Msg("session is connected")
}

type sendOutcome struct {
	result models.DispatchResult
	err    error
}

// Send connects, waits for the session to become ready and dispatches a
// single message. The session is closed once the send has finished.
func (a *App) Send(ctx context.Context, phone, text string) (models.DispatchResult, error) {
	if strings.TrimSpace(text) == "" {
		return models.DispatchResult{}, ErrEmptyMessage
	}
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan sendOutcome, 1)
	var once sync.Once
	onReady := func(ctx context.Context, _ service.SessionHandle) {
		once.Do(func() {
			go func() {
				defer cancel()
				result, err := a.services.Dispatcher.Dispatch(ctx, phone, text)
				done <- sendOutcome{result: result, err: err}
			}()
		})
	}

	runErr := a.services.Manager.Run(ctx, onReady)

	select {
	case out := <-done:
		return out.result, out.err
	default:
	}
	if runErr != nil {
		return models.DispatchResult{}, runErr
	}
	return models.DispatchResult{}, ErrNotDispatched
}

// Reset removes every persisted file of the linked device. The next run
// starts with pairing.
func (a *App) Reset(ctx context.Context) error {
	return a.storages.Credentials.Clear(ctx)
}

func (a *App) close() {
	if err := a.storages.Credentials.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("failed to close credential store")
	}
}
