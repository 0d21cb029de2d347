package workers

import (
	"context"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"golang.org/x/sync/errgroup"
)

type named struct {
	name   string
	worker Worker
}

type Workers struct {
	workers []named
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{logger: logger}
}

// Add registers worker under name. Workers must be added before Run.
func (w *Workers) Add(name string, worker Worker) {
	w.workers = append(w.workers, named{name: name, worker: worker})
}

// Run starts every worker and blocks until all of them have returned. The
// first worker to return, with or without an error, cancels the context of
// the others. Run returns the first non-nil error.
func (w *Workers) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	for _, nw := range w.workers {
		g.Go(func() error {
			defer cancel()

			w.logger.Debug().Str("worker", nw.name).Msg("worker started")
			err := nw.worker.Run(gctx)
			if err != nil {
				w.logger.Err(err).Str("worker", nw.name).Msg("worker failed")
				return err
			}
			w.logger.Debug().Str("worker", nw.name).Msg("worker stopped")
			return nil
		})
	}

	return g.Wait()
}
