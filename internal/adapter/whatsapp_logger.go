package adapter

import (
	"github.com/MKhiriev/go-wa-sender/internal/logger"
	waLog "go.mau.fi/whatsmeow/util/log"
)

// waLogger routes whatsmeow's printf-style logging into the application
// logger, tagging every entry with the whatsmeow module name.
type waLogger struct {
	base   *logger.Logger
	log    *logger.Logger
	module string
}

func newWALogger(base *logger.Logger, module string) waLog.Logger {
	return &waLogger{
		base:   base,
		log:    &logger.Logger{Logger: base.With().Str("module", module).Logger()},
		module: module,
	}
}

func (w *waLogger) Debugf(msg string, args ...any) { w.log.Debug().Msgf(msg, args...) }
func (w *waLogger) Infof(msg string, args ...any)  { w.log.Info().Msgf(msg, args...) }
func (w *waLogger) Warnf(msg string, args ...any)  { w.log.Warn().Msgf(msg, args...) }
func (w *waLogger) Errorf(msg string, args ...any) { w.log.Error().Msgf(msg, args...) }

func (w *waLogger) Sub(module string) waLog.Logger {
	return newWALogger(w.base, w.module+"/"+module)
}
