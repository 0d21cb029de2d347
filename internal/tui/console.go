package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-wa-sender/internal/logger"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
)

var _ service.Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier prints pairing codes and state changes to a plain writer.
// It is used by non-interactive commands.
type ConsoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

func NewConsoleNotifier(out io.Writer, log *logger.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, logger: log}
}

func (c *ConsoleNotifier) PairingRequired(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, pairingHint)
	writeQR(c.out, code)
}

func (c *ConsoleNotifier) StateChanged(state models.ConnectionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "Состояние: %s\n", stateLabel(state))
}

func (c *ConsoleNotifier) MessageReceived(msg models.IncomingMessage) {
	c.logger.Debug().Str("from", msg.From).Msg("incoming message ignored by console")
}
