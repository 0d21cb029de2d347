package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects l into a buffer and returns a reader for the last entry.
func capture(t *testing.T, l *Logger) (*bytes.Buffer, func() map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	return &buf, func() map[string]any {
		t.Helper()
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		var entry map[string]any
		require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
		return entry
	}
}

func TestNewLogger_EntryShape(t *testing.T) {
	l := NewLogger("wa-sender")
	_, last := capture(t, l)

	l.Info().Str("phone", "15551234567").Msg("dispatch")

	entry := last()
	assert.Equal(t, "wa-sender", entry["role"])
	assert.Equal(t, "dispatch", entry["message"])
	assert.Equal(t, "15551234567", entry["phone"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("globals")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	buf, _ := capture(t, l)

	l.Error().Msg("dropped")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	parent := NewLogger("parent")
	_, last := capture(t, parent)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("state", "connected").Logger()
	child.Info().Msg("child")
	entry := last()
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "connected", entry["state"])

	parent.Info().Msg("parent")
	assert.NotContains(t, last(), "state")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

		FromContext(ctx).Info().Msg("in ctx")

		assert.Contains(t, buf.String(), `"trace_id":"t-1"`)
	})

	t.Run("empty context", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/api/messages", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("in request")

	assert.Contains(t, buf.String(), `"trace_id":"t-2"`)
	assert.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestNewClientLogger_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultLogFile)

	NewClientLogger("tui", path).Info().Msg("first")
	NewClientLogger("tui", path).Info().Msg("second")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &entry))
	assert.Equal(t, "tui", entry["role"])
	assert.Equal(t, "second", entry["message"])
}

func TestNewClientLogger_UnwritablePath(t *testing.T) {
	l := NewClientLogger("tui", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.NotNil(t, l)
}

func TestLeveled(t *testing.T) {
	tests := []struct {
		level    string
		wantInfo bool
		wantWarn bool
	}{
		{"warn", false, true},
		{"error", false, false},
		{"debug", true, true},
		{"", true, true},
		{"loud", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewLogger("level")
			buf, _ := capture(t, l)
			leveled := l.Leveled(tt.level)

			leveled.Info().Msg("info-line")
			leveled.Warn().Msg("warn-line")

			assert.Equal(t, tt.wantInfo, bytes.Contains(buf.Bytes(), []byte("info-line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(buf.Bytes(), []byte("warn-line")))
		})
	}
}

func TestLeveled_InvalidKeepsReceiver(t *testing.T) {
	l := NewLogger("level")
	assert.Same(t, l, l.Leveled(""))
	assert.Same(t, l, l.Leveled("loud"))
}
