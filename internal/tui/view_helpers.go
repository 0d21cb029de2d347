package tui

import (
	"strings"

	"github.com/MKhiriev/go-wa-sender/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: выход")

	return b.String()
}

// stateLabel is the operator-facing name of a connection state.
func stateLabel(state models.ConnectionState) string {
	switch state {
	case models.StateInitializing:
		return "подключение..."
	case models.StateAwaitingPairing:
		return "ожидание привязки"
	case models.StateConnected:
		return "подключено"
	case models.StateReconnecting:
		return "переподключение..."
	case models.StateTerminated:
		return "сессия завершена"
	default:
		return "неизвестно"
	}
}

func renderStateBadge(state models.ConnectionState) string {
	label := stateLabel(state)
	if style, ok := stateStyles[state.String()]; ok {
		return style.Render(label)
	}
	return label
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
