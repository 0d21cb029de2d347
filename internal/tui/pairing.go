package tui

import (
	"io"
	"strings"

	"github.com/mdp/qrterminal/v3"
)

const pairingHint = "Откройте WhatsApp на телефоне: Настройки → Связанные устройства → Привязка устройства"

// renderQR draws code as a half-block QR suitable for a terminal.
func renderQR(code string) string {
	var sb strings.Builder
	writeQR(&sb, code)
	return sb.String()
}

func writeQR(w io.Writer, code string) {
	qrterminal.GenerateWithConfig(code, qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         w,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		QuietZone:      1,
	})
}

func renderPairingPage(code, status string) string {
	var b strings.Builder
	b.WriteString(pairingHint)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(renderQR(code), "\n"))
	if status != "" {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(status))
	}
	return renderPage(titleStyle.Render("ПРИВЯЗКА УСТРОЙСТВА"), b.String(), "ctrl+y: копировать код")
}
