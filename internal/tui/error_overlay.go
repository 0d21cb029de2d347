package tui

import "github.com/charmbracelet/lipgloss"

// errorOverlayModel is drawn over the sender form until enter or esc.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	body := lipgloss.NewStyle().Width(feedWidth).Render(m.message)
	content := errorStyle.Render("Ошибка") + "\n\n" + body + "\n\n" + helpStyle.Render("enter / esc: закрыть")
	return overlayBoxStyle.Render(content)
}
