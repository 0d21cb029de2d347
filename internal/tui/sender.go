package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	exitSentinel = "exit"
	maxFeed      = 5
	feedWidth    = 60
)

const (
	fieldPhone = iota
	fieldText
)

// senderModel is the phone → text prompt loop.
type senderModel struct {
	ctx        context.Context
	dispatcher service.Dispatcher

	inputs []textinput.Model
	focus  int

	sending       bool
	lastLine      string
	lastOK        bool
	lastMessageID string
	overlay       *errorOverlayModel
	feed          []models.IncomingMessage
	exited        bool
}

func newSenderModel(ctx context.Context, dispatcher service.Dispatcher) senderModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldPhone].Placeholder = "+7 999 123-45-67"
	inputs[fieldText].Placeholder = "Текст сообщения"
	inputs[fieldPhone].Focus()

	return senderModel{
		ctx:        ctx,
		dispatcher: dispatcher,
		inputs:     inputs,
	}
}

func (m senderModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m senderModel) Update(msg tea.Msg) (senderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchDoneMsg:
		m.sending = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeDispatchError(msg.err)}
			return m, nil
		}
		m.lastLine, m.lastOK = describeResult(msg.result)
		if m.lastOK {
			m.lastMessageID = msg.result.MessageID
		}
		return m, m.reset()
	case incomingMsg:
		m.feed = append(m.feed, msg.message)
		if len(m.feed) > maxFeed {
			m.feed = m.feed[len(m.feed)-maxFeed:]
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m senderModel) updateKeys(msg tea.KeyMsg) (senderModel, tea.Cmd) {
	if m.overlay != nil {
		if key.Matches(msg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}
	if m.sending {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, m.reset()
	case key.Matches(msg, keys.tab, keys.backtab):
		return m, m.focusField(1 - m.focus)
	case key.Matches(msg, keys.enter):
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m senderModel) submit() (senderModel, tea.Cmd) {
	phone := strings.TrimSpace(m.inputs[fieldPhone].Value())

	if m.focus == fieldPhone {
		if strings.EqualFold(phone, exitSentinel) {
			m.exited = true
			return m, tea.Quit
		}
		if phone == "" {
			return m, nil
		}
		return m, m.focusField(fieldText)
	}

	if strings.EqualFold(phone, exitSentinel) {
		m.exited = true
		return m, tea.Quit
	}

	text := m.inputs[fieldText].Value()
	if strings.TrimSpace(text) == "" {
		m.overlay = &errorOverlayModel{message: humanizeDispatchError(errEmptyMessage)}
		return m, nil
	}

	m.sending = true
	m.lastLine = ""
	return m, m.cmdDispatch(phone, text)
}

func (m senderModel) cmdDispatch(phone, text string) tea.Cmd {
	ctx, dispatcher := m.ctx, m.dispatcher
	return func() tea.Msg {
		result, err := dispatcher.Dispatch(ctx, phone, text)
		return dispatchDoneMsg{result: result, err: err}
	}
}

func (m *senderModel) focusField(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field
	return m.inputs[m.focus].Focus()
}

func (m *senderModel) reset() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	return m.focusField(fieldPhone)
}

func (m senderModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	b.WriteString(`Номер телефона (с +) или "exit" для выхода:` + "\n")
	b.WriteString("[" + m.inputs[fieldPhone].View() + "]\n")
	b.WriteString("Текст сообщения:\n")
	b.WriteString("[" + m.inputs[fieldText].View() + "]\n")

	switch {
	case m.sending:
		b.WriteString("\n" + helpStyle.Render("Отправка...") + "\n")
	case m.lastLine != "" && m.lastOK:
		b.WriteString("\n" + successStyle.Render(m.lastLine) + "\n")
	case m.lastLine != "":
		b.WriteString("\n" + errorStyle.Render(m.lastLine) + "\n")
	}

	if len(m.feed) > 0 {
		b.WriteString("\nВходящие:\n")
		for _, in := range m.feed {
			b.WriteString(fitText(formatIncoming(in), feedWidth))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatIncoming(in models.IncomingMessage) string {
	from := in.From
	if in.PushName != "" {
		from = fmt.Sprintf("%s (%s)", in.PushName, in.From)
	}
	return fmt.Sprintf("%s %s: %s", in.Timestamp.Format("15:04"), from, in.Text)
}
