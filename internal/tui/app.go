package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// RootModel is the operator screen:
// 1) keeps the connection state shown in the header
// 2) shows the pairing QR while the device is not linked
// 3) handles global hotkeys (quit, copy, build info)
// 4) delegates everything else to the sender form
type RootModel struct {
	handle    service.SessionHandle
	sender    senderModel
	buildInfo models.AppBuildInfo

	state       models.ConnectionState
	account     string
	pairingCode string
	status      string

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel builds the operator screen around the session handle and the
// dispatcher used for every send cycle.
func NewRootModel(ctx context.Context, handle service.SessionHandle, dispatcher service.Dispatcher, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		handle:    handle,
		sender:    newSenderModel(ctx, dispatcher),
		buildInfo: buildInfo,
		state:     handle.State(),
		account:   handle.Account(),
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.sender.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.info):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(msg, keys.copy):
			return r, r.cmdCopy()
		}
		if r.showBuildInfo {
			if key.Matches(msg, keys.esc) {
				r.showBuildInfo = false
			}
			return r, nil
		}
	case stateChangedMsg:
		r.state = msg.state
		r.account = r.handle.Account()
		if r.state == models.StateConnected {
			r.pairingCode = ""
		}
		return r, nil
	case pairingCodeMsg:
		r.pairingCode = msg.code
		r.state = models.StateAwaitingPairing
		return r, nil
	case copiedMsg:
		if msg.err != nil {
			r.status = "Ошибка копирования: " + msg.err.Error()
		} else {
			r.status = "Скопировано: " + msg.what
		}
		return r, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	case clearStatusMsg:
		r.status = ""
		return r, nil
	}

	var cmd tea.Cmd
	r.sender, cmd = r.sender.Update(msg)
	if r.sender.exited {
		r.quitByUser = true
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.pairing() {
		return appStyle.Render(renderPairingPage(r.pairingCode, r.status))
	}

	body := r.sender.View()
	if r.status != "" {
		body += "\n\n" + helpStyle.Render(r.status)
	}
	hotKeys := "enter: далее / отправить  tab: поле  esc: очистить  ctrl+y: копировать ID  ctrl+b: о программе"
	return appStyle.Render(renderPage(r.header(), body, hotKeys))
}

func (r RootModel) header() string {
	title := titleStyle.Render("WHATSAPP SENDER") + "  " + renderStateBadge(r.state)
	if r.account != "" {
		title += "  " + helpStyle.Render(r.account)
	}
	return title
}

func (r RootModel) pairing() bool {
	return r.state == models.StateAwaitingPairing && r.pairingCode != ""
}

// cmdCopy copies the pairing code while pairing, otherwise the ID of the
// last sent message.
func (r RootModel) cmdCopy() tea.Cmd {
	text, what := r.sender.lastMessageID, "ID сообщения"
	if r.pairing() {
		text, what = r.pairingCode, "код привязки"
	}
	if text == "" {
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboardWrite(text)}
	}
}
