package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-wa-sender/internal/mock/servicemock"
	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func TestSender_ExitSentinelQuits(t *testing.T) {
	tests := []string{"exit", "EXIT", " Exit "}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newSenderModel(context.Background(), servicemock.NewMockDispatcher(ctrl))
			m.inputs[fieldPhone].SetValue(input)

			m, cmd := m.Update(enterKey)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.exited)
		})
	}
}

func TestSender_EnterOnPhoneMovesToText(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newSenderModel(context.Background(), servicemock.NewMockDispatcher(ctrl))
	m.inputs[fieldPhone].SetValue("+1 555 123 4567")

	m, _ = m.Update(enterKey)

	assert.Equal(t, fieldText, m.focus)
	assert.True(t, m.inputs[fieldText].Focused())
	assert.False(t, m.inputs[fieldPhone].Focused())
}

func TestSender_EmptyPhoneStays(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newSenderModel(context.Background(), servicemock.NewMockDispatcher(ctrl))

	m, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Equal(t, fieldPhone, m.focus)
}

func TestSender_EmptyMessageRejectedBeforeDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no Dispatch expectation: any call fails the test
	m := newSenderModel(context.Background(), servicemock.NewMockDispatcher(ctrl))
	m.inputs[fieldPhone].SetValue("5551234567")
	m, _ = m.Update(enterKey)
	m.inputs[fieldText].SetValue("   ")

	m, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Введите текст сообщения")
	assert.False(t, m.sending)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.overlay)
}

func TestSender_DispatchSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := servicemock.NewMockDispatcher(ctrl)
	dispatcher.EXPECT().
		Dispatch(gomock.Any(), "5551234567", "hi").
		Return(models.DispatchResult{
			Status:    models.DispatchSuccess,
			Address:   models.Address{Phone: "5551234567"},
			MessageID: "3EB0ABC",
		}, nil)

	m := newSenderModel(context.Background(), dispatcher)
	m.inputs[fieldPhone].SetValue("5551234567")
	m, _ = m.Update(enterKey)
	m.inputs[fieldText].SetValue("hi")

	m, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.sending)
	assert.Contains(t, m.View(), "Отправка...")

	// keys are ignored while the send is in flight
	m, ignored := m.Update(enterKey)
	assert.Nil(t, ignored)

	done, ok := cmd().(dispatchDoneMsg)
	require.True(t, ok)
	m, _ = m.Update(done)

	assert.False(t, m.sending)
	assert.True(t, m.lastOK)
	assert.Equal(t, "3EB0ABC", m.lastMessageID)
	assert.Contains(t, m.View(), "3EB0ABC")
	assert.Empty(t, m.inputs[fieldPhone].Value())
	assert.Empty(t, m.inputs[fieldText].Value())
	assert.Equal(t, fieldPhone, m.focus)
}

func TestSender_DispatchResults(t *testing.T) {
	tests := []struct {
		name   string
		result models.DispatchResult
		err    error
		want   string
	}{
		{
			name:   "not registered",
			result: models.DispatchResult{Status: models.DispatchNotRegistered, Address: models.Address{Phone: "5551234567"}},
			want:   "Номер 5551234567 не зарегистрирован в WhatsApp",
		},
		{
			name:   "transport error",
			result: models.DispatchResult{Status: models.DispatchTransportError, Detail: "boom"},
			want:   "Ошибка отправки: boom",
		},
		{
			name: "not connected",
			err:  service.ErrNotConnected,
			want: "Нет подключения к WhatsApp",
		},
		{
			name: "invalid format",
			err:  fmt.Errorf("%w: 3 digits", service.ErrInvalidFormat),
			want: "Неверный формат номера",
		},
		{
			name: "unexpected error",
			err:  errors.New("something odd"),
			want: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newSenderModel(context.Background(), servicemock.NewMockDispatcher(ctrl))
			m.sending = true

			m, _ = m.Update(dispatchDoneMsg{result: tt.result, err: tt.err})

			assert.False(t, m.sending)
			assert.Contains(t, m.View(), tt.want)
			assert.Empty(t, m.lastMessageID)
		})
	}
}

func TestSender_IncomingFeedIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newSenderModel(context.Background(), servicemock.NewMockDispatcher(ctrl))

	ts := time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)
	for i := 0; i < maxFeed+2; i++ {
		m, _ = m.Update(incomingMsg{message: models.IncomingMessage{
			From:      "15551234567",
			PushName:  "Alice",
			Text:      fmt.Sprintf("msg %d", i),
			Timestamp: ts,
		}})
	}

	require.Len(t, m.feed, maxFeed)
	assert.Equal(t, "msg 2", m.feed[0].Text)
	view := m.View()
	assert.Contains(t, view, "Входящие:")
	assert.Contains(t, view, "15:04 Alice (15551234567): msg 6")
	assert.NotContains(t, view, "msg 1")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "пр...", fitText("привет мир", 5))
	assert.Equal(t, "abc", fitText("abc", 0))
}
