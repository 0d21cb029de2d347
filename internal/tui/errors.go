// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-wa-sender/internal/service"
	"github.com/MKhiriev/go-wa-sender/models"
)

var errEmptyMessage = errors.New("пустое сообщение не отправляется")

func humanizeDispatchError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNotConnected):
		return "Нет подключения к WhatsApp. Дождитесь восстановления соединения"
	case errors.Is(err, service.ErrInvalidFormat):
		return "Неверный формат номера. Введите номер с кодом страны"
	case errors.Is(err, errEmptyMessage):
		return "Введите текст сообщения"
	}

	return err.Error()
}

// describeResult renders a dispatch result as a single status line.
func describeResult(result models.DispatchResult) (line string, ok bool) {
	switch result.Status {
	case models.DispatchSuccess:
		return fmt.Sprintf("Сообщение отправлено на %s (ID: %s)", result.Address.Phone, result.MessageID), true
	case models.DispatchNotRegistered:
		return fmt.Sprintf("Номер %s не зарегистрирован в WhatsApp", result.Address.Phone), false
	default:
		return fmt.Sprintf("Ошибка отправки: %s", result.Detail), false
	}
}
