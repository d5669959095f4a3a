// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/shield-chat/internal/adapter"
)

func humanizeStoreError(err error) string {
	if err == nil {
		return ""
	}

	var indexErr *adapter.IndexRequiredError
	if errors.As(err, &indexErr) {
		return renderIndexRequiredHelp(indexErr)
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return "Хранилище не приняло токен доступа"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Хранилище недоступно"
	}

	return err.Error()
}

func renderIndexRequiredHelp(indexErr *adapter.IndexRequiredError) string {
	var b strings.Builder

	b.WriteString("Хранилищу нужен составной индекс для запроса истории комнаты.\n")
	if indexErr.Collection != "" {
		b.WriteString("Коллекция: ")
		b.WriteString(indexErr.Collection)
		b.WriteString("\n")
	}
	if len(indexErr.Fields) > 0 {
		b.WriteString("Поля: ")
		b.WriteString(strings.Join(indexErr.Fields, ", "))
		b.WriteString("\n")
	}
	b.WriteString("Создайте индекс в консоли хранилища и вернитесь в комнату.")
	if indexErr.CreateURL != "" {
		b.WriteString("\nСсылка: ")
		b.WriteString(indexErr.CreateURL)
	}

	return b.String()
}
