// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/shield-chat/internal/service"
	"github.com/MKhiriev/shield-chat/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EntryModel is the Bubble Tea model for the room-entry screen. It renders two
// text inputs (room name and optional room password) and dispatches an async
// enter command on form submission. On success an [EnterResult] message is
// produced and handled by [RootModel] to open the chat page.
type EntryModel struct {
	ctx  context.Context
	chat service.ChatSession

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewEntryModel creates an [EntryModel] with pre-configured room and password
// inputs. The room field receives focus immediately; the password field uses
// masked echo and may be left empty for unencrypted rooms.
func NewEntryModel(ctx context.Context, chat service.ChatSession) *EntryModel {
	roomInput := textinput.New()
	roomInput.Placeholder = "room"
	roomInput.CharLimit = 64
	roomInput.Width = 40
	roomInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password (optional)"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &EntryModel{
		ctx:    ctx,
		chat:   chat,
		inputs: []textinput.Model{roomInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the
// active input.
func (m *EntryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [EnterResult] — clears submitting state; on error, populates errMsg.
//   - tab           — moves focus to the next input.
//   - shift+tab     — moves focus to the previous input.
//   - enter         — validates the room name and dispatches the async enter command.
//
// All other key events are forwarded to the focused input widget.
func (m *EntryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(EnterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeStoreError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			room := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if room == "" {
				m.errMsg = "Имя комнаты обязательно"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdEnter(room, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Renders the entry form as a two-column table
// with room and password inputs, a submission indicator, and an optional
// error message.
func (m *EntryModel) View() string {
	var b strings.Builder
	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Комната │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Войти в комнату...]\n")
	} else {
		b.WriteString("\n[Войти в комнату]\n")
	}

	b.WriteString("\nПароль нужен только для зашифрованных комнат\n")

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ВХОД В КОМНАТУ", strings.TrimRight(b.String(), "\n"), "tab: след. поле │ enter: войти │ ctrl+b: версия")
}

func (m *EntryModel) cmdEnter(room, password string) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	return func() tea.Msg {
		err := chat.Enter(ctx, models.RoomContext{
			Room:     room,
			Password: password,
		})

		return EnterResult{
			Room:      room,
			Encrypted: password != "",
			Err:       err,
		}
	}
}

func (m *EntryModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *EntryModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
