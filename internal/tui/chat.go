// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/shield-chat/internal/adapter"
	"github.com/MKhiriev/shield-chat/internal/service"
	"github.com/MKhiriev/shield-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// refreshEvery is how often the chat page re-reads the session view. The
// session itself polls the store on its own interval; this tick only moves
// already-reconciled messages onto the screen.
const refreshEvery = 250 * time.Millisecond

// maxVisibleMessages bounds how many conversation lines fit on the page.
const maxVisibleMessages = 15

type chatModel struct {
	ctx  context.Context
	chat service.ChatSession

	room      string
	encrypted bool

	input   textinput.Model
	spinner spinner.Model

	view    []models.ViewMessage
	state   service.SessionState
	lastErr error

	// offset counts messages scrolled back from the newest one.
	offset     int
	submitting bool
	status     string
}

func newChatModel(ctx context.Context, chat service.ChatSession) chatModel {
	input := textinput.New()
	input.Placeholder = "сообщение"
	input.CharLimit = 1024
	input.Width = 48
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return chatModel{
		ctx:     ctx,
		chat:    chat,
		input:   input,
		spinner: s,
		state:   service.StateIdle,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, cmdRefreshTick())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case roomOpenedMsg:
		m.room = msg.room
		m.encrypted = msg.encrypted
		m.view = nil
		m.offset = 0
		m.status = ""
		m.lastErr = nil
		m.input.Reset()
		m.input.Focus()
		return m, nil

	case refreshTickMsg:
		m.view = m.chat.View()
		m.state = m.chat.State()
		m.lastErr = m.chat.LastError()
		if m.offset > maxOffset(len(m.view)) {
			m.offset = maxOffset(len(m.view))
		}
		return m, cmdRefreshTick()

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = "Ошибка: " + humanizeStoreError(msg.err)
			return m, nil
		}
		m.status = ""
		m.input.Reset()
		return m, nil

	case copiedMsg:
		m.status = "Скопировано в буфер обмена"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.chat.Close()
		return m, func() tea.Msg { return NavigateTo{Page: "entry"} }

	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			// blank submission clears the field without a store write
			m.input.Reset()
			return m, nil
		}
		m.submitting = true
		return m, m.cmdSubmit(text)

	case key.Matches(msg, keys.up):
		if m.offset < maxOffset(len(m.view)) {
			m.offset++
		}
		return m, nil

	case key.Matches(msg, keys.down):
		if m.offset > 0 {
			m.offset--
		}
		return m, nil

	case key.Matches(msg, keys.copy):
		if text, ok := m.copyValue(); ok {
			return m, cmdCopy(text)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// copyValue picks what ctrl+y puts on the clipboard: the index-creation link
// when the store demands an index, otherwise the newest message text.
func (m chatModel) copyValue() (string, bool) {
	var indexErr *adapter.IndexRequiredError
	if errors.As(m.lastErr, &indexErr) && indexErr.CreateURL != "" {
		return indexErr.CreateURL, true
	}
	if len(m.view) > 0 {
		return m.view[len(m.view)-1].DisplayText, true
	}
	return "", false
}

func (m chatModel) View() string {
	title := "КОМНАТА: " + m.room
	if m.encrypted {
		title += "  [шифрование]"
	}
	if m.state == service.StateLoading || m.submitting {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	b.WriteString(m.renderConversation())

	if m.state == service.StateError {
		b.WriteString("\n")
		b.WriteString(renderErrorOverlay(humanizeStoreError(m.lastErr)))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n> [")
	b.WriteString(m.input.View())
	b.WriteString("]")

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: отправить │ ↑/↓: прокрутка │ ctrl+y: копировать │ esc: сменить комнату")
}

func (m chatModel) renderConversation() string {
	if len(m.view) == 0 {
		if m.state == service.StateLoading {
			return "Загрузка истории..."
		}
		return "Нет сообщений"
	}

	start, end := visibleWindow(len(m.view), m.offset)

	var b strings.Builder
	if start > 0 {
		b.WriteString(helpStyle.Render(fmt.Sprintf("↑ ещё %d", start)))
		b.WriteString("\n")
	}

	for _, msg := range m.view[start:end] {
		b.WriteString(renderMessageLine(msg))
		b.WriteString("\n")
	}

	if end < len(m.view) {
		b.WriteString(helpStyle.Render(fmt.Sprintf("↓ ещё %d", len(m.view)-end)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderMessageLine(msg models.ViewMessage) string {
	author := msg.User
	if author == "" {
		author = "аноним"
	}
	if msg.Own {
		author = ownNameStyle.Render(author + " (вы)")
	} else {
		author = nameStyle.Render(author)
	}

	text := fitText(msg.DisplayText, 120)
	if msg.State == models.DecryptFailedWrongKey || msg.State == models.DecryptFailedNoKey {
		text = sentinelStyle.Render(text)
	}

	return fmt.Sprintf("%s %s: %s", formatClock(msg.CreatedAt), author, text)
}

// visibleWindow returns the half-open range of messages shown for the given
// scroll offset, keeping the newest message at the bottom when offset is 0.
func visibleWindow(total, offset int) (start, end int) {
	end = total - offset
	if end < 0 {
		end = 0
	}
	start = end - maxVisibleMessages
	if start < 0 {
		start = 0
	}
	return start, end
}

func maxOffset(total int) int {
	if total <= maxVisibleMessages {
		return 0
	}
	return total - maxVisibleMessages
}

func (m chatModel) cmdSubmit(text string) tea.Cmd {
	ctx := m.ctx
	chat := m.chat

	return func() tea.Msg {
		return submitDoneMsg{err: chat.Submit(ctx, text)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return submitDoneMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdRefreshTick() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg { return refreshTickMsg(t) })
}
