// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/shield-chat/internal/adapter"
	"github.com/MKhiriev/shield-chat/internal/mock"
	"github.com/MKhiriev/shield-chat/internal/service"
	"github.com/MKhiriev/shield-chat/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEntryModel_EmptyRoom_ShowsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)

	m := NewEntryModel(context.Background(), chat)

	// enter без имени комнаты — команда не отправляется
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	entry := updated.(*EntryModel)

	assert.Nil(t, cmd)
	assert.Equal(t, "Имя комнаты обязательно", entry.errMsg)
	assert.Contains(t, entry.View(), "Имя комнаты обязательно")
}

func TestEntryModel_CmdEnter_ProducesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)
	chat.EXPECT().
		Enter(gomock.Any(), models.RoomContext{Room: "general", Password: "secret"}).
		Return(nil)

	m := NewEntryModel(context.Background(), chat)
	cmd := m.cmdEnter("general", "secret")
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(EnterResult)
	require.True(t, ok)
	assert.NoError(t, result.Err)
	assert.Equal(t, "general", result.Room)
	assert.True(t, result.Encrypted)
}

func TestEntryModel_EnterFailure_ShowsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)

	m := NewEntryModel(context.Background(), chat)
	m.submitting = true

	updated, _ := m.Update(EnterResult{Room: "general", Err: errors.New("dial tcp: connection refused")})
	entry := updated.(*EntryModel)

	assert.False(t, entry.submitting)
	// сетевые ошибки переводятся в человеческий текст
	assert.Equal(t, "Отсутствует сеть или Хранилище недоступно", entry.errMsg)
}

func TestRootModel_EnterResult_OpensChatPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)

	pages := map[string]tea.Model{
		"entry": NewEntryModel(context.Background(), chat),
		"chat":  newChatModel(context.Background(), chat),
	}
	root := NewRootModel(pages, "entry", models.AppBuildInfo{})

	updated, cmd := root.Update(EnterResult{Room: "general", Encrypted: true})
	require.NotNil(t, cmd)

	r := updated.(RootModel)
	_, isChat := r.current.(chatModel)
	assert.True(t, isChat)
}

func TestChatModel_RefreshTick_PullsSessionView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)

	now := time.Now()
	chat.EXPECT().View().Return([]models.ViewMessage{
		{Id: "m1", DisplayText: "hello", User: "Bob", CreatedAt: &now, State: models.Plain},
	})
	chat.EXPECT().State().Return(service.StateReady)
	chat.EXPECT().LastError().Return(nil)

	m := newChatModel(context.Background(), chat)
	updated, cmd := m.Update(refreshTickMsg(now))

	require.NotNil(t, cmd, "тик должен перезапускать сам себя")
	cm := updated.(chatModel)
	require.Len(t, cm.view, 1)
	assert.Equal(t, service.StateReady, cm.state)
	assert.Contains(t, cm.View(), "hello")
}

func TestChatModel_Submit_DispatchesCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)
	chat.EXPECT().Submit(gomock.Any(), "hello room").Return(nil)

	m := newChatModel(context.Background(), chat)
	m.input.SetValue("hello room")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	cm := updated.(chatModel)
	assert.True(t, cm.submitting)

	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)
	assert.NoError(t, done.err)
}

func TestChatModel_BlankSubmit_ClearsInputWithoutWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)
	// записи в хранилище быть не должно — Submit не ожидается

	m := newChatModel(context.Background(), chat)
	m.input.SetValue("   \t  ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	cm := updated.(chatModel)

	assert.Nil(t, cmd)
	assert.False(t, cm.submitting)
	assert.Empty(t, cm.input.Value(), "пустая отправка очищает поле ввода")
}

func TestChatModel_SubmitError_ShownInStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)

	m := newChatModel(context.Background(), chat)
	m.submitting = true

	updated, _ := m.Update(submitDoneMsg{err: service.ErrNotAuthenticated})
	cm := updated.(chatModel)

	assert.False(t, cm.submitting)
	assert.Contains(t, cm.status, "Ошибка")
}

func TestChatModel_IndexError_RendersHelpWithLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)

	indexErr := &adapter.IndexRequiredError{
		Collection: "messages",
		Fields:     []string{"room", "createdAt"},
		CreateURL:  "https://console.example.com/indexes/new",
	}

	chat.EXPECT().View().Return(nil)
	chat.EXPECT().State().Return(service.StateError)
	chat.EXPECT().LastError().Return(error(indexErr))

	m := newChatModel(context.Background(), chat)
	updated, _ := m.Update(refreshTickMsg(time.Now()))
	cm := updated.(chatModel)

	out := cm.View()
	assert.Contains(t, out, "составной индекс")
	assert.Contains(t, out, "messages")
	assert.Contains(t, out, "https://console.example.com/indexes/new")

	// ctrl+y при такой ошибке копирует именно ссылку
	text, ok := cm.copyValue()
	require.True(t, ok)
	assert.Equal(t, "https://console.example.com/indexes/new", text)
}

func TestChatModel_Esc_ClosesSessionAndNavigatesBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	chat := mock.NewMockChatSession(ctrl)
	chat.EXPECT().Close()

	m := newChatModel(context.Background(), chat)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "entry", nav.Page)
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		offset    int
		wantStart int
		wantEnd   int
	}{
		{name: "fits entirely", total: 5, offset: 0, wantStart: 0, wantEnd: 5},
		{name: "newest at bottom", total: 40, offset: 0, wantStart: 25, wantEnd: 40},
		{name: "scrolled back", total: 40, offset: 10, wantStart: 15, wantEnd: 30},
		{name: "scrolled to top", total: 40, offset: 25, wantStart: 0, wantEnd: 15},
		{name: "empty", total: 0, offset: 0, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(tt.total, tt.offset)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestRenderMessageLine_Sentinels(t *testing.T) {
	msg := models.ViewMessage{
		DisplayText: service.WrongPasswordText,
		User:        "Bob",
		State:       models.DecryptFailedWrongKey,
	}

	line := renderMessageLine(msg)
	assert.Contains(t, line, service.WrongPasswordText)
	assert.Contains(t, line, "--:--", "у неподтверждённых сообщений нет времени")
}

func TestHumanizeStoreError(t *testing.T) {
	assert.Empty(t, humanizeStoreError(nil))
	assert.Equal(t, "Хранилище не приняло токен доступа", humanizeStoreError(adapter.ErrUnauthorized))
	assert.Equal(t, "Отсутствует сеть или Хранилище недоступно", humanizeStoreError(errors.New("i/o timeout")))
	assert.Equal(t, "строка как есть", humanizeStoreError(errors.New("строка как есть")))

	help := humanizeStoreError(&adapter.IndexRequiredError{Collection: "messages", Fields: []string{"room", "createdAt"}})
	assert.True(t, strings.Contains(help, "room, createdAt"))
}
