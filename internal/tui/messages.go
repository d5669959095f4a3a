package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is re-dispatched
// to the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// EnterResult is emitted by the async room-entry command.
type EnterResult struct {
	Room      string
	Encrypted bool
	Err       error
}

type roomOpenedMsg struct {
	room      string
	encrypted bool
}

type submitDoneMsg struct {
	err error
}

type refreshTickMsg time.Time

type copiedMsg struct{}

type clearStatusMsg struct{}
