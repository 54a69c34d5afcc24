// Package tui provides the Bubble Tea integration for the arcade.
// It hosts one activity at a time, drives its timers, maps input and renders
// the screen buffer, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/zukko-arcade/internal/core"
)

// TimerMsg is one firing of a mounted activity's timing source.
// Session identifies the mount; a message for any other mount is stale.
type TimerMsg struct {
	Session uuid.UUID
	Timer   core.TimerID
	At      time.Time
}

// timerCmd schedules the next firing of a timing source.
func timerCmd(session uuid.UUID, spec core.TimerSpec) tea.Cmd {
	interval := spec.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TimerMsg{Session: session, Timer: spec.ID, At: t}
	})
}
