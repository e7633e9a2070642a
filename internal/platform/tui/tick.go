// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, key mapping, menus and score persistence.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridcraft/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Each game model owns a
// loop ID so ticks still in flight from a previous game are ignored.
type TickMsg struct {
	At   time.Time
	loop uint64
}

var loopIDs atomic.Uint64

// newLoopID returns a process-unique tick loop ID.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, loop: loop}
	})
}
