// Package tui provides the Bubble Tea host for microgames.
// It maps terminal mouse events onto the logical surface, drives rounds with
// wall-clock ticks and rasterizes frames into terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the milliseconds between two ticks.
// The first tick and clock jumps backwards produce 0, which games treat as a no-op.
// Long stalls are capped so a suspended terminal does not end a round in one step.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() || !now.After(prev) {
		return 0
	}
	dt := float64(now.Sub(prev)) / float64(time.Millisecond)
	if dt > maxFrameMS {
		return maxFrameMS
	}
	return dt
}

// maxFrameMS caps a single step at a quarter second.
const maxFrameMS = 250
