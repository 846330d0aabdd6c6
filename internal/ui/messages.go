package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/svanbekk/grantmap/internal/playback"
)

type tickMsg time.Time
type sweepDoneMsg struct{}

// frameInterval is the UI refresh cadence. Slightly faster than the
// default sweep tick so every published year gets at least one frame.
const frameInterval = 50 * time.Millisecond

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func checkSweepDone(o *playback.Orchestrator) tea.Cmd {
	done := o.Done()
	return func() tea.Msg {
		<-done
		return sweepDoneMsg{}
	}
}
