package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teranos/hsctui/config"
)

// pollTickMsg fires one tick of a polling loop.
type pollTickMsg struct {
	key rune
}

// ConfigReloadedMsg delivers a freshly reloaded config into the event
// loop. The config watcher sends it via Program.Send from its own
// goroutine; all handling still happens on the dispatch loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// pollNow triggers an immediate poll tick for key.
func pollNow(key rune) tea.Cmd {
	return func() tea.Msg {
		return pollTickMsg{key: key}
	}
}

// pollAfter schedules the next tick of a loop. The delay is wall-clock
// only; the previous tick's work has already completed by the time this is
// issued.
func pollAfter(key rune, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return pollTickMsg{key: key}
	})
}
