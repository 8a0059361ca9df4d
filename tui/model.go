// Package tui renders the capability form in the terminal.
//
// The bubbletea runtime is the program's single dispatch loop: user input
// and poll ticks arrive as messages on one goroutine, and every device
// invocation runs synchronously inside Update. While the external tool
// executes nothing else is serviced; the tool is assumed to return in well
// under a second, and the per-invocation timeout bounds the damage when it
// does not.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/form"
	"github.com/teranos/hsctui/logger"
)

// Params configures the TUI model.
type Params struct {
	// Title is the window title, normally the discovered headset name.
	Title string
	// Controller owns the form state.
	Controller *form.Controller
	// BatteryInterval and ChatmixInterval are the poll delays; zero
	// disables the corresponding loop.
	BatteryInterval time.Duration
	ChatmixInterval time.Duration
	// Logger defaults to the global logger.
	Logger *zap.SugaredLogger
}

// Model is the bubbletea model for the form.
type Model struct {
	title      string
	controller *form.Controller
	log        *zap.SugaredLogger

	// focus indexes the editable controls; read-only rows are skipped.
	focus  int
	inputs map[rune]*textinput.Model
	meter  progress.Model

	intervals map[rune]time.Duration
	running   map[rune]bool

	trend *form.TrendEstimator
	now   func() time.Time

	// errorText, when non-empty, renders the blocking modal. All input
	// except dismissal is swallowed until it clears.
	errorText string

	width    int
	quitting bool
}

// New creates the TUI model.
func New(p Params) Model {
	log := p.Logger
	if log == nil {
		log = logger.Logger
	}

	m := Model{
		title:      p.Title,
		controller: p.Controller,
		log:        log,
		inputs:     make(map[rune]*textinput.Model),
		meter:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		intervals: map[rune]time.Duration{
			'b': p.BatteryInterval,
			'm': p.ChatmixInterval,
		},
		running: make(map[rune]bool),
		trend:   form.NewTrendEstimator(),
		now:     time.Now,
	}

	for _, ctl := range p.Controller.Controls() {
		if ctl.Cap.Widget() == capability.WidgetText {
			ti := textinput.New()
			ti.Placeholder = ctl.Cap.Label
			ti.SetValue(ctl.Text)
			ti.CharLimit = 256
			ti.Width = 40
			m.inputs[ctl.Cap.Key] = &ti
		}
	}

	return m
}

// Init starts the polling loops. Each enabled loop polls once immediately
// and then reschedules itself after every handled tick; a disabled loop is
// simply never started.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, spec := range m.controller.Polls(m.intervals['b'], m.intervals['m']) {
		m.running[spec.Key] = true
		cmds = append(cmds, pollNow(spec.Key))
	}
	if ti := m.focusedInput(); ti != nil {
		ti.Focus()
		cmds = append(cmds, textinput.Blink)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// editableCount returns how many leading controls accept focus.
func (m Model) editableCount() int {
	n := 0
	for _, ctl := range m.controller.Controls() {
		if ctl.Cap.Editable {
			n++
		}
	}
	return n
}

// focusedControl returns the currently focused editable control, or nil
// when the form has none.
func (m Model) focusedControl() *form.Control {
	controls := m.controller.Controls()
	if m.focus < 0 || m.focus >= m.editableCount() || m.focus >= len(controls) {
		return nil
	}
	return controls[m.focus]
}

func (m Model) focusedInput() *textinput.Model {
	ctl := m.focusedControl()
	if ctl == nil {
		return nil
	}
	return m.inputs[ctl.Cap.Key]
}

func (m Model) invokeContext() context.Context {
	// Invocations run synchronously on the dispatch loop; the bridge
	// applies its own timeout.
	return context.Background()
}
