package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/teranos/hsctui/bridge"
	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/config"
	"github.com/teranos/hsctui/errors"
	"github.com/teranos/hsctui/form"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case pollTickMsg:
		return m.handlePollTick(msg)

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages (cursor blink and friends) belong to the
	// focused text input.
	if ti := m.focusedInput(); ti != nil {
		updated, cmd := ti.Update(msg)
		*ti = updated
		return m, cmd
	}
	return m, nil
}

// handlePollTick runs one tick of a polling loop: invoke, fold the result
// into the control, reschedule. A failed invocation leaves the display
// untouched; the loop still reschedules and retries with no backoff.
func (m Model) handlePollTick(msg pollTickMsg) (tea.Model, tea.Cmd) {
	interval := m.intervals[msg.key]
	if interval <= 0 {
		// Interval dropped to zero since scheduling (config reload):
		// the loop dies here and is only revived by another reload.
		m.running[msg.key] = false
		return m, nil
	}

	res := m.controller.Poll(m.invokeContext(), msg.key)
	if msg.key == 'b' && res.Updated {
		m.trend.Record(res.Value, m.now())
	}

	return m, pollAfter(msg.key, interval)
}

// applyConfig adjusts poll intervals from a reloaded config. Loops that
// were disabled and now have a positive interval are started; running
// loops pick up their new delay at the next tick.
func (m Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	m.intervals['b'] = cfg.Poll.BatteryInterval()
	m.intervals['m'] = cfg.Poll.ChatmixInterval()

	var cmds []tea.Cmd
	for _, spec := range m.controller.Polls(m.intervals['b'], m.intervals['m']) {
		if !m.running[spec.Key] {
			m.running[spec.Key] = true
			cmds = append(cmds, pollNow(spec.Key))
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The error dialog blocks everything until dismissed.
	if m.errorText != "" {
		switch msg.String() {
		case "enter", "esc":
			m.errorText = ""
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	ctl := m.focusedControl()
	if ctl == nil {
		if msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch ctl.Cap.Widget() {
	case capability.WidgetText:
		return m.handleTextKey(ctl, msg)
	case capability.WidgetToggle:
		return m.handleToggleKey(ctl, msg)
	case capability.WidgetStepper:
		return m.handleRangeKey(ctl, msg, 1)
	case capability.WidgetSlider:
		return m.handleRangeKey(ctl, msg, 10)
	}
	return m, nil
}

func (m Model) handleTextKey(ctl *form.Control, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ti := m.inputs[ctl.Cap.Key]
	if ti == nil {
		return m, nil
	}

	if msg.String() == "enter" {
		ctl.Text = ti.Value()
		return m.commit(ctl)
	}

	updated, cmd := ti.Update(msg)
	*ti = updated
	return m, cmd
}

func (m Model) handleToggleKey(ctl *form.Control, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "right", "h", "l", " ", "enter":
		if ctl.Value == 0 {
			ctl.Value = 1
		} else {
			ctl.Value = 0
		}
		return m.commit(ctl)
	}
	return m, nil
}

// handleRangeKey adjusts a stepper or slider. Every discrete change is one
// commit; there is no debouncing.
func (m Model) handleRangeKey(ctl *form.Control, msg tea.KeyMsg, page int) (tea.Model, tea.Cmd) {
	delta := 0
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "h":
		delta = -1
	case "right", "l":
		delta = 1
	case "pgdown":
		delta = -page
	case "pgup":
		delta = page
	default:
		return m, nil
	}

	next := ctl.Value + delta
	if next < 0 {
		next = 0
	}
	if next > ctl.Cap.MaxValue {
		next = ctl.Cap.MaxValue
	}
	if next == ctl.Value {
		return m, nil
	}

	ctl.Value = next
	return m.commit(ctl)
}

// moveFocus shifts focus across the editable controls, wrapping at the
// ends.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := m.editableCount()
	if n == 0 {
		return m, nil
	}

	if ti := m.focusedInput(); ti != nil {
		ti.Blur()
	}

	m.focus = (m.focus + delta + n) % n

	if ti := m.focusedInput(); ti != nil {
		ti.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// commit pushes the control's value to the device. A failure raises the
// blocking error dialog; the widget keeps its displayed value either way.
func (m Model) commit(ctl *form.Control) (tea.Model, tea.Cmd) {
	if err := m.controller.Commit(m.invokeContext(), ctl); err != nil {
		m.errorText = failureText(err)
		m.log.Warnw("capability edit failed",
			"key", string(ctl.Cap.Key), "error", err)
	}
	return m, nil
}

// failureText extracts the text shown in the error dialog: the tool's
// stderr when available, the error string otherwise.
func failureText(err error) string {
	var cmdErr *bridge.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Message()
	}
	return err.Error()
}
