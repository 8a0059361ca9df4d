// Package form holds the capability-driven form model: one control per
// supported capability, edit dispatch to the device bridge, and the poll
// handling for read-only telemetry. It knows nothing about rendering; the
// tui package draws whatever state lives here.
package form

import "github.com/teranos/hsctui/capability"

// DisplayState tracks which representation a read-only slot is showing.
type DisplayState int

const (
	// ShowingLevel renders the filled-proportion indicator.
	ShowingLevel DisplayState = iota
	// ShowingCharging renders the CHARGING placeholder instead.
	ShowingCharging
)

// Control is one row of the form: a capability plus its current widget
// state. Editable controls carry the pending value; read-only controls
// carry the last polled reading and the level/charging display state.
type Control struct {
	Cap capability.Capability
	// Row is the control's position in the form, recorded so a widget
	// swap replaces the right slot.
	Row int

	// Editable state.
	Value int
	Text  string

	// Read-only state. Display starts as ShowingLevel seeded with the
	// capability's configured default.
	Display DisplayState
	Level   int
}

func newControl(c capability.Capability, row int) *Control {
	return &Control{
		Cap:   c,
		Row:   row,
		Value: c.DefaultValue,
		Text:  c.DefaultText,
		Level: c.DefaultValue,
	}
}

// ApplyReading feeds a polled value into a read-only slot and reports
// whether the displayed widget changed representation. A non-negative value
// shows the level indicator at that value; a negative value swaps to the
// charging placeholder. Equal-state updates only refresh the level.
func (c *Control) ApplyReading(value int) (swapped bool) {
	if value >= 0 {
		swapped = c.Display == ShowingCharging
		c.Display = ShowingLevel
		c.Level = value
		return swapped
	}

	swapped = c.Display == ShowingLevel
	c.Display = ShowingCharging
	return swapped
}

// Fraction returns the fill proportion for the level indicator, clamped to
// [0, 1] against the capability's maximum.
func (c *Control) Fraction() float64 {
	max := c.Cap.MaxValue
	if max <= 0 {
		max = 100
	}
	f := float64(c.Level) / float64(max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
