// Package capability describes the headset parameters the external
// headsetcontrol tool understands and derives a widget for each one.
//
// A Capability is pure static data: the single-letter flag the tool expects,
// display text, and the shape of the argument it takes. The widget used to
// render a capability is a deterministic function of that shape, so the form
// layer never inspects values at runtime to decide what to draw.
package capability

// ArgumentKind is the tagged variant describing what a capability accepts.
// It is fixed at construction time, never inferred from a value's type.
type ArgumentKind int

const (
	// ArgNone marks read-only telemetry such as battery level.
	ArgNone ArgumentKind = iota
	// ArgBoolean is an on/off setting (argument 0 or 1).
	ArgBoolean
	// ArgSmallRange is an integer with fewer than ten steps.
	ArgSmallRange
	// ArgLargeRange is an integer with ten or more steps.
	ArgLargeRange
	// ArgFreeText is an uninterpreted string passed through to the tool.
	ArgFreeText
)

// WidgetKind identifies the UI control a capability renders as.
type WidgetKind int

const (
	// WidgetText is a free-form text entry committed on enter.
	WidgetText WidgetKind = iota
	// WidgetToggle is an on/off switch.
	WidgetToggle
	// WidgetStepper is a spinner for small integer ranges.
	WidgetStepper
	// WidgetSlider is a slider for large integer ranges.
	WidgetSlider
	// WidgetLevel is a read-only fill indicator that swaps to a
	// charging label when the reported value is negative.
	WidgetLevel
)

func (w WidgetKind) String() string {
	switch w {
	case WidgetText:
		return "text"
	case WidgetToggle:
		return "toggle"
	case WidgetStepper:
		return "stepper"
	case WidgetSlider:
		return "slider"
	case WidgetLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Capability describes one controllable or observable headset parameter.
type Capability struct {
	// Key is the single-character flag passed to the tool as -<Key>.
	Key rune
	// Label is the short display name shown next to the widget.
	Label string
	// Description is the long help text for the parameter.
	Description string
	// Kind describes the argument the capability accepts.
	Kind ArgumentKind
	// MaxValue is the upper bound for range-typed capabilities.
	MaxValue int
	// DefaultValue seeds the widget before the first device read.
	DefaultValue int
	// DefaultText seeds free-text widgets.
	DefaultText string
	// Editable is false for read-only telemetry.
	Editable bool
}

// Widget derives the UI representation for the capability. The mapping is a
// pure function of (Editable, Kind, MaxValue):
//
//	read-only            -> level indicator
//	free text            -> text entry
//	boolean (max 1)      -> toggle
//	range, max < 10      -> stepper
//	range, max >= 10     -> slider
func (c Capability) Widget() WidgetKind {
	if !c.Editable {
		return WidgetLevel
	}
	switch c.Kind {
	case ArgFreeText:
		return WidgetText
	case ArgBoolean:
		return WidgetToggle
	default:
		if c.MaxValue < 10 {
			return WidgetStepper
		}
		return WidgetSlider
	}
}
