package form

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/hsctui/bridge"
	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/errors"
	"github.com/teranos/hsctui/logger"
)

// Invoker is the slice of the device bridge the controller needs. Tests
// substitute a fake; production passes *bridge.Bridge.
type Invoker interface {
	Invoke(ctx context.Context, key rune, args ...string) (string, error)
}

// Controller owns the form's controls and routes edits and poll results
// between them and the device bridge. All methods run on the UI event loop;
// nothing here is safe for concurrent use and nothing needs to be.
type Controller struct {
	invoker  Invoker
	controls []*Control
	byKey    map[rune]*Control
	log      *zap.SugaredLogger
}

// NewController builds one control per capability in the registry: editable
// capabilities first, read-only after, each group preserving registry
// order. Row positions are assigned in that final ordering.
func NewController(reg *capability.Registry, invoker Invoker, log *zap.SugaredLogger) *Controller {
	if log == nil {
		log = logger.Logger
	}
	c := &Controller{
		invoker: invoker,
		byKey:   make(map[rune]*Control),
		log:     log,
	}

	row := 0
	for cap := range reg.All() {
		if cap.Editable {
			c.add(newControl(cap, row))
			row++
		}
	}
	for cap := range reg.All() {
		if !cap.Editable {
			c.add(newControl(cap, row))
			row++
		}
	}
	return c
}

func (c *Controller) add(ctl *Control) {
	c.controls = append(c.controls, ctl)
	c.byKey[ctl.Cap.Key] = ctl
}

// Controls returns the controls in display order.
func (c *Controller) Controls() []*Control {
	return c.controls
}

// Lookup returns the control for a capability key.
func (c *Controller) Lookup(key rune) (*Control, bool) {
	ctl, ok := c.byKey[key]
	return ctl, ok
}

// Commit sends the control's current value to the device: exactly one
// invocation per discrete UI commit, no debouncing. The argument is the
// stringified value implied by the capability's argument kind. A failure is
// returned for the caller to surface; the control keeps its displayed value
// either way, and there is no reconciliation read-back.
func (c *Controller) Commit(ctx context.Context, ctl *Control) error {
	var arg string
	switch ctl.Cap.Kind {
	case capability.ArgFreeText:
		arg = ctl.Text
	default:
		arg = strconv.Itoa(ctl.Value)
	}

	_, err := c.invoker.Invoke(ctx, ctl.Cap.Key, arg)
	if err != nil {
		if errors.Is(err, bridge.ErrUnsupported) {
			// Suppressed by the guard; nothing to surface.
			return nil
		}
		return err
	}

	c.log.Debugw("committed capability edit",
		"key", string(ctl.Cap.Key), "arg", arg)
	return nil
}

// PollResult describes the outcome of one poll tick for a read-only slot.
type PollResult struct {
	// Updated is false when the invocation failed or the output was
	// unparseable; the display is left untouched and the loop simply
	// reschedules.
	Updated bool
	// Swapped is true when the slot changed between the level indicator
	// and the charging placeholder.
	Swapped bool
	// Value is the parsed reading when Updated.
	Value int
}

// Poll reads a read-only capability once and folds the result into its
// control. Failures are swallowed: the previous display survives and the
// next tick retries with no backoff.
func (c *Controller) Poll(ctx context.Context, key rune) PollResult {
	ctl, ok := c.byKey[key]
	if !ok {
		return PollResult{}
	}

	out, err := c.invoker.Invoke(ctx, key)
	if err != nil {
		if !errors.Is(err, bridge.ErrUnsupported) {
			c.log.Debugw("poll failed, keeping previous reading",
				"key", string(key), "error", err)
		}
		return PollResult{}
	}

	value, err := parseReading(out)
	if err != nil {
		c.log.Warnw("unparseable poll output",
			"key", string(key), "output", out)
		return PollResult{}
	}

	swapped := ctl.ApplyReading(value)
	return PollResult{Updated: true, Swapped: swapped, Value: value}
}

// parseReading extracts the integer reading from the first line of the
// tool's parse-friendly output.
func parseReading(out string) (int, error) {
	line, _, _ := strings.Cut(out, "\n")
	return strconv.Atoi(strings.TrimSpace(line))
}

// PollSpec names one polling loop: the capability it reads and how often.
type PollSpec struct {
	Key      rune
	Interval time.Duration
}

// Polls returns the loops to start for the given intervals. A zero or
// negative interval disables that loop entirely, and a loop is only
// started when its capability has a control in the form.
func (c *Controller) Polls(battery, chatmix time.Duration) []PollSpec {
	var specs []PollSpec
	for _, spec := range []PollSpec{
		{Key: 'b', Interval: battery},
		{Key: 'm', Interval: chatmix},
	} {
		if spec.Interval <= 0 {
			continue
		}
		if _, ok := c.byKey[spec.Key]; !ok {
			continue
		}
		specs = append(specs, spec)
	}
	return specs
}
