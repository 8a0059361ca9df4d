package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/hsctui/capability"
)

func batteryControl(t *testing.T) *Control {
	t.Helper()
	cap, ok := capability.Catalog().Lookup('b')
	require.True(t, ok)
	return newControl(cap, 0)
}

func TestReadOnlySlotStartsShowingLevel(t *testing.T) {
	ctl := batteryControl(t)
	assert.Equal(t, ShowingLevel, ctl.Display)
	assert.Equal(t, 0, ctl.Level)
}

func TestApplyReadingUpdatesLevelWithoutSwap(t *testing.T) {
	ctl := batteryControl(t)

	swapped := ctl.ApplyReading(75)
	assert.False(t, swapped)
	assert.Equal(t, ShowingLevel, ctl.Display)
	assert.Equal(t, 75, ctl.Level)
	assert.InDelta(t, 0.75, ctl.Fraction(), 1e-9)
}

func TestApplyReadingNegativeSwapsToCharging(t *testing.T) {
	ctl := batteryControl(t)
	ctl.ApplyReading(75)

	swapped := ctl.ApplyReading(-1)
	assert.True(t, swapped)
	assert.Equal(t, ShowingCharging, ctl.Display)
	// The last known level survives the swap.
	assert.Equal(t, 75, ctl.Level)
}

func TestApplyReadingSwapsBackFromCharging(t *testing.T) {
	ctl := batteryControl(t)
	ctl.ApplyReading(-1)

	swapped := ctl.ApplyReading(40)
	assert.True(t, swapped)
	assert.Equal(t, ShowingLevel, ctl.Display)
	assert.Equal(t, 40, ctl.Level)
}

func TestApplyReadingChargingSelfLoop(t *testing.T) {
	ctl := batteryControl(t)
	ctl.ApplyReading(-1)

	swapped := ctl.ApplyReading(-1)
	assert.False(t, swapped)
	assert.Equal(t, ShowingCharging, ctl.Display)
}

func TestFractionClampsOutOfRangeReadings(t *testing.T) {
	ctl := batteryControl(t)

	ctl.ApplyReading(150)
	assert.Equal(t, 1.0, ctl.Fraction())

	ctl.Level = -5 // not reachable through ApplyReading, but clamp anyway
	assert.Equal(t, 0.0, ctl.Fraction())
}
