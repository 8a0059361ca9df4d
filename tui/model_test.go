package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/teranos/hsctui/bridge"
	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/config"
	"github.com/teranos/hsctui/form"
)

type invocation struct {
	key  rune
	args []string
}

type fakeInvoker struct {
	replies map[rune]string
	errs    map[rune]error
	calls   []invocation
}

func (f *fakeInvoker) Invoke(ctx context.Context, key rune, args ...string) (string, error) {
	f.calls = append(f.calls, invocation{key: key, args: args})
	if err := f.errs[key]; err != nil {
		return "", err
	}
	return f.replies[key], nil
}

func newTestModel(t *testing.T, letters string, fake *fakeInvoker, battery, chatmix time.Duration) Model {
	t.Helper()
	reg := capability.Catalog().Filter(letters)
	ctrl := form.NewController(reg, fake, zap.NewNop().Sugar())
	return New(Params{
		Title:           "Test Headset",
		Controller:      ctrl,
		BatteryInterval: battery,
		ChatmixInterval: chatmix,
		Logger:          zap.NewNop().Sugar(),
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPollTickUpdatesReading(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'b': "75\n"}}
	m := newTestModel(t, "sb", fake, time.Minute, 0)

	updated, cmd := m.Update(pollTickMsg{key: 'b'})
	m = updated.(Model)

	ctl, ok := m.controller.Lookup('b')
	require.True(t, ok)
	assert.Equal(t, 75, ctl.Level)
	assert.Equal(t, form.ShowingLevel, ctl.Display)
	assert.NotNil(t, cmd, "loop must reschedule itself")
}

func TestPollTickChargingRoundTrip(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'b': "-1"}}
	m := newTestModel(t, "sb", fake, time.Minute, 0)

	updated, _ := m.Update(pollTickMsg{key: 'b'})
	m = updated.(Model)
	ctl, _ := m.controller.Lookup('b')
	assert.Equal(t, form.ShowingCharging, ctl.Display)

	fake.replies['b'] = "40"
	updated, _ = m.Update(pollTickMsg{key: 'b'})
	m = updated.(Model)
	assert.Equal(t, form.ShowingLevel, ctl.Display)
	assert.Equal(t, 40, ctl.Level)
}

func TestZeroIntervalKillsLoop(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'b': "50"}}
	m := newTestModel(t, "sb", fake, 0, 0)

	updated, cmd := m.Update(pollTickMsg{key: 'b'})
	m = updated.(Model)

	assert.Nil(t, cmd, "dead loop must not reschedule")
	assert.Empty(t, fake.calls, "dead loop must not invoke the tool")
	assert.False(t, m.running['b'])
}

func TestPollFailureKeepsDisplay(t *testing.T) {
	fake := &fakeInvoker{
		errs: map[rune]error{'b': &bridge.CommandError{ExitCode: 1}},
	}
	m := newTestModel(t, "sb", fake, time.Minute, 0)

	ctl, _ := m.controller.Lookup('b')
	before := ctl.Level

	updated, cmd := m.Update(pollTickMsg{key: 'b'})
	m = updated.(Model)

	assert.Equal(t, before, ctl.Level)
	assert.Empty(t, m.errorText, "poll failures never raise the dialog")
	assert.NotNil(t, cmd, "failed poll still reschedules")
}

func TestSliderKeyCommitsExactlyOnce(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'s': ""}}
	m := newTestModel(t, "s", fake, 0, 0)

	updated, _ := m.Update(keyMsg("right"))
	m = updated.(Model)

	ctl, _ := m.controller.Lookup('s')
	assert.Equal(t, 1, ctl.Value)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, 's', fake.calls[0].key)
	assert.Equal(t, []string{"1"}, fake.calls[0].args)
}

func TestSliderClampsAtBounds(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'s': ""}}
	m := newTestModel(t, "s", fake, 0, 0)

	// A decrease at the minimum is a no-op and must not reach the device.
	updated, _ := m.Update(keyMsg("left"))
	m = updated.(Model)
	assert.Empty(t, fake.calls)

	ctl, _ := m.controller.Lookup('s')
	ctl.Value = 128
	updated, _ = m.Update(keyMsg("right"))
	_ = updated.(Model)
	assert.Empty(t, fake.calls)
	assert.Equal(t, 128, ctl.Value)
}

func TestToggleFlipCommits(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'l': ""}}
	m := newTestModel(t, "l", fake, 0, 0)

	updated, _ := m.Update(keyMsg(" "))
	m = updated.(Model)

	ctl, _ := m.controller.Lookup('l')
	assert.Equal(t, 1, ctl.Value, "lights start off, first flip turns on")
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"1"}, fake.calls[0].args)
}

func TestCommitFailureRaisesBlockingDialog(t *testing.T) {
	fake := &fakeInvoker{
		errs: map[rune]error{'s': &bridge.CommandError{ExitCode: 1, Stderr: "Device or resource busy"}},
	}
	m := newTestModel(t, "s", fake, 0, 0)

	updated, _ := m.Update(keyMsg("right"))
	m = updated.(Model)
	assert.Equal(t, "Device or resource busy", m.errorText)

	// The widget keeps the value the user set.
	ctl, _ := m.controller.Lookup('s')
	assert.Equal(t, 1, ctl.Value)

	// Further edits are swallowed while the dialog is up.
	updated, _ = m.Update(keyMsg("right"))
	m = updated.(Model)
	assert.Equal(t, 1, ctl.Value)
	assert.Len(t, fake.calls, 1)

	// Dismissal restores input handling.
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(Model)
	assert.Empty(t, m.errorText)
}

func TestFocusSkipsReadOnlyRows(t *testing.T) {
	fake := &fakeInvoker{}
	m := newTestModel(t, "slb", fake, 0, 0)

	// Two editable controls (sidetone, lights); battery never takes focus.
	updated, _ := m.Update(keyMsg("tab"))
	m = updated.(Model)
	assert.Equal(t, 'l', m.focusedControl().Cap.Key)

	updated, _ = m.Update(keyMsg("tab"))
	m = updated.(Model)
	assert.Equal(t, 's', m.focusedControl().Cap.Key, "focus wraps past the read-only rows")
}

func TestConfigReloadStartsDisabledLoop(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'b': "60"}}
	m := newTestModel(t, "sb", fake, 0, 0)

	cfg := config.Default()
	cfg.Poll.BatterySeconds = 30

	updated, cmd := m.Update(ConfigReloadedMsg{Config: &cfg})
	m = updated.(Model)

	assert.Equal(t, 30*time.Second, m.intervals['b'])
	assert.True(t, m.running['b'])
	assert.NotNil(t, cmd, "newly enabled loop must be kicked off")
}

func TestQuitKey(t *testing.T) {
	fake := &fakeInvoker{}
	m := newTestModel(t, "sb", fake, 0, 0)

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewShowsChargingPlaceholder(t *testing.T) {
	fake := &fakeInvoker{replies: map[rune]string{'b': "-1"}}
	m := newTestModel(t, "sb", fake, time.Minute, 0)

	updated, _ := m.Update(pollTickMsg{key: 'b'})
	m = updated.(Model)

	assert.Contains(t, m.View(), "CHARGING")
}
