package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teranos/hsctui/capability"
	"github.com/teranos/hsctui/form"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(18).
			Foreground(lipgloss.Color("250"))

	focusMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	chargingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	sliderFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	sliderTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 3)

	dialogTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)
)

const sliderWidth = 30

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.errorText != "" {
		return m.viewErrorDialog()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")

	for i, ctl := range m.controller.Controls() {
		focused := ctl.Cap.Editable && i == m.focus
		b.WriteString(m.viewRow(ctl, focused))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(
		"tab/↑↓ move · ←→ adjust · enter apply · q quit"))
	return b.String()
}

func (m Model) viewRow(ctl *form.Control, focused bool) string {
	mark := "  "
	if focused {
		mark = focusMarkStyle.Render("▸ ")
	}
	label := labelStyle.Render(ctl.Cap.Label)

	var widget string
	switch ctl.Cap.Widget() {
	case capability.WidgetText:
		widget = m.viewText(ctl)
	case capability.WidgetToggle:
		widget = viewToggle(ctl)
	case capability.WidgetStepper:
		widget = viewStepper(ctl)
	case capability.WidgetSlider:
		widget = viewSlider(ctl)
	case capability.WidgetLevel:
		widget = m.viewLevel(ctl)
	}

	return mark + label + widget
}

func (m Model) viewText(ctl *form.Control) string {
	ti := m.inputs[ctl.Cap.Key]
	if ti == nil {
		return ctl.Text
	}
	return ti.View()
}

func viewToggle(ctl *form.Control) string {
	if ctl.Value != 0 {
		return toggleOnStyle.Render("[ on ]")
	}
	return toggleOffStyle.Render("[ off ]")
}

func viewStepper(ctl *form.Control) string {
	return fmt.Sprintf("‹ %d ›  (0-%d)", ctl.Value, ctl.Cap.MaxValue)
}

func viewSlider(ctl *form.Control) string {
	max := ctl.Cap.MaxValue
	if max <= 0 {
		max = 1
	}
	filled := ctl.Value * sliderWidth / max
	if filled > sliderWidth {
		filled = sliderWidth
	}
	bar := sliderFillStyle.Render(strings.Repeat("█", filled)) +
		sliderTrackStyle.Render(strings.Repeat("░", sliderWidth-filled))
	return fmt.Sprintf("%s %d/%d", bar, ctl.Value, max)
}

// viewLevel renders a read-only slot: the fill meter while a level is
// showing, the charging placeholder otherwise. The battery row also carries
// the projected hours remaining once the trend window has enough history.
func (m Model) viewLevel(ctl *form.Control) string {
	if ctl.Display == form.ShowingCharging {
		return chargingStyle.Render("⚡ CHARGING")
	}

	out := fmt.Sprintf("%s %d", m.meter.ViewAs(ctl.Fraction()), ctl.Level)
	if ctl.Cap.Key == 'b' {
		if hours, ok := m.trend.Estimate(); ok {
			out += fmt.Sprintf("  ~%.1fh left", hours)
		}
	}
	return out
}

func (m Model) viewErrorDialog() string {
	body := dialogTitleStyle.Render("Unable to Communicate With Headset") +
		"\n\n" + m.errorText +
		"\n\n" + helpStyle.Render("enter/esc to dismiss")

	dialog := dialogStyle.Render(body)
	if m.width > 0 {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dialog)
	}
	return dialog
}
