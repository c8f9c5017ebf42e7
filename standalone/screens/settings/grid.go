package settings

import (
	"fmt"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// gridSetting describes one stepper row of the grid section. Ranges match
// the config validator.
type gridSetting struct {
	key   string
	label string
	min   int
	max   int
	step  int
	// fitView allows 0 below min, meaning "use the viewport height"
	fitView bool
	field   func(g *storage.GridConfig) *int
}

var gridSettings = []gridSetting{
	{key: "grid-card", label: "Card Width", min: 80, max: 400, step: 10,
		field: func(g *storage.GridConfig) *int { return &g.MinCardWidth }},
	{key: "grid-gap", label: "Gap", min: 0, max: 64, step: 4,
		field: func(g *storage.GridConfig) *int { return &g.Gap }},
	{key: "grid-padding", label: "Padding", min: 0, max: 64, step: 4,
		field: func(g *storage.GridConfig) *int { return &g.Padding }},
	{key: "grid-row", label: "List Row Height", min: 24, max: 120, step: 4,
		field: func(g *storage.GridConfig) *int { return &g.ListRowHeight }},
	{key: "grid-open", label: "Open Height", min: 120, max: 2000, step: 40, fitView: true,
		field: func(g *storage.GridConfig) *int { return &g.OpenHeight }},
	{key: "grid-overscan", label: "Overscan", min: 0, max: 2000, step: 100,
		field: func(g *storage.GridConfig) *int { return &g.Overscan }},
}

// stepValue moves v one step in dir (-1 or +1), clamped to the setting's
// range. For fitView settings, stepping down from min reaches 0 and
// stepping up from 0 reaches min.
func (g gridSetting) stepValue(v, dir int) int {
	if g.fitView {
		if v == 0 {
			if dir > 0 {
				return g.min
			}
			return 0
		}
		if v <= g.min && dir < 0 {
			return 0
		}
	}
	return max(g.min, min(g.max, v+dir*g.step))
}

func (g gridSetting) format(v int) string {
	if g.fitView && v == 0 {
		return "Fit view"
	}
	return fmt.Sprintf("%dpx", v)
}

// GridSection manages the grid metrics handed to the layout engine
type GridSection struct {
	callback Callback
	config   *storage.Config

	// Live-updated value labels keyed by setting key (avoid rebuild on +/- to preserve focus)
	valueTexts map[string]*widget.Text
}

// NewGridSection creates a new grid section
func NewGridSection(callback Callback, config *storage.Config) *GridSection {
	return &GridSection{
		callback: callback,
		config:   config,
	}
}

// SetConfig updates the config reference
func (g *GridSection) SetConfig(config *storage.Config) {
	g.config = config
}

// Config returns the config the section edits
func (g *GridSection) Config() *storage.Config {
	return g.config
}

// Build creates the grid section UI
func (g *GridSection) Build(focus FocusManager) *widget.Container {
	g.valueTexts = make(map[string]*widget.Text, len(gridSettings))

	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)

	for _, setting := range gridSettings {
		section.AddChild(g.buildValueRow(focus, setting))
	}

	hint := widget.NewText(
		widget.TextOpts.Text("Changes apply when you return to the library", style.FontFace(), style.TextSecondary),
	)
	section.AddChild(hint)

	resetBtn := style.TextButton("Reset to Defaults", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		g.config.Grid = storage.DefaultConfig().Grid
		saveConfig(g.config)
		g.updateValueLabels()
		g.callback.ShowNotification("Grid settings reset")
	})
	focus.RegisterFocusButton("grid-reset", resetBtn)
	section.AddChild(resetBtn)

	return section
}

// buildValueRow creates a row with label, value display, and [-] [+] buttons
func (g *GridSection) buildValueRow(focus FocusManager, setting gridSetting) *widget.Container {
	row := settingRow(setting.label)

	value := valueText(setting.format(*setting.field(&g.config.Grid)))
	g.valueTexts[setting.key] = value

	change := func(dir int) {
		v := setting.field(&g.config.Grid)
		next := setting.stepValue(*v, dir)
		if next == *v {
			return
		}
		*v = next
		saveConfig(g.config)
		g.updateValueLabels()
	}

	decBtn := stepperButton("-", true, func() { change(-1) })
	focus.RegisterFocusButton(setting.key+"-dec", decBtn)
	incBtn := stepperButton("+", true, func() { change(1) })
	focus.RegisterFocusButton(setting.key+"-inc", incBtn)

	row.AddChild(stepperControls(decBtn, value, incBtn))
	return row
}

// updateValueLabels refreshes the value labels in place without a rebuild,
// preserving keyboard/gamepad focus.
func (g *GridSection) updateValueLabels() {
	for _, setting := range gridSettings {
		if t := g.valueTexts[setting.key]; t != nil {
			t.Label = setting.format(*setting.field(&g.config.Grid))
		}
	}
}

// FirstFocusKey returns the key of the first focusable control
func (g *GridSection) FirstFocusKey() string {
	return gridSettings[0].key + "-dec"
}
