package settings

import (
	"fmt"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// themeColumns is the number of theme cards per row
const themeColumns = 4

// AppearanceSection manages theme and font size settings
type AppearanceSection struct {
	callback Callback
	config   *storage.Config
}

// NewAppearanceSection creates a new appearance section
func NewAppearanceSection(callback Callback, config *storage.Config) *AppearanceSection {
	return &AppearanceSection{
		callback: callback,
		config:   config,
	}
}

// SetConfig updates the config reference
func (a *AppearanceSection) SetConfig(config *storage.Config) {
	a.config = config
}

// Build creates the appearance section UI
func (a *AppearanceSection) Build(focus FocusManager) *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.DefaultSpacing),
		)),
	)

	section.AddChild(a.buildFontSizeRow(focus))

	themeLabel := widget.NewText(
		widget.TextOpts.Text("Theme", style.FontFace(), style.Accent),
	)
	section.AddChild(themeLabel)

	themeGrid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(themeColumns),
			widget.GridLayoutOpts.Stretch([]bool{true, true, true, true}, nil),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	for _, theme := range style.AvailableThemes {
		themeGrid.AddChild(a.buildThemeCard(theme, focus))
	}
	section.AddChild(themeGrid)

	return section
}

// stepFontSize returns the preset next to current in dir (-1 or +1) and
// whether such a preset exists.
func stepFontSize(current, dir int) (int, bool) {
	presets := storage.FontSizePresets
	idx := 0
	for i, p := range presets {
		if p == storage.ValidFontSize(current) {
			idx = i
			break
		}
	}
	next := idx + dir
	if next < 0 || next >= len(presets) {
		return presets[idx], false
	}
	return presets[next], true
}

// buildFontSizeRow creates the font size row with label left and +/- stepper right
func (a *AppearanceSection) buildFontSizeRow(focus FocusManager) *widget.Container {
	row := settingRow("Font Size")
	currentSize := storage.ValidFontSize(a.config.FontSize)

	change := func(dir int, key string) {
		size, ok := stepFontSize(a.config.FontSize, dir)
		if !ok {
			return
		}
		a.config.FontSize = size
		style.ApplyFontSize(size)
		saveConfig(a.config)
		focus.SetPendingFocus(key)
		a.callback.RequestRebuild()
	}

	_, canDec := stepFontSize(currentSize, -1)
	decBtn := stepperButton("-", canDec, func() { change(-1, "font-decrease") })
	focus.RegisterFocusButton("font-decrease", decBtn)

	_, canInc := stepFontSize(currentSize, 1)
	incBtn := stepperButton("+", canInc, func() { change(1, "font-increase") })
	focus.RegisterFocusButton("font-increase", incBtn)

	row.AddChild(stepperControls(decBtn, valueText(fmt.Sprintf("%dpt", currentSize)), incBtn))
	return row
}

// buildThemeCard creates a theme selection card with button and color preview
func (a *AppearanceSection) buildThemeCard(theme style.Theme, focus FocusManager) *widget.Container {
	themeName := theme.Name
	isActive := a.config.Theme == themeName
	focusKey := fmt.Sprintf("theme-%s", themeName)

	card := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
	)

	themeBtn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage(style.RoleFor(isActive))),
		widget.ButtonOpts.Text(themeName, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.config.Theme = themeName
			style.ApplyThemeByName(themeName)
			saveConfig(a.config)
			focus.SetPendingFocus(focusKey)
			a.callback.RequestRebuild()
		}),
	)
	focus.RegisterFocusButton(focusKey, themeBtn)
	card.AddChild(themeBtn)

	card.AddChild(a.buildThemePreview(theme))
	return card
}

// buildThemePreview creates a mini library grid showing the theme applied:
// a toolbar strip, a row of cards with the middle one selected, and an
// accent star.
func (a *AppearanceSection) buildThemePreview(theme style.Theme) *widget.Container {
	previewHeight := style.Px(90)
	barHeight := style.Px(10)
	cardHeight := style.Px(48)
	border := style.Px(2)

	preview := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.Px(6))),
			widget.RowLayoutOpts.Spacing(style.Px(6)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, previewHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	toolbar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Surface)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, barHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	preview.AddChild(toolbar)

	cards := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{true, true, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.Px(4), 0),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	for i := range 3 {
		frame := theme.Background
		if i == 1 {
			frame = theme.Selection
		}
		outer := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(frame)),
			widget.ContainerOpts.Layout(widget.NewAnchorLayout(
				widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(border)),
			)),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(0, cardHeight),
			),
		)
		inner := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(theme.Surface)),
			widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
					StretchHorizontal: true,
					StretchVertical:   true,
				}),
			),
		)
		if i == 0 {
			// Favorite marker, as on library cards
			inner.AddChild(widget.NewText(
				widget.TextOpts.Text("*", style.FontFace(), theme.Accent),
				widget.TextOpts.WidgetOpts(
					widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
						HorizontalPosition: widget.AnchorLayoutPositionEnd,
					}),
				),
			))
		}
		outer.AddChild(inner)
		cards.AddChild(outer)
	}
	preview.AddChild(cards)

	caption := widget.NewText(
		widget.TextOpts.Text("Game Title", style.FontFace(), theme.TextSecondary),
	)
	preview.AddChild(caption)

	return preview
}

// FirstFocusKey returns the key of the first focusable control
func (a *AppearanceSection) FirstFocusKey() string {
	return "font-decrease"
}
