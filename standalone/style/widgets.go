package style

import (
	"runtime"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"
)

// sliderRange is the resolution of scroll sliders.
const sliderRange = 1000

// ScrollSlider creates a vertical scroll slider for content whose scroll
// offset is owned elsewhere. pageSize returns the visible fraction of the
// content scaled to 0..1000 (1000 when everything fits). onScroll receives
// the handle position as a fraction in [0, 1].
func ScrollSlider(pageSize func() int, onScroll func(fraction float64)) *widget.Slider {
	return widget.NewSlider(
		widget.SliderOpts.TabOrder(-1), // Non-focusable for gamepad navigation
		widget.SliderOpts.Direction(widget.DirectionVertical),
		widget.SliderOpts.MinMax(0, sliderRange),
		widget.SliderOpts.Images(&widget.SliderTrackImage{
			Idle:  image.NewNineSliceColor(Border),
			Hover: image.NewNineSliceColor(Border),
		}, ButtonImage(RoleActive)),
		widget.SliderOpts.FixedHandleSize(ScrollHandleMinLen),
		widget.SliderOpts.PageSizeFunc(pageSize),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			onScroll(float64(args.Current) / sliderRange)
		}),
	)
}

// SliderPosition converts a scroll offset into a slider value.
func SliderPosition(offset, maxOffset int) int {
	if maxOffset <= 0 {
		return 0
	}
	return offset * sliderRange / maxOffset
}

// SliderPageSize returns the slider page size for a view of viewHeight over
// content of contentHeight.
func SliderPageSize(viewHeight, contentHeight int) int {
	if contentHeight <= 0 || viewHeight >= contentHeight {
		return sliderRange
	}
	return viewHeight * sliderRange / contentHeight
}

// TextButton creates a standard text button with consistent styling.
// Use for regular actions like "Open", "Close All", "Exit".
func TextButton(text string, padding int, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(ButtonImage(RoleNormal)),
		widget.ButtonOpts.Text(text, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(padding)),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

// ToggleButton creates a button that visually indicates an active/inactive state.
// Use for view mode toggles, filters, and other binary state buttons.
func ToggleButton(text string, active bool, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(ButtonImage(RoleFor(active))),
		widget.ButtonOpts.Text(text, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(ButtonPaddingSmall)),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

// RailButton creates one letter of the alphabet rail. Empty letters are
// disabled; the active letter uses the primary image.
func RailButton(letter string, enabled, active bool, handler func(*widget.ButtonClickedEventArgs)) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.TabOrder(-1),
		widget.ButtonOpts.Image(ButtonImage(RoleFor(active))),
		widget.ButtonOpts.Text(letter, FontFace(), ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(RailButtonPadding)),
		widget.ButtonOpts.ClickedHandler(handler),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
			widget.WidgetOpts.MinSize(RailWidth, 0),
		),
	)
	btn.GetWidget().Disabled = !enabled
	return btn
}

// CenteredContainer creates a container with vertical layout, centered in its parent.
// Use for modal dialogs, status screens, and centered content.
// The spacing parameter controls vertical spacing between children.
func CenteredContainer(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
}

// EmptyState creates a centered empty state display with title, optional subtitle, and optional button.
// The returned container has RowLayoutData{Stretch: true} for use in row layouts.
// Pass empty string for subtitle to omit it. Pass nil for button to omit it.
func EmptyState(title, subtitle string, button *widget.Button) *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Stretch: true,
			}),
		),
	)

	centerContent := CenteredContainer(DefaultSpacing)

	titleLabel := widget.NewText(
		widget.TextOpts.Text(title, FontFace(), Text),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
	centerContent.AddChild(titleLabel)

	if subtitle != "" {
		subtitleLabel := widget.NewText(
			widget.TextOpts.Text(subtitle, FontFace(), TextSecondary),
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		)
		centerContent.AddChild(subtitleLabel)
	}

	if button != nil {
		centerContent.AddChild(button)
	}

	container.AddChild(centerContent)
	return container
}

// ScreenContainer creates a full-screen root container with background.
// The container uses AnchorLayout so children can stretch to fill.
func ScreenContainer() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

// ScreenContentContainer creates an inner container for screen content.
// Uses a single-column GridLayout with default padding and spacing.
// The stretch parameter controls which rows stretch vertically.
func ScreenContentContainer(rowStretch []bool) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(DefaultPadding)),
			widget.GridLayoutOpts.Spacing(DefaultSpacing, DefaultSpacing),
			widget.GridLayoutOpts.Stretch([]bool{true}, rowStretch),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
}

// ButtonRow creates a horizontal container for buttons with standard spacing.
func ButtonRow() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(SmallSpacing),
		)),
	)
}

// Clipboard wraps the system clipboard with lazy initialization.
// Init can fail on headless systems; every call is then a no-op.
type Clipboard struct {
	inited bool
	failed bool
}

func (c *Clipboard) ready() bool {
	if !c.inited && !c.failed {
		if err := clipboard.Init(); err != nil {
			c.failed = true
		} else {
			c.inited = true
		}
	}
	return c.inited
}

// ModifierPressed reports whether the platform shortcut modifier is held
// (Cmd on macOS, Ctrl elsewhere).
func ModifierPressed() bool {
	if runtime.GOOS == "darwin" {
		return ebiten.IsKeyPressed(ebiten.KeyMeta) ||
			ebiten.IsKeyPressed(ebiten.KeyMetaLeft) ||
			ebiten.IsKeyPressed(ebiten.KeyMetaRight)
	}
	return ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyControlRight)
}

// Copy writes text to the clipboard. Returns false when the clipboard is
// unavailable.
func (c *Clipboard) Copy(text string) bool {
	if text == "" || !c.ready() {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return true
}

// Paste returns the clipboard text, or "" when empty or unavailable.
func (c *Clipboard) Paste() string {
	if !c.ready() {
		return ""
	}
	return string(clipboard.Read(clipboard.FmtText))
}
