// Package settings builds the sections shown on the settings screen.
package settings

import (
	"log"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// Callback is the part of the app a section talks to
type Callback interface {
	RequestRebuild()
	ShowNotification(message string)
}

// FocusManager registers section buttons with the owning screen so focus
// survives a rebuild
type FocusManager interface {
	RegisterFocusButton(key string, btn *widget.Button)
	SetPendingFocus(key string)
}

func saveConfig(config *storage.Config) {
	if err := storage.SaveConfig(config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// settingRow creates the shared row container: label on the left, controls
// on the right.
func settingRow(label string) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			widget.GridLayoutOpts.Stretch([]bool{true, false}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)

	labelText := widget.NewText(
		widget.TextOpts.Text(label, style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.GridLayoutData{
				VerticalPosition: widget.GridLayoutPositionCenter,
			}),
		),
	)
	row.AddChild(labelText)
	return row
}

// stepperButton creates a [-] or [+] button. A disabled stepper keeps its
// focus slot but shows the greyed image.
func stepperButton(label string, enabled bool, onClick func()) *widget.Button {
	role := style.RoleNormal
	if !enabled {
		role = style.RoleDisabled
	}
	return widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage(role)),
		widget.ButtonOpts.Text(label, style.FontFace(), style.ButtonTextColor()),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// stepperControls lays out [-] value [+] in a horizontal row.
func stepperControls(dec *widget.Button, value *widget.Text, inc *widget.Button) *widget.Container {
	controls := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(style.SmallSpacing),
		)),
	)
	controls.AddChild(dec)
	controls.AddChild(value)
	controls.AddChild(inc)
	return controls
}

func valueText(s string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(style.StepperValueWidth, 0),
		),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
}
