package screens

import (
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/libview/standalone/screens/settings"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// settingsSection is a page of the settings screen
type settingsSection interface {
	Build(focus settings.FocusManager) *widget.Container
	SetConfig(config *storage.Config)
	FirstFocusKey() string
}

// SettingsScreen displays application settings
type SettingsScreen struct {
	focusRegistry

	callback        ScreenCallback
	selectedSection int

	names    []string
	sections []settingsSection
}

// NewSettingsScreen creates a new settings screen
func NewSettingsScreen(callback ScreenCallback, config *storage.Config) *SettingsScreen {
	return &SettingsScreen{
		callback: callback,
		names:    []string{"Appearance", "Grid"},
		sections: []settingsSection{
			settings.NewAppearanceSection(callback, config),
			settings.NewGridSection(callback, config),
		},
	}
}

// SetConfig updates the config reference in all sections
func (s *SettingsScreen) SetConfig(config *storage.Config) {
	for _, section := range s.sections {
		section.SetConfig(config)
	}
}

// RegisterFocusButton lets sections register buttons for focus restoration
func (s *SettingsScreen) RegisterFocusButton(key string, btn *widget.Button) {
	s.registerFocusButton(key, btn)
}

func sectionKey(name string) string {
	return "section-" + name
}

// Build creates the settings screen UI
func (s *SettingsScreen) Build() *widget.Container {
	s.clearFocusButtons()

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			// Row 0 (header) = fixed, Row 1 (main content) = stretch
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, style.DefaultSpacing),
		)),
	)

	header := style.ButtonRow()
	backButton := style.TextButton("Back", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.callback.SwitchToLibrary()
	})
	s.registerFocusButton("settings-back", backButton)
	header.AddChild(backButton)
	rootContainer.AddChild(header)

	mainContent := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(2),
			// Col 0 (sidebar) = fixed, Col 1 (content) = stretch
			widget.GridLayoutOpts.Stretch([]bool{false, true}, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.DefaultSpacing, 0),
		)),
	)

	sidebar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Surface)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(style.SmallSpacing)),
			widget.RowLayoutOpts.Spacing(style.TinySpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(style.SettingsSidebarMinWidth, 0),
		),
	)
	for i, name := range s.names {
		sidebar.AddChild(s.buildSectionButton(i, name))
	}
	mainContent.AddChild(sidebar)

	contentArea := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, []bool{true}),
			widget.GridLayoutOpts.Padding(widget.NewInsetsSimple(style.DefaultPadding)),
		)),
	)
	contentArea.AddChild(s.sections[s.selectedSection].Build(s))
	mainContent.AddChild(contentArea)

	rootContainer.AddChild(mainContent)
	return rootContainer
}

func (s *SettingsScreen) buildSectionButton(index int, name string) *widget.Button {
	key := sectionKey(name)
	btn := widget.NewButton(
		widget.ButtonOpts.Image(style.ButtonImage(style.RoleFor(s.selectedSection == index))),
		widget.ButtonOpts.Text(name, style.FontFace(), &widget.ButtonTextColor{
			Idle:     style.Text,
			Disabled: style.TextSecondary,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(style.ButtonPaddingSmall)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.SelectSection(index)
			s.SetPendingFocus(key)
			s.callback.RequestRebuild()
		}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	s.registerFocusButton(key, btn)
	return btn
}

// SelectSection switches the visible section. Out of range indexes are ignored.
func (s *SettingsScreen) SelectSection(index int) {
	if index < 0 || index >= len(s.sections) {
		return
	}
	s.selectedSection = index
}

// SelectedSection returns the name of the visible section
func (s *SettingsScreen) SelectedSection() string {
	return s.names[s.selectedSection]
}

// OnEnter is called when entering the settings screen
func (s *SettingsScreen) OnEnter() {
	s.SetPendingFocus(sectionKey(s.names[s.selectedSection]))
}
