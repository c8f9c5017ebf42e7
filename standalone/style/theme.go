package style

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// Theme colors (package-level variables updated by ApplyTheme)
var (
	Background        = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Dark blue-gray
	Surface           = color.NRGBA{0x25, 0x25, 0x3a, 0xff} // Cards and panels
	Primary           = color.NRGBA{0x4a, 0x4a, 0x8a, 0xff} // Muted purple
	PrimaryHover      = color.NRGBA{0x5a, 0x5a, 0x9a, 0xff}
	Text              = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	TextSecondary     = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
	Accent            = color.NRGBA{0xff, 0xd7, 0x00, 0xff} // Favorites and the active rail letter
	Border            = color.NRGBA{0x3a, 0x3a, 0x5a, 0xff}
	Selection         = color.NRGBA{0x8a, 0x8a, 0xff, 0xff} // Outline of the keyboard-selected card
	OpenPanel         = color.NRGBA{0x20, 0x20, 0x34, 0xff} // Background of an open item's detail row
	OverlayBackground = color.NRGBA{0x1a, 0x1a, 0x2e, 0xff} // Floating elements (alpha applied per use)
)

// Theme holds all color values for a UI theme
type Theme struct {
	Name              string
	Background        color.NRGBA
	Surface           color.NRGBA
	Primary           color.NRGBA
	PrimaryHover      color.NRGBA
	Text              color.NRGBA
	TextSecondary     color.NRGBA
	Accent            color.NRGBA
	Border            color.NRGBA
	Selection         color.NRGBA
	OpenPanel         color.NRGBA
	OverlayBackground color.NRGBA
}

// Predefined themes
var (
	ThemeDefault = Theme{
		Name:              "Default",
		Background:        color.NRGBA{0x1a, 0x1a, 0x2e, 0xff},
		Surface:           color.NRGBA{0x25, 0x25, 0x3a, 0xff},
		Primary:           color.NRGBA{0x4a, 0x4a, 0x8a, 0xff},
		PrimaryHover:      color.NRGBA{0x5a, 0x5a, 0x9a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0xaa, 0xaa, 0xaa, 0xff},
		Accent:            color.NRGBA{0xff, 0xd7, 0x00, 0xff},
		Border:            color.NRGBA{0x3a, 0x3a, 0x5a, 0xff},
		Selection:         color.NRGBA{0x8a, 0x8a, 0xff, 0xff},
		OpenPanel:         color.NRGBA{0x20, 0x20, 0x34, 0xff},
		OverlayBackground: color.NRGBA{0x1a, 0x1a, 0x2e, 0xff},
	}

	ThemeDark = Theme{
		Name:              "Dark",
		Background:        color.NRGBA{0x0a, 0x0a, 0x0a, 0xff}, // Near black
		Surface:           color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		Primary:           color.NRGBA{0x1e, 0x40, 0x7a, 0xff}, // Blue
		PrimaryHover:      color.NRGBA{0x2a, 0x50, 0x8a, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0x88, 0x88, 0x88, 0xff},
		Accent:            color.NRGBA{0x00, 0xc8, 0x53, 0xff}, // Green
		Border:            color.NRGBA{0x2a, 0x2a, 0x2a, 0xff},
		Selection:         color.NRGBA{0x4d, 0x8d, 0xff, 0xff},
		OpenPanel:         color.NRGBA{0x12, 0x12, 0x12, 0xff},
		OverlayBackground: color.NRGBA{0x0a, 0x0a, 0x0a, 0xff},
	}

	ThemeLight = Theme{
		Name:              "Light",
		Background:        color.NRGBA{0xe8, 0xe8, 0xe8, 0xff}, // Light gray
		Surface:           color.NRGBA{0xf5, 0xf5, 0xf5, 0xff},
		Primary:           color.NRGBA{0x1a, 0x56, 0xdb, 0xff}, // Blue
		PrimaryHover:      color.NRGBA{0x2a, 0x66, 0xeb, 0xff},
		Text:              color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		TextSecondary:     color.NRGBA{0x66, 0x66, 0x66, 0xff},
		Accent:            color.NRGBA{0xe6, 0x5c, 0x00, 0xff}, // Orange
		Border:            color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		Selection:         color.NRGBA{0x1a, 0x56, 0xdb, 0xff},
		OpenPanel:         color.NRGBA{0xff, 0xff, 0xff, 0xff},
		OverlayBackground: color.NRGBA{0xe8, 0xe8, 0xe8, 0xff},
	}

	ThemeSlate = Theme{
		Name:              "Slate",
		Background:        color.NRGBA{0x1e, 0x25, 0x2d, 0xff}, // Blue slate
		Surface:           color.NRGBA{0x2b, 0x34, 0x3e, 0xff},
		Primary:           color.NRGBA{0x3d, 0x6a, 0x7a, 0xff}, // Teal
		PrimaryHover:      color.NRGBA{0x4d, 0x7d, 0x8e, 0xff},
		Text:              color.NRGBA{0xe6, 0xec, 0xf0, 0xff},
		TextSecondary:     color.NRGBA{0x92, 0xa0, 0xab, 0xff},
		Accent:            color.NRGBA{0xf2, 0xa6, 0x3b, 0xff}, // Amber
		Border:            color.NRGBA{0x3b, 0x46, 0x52, 0xff},
		Selection:         color.NRGBA{0x6c, 0xc4, 0xd8, 0xff},
		OpenPanel:         color.NRGBA{0x24, 0x2c, 0x35, 0xff},
		OverlayBackground: color.NRGBA{0x1e, 0x25, 0x2d, 0xff},
	}

	ThemeSepia = Theme{
		Name:              "Sepia",
		Background:        color.NRGBA{0xf1, 0xe7, 0xd0, 0xff}, // Paper
		Surface:           color.NRGBA{0xfa, 0xf3, 0xe3, 0xff},
		Primary:           color.NRGBA{0x8b, 0x5a, 0x2b, 0xff}, // Brown
		PrimaryHover:      color.NRGBA{0x9e, 0x6b, 0x3a, 0xff},
		Text:              color.NRGBA{0x3b, 0x2a, 0x1a, 0xff},
		TextSecondary:     color.NRGBA{0x7a, 0x66, 0x50, 0xff},
		Accent:            color.NRGBA{0xb0, 0x3a, 0x2e, 0xff}, // Brick red
		Border:            color.NRGBA{0xd8, 0xc8, 0xa8, 0xff},
		Selection:         color.NRGBA{0x8b, 0x5a, 0x2b, 0xff},
		OpenPanel:         color.NRGBA{0xff, 0xfa, 0xf0, 0xff},
		OverlayBackground: color.NRGBA{0xf1, 0xe7, 0xd0, 0xff},
	}

	ThemeHighContrast = Theme{
		Name:              "High Contrast",
		Background:        color.NRGBA{0x00, 0x00, 0x00, 0xff}, // Pure black
		Surface:           color.NRGBA{0x40, 0x40, 0x40, 0xff}, // Medium gray
		Primary:           color.NRGBA{0x00, 0x80, 0xff, 0xff}, // Bright blue
		PrimaryHover:      color.NRGBA{0x40, 0xa0, 0xff, 0xff},
		Text:              color.NRGBA{0xff, 0xff, 0xff, 0xff},
		TextSecondary:     color.NRGBA{0xcc, 0xcc, 0xcc, 0xff},
		Accent:            color.NRGBA{0xff, 0xff, 0x00, 0xff}, // Yellow
		Border:            color.NRGBA{0x66, 0x66, 0x66, 0xff},
		Selection:         color.NRGBA{0xff, 0xff, 0xff, 0xff},
		OpenPanel:         color.NRGBA{0x1a, 0x1a, 0x1a, 0xff},
		OverlayBackground: color.NRGBA{0x00, 0x00, 0x00, 0xff},
	}

	// AvailableThemes lists all themes for UI selection
	AvailableThemes = []Theme{ThemeDefault, ThemeDark, ThemeLight, ThemeSlate, ThemeSepia, ThemeHighContrast}

	// CurrentThemeName tracks the active theme name
	CurrentThemeName = "Default"
)

// ThemeNames returns the list of valid theme name strings.
func ThemeNames() []string {
	names := make([]string, len(AvailableThemes))
	for i, t := range AvailableThemes {
		names[i] = t.Name
	}
	return names
}

// GetThemeByName returns theme by name, or ThemeDefault if not found
func GetThemeByName(name string) Theme {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

// IsValidThemeName returns true if the name matches a known theme
func IsValidThemeName(name string) bool {
	for _, t := range AvailableThemes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ApplyTheme updates package-level color variables from a theme
func ApplyTheme(theme Theme) {
	Background = theme.Background
	Surface = theme.Surface
	Primary = theme.Primary
	PrimaryHover = theme.PrimaryHover
	Text = theme.Text
	TextSecondary = theme.TextSecondary
	Accent = theme.Accent
	Border = theme.Border
	Selection = theme.Selection
	OpenPanel = theme.OpenPanel
	OverlayBackground = theme.OverlayBackground
	CurrentThemeName = theme.Name
}

// ApplyThemeByName applies theme by name with fallback to Default
func ApplyThemeByName(name string) {
	ApplyTheme(GetThemeByName(name))
}

// ButtonRole selects the colors a button is drawn with.
type ButtonRole int

const (
	RoleNormal ButtonRole = iota
	// RoleActive marks the selected toggle, sidebar item or rail letter,
	// and the scrollbar handle.
	RoleActive
	// RoleDisabled greys out a control that cannot act, such as a stepper
	// at its limit.
	RoleDisabled
)

// RoleFor maps a toggle state to its role.
func RoleFor(active bool) ButtonRole {
	if active {
		return RoleActive
	}
	return RoleNormal
}

// buttonColors returns the idle, hover, pressed and disabled colors of role
// in the current theme.
func buttonColors(role ButtonRole) [4]color.NRGBA {
	switch role {
	case RoleActive:
		return [4]color.NRGBA{Primary, PrimaryHover, Surface, Border}
	case RoleDisabled:
		return [4]color.NRGBA{Border, Border, Border, Border}
	default:
		return [4]color.NRGBA{Surface, PrimaryHover, Primary, Border}
	}
}

// ButtonImage builds the image set for role from the current theme. Build
// images after ApplyTheme; they do not follow later theme changes.
func ButtonImage(role ButtonRole) *widget.ButtonImage {
	c := buttonColors(role)
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(c[0]),
		Hover:    image.NewNineSliceColor(c[1]),
		Pressed:  image.NewNineSliceColor(c[2]),
		Disabled: image.NewNineSliceColor(c[3]),
	}
}

// ButtonTextColor returns the standard button text colors
func ButtonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:     Text,
		Disabled: TextSecondary,
	}
}
