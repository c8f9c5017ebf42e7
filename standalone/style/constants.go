package style

import "time"

// Base constants are the logical-pixel reference values.
// The corresponding exported vars are recalculated by SetDPIScale.
const (
	baseDefaultPadding      = 16
	baseDefaultSpacing      = 16
	baseSmallSpacing        = 8
	baseTinySpacing         = 4
	baseLargeSpacing        = 24
	baseScrollbarWidth      = 20
	baseScrollHandleMin     = 40
	baseButtonPaddingSmall  = 8
	baseButtonPaddingMedium = 12
	baseSelectionBorder     = 2
	baseDetailArtWidth      = 300
	baseSidebarMinWidth     = 180
	baseStepperValueWidth   = 70

	// Alphabet rail
	baseRailWidth         = 28
	baseRailButtonPadding = 2

	// Overlay (notification/search shared)
	baseOverlayPadding = 12
	baseOverlayMargin  = 8

	// Library list view
	baseListMinTitleWidth = 150

	// Font-dependent base values (at 14pt, scale = 1.0)
	baseListHeaderHeight   = 38
	baseIconCardTextHeight = 34
	baseDetailLineHeight   = 24
	baseListColFavorite    = 24
	baseListColGenre       = 100
	baseListColRegion      = 50
	baseListColPlayTime    = 80
	baseListColLastPlayed  = 100
	baseMaxLargeFontSize   = 48
)

// Layout vars used across screens, DPI-scaled at runtime by SetDPIScale.
var (
	// Standard spacing and padding values
	DefaultPadding = baseDefaultPadding
	DefaultSpacing = baseDefaultSpacing
	SmallSpacing   = baseSmallSpacing
	TinySpacing    = baseTinySpacing
	LargeSpacing   = baseLargeSpacing

	// Scrollbar dimensions
	ScrollbarWidth     = baseScrollbarWidth
	ScrollHandleMinLen = baseScrollHandleMin

	// Button padding
	ButtonPaddingSmall  = baseButtonPaddingSmall
	ButtonPaddingMedium = baseButtonPaddingMedium

	// Outline drawn around the keyboard-selected card
	SelectionBorder = baseSelectionBorder

	// Artwork width in an open detail panel
	DetailArtWidth = baseDetailArtWidth

	// Settings screen
	SettingsSidebarMinWidth = baseSidebarMinWidth
	StepperValueWidth       = baseStepperValueWidth
)

// Alphabet rail vars
var (
	RailWidth         = baseRailWidth
	RailButtonPadding = baseRailButtonPadding
)

// Font-dependent layout values (updated by ApplyFontSize)
var (
	ListHeaderHeight = baseListHeaderHeight

	// Column widths for library list view
	ListColFavorite   = baseListColFavorite
	ListColGenre      = baseListColGenre
	ListColRegion     = baseListColRegion
	ListColPlayTime   = baseListColPlayTime
	ListColLastPlayed = baseListColLastPlayed

	// Icon view
	IconCardTextHeight = baseIconCardTextHeight

	// Open detail panel
	DetailLineHeight = baseDetailLineHeight
)

// Gamepad navigation timing constants
const (
	NavInitialDelay  = 400 * time.Millisecond // Delay before repeat starts
	NavStartInterval = 200 * time.Millisecond // Initial repeat interval
	NavMinInterval   = 25 * time.Millisecond  // Fastest repeat (cap)
	NavAcceleration  = 20 * time.Millisecond  // Speed increase per repeat
)

// Notification display time
const NotificationDuration = 3 * time.Second

// Mouse wheel scroll step in logical pixels per wheel notch
const ScrollWheelStep = 60

// Overlay vars (shared by notification/search)
var (
	OverlayPadding = baseOverlayPadding
	OverlayMargin  = baseOverlayMargin
)

// Library list view vars
var (
	ListMinTitleWidth = baseListMinTitleWidth
)

// Brightness of card artwork that is not selected
const CardUnselectedDim = 0.8
