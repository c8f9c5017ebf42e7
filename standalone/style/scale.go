package style

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// baseFontSize is the point size every layout constant is designed at.
const baseFontSize = 14.0

var (
	currentFontSize = baseFontSize
	dpiScale        = 1.0

	fontSource    *text.GoTextFaceSource
	fontFace      text.Face
	largeFontFace *text.GoTextFace
)

// DPIScale returns the current device scale factor.
func DPIScale() float64 {
	return dpiScale
}

// Px converts a logical pixel value to physical pixels.
func Px(logical int) int {
	return int(float64(logical) * dpiScale)
}

// PxFont converts a logical pixel value to physical pixels, following both
// the DPI scale and the font size.
func PxFont(logical int) int {
	return int(float64(logical) * FontScale() * dpiScale)
}

// FontScale returns the font size relative to the 14pt base.
func FontScale() float64 {
	return currentFontSize / baseFontSize
}

// SetDPIScale sets the device scale (clamped to at least 1) and recomputes
// every spatial value, including the font-dependent ones.
func SetDPIScale(scale float64) {
	dpiScale = max(scale, 1.0)

	DefaultPadding = Px(baseDefaultPadding)
	DefaultSpacing = Px(baseDefaultSpacing)
	SmallSpacing = Px(baseSmallSpacing)
	TinySpacing = Px(baseTinySpacing)
	LargeSpacing = Px(baseLargeSpacing)
	ScrollbarWidth = Px(baseScrollbarWidth)
	ScrollHandleMinLen = Px(baseScrollHandleMin)
	ButtonPaddingSmall = Px(baseButtonPaddingSmall)
	ButtonPaddingMedium = Px(baseButtonPaddingMedium)
	SelectionBorder = Px(baseSelectionBorder)
	DetailArtWidth = Px(baseDetailArtWidth)
	SettingsSidebarMinWidth = Px(baseSidebarMinWidth)
	StepperValueWidth = Px(baseStepperValueWidth)
	RailWidth = Px(baseRailWidth)
	RailButtonPadding = Px(baseRailButtonPadding)
	OverlayPadding = Px(baseOverlayPadding)
	OverlayMargin = Px(baseOverlayMargin)
	ListMinTitleWidth = Px(baseListMinTitleWidth)

	ApplyFontSize(int(currentFontSize))
}

// ApplyFontSize sets the font size in points and recomputes the faces and
// the layout values measured in lines of text.
func ApplyFontSize(size int) {
	currentFontSize = float64(size)
	rebuildFaces()

	scale := FontScale() * dpiScale
	ListHeaderHeight = int(baseListHeaderHeight * scale)
	IconCardTextHeight = int(baseIconCardTextHeight * scale)
	DetailLineHeight = int(baseDetailLineHeight * scale)
	ListColGenre = int(baseListColGenre * scale)
	ListColRegion = int(baseListColRegion * scale)
	ListColPlayTime = int(baseListColPlayTime * scale)
	ListColLastPlayed = int(baseListColLastPlayed * scale)
	ListColFavorite = int(baseListColFavorite * scale)
}

// FontFace returns the UI text face. Widgets keep the returned pointer, so
// a font size change is visible to them without a rebuild.
func FontFace() *text.Face {
	if fontFace == nil {
		rebuildFaces()
	}
	return &fontFace
}

// LargeFontFace returns the face for the title of an open item, or nil when
// the font cannot be loaded.
func LargeFontFace() *text.GoTextFace {
	if largeFontFace == nil {
		rebuildFaces()
	}
	return largeFontFace
}

// rebuildFaces replaces both faces in place. fontFace is never set to nil
// once built since widgets hold its address.
func rebuildFaces() {
	source := loadFontSource()
	if source == nil {
		return
	}
	fontFace = &text.GoTextFace{
		Source: source,
		Size:   currentFontSize * dpiScale,
	}
	largeFontFace = &text.GoTextFace{
		Source: source,
		Size:   min(currentFontSize*2, baseMaxLargeFontSize) * dpiScale,
	}
}

func loadFontSource() *text.GoTextFaceSource {
	if fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("Failed to load font source: %v", err)
			return nil
		}
		fontSource = source
	}
	return fontSource
}
