package standalone

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/libview/standalone/style"
)

// SearchOverlay displays a search filter at the bottom-left of the screen
type SearchOverlay struct {
	text      string
	active    bool              // Currently capturing keyboard input
	onChanged func(text string) // Callback when text changes
	paste     func() string     // Clipboard source for Ctrl/Cmd+V, may be nil

	// Pre-allocated background image (avoid per-frame allocations)
	bg *ebiten.Image
}

// NewSearchOverlay creates a new search overlay with the given change callback
func NewSearchOverlay(onChanged func(text string)) *SearchOverlay {
	return &SearchOverlay{
		onChanged: onChanged,
	}
}

// SetPasteSource sets where pasted text comes from.
func (s *SearchOverlay) SetPasteSource(paste func() string) {
	s.paste = paste
}

// Text returns the current filter text.
func (s *SearchOverlay) Text() string {
	return s.text
}

// IsVisible returns true if the search has text (overlay should be shown)
func (s *SearchOverlay) IsVisible() bool {
	return s.text != ""
}

// IsActive returns true if the overlay is capturing keyboard input
func (s *SearchOverlay) IsActive() bool {
	return s.active
}

// Activate starts capturing keyboard input
func (s *SearchOverlay) Activate() {
	s.active = true
}

// Clear removes all search text and deactivates
func (s *SearchOverlay) Clear() {
	s.text = ""
	s.active = false
	if s.onChanged != nil {
		s.onChanged(s.text)
	}
}

// HandleInput processes keyboard input when active.
// Returns true if input was handled (should not propagate to navigation).
func (s *SearchOverlay) HandleInput() bool {
	if !s.active {
		return false
	}

	// Arrow keys deactivate but keep filter - let navigation proceed
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.active = false
		return false // Let navigation proceed
	}

	if style.ModifierPressed() {
		if inpututil.IsKeyJustPressed(ebiten.KeyV) && s.paste != nil {
			s.edit(sanitizePaste(s.paste()), false)
		}
		return true
	}

	s.edit(string(ebiten.AppendInputChars(nil)), inpututil.IsKeyJustPressed(ebiten.KeyBackspace))
	return true // Active, consume input even if nothing typed
}

// edit applies one frame of typing: an optional backspace followed by the
// typed characters. onChanged fires once if the text changed.
func (s *SearchOverlay) edit(typed string, backspace bool) {
	before := s.text
	if backspace && len(s.text) > 0 {
		runes := []rune(s.text)
		s.text = string(runes[:len(runes)-1])
	}
	for _, c := range typed {
		// Don't add the '/' that activated search
		if c != '/' || s.text != "" {
			s.text += string(c)
		}
	}
	if s.text != before && s.onChanged != nil {
		s.onChanged(s.text)
	}
}

// sanitizePaste keeps the first line of pasted text, without control
// characters.
func sanitizePaste(text string) string {
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, text)
}

// Draw renders the search overlay at bottom-left
func (s *SearchOverlay) Draw(screen *ebiten.Image) {
	if !s.IsVisible() && !s.active {
		return
	}

	bounds := screen.Bounds()
	screenHeight := bounds.Dy()

	// Build display text
	displayText := "Filter: " + s.text
	if s.active {
		displayText += "_" // Cursor when active
	}

	textWidth, textHeight := text.Measure(displayText, *style.FontFace(), 0)

	padding := style.OverlayPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	// Position: bottom-left, margin (mirrors Notification at bottom-right)
	margin := style.OverlayMargin
	bgX := margin
	bgY := screenHeight - bgHeight - margin

	// Reuse or create background image
	if s.bg == nil || s.bg.Bounds().Dx() < bgWidth || s.bg.Bounds().Dy() < bgHeight {
		s.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	s.bg.Clear()
	overlayBg := style.OverlayBackground
	overlayBg.A = 153 // 60% opacity
	s.bg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(s.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, displayText, *style.FontFace(), textOpts)
}
