package style

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

func TestApplyFontSize(t *testing.T) {
	// Ensure dpiScale is 1.0 for this test
	origDPI := dpiScale
	dpiScale = 1.0
	defer func() {
		dpiScale = origDPI
		ApplyFontSize(14)
	}()

	origCardText := IconCardTextHeight
	origDetailLine := DetailLineHeight

	// Apply at default 14pt - values should match defaults
	ApplyFontSize(14)
	if IconCardTextHeight != 34 {
		t.Errorf("at 14pt, IconCardTextHeight = %d, want 34", IconCardTextHeight)
	}
	if DetailLineHeight != 24 {
		t.Errorf("at 14pt, DetailLineHeight = %d, want 24", DetailLineHeight)
	}

	// Apply at 28pt (2x scale)
	ApplyFontSize(28)
	if IconCardTextHeight != 68 {
		t.Errorf("at 28pt, IconCardTextHeight = %d, want 68", IconCardTextHeight)
	}
	if ListHeaderHeight != 76 {
		t.Errorf("at 28pt, ListHeaderHeight = %d, want 76", ListHeaderHeight)
	}
	if ListColGenre != 200 {
		t.Errorf("at 28pt, ListColGenre = %d, want 200", ListColGenre)
	}

	// Apply at 10pt (scale = 10/14 ≈ 0.714)
	ApplyFontSize(10)
	// 34 * 10 / 14 = 24.28 -> int truncates to 24
	if IconCardTextHeight != 24 {
		t.Errorf("at 10pt, IconCardTextHeight = %d, want 24", IconCardTextHeight)
	}

	// Restore to 14
	ApplyFontSize(14)
	if IconCardTextHeight != origCardText {
		t.Errorf("after restore, IconCardTextHeight = %d, want %d", IconCardTextHeight, origCardText)
	}
	if DetailLineHeight != origDetailLine {
		t.Errorf("after restore, DetailLineHeight = %d, want %d", DetailLineHeight, origDetailLine)
	}
}

func TestFontScale(t *testing.T) {
	defer ApplyFontSize(14) // Restore

	ApplyFontSize(14)
	if FontScale() != 1.0 {
		t.Errorf("at 14pt, FontScale() = %f, want 1.0", FontScale())
	}

	ApplyFontSize(28)
	if FontScale() != 2.0 {
		t.Errorf("at 28pt, FontScale() = %f, want 2.0", FontScale())
	}

	ApplyFontSize(7)
	if FontScale() != 0.5 {
		t.Errorf("at 7pt, FontScale() = %f, want 0.5", FontScale())
	}
}

func TestPx(t *testing.T) {
	origDPI := dpiScale
	defer func() { dpiScale = origDPI }()

	dpiScale = 1.0
	if got := Px(10); got != 10 {
		t.Errorf("Px(10) at scale 1.0 = %d, want 10", got)
	}

	dpiScale = 2.0
	if got := Px(10); got != 20 {
		t.Errorf("Px(10) at scale 2.0 = %d, want 20", got)
	}

	dpiScale = 1.5
	if got := Px(10); got != 15 {
		t.Errorf("Px(10) at scale 1.5 = %d, want 15", got)
	}
}

func TestSetDPIScale(t *testing.T) {
	origDPI := dpiScale
	defer func() {
		dpiScale = origDPI
		ApplyFontSize(14)
	}()

	// Set to 2.0x and verify spatial vars double
	SetDPIScale(2.0)

	if DPIScale() != 2.0 {
		t.Errorf("DPIScale() = %f, want 2.0", DPIScale())
	}

	// Non-font-dependent vars should be exactly 2x base
	if DefaultPadding != 32 {
		t.Errorf("DefaultPadding at 2x = %d, want 32", DefaultPadding)
	}
	if SmallSpacing != 16 {
		t.Errorf("SmallSpacing at 2x = %d, want 16", SmallSpacing)
	}
	if ScrollbarWidth != 40 {
		t.Errorf("ScrollbarWidth at 2x = %d, want 40", ScrollbarWidth)
	}
	if RailWidth != 56 {
		t.Errorf("RailWidth at 2x = %d, want 56", RailWidth)
	}
	if DetailArtWidth != 600 {
		t.Errorf("DetailArtWidth at 2x = %d, want 600", DetailArtWidth)
	}

	// Font-dependent vars at 14pt with 2x DPI should be 2x their 1x values
	// IconCardTextHeight = int(34 * 1.0 * 2.0) = 68
	if IconCardTextHeight != 68 {
		t.Errorf("IconCardTextHeight at 14pt/2x = %d, want 68", IconCardTextHeight)
	}

	// Font face should incorporate DPI scale
	face := FontFace()
	if face != nil && *face != nil {
		goFace, ok := (*face).(*text.GoTextFace)
		if ok && goFace.Size != 28.0 {
			t.Errorf("FontFace size at 14pt/2x = %f, want 28.0", goFace.Size)
		}
	}

	// Restore to 1.0
	SetDPIScale(1.0)
	if DefaultPadding != 16 {
		t.Errorf("DefaultPadding after restore = %d, want 16", DefaultPadding)
	}
	if IconCardTextHeight != 34 {
		t.Errorf("IconCardTextHeight after restore = %d, want 34", IconCardTextHeight)
	}
}

func TestPxFont(t *testing.T) {
	origDPI := dpiScale
	defer func() {
		dpiScale = origDPI
		ApplyFontSize(14)
	}()

	// At 14pt / 1x DPI: FontScale()=1.0, dpiScale=1.0 → PxFont(80)=80
	dpiScale = 1.0
	ApplyFontSize(14)
	if got := PxFont(80); got != 80 {
		t.Errorf("PxFont(80) at 14pt/1x = %d, want 80", got)
	}

	// At 28pt / 1x DPI: FontScale()=2.0, dpiScale=1.0 → PxFont(80)=160
	ApplyFontSize(28)
	if got := PxFont(80); got != 160 {
		t.Errorf("PxFont(80) at 28pt/1x = %d, want 160", got)
	}

	// At 14pt / 2x DPI: FontScale()=1.0, dpiScale=2.0 → PxFont(80)=160
	dpiScale = 2.0
	ApplyFontSize(14)
	if got := PxFont(80); got != 160 {
		t.Errorf("PxFont(80) at 14pt/2x = %d, want 160", got)
	}

	// At 28pt / 2x DPI: FontScale()=2.0, dpiScale=2.0 → PxFont(80)=320
	ApplyFontSize(28)
	if got := PxFont(80); got != 320 {
		t.Errorf("PxFont(80) at 28pt/2x = %d, want 320", got)
	}
}

func TestSetDPIScaleNewVars(t *testing.T) {
	origDPI := dpiScale
	defer func() {
		dpiScale = origDPI
		ApplyFontSize(14)
	}()

	SetDPIScale(2.0)

	if OverlayPadding != 24 {
		t.Errorf("OverlayPadding at 2x = %d, want 24", OverlayPadding)
	}
	if OverlayMargin != 16 {
		t.Errorf("OverlayMargin at 2x = %d, want 16", OverlayMargin)
	}
	if SelectionBorder != 4 {
		t.Errorf("SelectionBorder at 2x = %d, want 4", SelectionBorder)
	}
	if ScrollHandleMinLen != 80 {
		t.Errorf("ScrollHandleMinLen at 2x = %d, want 80", ScrollHandleMinLen)
	}
	if RailButtonPadding != 4 {
		t.Errorf("RailButtonPadding at 2x = %d, want 4", RailButtonPadding)
	}
	if ListMinTitleWidth != 300 {
		t.Errorf("ListMinTitleWidth at 2x = %d, want 300", ListMinTitleWidth)
	}

	// Restore and verify
	SetDPIScale(1.0)
	if OverlayPadding != 12 {
		t.Errorf("OverlayPadding after restore = %d, want 12", OverlayPadding)
	}
	if RailWidth != 28 {
		t.Errorf("RailWidth after restore = %d, want 28", RailWidth)
	}
}

func TestSetDPIScaleClampsBelowOne(t *testing.T) {
	origDPI := dpiScale
	defer func() {
		dpiScale = origDPI
		ApplyFontSize(14)
	}()

	SetDPIScale(0.5) // Should be clamped to 1.0
	if DPIScale() != 1.0 {
		t.Errorf("DPIScale() after setting 0.5 = %f, want 1.0", DPIScale())
	}
}
