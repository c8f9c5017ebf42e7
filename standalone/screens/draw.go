package screens

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// pixel is a 1x1 white image scaled and tinted to draw solid rectangles.
var pixel *ebiten.Image

func whitePixel() *ebiten.Image {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
		pixel.Fill(color.White)
	}
	return pixel
}

// fillRect fills r on dst with c.
func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	if r.Empty() {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	opts.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	opts.ColorScale.ScaleWithColor(c)
	dst.DrawImage(whitePixel(), opts)
}

// strokeRect draws a border of the given width just inside r.
func strokeRect(dst *ebiten.Image, r image.Rectangle, width int, c color.Color) {
	if width <= 0 {
		return
	}
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), c)
	fillRect(dst, image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), c)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face text.Face, x, y int, c color.Color) {
	if s == "" || face == nil {
		return
	}
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(float64(x), float64(y))
	opts.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, opts)
}

// ellipsis marks text cut short by fitText.
const ellipsis = "..."

// textWidth returns the rendered width of s in face, in pixels.
func textWidth(s string, face text.Face) int {
	if s == "" || face == nil {
		return 0
	}
	w, _ := text.Measure(s, face, 0)
	return int(w)
}

// fitText shortens s to the longest rune prefix that, followed by an
// ellipsis, fits in maxWidth. Text that already fits is returned as is.
func fitText(s string, face text.Face, maxWidth int) string {
	if s == "" || textWidth(s, face) <= maxWidth {
		return s
	}

	// Byte offsets of every rune boundary after the first rune
	var cuts []int
	for i := range s {
		if i > 0 {
			cuts = append(cuts, i)
		}
	}
	// First prefix that no longer fits
	n := sort.Search(len(cuts), func(k int) bool {
		return textWidth(s[:cuts[k]]+ellipsis, face) > maxWidth
	})
	if n == 0 {
		return ellipsis
	}
	return s[:cuts[n-1]] + ellipsis
}

// lineHeight returns the height of one line of text in face.
func lineHeight(face text.Face) int {
	if face == nil {
		return 0
	}
	_, h := text.Measure("Ag", face, 0)
	return int(h)
}

// drawImageAt draws img with its top-left corner at p, scaled in brightness
// by dim (1 for full brightness).
func drawImageAt(dst, img *ebiten.Image, p image.Point, dim float32) {
	if img == nil {
		return
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(p.X), float64(p.Y))
	if dim < 1 {
		opts.ColorScale.Scale(dim, dim, dim, 1)
	}
	dst.DrawImage(img, opts)
}

// centerIn returns the top-left corner that centers a w x h box in r.
func centerIn(r image.Rectangle, w, h int) image.Point {
	return image.Pt(r.Min.X+(r.Dx()-w)/2, r.Min.Y+(r.Dy()-h)/2)
}
