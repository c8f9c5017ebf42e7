package screens

import (
	"image"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// detailHint is shown at the bottom of an open item.
const detailHint = "Enter or Esc to close, Ctrl+C to copy the title"

// detailRow is one "Label: value" line of an open item.
type detailRow struct {
	Label string
	Value string
}

// detailRows returns the metadata lines shown for an open game. Production
// fields are listed only when present; play statistics always are.
func detailRows(game *storage.GameEntry, now time.Time) []detailRow {
	region := strings.ToUpper(game.Region)
	if region == "" {
		region = "-"
	}
	rows := []detailRow{{"Region", region}}

	optional := []detailRow{
		{"Developer", game.Developer},
		{"Publisher", game.Publisher},
		{"Genre", game.Genre},
		{"Franchise", game.Franchise},
		{"Released", game.ReleaseDate},
		{"ESRB", game.ESRBRating},
	}
	for _, row := range optional {
		if row.Value != "" {
			rows = append(rows, row)
		}
	}

	return append(rows,
		detailRow{"Play Time", playTime(game.PlayTimeSeconds)},
		detailRow{"Last Played", lastPlayed(game.LastPlayed, now)},
		detailRow{"Added", addedDate(game.Added)},
	)
}

// drawDetail renders an open game across the full row: artwork on the left,
// title and metadata on the right.
func (s *LibraryScreen) drawDetail(dst *ebiten.Image, b image.Rectangle, game *storage.GameEntry) {
	fillRect(dst, b, style.OpenPanel)
	strokeRect(dst, b, style.Px(1), style.Border)

	pad := style.DefaultPadding
	inner := b.Inset(pad)
	if inner.Empty() {
		return
	}

	x := inner.Min.X
	artRect := image.Rect(inner.Min.X, inner.Min.Y, min(inner.Max.X, inner.Min.X+style.DetailArtWidth), inner.Max.Y)
	if art := s.detailArt.get(game); art != nil {
		w, h := art.Bounds().Dx(), art.Bounds().Dy()
		drawImageAt(dst, art, image.Pt(artRect.Min.X, artRect.Min.Y+(artRect.Dy()-h)/2), 1)
		x = artRect.Min.X + w + style.LargeSpacing
	}
	maxWidth := inner.Max.X - x
	if maxWidth <= 0 {
		return
	}

	face := *style.FontFace()
	var titleFace text.Face = face
	if large := style.LargeFontFace(); large != nil {
		titleFace = large
	}

	y := inner.Min.Y
	title := fitText(game.Title(), titleFace, maxWidth)
	drawText(dst, title, titleFace, x, y, style.Text)
	y += lineHeight(titleFace) + style.SmallSpacing
	if game.Favorite {
		drawText(dst, "* Favorite", face, x, y, style.Accent)
		y += style.DetailLineHeight
	}

	labelWidth := 0
	rows := detailRows(game, time.Now())
	for _, row := range rows {
		labelWidth = max(labelWidth, textWidth(row.Label, face))
	}
	labelWidth += style.SmallSpacing

	bottom := inner.Max.Y - style.DetailLineHeight
	for _, row := range rows {
		if y+style.DetailLineHeight > bottom {
			break
		}
		drawText(dst, row.Label, face, x, y, style.TextSecondary)
		value := fitText(row.Value, face, maxWidth-labelWidth)
		drawText(dst, value, face, x+labelWidth, y, style.Text)
		y += style.DetailLineHeight
	}

	hint := fitText(detailHint, face, maxWidth)
	drawText(dst, hint, face, x, bottom, style.TextSecondary)
}
