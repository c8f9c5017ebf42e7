package screens

import (
	"bytes"
	goimage "image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
	xdraw "golang.org/x/image/draw"
)

const placeholderKey = "\x00placeholder"

// artworkCache holds box art scaled to one target size. Only mounted items
// ask for artwork, so the cache grows with what has been scrolled past, not
// with the library.
type artworkCache struct {
	images      map[string]*ebiten.Image
	width       int
	height      int
	placeholder []byte
}

func newArtworkCache(placeholder []byte) *artworkCache {
	return &artworkCache{
		images:      make(map[string]*ebiten.Image),
		placeholder: placeholder,
	}
}

// setSize changes the target size. Cached images are dropped when it
// differs, since they need re-scaling.
func (c *artworkCache) setSize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.clear()
	c.width = width
	c.height = height
}

// clear deallocates every cached image.
func (c *artworkCache) clear() {
	seen := make(map[*ebiten.Image]bool, len(c.images))
	for _, img := range c.images {
		if img != nil && !seen[img] {
			seen[img] = true
			img.Deallocate()
		}
	}
	c.images = make(map[string]*ebiten.Image)
}

// count returns the number of cached entries.
func (c *artworkCache) count() int {
	return len(c.images)
}

// get returns game's artwork at the cache size, falling back to the
// placeholder when the entry has none or it cannot be read. Failures are
// cached too so a broken file is only read once.
func (c *artworkCache) get(game *storage.GameEntry) *ebiten.Image {
	if c.width <= 0 || c.height <= 0 {
		return nil
	}
	if img, ok := c.images[game.ID]; ok {
		return img
	}

	img := c.load(game)
	if img == nil {
		img = c.placeholderImage()
	}
	c.images[game.ID] = img
	return img
}

func (c *artworkCache) load(game *storage.GameEntry) *ebiten.Image {
	artPath, err := storage.GetGameArtworkPath(game)
	if err != nil || artPath == "" {
		return nil
	}

	data, err := os.ReadFile(artPath)
	if err != nil {
		return nil
	}

	img, _, err := goimage.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return scaleToFit(img, c.width, c.height)
}

func (c *artworkCache) placeholderImage() *ebiten.Image {
	if img, ok := c.images[placeholderKey]; ok {
		return img
	}

	var img *ebiten.Image
	if c.placeholder != nil {
		if decoded, _, err := goimage.Decode(bytes.NewReader(c.placeholder)); err == nil {
			img = scaleToFit(decoded, c.width, c.height)
		}
	}
	if img == nil {
		// Fallback to solid color if no placeholder data
		img = ebiten.NewImage(c.width, c.height)
		img.Fill(style.Surface)
	}
	c.images[placeholderKey] = img
	return img
}

// fitSize returns the largest size with the source aspect ratio that fits in
// maxW x maxH, never smaller than 1x1.
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 {
		return max(1, maxW), max(1, maxH)
	}
	// Compare cross products to pick the limiting side without floats
	if srcW*maxH >= srcH*maxW {
		return max(1, maxW), max(1, srcH*maxW/srcW)
	}
	return max(1, srcW*maxH/srcH), max(1, maxH)
}

// scaleToFit scales src into a cell of maxW x maxH on the CPU, so only the
// small result is uploaded as a texture.
func scaleToFit(src goimage.Image, maxW, maxH int) *ebiten.Image {
	b := src.Bounds()
	w, h := fitSize(b.Dx(), b.Dy(), maxW, maxH)
	dst := goimage.NewRGBA(goimage.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return ebiten.NewImageFromImage(dst)
}
