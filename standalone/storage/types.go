package storage

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Config represents the application configuration stored in config.json
type Config struct {
	Version  int          `json:"version"`
	Theme    string       `json:"theme"`    // Theme name, one of style.AvailableThemes
	FontSize int          `json:"fontSize"` // 10-32, default 14
	Window   WindowConfig `json:"window"`
	Library  LibraryView  `json:"library"`
	Grid     GridConfig   `json:"grid"`
}

// WindowConfig contains window position and size
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	X          *int `json:"x,omitempty"` // nil = OS decides position
	Y          *int `json:"y,omitempty"`
	Fullscreen bool `json:"fullscreen"`
}

// LibraryView contains library display preferences
type LibraryView struct {
	ViewMode        string `json:"viewMode"`        // "icon" or "list"
	SortBy          string `json:"sortBy"`          // "title", "lastPlayed", "playTime"
	FavoritesFilter bool   `json:"favoritesFilter"` // Show only favorites
	OpenPolicy      string `json:"openPolicy"`      // "single" or "multi"
}

// GridConfig contains grid metrics in logical pixels. They are scaled by the
// display DPI before reaching the layout engine.
type GridConfig struct {
	MinCardWidth  int `json:"minCardWidth"`  // 80-400, default 150
	Gap           int `json:"gap"`           // 0-64, default 16
	Padding       int `json:"padding"`       // 0-64, default 16
	ListRowHeight int `json:"listRowHeight"` // 24-120, default 40
	OpenHeight    int `json:"openHeight"`    // 0 = viewport height
	Overscan      int `json:"overscan"`      // extra pixels mounted above and below the view
}

// Library represents the game library stored in library.json
type Library struct {
	Version int                   `json:"version"`
	Games   map[string]*GameEntry `json:"games"` // ID -> entry
}

// GameEntry represents a single game in the library
type GameEntry struct {
	ID              string `json:"id"`
	Name            string `json:"name"`        // Full release name
	DisplayName     string `json:"displayName"` // Cleaned name for display (region info removed)
	Region          string `json:"region"`      // "us", "eu", "jp"
	Developer       string `json:"developer,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	Genre           string `json:"genre,omitempty"`
	Franchise       string `json:"franchise,omitempty"`
	ESRBRating      string `json:"esrbRating,omitempty"`
	ReleaseDate     string `json:"releaseDate,omitempty"` // "Month / Year" format
	Artwork         string `json:"artwork,omitempty"`     // Box art path, relative to the artwork directory
	Favorite        bool   `json:"favorite"`              // User marked as favorite
	PlayTimeSeconds int64  `json:"playTimeSeconds"`       // Total play time
	LastPlayed      int64  `json:"lastPlayed"`            // Unix timestamp
	Added           int64  `json:"added"`                 // Unix timestamp when added to library
}

// ItemID returns the entry's stable id.
func (g *GameEntry) ItemID() string {
	return g.ID
}

// LetterBucket returns the alphabet rail bucket of the entry's title.
func (g *GameEntry) LetterBucket() string {
	return LetterBucket(g.Title())
}

// Title returns the name shown to the user.
func (g *GameEntry) Title() string {
	if g.DisplayName != "" {
		return g.DisplayName
	}
	return g.Name
}

// LetterBucket maps a title to its rail letter: the upper-cased first letter
// for A-Z, "#" for anything else (digits, punctuation, other scripts).
func LetterBucket(title string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(title))
	r = unicode.ToUpper(r)
	if r >= 'A' && r <= 'Z' {
		return string(r)
	}
	return "#"
}

// FontSizePresets lists the available font size options
var FontSizePresets = []int{10, 12, 14, 16, 18, 20, 24, 28, 32}

// ValidFontSize returns the nearest valid preset font size.
func ValidFontSize(size int) int {
	best := FontSizePresets[0]
	for _, p := range FontSizePresets {
		if abs(p-size) < abs(best-size) {
			best = p
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Theme:    "Default",
		FontSize: 14,
		Window: WindowConfig{
			Width:  900,
			Height: 650,
			X:      nil,
			Y:      nil,
		},
		Library: LibraryView{
			ViewMode:        "icon",
			SortBy:          "title",
			FavoritesFilter: false,
			OpenPolicy:      "single",
		},
		Grid: GridConfig{
			MinCardWidth:  150,
			Gap:           16,
			Padding:       16,
			ListRowHeight: 40,
			OpenHeight:    0,
			Overscan:      200,
		},
	}
}

// DefaultLibrary returns a new Library with default values
func DefaultLibrary() *Library {
	return &Library{
		Version: 1,
		Games:   make(map[string]*GameEntry),
	}
}
