package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Sort orders accepted by GetGamesSortedFiltered.
const (
	SortTitle      = "title"
	SortLastPlayed = "lastPlayed"
	SortPlayTime   = "playTime"
)

// SortOrders lists the sort orders in the order the toolbar cycles them.
var SortOrders = []string{SortTitle, SortLastPlayed, SortPlayTime}

// LoadLibrary loads the library from library.json.
// If the file doesn't exist, it returns an empty library.
// If the file is corrupted, it returns an error.
func LoadLibrary() (*Library, error) {
	path, err := GetLibraryPath()
	if err != nil {
		return nil, err
	}
	return LoadLibraryFile(path)
}

// LoadLibraryFile loads a library from an arbitrary path, with the same
// defaulting and sanitizing as LoadLibrary.
func LoadLibraryFile(path string) (*Library, error) {
	// Check if file exists
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// File doesn't exist, return empty library
		return DefaultLibrary(), nil
	}

	library := &Library{}
	if err := ReadJSON(path, library); err != nil {
		return nil, err
	}
	return finishLibrary(library), nil
}

// DecodeLibrary parses library JSON, for example one extracted from an
// archive, with the same defaulting and sanitizing as LoadLibraryFile.
func DecodeLibrary(data []byte) (*Library, error) {
	library := &Library{}
	if err := json.Unmarshal(data, library); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return finishLibrary(library), nil
}

// finishLibrary initializes, migrates and sanitizes a freshly parsed library.
func finishLibrary(library *Library) *Library {
	// Ensure Games map is initialized
	if library.Games == nil {
		library.Games = make(map[string]*GameEntry)
	}

	// Apply any migration for older library versions
	library = migrateLibrary(library)

	// Silently fix invalid game entry fields
	SanitizeLibraryEntries(library)

	return library
}

// SaveLibrary saves the library to library.json atomically
func SaveLibrary(library *Library) error {
	path, err := GetLibraryPath()
	if err != nil {
		return err
	}

	return AtomicWriteJSON(path, library)
}

// CreateLibraryIfMissing creates a default library.json if it doesn't exist
func CreateLibraryIfMissing() error {
	path, err := GetLibraryPath()
	if err != nil {
		return err
	}

	// Check if file exists
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// Create default library
		return SaveLibrary(DefaultLibrary())
	}

	return nil
}

// DeleteLibrary removes the library.json file
func DeleteLibrary() error {
	path, err := GetLibraryPath()
	if err != nil {
		return err
	}

	return removeIfExists(path)
}

// migrateLibrary handles any necessary migrations from older library versions
func migrateLibrary(library *Library) *Library {
	// Currently at version 1, no migrations needed
	if library.Version == 0 {
		library.Version = 1
	}

	return library
}

// AddGame adds or updates a game entry in the library
func (lib *Library) AddGame(entry *GameEntry) {
	if lib.Games == nil {
		lib.Games = make(map[string]*GameEntry)
	}
	lib.Games[entry.ID] = entry
}

// GetGame retrieves a game by id
func (lib *Library) GetGame(id string) *GameEntry {
	if lib.Games == nil {
		return nil
	}
	return lib.Games[id]
}

// RemoveGame removes a game from the library
func (lib *Library) RemoveGame(id string) {
	if lib.Games != nil {
		delete(lib.Games, id)
	}
}

// GameCount returns the number of games in the library
func (lib *Library) GameCount() int {
	if lib.Games == nil {
		return 0
	}
	return len(lib.Games)
}

// ToggleFavorite flips a game's favorite flag. Returns the new value, or
// false if the game is not in the library.
func (lib *Library) ToggleFavorite(id string) bool {
	game := lib.GetGame(id)
	if game == nil {
		return false
	}
	game.Favorite = !game.Favorite
	return game.Favorite
}

// GetGamesSorted returns a sorted slice of game entries
func (lib *Library) GetGamesSorted(sortBy string, favoritesOnly bool) []*GameEntry {
	return lib.GetGamesSortedFiltered(sortBy, favoritesOnly, "")
}

// GetGamesSortedFiltered returns a sorted slice of game entries filtered by search text.
// Search is case-insensitive and matches against DisplayName and Name fields.
// Empty searchText returns all games (same as GetGamesSorted).
func (lib *Library) GetGamesSortedFiltered(sortBy string, favoritesOnly bool, searchText string) []*GameEntry {
	if lib.Games == nil {
		return nil
	}

	// Normalize search text for case-insensitive matching
	searchLower := strings.ToLower(searchText)

	games := make([]*GameEntry, 0, len(lib.Games))
	for _, game := range lib.Games {
		if favoritesOnly && !game.Favorite {
			continue
		}
		// Apply search filter if search text is provided
		if searchText != "" {
			displayLower := strings.ToLower(game.DisplayName)
			nameLower := strings.ToLower(game.Name)
			if !strings.Contains(displayLower, searchLower) && !strings.Contains(nameLower, searchLower) {
				continue
			}
		}
		games = append(games, game)
	}

	sortGames(games, sortBy)
	return games
}

func sortGames(games []*GameEntry, sortBy string) {
	switch sortBy {
	case SortLastPlayed:
		sort.Slice(games, func(i, j int) bool {
			// Primary: most recent first
			if games[i].LastPlayed != games[j].LastPlayed {
				return games[i].LastPlayed > games[j].LastPlayed
			}
			// Secondary: fall back to title ordering
			return compareGamesForSort(games[i], games[j])
		})
	case SortPlayTime:
		sort.Slice(games, func(i, j int) bool {
			// Primary: most played first
			if games[i].PlayTimeSeconds != games[j].PlayTimeSeconds {
				return games[i].PlayTimeSeconds > games[j].PlayTimeSeconds
			}
			// Secondary: fall back to title ordering
			return compareGamesForSort(games[i], games[j])
		})
	default:
		// Title sort, also the fallback for unknown orders
		sort.Slice(games, func(i, j int) bool {
			return compareGamesForSort(games[i], games[j])
		})
	}
}

// compareGamesForSort compares two games for sorting purposes.
// It compares by title (A-Z), then Region, then Name, then ID.
func compareGamesForSort(a, b *GameEntry) bool {
	// Compare by title (case-insensitive, A-Z)
	aName := strings.ToLower(a.Title())
	bName := strings.ToLower(b.Title())
	if aName != bName {
		return aName < bName
	}

	// Compare by Region (alphabetical: eu, jp, us)
	if a.Region != b.Region {
		return a.Region < b.Region
	}

	// Compare by full Name (for revisions)
	aFullName := strings.ToLower(a.Name)
	bFullName := strings.ToLower(b.Name)
	if aFullName != bFullName {
		return aFullName < bFullName
	}

	// Final tiebreaker: ID (guaranteed unique)
	return a.ID < b.ID
}

// NextSortOrder returns the sort order after current in SortOrders.
func NextSortOrder(current string) string {
	for i, s := range SortOrders {
		if s == current {
			return SortOrders[(i+1)%len(SortOrders)]
		}
	}
	return SortTitle
}
