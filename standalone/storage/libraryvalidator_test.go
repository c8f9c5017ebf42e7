package storage

import "testing"

func TestSanitizeLibraryEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry GameEntry
		check func(t *testing.T, g *GameEntry)
	}{
		{
			name:  "negative playTimeSeconds set to 0",
			entry: GameEntry{ID: "1", PlayTimeSeconds: -100},
			check: func(t *testing.T, g *GameEntry) {
				if g.PlayTimeSeconds != 0 {
					t.Errorf("expected 0, got %d", g.PlayTimeSeconds)
				}
			},
		},
		{
			name:  "valid playTimeSeconds preserved",
			entry: GameEntry{ID: "1", PlayTimeSeconds: 500},
			check: func(t *testing.T, g *GameEntry) {
				if g.PlayTimeSeconds != 500 {
					t.Errorf("expected 500, got %d", g.PlayTimeSeconds)
				}
			},
		},
		{
			name:  "negative lastPlayed set to 0",
			entry: GameEntry{ID: "1", LastPlayed: -1},
			check: func(t *testing.T, g *GameEntry) {
				if g.LastPlayed != 0 {
					t.Errorf("expected 0, got %d", g.LastPlayed)
				}
			},
		},
		{
			name:  "valid lastPlayed preserved",
			entry: GameEntry{ID: "1", LastPlayed: 1700000000},
			check: func(t *testing.T, g *GameEntry) {
				if g.LastPlayed != 1700000000 {
					t.Errorf("expected 1700000000, got %d", g.LastPlayed)
				}
			},
		},
		{
			name:  "negative added set to 0",
			entry: GameEntry{ID: "1", Added: -50},
			check: func(t *testing.T, g *GameEntry) {
				if g.Added != 0 {
					t.Errorf("expected 0, got %d", g.Added)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lib := DefaultLibrary()
			entry := tc.entry
			lib.AddGame(&entry)

			SanitizeLibraryEntries(lib)

			tc.check(t, lib.Games["1"])
		})
	}
}

func TestSanitizeLibraryEntriesIDs(t *testing.T) {
	lib := DefaultLibrary()
	lib.Games["abc"] = &GameEntry{ID: "", DisplayName: "Missing ID"}
	lib.Games["def"] = &GameEntry{ID: "wrong", DisplayName: "Wrong ID"}
	lib.Games["nil"] = nil

	SanitizeLibraryEntries(lib)

	if lib.Games["abc"].ID != "abc" {
		t.Errorf("expected ID 'abc', got %q", lib.Games["abc"].ID)
	}
	if lib.Games["def"].ID != "def" {
		t.Errorf("expected ID 'def', got %q", lib.Games["def"].ID)
	}
	if _, ok := lib.Games["nil"]; ok {
		t.Error("nil entry was not removed")
	}
}

func TestValidateLibrary(t *testing.T) {
	tests := []struct {
		name    string
		version int
		errors  int
	}{
		{"valid", 1, 0},
		{"zero version", 0, 1},
		{"future version", 2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lib := DefaultLibrary()
			lib.Version = tc.version

			errs := ValidateLibrary(lib)
			if len(errs) != tc.errors {
				t.Errorf("expected %d errors, got %d: %v", tc.errors, len(errs), errs)
			}

			CorrectLibrary(lib)
			if lib.Version != 1 {
				t.Errorf("expected corrected version 1, got %d", lib.Version)
			}
		})
	}
}
