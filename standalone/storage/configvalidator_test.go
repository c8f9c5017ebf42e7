package storage

import (
	"encoding/json"
	"testing"
)

// validTestThemes is the list of theme names used in tests
var validTestThemes = []string{"Default", "Dark", "Light", "Slate", "Sepia", "High Contrast"}

func TestDetectPresentKeys(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected map[string]bool
	}{
		{
			name: "all keys present",
			json: `{
				"version": 1,
				"theme": "Default",
				"fontSize": 14,
				"window": {"width": 900, "height": 650},
				"library": {"viewMode": "icon", "sortBy": "title", "openPolicy": "single"},
				"grid": {"minCardWidth": 150, "gap": 16, "padding": 16, "listRowHeight": 40, "overscan": 200}
			}`,
			expected: map[string]bool{
				"version": true, "theme": true, "fontSize": true,
				"window.width": true, "window.height": true,
				"library.viewMode": true, "library.sortBy": true, "library.openPolicy": true,
				"grid.minCardWidth": true, "grid.gap": true, "grid.padding": true,
				"grid.listRowHeight": true, "grid.overscan": true,
			},
		},
		{
			name:     "empty object",
			json:     `{}`,
			expected: map[string]bool{},
		},
		{
			name: "partial keys - missing fontSize and grid",
			json: `{
				"version": 1,
				"theme": "Dark",
				"window": {"width": 1024, "height": 768},
				"library": {"viewMode": "list", "sortBy": "lastPlayed"}
			}`,
			expected: map[string]bool{
				"version": true, "theme": true,
				"window.width": true, "window.height": true,
				"library.viewMode": true, "library.sortBy": true,
			},
		},
		{
			name: "zero values are still present",
			json: `{
				"fontSize": 0,
				"grid": {"gap": 0, "padding": 0},
				"window": {"width": 0, "height": 0}
			}`,
			expected: map[string]bool{
				"fontSize": true, "grid.gap": true, "grid.padding": true,
				"window.width": true, "window.height": true,
			},
		},
		{
			name:     "invalid JSON returns empty",
			json:     `{not valid json`,
			expected: map[string]bool{},
		},
		{
			name: "nested object present but empty",
			json: `{
				"grid": {},
				"window": {}
			}`,
			expected: map[string]bool{},
		},
		{
			name:     "nested value of the wrong type is ignored",
			json:     `{"grid": 5}`,
			expected: map[string]bool{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := detectPresentKeys([]byte(tc.json))
			// Check expected keys are present
			for k := range tc.expected {
				if !got[k] {
					t.Errorf("expected key %q to be present", k)
				}
			}
			// Check no extra keys
			for k := range got {
				if !tc.expected[k] {
					t.Errorf("unexpected key %q detected", k)
				}
			}
		})
	}
}

func TestApplyMissingDefaults(t *testing.T) {
	t.Run("all missing gets all defaults", func(t *testing.T) {
		config := &Config{}
		presentKeys := map[string]bool{}

		ApplyMissingDefaults(config, presentKeys)

		defaults := DefaultConfig()
		if config.Version != defaults.Version {
			t.Errorf("version: got %d, want %d", config.Version, defaults.Version)
		}
		if config.Theme != defaults.Theme {
			t.Errorf("theme: got %q, want %q", config.Theme, defaults.Theme)
		}
		if config.FontSize != defaults.FontSize {
			t.Errorf("fontSize: got %d, want %d", config.FontSize, defaults.FontSize)
		}
		if config.Window != defaults.Window {
			t.Errorf("window: got %+v, want %+v", config.Window, defaults.Window)
		}
		if config.Library != defaults.Library {
			t.Errorf("library: got %+v, want %+v", config.Library, defaults.Library)
		}
		if config.Grid != defaults.Grid {
			t.Errorf("grid: got %+v, want %+v", config.Grid, defaults.Grid)
		}
	})

	t.Run("present keys preserved even when zero", func(t *testing.T) {
		config := &Config{
			Grid:   GridConfig{Gap: 0, Padding: 0},
			Window: WindowConfig{Width: 0, Height: 0},
		}
		presentKeys := map[string]bool{
			"grid.gap":      true,
			"grid.padding":  true,
			"window.width":  true,
			"window.height": true,
		}

		ApplyMissingDefaults(config, presentKeys)

		// These should NOT be overwritten since they're present
		if config.Grid.Gap != 0 {
			t.Errorf("grid.gap should remain 0, got %d", config.Grid.Gap)
		}
		if config.Grid.Padding != 0 {
			t.Errorf("grid.padding should remain 0, got %d", config.Grid.Padding)
		}
		if config.Window.Width != 0 {
			t.Errorf("window.width should remain 0, got %d", config.Window.Width)
		}

		// Missing fields should get defaults
		defaults := DefaultConfig()
		if config.Grid.MinCardWidth != defaults.Grid.MinCardWidth {
			t.Errorf("grid.minCardWidth should default to %d, got %d", defaults.Grid.MinCardWidth, config.Grid.MinCardWidth)
		}
		if config.Library.OpenPolicy != defaults.Library.OpenPolicy {
			t.Errorf("library.openPolicy should default to %q, got %q", defaults.Library.OpenPolicy, config.Library.OpenPolicy)
		}
	})

	t.Run("all present keeps values", func(t *testing.T) {
		config := &Config{
			Version:  1,
			Theme:    "Dark",
			FontSize: 20,
			Window:   WindowConfig{Width: 1024, Height: 768},
			Library:  LibraryView{ViewMode: "list", SortBy: "lastPlayed", OpenPolicy: "multi"},
			Grid:     GridConfig{MinCardWidth: 200, Gap: 8, Padding: 4, ListRowHeight: 32, Overscan: 0},
		}
		want := *config
		presentKeys := map[string]bool{
			"version": true, "theme": true, "fontSize": true,
			"window.width": true, "window.height": true,
			"library.viewMode": true, "library.sortBy": true, "library.openPolicy": true,
			"grid.minCardWidth": true, "grid.gap": true, "grid.padding": true,
			"grid.listRowHeight": true, "grid.overscan": true,
		}

		ApplyMissingDefaults(config, presentKeys)

		if *config != want {
			t.Errorf("config changed: got %+v, want %+v", *config, want)
		}
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errors int
	}{
		{"valid config has no errors", func(c *Config) {}, 0},
		{"invalid version", func(c *Config) { c.Version = 99 }, 1},
		{"invalid theme", func(c *Config) { c.Theme = "NonexistentTheme" }, 1},
		{"fontSize zero is invalid", func(c *Config) { c.FontSize = 0 }, 1},
		{"fontSize not in presets", func(c *Config) { c.FontSize = 15 }, 1},
		{"window width too small", func(c *Config) { c.Window.Width = 800 }, 1},
		{"window height too small", func(c *Config) { c.Window.Height = 400 }, 1},
		{"invalid viewMode", func(c *Config) { c.Library.ViewMode = "grid" }, 1},
		{"invalid sortBy", func(c *Config) { c.Library.SortBy = "date" }, 1},
		{"invalid openPolicy", func(c *Config) { c.Library.OpenPolicy = "many" }, 1},
		{"minCardWidth too small", func(c *Config) { c.Grid.MinCardWidth = 10 }, 1},
		{"negative gap", func(c *Config) { c.Grid.Gap = -1 }, 1},
		{"padding too large", func(c *Config) { c.Grid.Padding = 65 }, 1},
		{"listRowHeight too small", func(c *Config) { c.Grid.ListRowHeight = 10 }, 1},
		{"openHeight too small", func(c *Config) { c.Grid.OpenHeight = 50 }, 1},
		{"negative overscan", func(c *Config) { c.Grid.Overscan = -5 }, 1},
		{"boundary: width 900 is valid", func(c *Config) { c.Window.Width = 900 }, 0},
		{"boundary: gap 0 is valid", func(c *Config) { c.Grid.Gap = 0 }, 0},
		{"boundary: minCardWidth 400 is valid", func(c *Config) { c.Grid.MinCardWidth = 400 }, 0},
		{"boundary: openHeight 120 is valid", func(c *Config) { c.Grid.OpenHeight = 120 }, 0},
		{"multi policy is valid", func(c *Config) { c.Library.OpenPolicy = "multi" }, 0},
		{"multiple errors at once", func(c *Config) {
			*c = Config{
				Version:  99,
				Theme:    "BadTheme",
				FontSize: -1,
				Window:   WindowConfig{Width: 0, Height: 0},
				Library:  LibraryView{ViewMode: "grid", SortBy: "date", OpenPolicy: ""},
				Grid:     GridConfig{MinCardWidth: 0, Gap: -1, Padding: -1, ListRowHeight: 0, OpenHeight: -1, Overscan: -1},
			}
		}, 14},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			errs := ValidateConfig(config, validTestThemes)
			if len(errs) != tc.errors {
				t.Errorf("expected %d errors, got %d: %v", tc.errors, len(errs), errs)
			}

			// Correcting always yields a valid config.
			CorrectConfig(config, validTestThemes)
			if errs := ValidateConfig(config, validTestThemes); len(errs) != 0 {
				t.Errorf("corrected config still invalid: %v", errs)
			}
		})
	}
}

func TestCorrectConfigPreservesValidFields(t *testing.T) {
	config := DefaultConfig()
	config.Theme = "Dark"
	config.Grid.Gap = 4
	config.Grid.MinCardWidth = 5000
	config.Library.OpenPolicy = "multi"

	CorrectConfig(config, validTestThemes)

	if config.Theme != "Dark" {
		t.Errorf("theme: got %q, want Dark", config.Theme)
	}
	if config.Grid.Gap != 4 {
		t.Errorf("grid.gap: got %d, want 4", config.Grid.Gap)
	}
	if config.Grid.MinCardWidth != DefaultConfig().Grid.MinCardWidth {
		t.Errorf("grid.minCardWidth: got %d, want default", config.Grid.MinCardWidth)
	}
	if config.Library.OpenPolicy != "multi" {
		t.Errorf("library.openPolicy: got %q, want multi", config.Library.OpenPolicy)
	}
}

func TestConfigJSONRoundTripThroughDefaults(t *testing.T) {
	data := []byte(`{"library": {"viewMode": "list"}, "grid": {"gap": 0}}`)

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	ApplyMissingDefaults(config, detectPresentKeys(data))

	if config.Library.ViewMode != "list" {
		t.Errorf("viewMode: got %q, want list", config.Library.ViewMode)
	}
	if config.Library.SortBy != "title" {
		t.Errorf("sortBy: got %q, want title", config.Library.SortBy)
	}
	if config.Grid.Gap != 0 {
		t.Errorf("gap: got %d, want 0", config.Grid.Gap)
	}
	if config.Grid.Padding != 16 {
		t.Errorf("padding: got %d, want 16", config.Grid.Padding)
	}
	if errs := ValidateConfig(config, validTestThemes); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}
