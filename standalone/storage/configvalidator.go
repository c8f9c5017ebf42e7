package storage

import (
	"encoding/json"
	"fmt"
)

// detectPresentKeys unmarshals JSON bytes to determine which config keys
// are explicitly present in the file. Returns a flat set of dotted-path keys
// (e.g., "window.width", "grid.gap"). Only checks non-omitempty fields
// that have validation rules.
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return present
	}

	// Top-level keys
	topKeys := []string{"version", "theme", "fontSize"}
	for _, k := range topKeys {
		if _, ok := raw[k]; ok {
			present[k] = true
		}
	}

	detectNestedKeys(raw, present, "window", "width", "height")
	detectNestedKeys(raw, present, "library", "viewMode", "sortBy", "openPolicy")
	detectNestedKeys(raw, present, "grid", "minCardWidth", "gap", "padding", "listRowHeight", "overscan")

	return present
}

// detectNestedKeys marks section.key present for each key found inside the
// section object.
func detectNestedKeys(raw map[string]json.RawMessage, present map[string]bool, section string, keys ...string) {
	sectionRaw, ok := raw[section]
	if !ok {
		return
	}
	var nested map[string]json.RawMessage
	if json.Unmarshal(sectionRaw, &nested) != nil {
		return
	}
	for _, k := range keys {
		if _, ok := nested[k]; ok {
			present[section+"."+k] = true
		}
	}
}

// ApplyMissingDefaults sets default values for config fields that are absent
// from the JSON file. Only truly missing fields get defaults, preserving
// intentional zero values (e.g., gap=0).
func ApplyMissingDefaults(config *Config, presentKeys map[string]bool) {
	defaults := DefaultConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["theme"] {
		config.Theme = defaults.Theme
	}
	if !presentKeys["fontSize"] {
		config.FontSize = defaults.FontSize
	}
	if !presentKeys["window.width"] {
		config.Window.Width = defaults.Window.Width
	}
	if !presentKeys["window.height"] {
		config.Window.Height = defaults.Window.Height
	}
	if !presentKeys["library.viewMode"] {
		config.Library.ViewMode = defaults.Library.ViewMode
	}
	if !presentKeys["library.sortBy"] {
		config.Library.SortBy = defaults.Library.SortBy
	}
	if !presentKeys["library.openPolicy"] {
		config.Library.OpenPolicy = defaults.Library.OpenPolicy
	}
	if !presentKeys["grid.minCardWidth"] {
		config.Grid.MinCardWidth = defaults.Grid.MinCardWidth
	}
	if !presentKeys["grid.gap"] {
		config.Grid.Gap = defaults.Grid.Gap
	}
	if !presentKeys["grid.padding"] {
		config.Grid.Padding = defaults.Grid.Padding
	}
	if !presentKeys["grid.listRowHeight"] {
		config.Grid.ListRowHeight = defaults.Grid.ListRowHeight
	}
	if !presentKeys["grid.overscan"] {
		config.Grid.Overscan = defaults.Grid.Overscan
	}
}

func validViewMode(mode string) bool {
	return mode == "icon" || mode == "list"
}

func validSortBy(sortBy string) bool {
	for _, s := range SortOrders {
		if sortBy == s {
			return true
		}
	}
	return false
}

func validOpenPolicy(policy string) bool {
	return policy == "single" || policy == "multi"
}

func validOpenHeight(h int) bool {
	return h == 0 || (h >= 120 && h <= 2000)
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

// ValidateConfig checks all config fields against valid ranges and returns
// human-readable error descriptions. An empty slice means the config is valid.
// validThemes should be the list of known theme names.
func ValidateConfig(config *Config, validThemes []string) []string {
	var errors []string

	// version
	if config.Version != 1 {
		errors = append(errors, fmt.Sprintf("version: %d (valid: 1)", config.Version))
	}

	// theme
	themeValid := false
	for _, t := range validThemes {
		if config.Theme == t {
			themeValid = true
			break
		}
	}
	if !themeValid {
		errors = append(errors, fmt.Sprintf("theme: %q (valid: %v)", config.Theme, validThemes))
	}

	// fontSize
	fontSizeValid := false
	for _, p := range FontSizePresets {
		if config.FontSize == p {
			fontSizeValid = true
			break
		}
	}
	if !fontSizeValid {
		errors = append(errors, fmt.Sprintf("fontSize: %d (valid: %v)", config.FontSize, FontSizePresets))
	}

	// window.width
	if config.Window.Width < 900 {
		errors = append(errors, fmt.Sprintf("window.width: %d (valid: >= 900)", config.Window.Width))
	}

	// window.height
	if config.Window.Height < 650 {
		errors = append(errors, fmt.Sprintf("window.height: %d (valid: >= 650)", config.Window.Height))
	}

	errors = append(errors, validateLayout(config)...)

	return errors
}

// CorrectConfig resets any invalid fields to their defaults from DefaultConfig().
// Valid fields are preserved. validThemes should be the list of known theme names.
func CorrectConfig(config *Config, validThemes []string) *Config {
	defaults := DefaultConfig()

	// version
	if config.Version != 1 {
		config.Version = defaults.Version
	}

	// theme
	themeValid := false
	for _, t := range validThemes {
		if config.Theme == t {
			themeValid = true
			break
		}
	}
	if !themeValid {
		config.Theme = defaults.Theme
	}

	// fontSize
	fontSizeValid := false
	for _, p := range FontSizePresets {
		if config.FontSize == p {
			fontSizeValid = true
			break
		}
	}
	if !fontSizeValid {
		config.FontSize = defaults.FontSize
	}

	// window.width
	if config.Window.Width < 900 {
		config.Window.Width = defaults.Window.Width
	}

	// window.height
	if config.Window.Height < 650 {
		config.Window.Height = defaults.Window.Height
	}

	correctLayout(config)

	return config
}

// validateLayout checks the settings that feed the layout engine: the
// library view choices and the grid block.
func validateLayout(config *Config) []string {
	var problems []string

	// library.viewMode
	if !validViewMode(config.Library.ViewMode) {
		problems = append(problems, fmt.Sprintf("library.viewMode: %q (valid: \"icon\", \"list\")", config.Library.ViewMode))
	}

	// library.sortBy
	if !validSortBy(config.Library.SortBy) {
		problems = append(problems, fmt.Sprintf("library.sortBy: %q (valid: \"title\", \"lastPlayed\", \"playTime\")", config.Library.SortBy))
	}

	// library.openPolicy
	if !validOpenPolicy(config.Library.OpenPolicy) {
		problems = append(problems, fmt.Sprintf("library.openPolicy: %q (valid: \"single\", \"multi\")", config.Library.OpenPolicy))
	}

	// grid
	g := config.Grid
	if !inRange(g.MinCardWidth, 80, 400) {
		problems = append(problems, fmt.Sprintf("grid.minCardWidth: %d (valid: 80-400)", g.MinCardWidth))
	}
	if !inRange(g.Gap, 0, 64) {
		problems = append(problems, fmt.Sprintf("grid.gap: %d (valid: 0-64)", g.Gap))
	}
	if !inRange(g.Padding, 0, 64) {
		problems = append(problems, fmt.Sprintf("grid.padding: %d (valid: 0-64)", g.Padding))
	}
	if !inRange(g.ListRowHeight, 24, 120) {
		problems = append(problems, fmt.Sprintf("grid.listRowHeight: %d (valid: 24-120)", g.ListRowHeight))
	}
	if !validOpenHeight(g.OpenHeight) {
		problems = append(problems, fmt.Sprintf("grid.openHeight: %d (valid: 0 or 120-2000)", g.OpenHeight))
	}
	if !inRange(g.Overscan, 0, 2000) {
		problems = append(problems, fmt.Sprintf("grid.overscan: %d (valid: 0-2000)", g.Overscan))
	}

	return problems
}

// correctLayout resets invalid layout settings to their defaults.
func correctLayout(config *Config) {
	defaults := DefaultConfig()

	if !validViewMode(config.Library.ViewMode) {
		config.Library.ViewMode = defaults.Library.ViewMode
	}
	if !validSortBy(config.Library.SortBy) {
		config.Library.SortBy = defaults.Library.SortBy
	}
	if !validOpenPolicy(config.Library.OpenPolicy) {
		config.Library.OpenPolicy = defaults.Library.OpenPolicy
	}

	// grid
	if !inRange(config.Grid.MinCardWidth, 80, 400) {
		config.Grid.MinCardWidth = defaults.Grid.MinCardWidth
	}
	if !inRange(config.Grid.Gap, 0, 64) {
		config.Grid.Gap = defaults.Grid.Gap
	}
	if !inRange(config.Grid.Padding, 0, 64) {
		config.Grid.Padding = defaults.Grid.Padding
	}
	if !inRange(config.Grid.ListRowHeight, 24, 120) {
		config.Grid.ListRowHeight = defaults.Grid.ListRowHeight
	}
	if !validOpenHeight(config.Grid.OpenHeight) {
		config.Grid.OpenHeight = defaults.Grid.OpenHeight
	}
	if !inRange(config.Grid.Overscan, 0, 2000) {
		config.Grid.Overscan = defaults.Grid.Overscan
	}
}
