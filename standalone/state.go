package standalone

// AppState represents the current state of the application
type AppState int

const (
	// StateLibrary is the main library screen showing all games
	StateLibrary AppState = iota
	// StateSettings is the settings screen
	StateSettings
	// StateError shows a startup error (corrupted or invalid config/library)
	StateError
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StateLibrary:
		return "Library"
	case StateSettings:
		return "Settings"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}
