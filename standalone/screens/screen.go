// Package screens builds the ebitenui screens of the library viewer.
package screens

import "github.com/ebitenui/ebitenui/widget"

// ScreenCallback provides the app services screens need
type ScreenCallback interface {
	Exit()
	RequestRebuild()                 // Request UI rebuild after state changes
	ShowNotification(message string) // Brief message at the bottom-right
	GetPlaceholderImageData() []byte // Get raw placeholder image data for missing artwork
	OpenLibraryFile(path string)     // Load a different library.json
	SwitchToLibrary()
	SwitchToSettings()
}

// FocusRestorer is implemented by screens that support focus restoration after rebuilds
type FocusRestorer interface {
	// GetPendingFocusButton returns the button that should receive focus after rebuild
	GetPendingFocusButton() *widget.Button
	// ClearPendingFocus clears the pending focus state
	ClearPendingFocus()
}
