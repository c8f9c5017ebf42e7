package screens

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/libview/standalone/style"
)

// ErrorMode distinguishes between types of startup file errors
type ErrorMode int

const (
	// ErrorModeCorrupted indicates the JSON file could not be parsed
	ErrorModeCorrupted ErrorMode = iota
	// ErrorModeInvalid indicates the JSON parsed but contains invalid values
	ErrorModeInvalid
)

// maxErrorDetails caps the listed validation errors so the buttons stay on screen.
const maxErrorDetails = 5

// errorCopy is the text shown for one error mode.
type errorCopy struct {
	title   string
	message string
	help    string
	action  string
}

func copyFor(mode ErrorMode, filename string) errorCopy {
	if mode == ErrorModeInvalid {
		return errorCopy{
			title:   "Invalid Settings",
			message: fmt.Sprintf("The file \"%s\" contains invalid settings:", filename),
			help:    "You can reset invalid settings to defaults, or exit to manually fix the file.",
			action:  "Reset and Continue",
		}
	}
	return errorCopy{
		title:   "Configuration Error",
		message: fmt.Sprintf("The file \"%s\" is invalid or corrupted.", filename),
		help:    "You can delete the file and start fresh, or exit to manually fix the file.",
		action:  "Delete and Continue",
	}
}

// detailLines returns the validation errors to list, with a "+N more" line
// when there are more than fit.
func detailLines(details []string) []string {
	if len(details) <= maxErrorDetails {
		return details
	}
	lines := append([]string(nil), details[:maxErrorDetails]...)
	return append(lines, fmt.Sprintf("+%d more", len(details)-maxErrorDetails))
}

// ErrorScreen displays startup errors for corrupted or invalid config/library files
type ErrorScreen struct {
	callback  ScreenCallback
	filename  string // "config.json" or "library.json"
	filepath  string // Full path to the file
	mode      ErrorMode
	details   []string
	onRecover func() // Delete (corrupted) or reset (invalid), then continue
}

// NewErrorScreen creates a new error screen
func NewErrorScreen(callback ScreenCallback) *ErrorScreen {
	return &ErrorScreen{callback: callback}
}

// SetCorrupted shows a parse failure. onDelete removes the file and continues.
func (s *ErrorScreen) SetCorrupted(filename, filepath string, onDelete func()) {
	s.filename = filename
	s.filepath = filepath
	s.mode = ErrorModeCorrupted
	s.details = nil
	s.onRecover = onDelete
}

// SetInvalid shows validation errors. onReset corrects the values and continues.
func (s *ErrorScreen) SetInvalid(filename, filepath string, details []string, onReset func()) {
	s.filename = filename
	s.filepath = filepath
	s.mode = ErrorModeInvalid
	s.details = details
	s.onRecover = onReset
}

// Mode returns the kind of error being shown.
func (s *ErrorScreen) Mode() ErrorMode {
	return s.mode
}

// Build creates the error screen UI
func (s *ErrorScreen) Build() *widget.Container {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(style.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := style.CenteredContainer(style.DefaultSpacing)
	text := copyFor(s.mode, s.filename)

	content.AddChild(centeredText(text.title, style.Text))
	content.AddChild(centeredText(text.message, style.Text))
	for _, line := range detailLines(s.details) {
		content.AddChild(centeredText(line, style.TextSecondary))
	}
	if s.filepath != "" {
		content.AddChild(centeredText(truncatePath(s.filepath, maxPathRunes), style.TextSecondary))
	}
	content.AddChild(centeredText(text.help, style.TextSecondary))

	buttons := style.ButtonRow()
	buttons.AddChild(style.TextButton(text.action, style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		if s.onRecover != nil {
			s.onRecover()
		}
	}))
	buttons.AddChild(style.TextButton("Exit", style.ButtonPaddingMedium, func(args *widget.ButtonClickedEventArgs) {
		s.callback.Exit()
	}))
	content.AddChild(buttons)

	rootContainer.AddChild(content)
	return rootContainer
}

func centeredText(s string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, style.FontFace(), c),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
	)
}

// maxPathRunes is how much of a file path the error screen shows.
const maxPathRunes = 60

// truncatePath keeps the end of path, where the file name is, cutting the
// front to fit maxRunes and marking the cut with an ellipsis.
func truncatePath(path string, maxRunes int) string {
	runes := []rune(path)
	if len(runes) <= maxRunes {
		return path
	}
	if maxRunes <= len(ellipsis) {
		return string(runes[len(runes)-max(0, maxRunes):])
	}
	keep := maxRunes - len(ellipsis)
	return ellipsis + string(runes[len(runes)-keep:])
}
