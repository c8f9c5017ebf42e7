package screens

import "github.com/ebitenui/ebitenui/widget"

// focusRegistry remembers which toolbar button had focus so the focus
// survives a rebuild. Embed it in screens that rebuild on every state change.
type focusRegistry struct {
	// Button references for focus restoration (maps key to button)
	focusButtons map[string]*widget.Button

	// Key of button to restore focus to after rebuild
	pendingFocus string
}

// registerFocusButton registers a button for focus restoration.
// Call this during Build() for each focusable button.
func (f *focusRegistry) registerFocusButton(key string, btn *widget.Button) {
	if f.focusButtons == nil {
		f.focusButtons = make(map[string]*widget.Button)
	}
	f.focusButtons[key] = btn
}

// clearFocusButtons clears all registered focus buttons.
// Call this at the start of Build() before registering new buttons.
func (f *focusRegistry) clearFocusButtons() {
	f.focusButtons = make(map[string]*widget.Button)
}

// SetPendingFocus sets the key of the button to focus after rebuild.
func (f *focusRegistry) SetPendingFocus(key string) {
	f.pendingFocus = key
}

// SaveFocusState records the key of the registered button that currently
// has focus. Does nothing if a pending focus is already set.
func (f *focusRegistry) SaveFocusState(focused widget.Focuser) {
	if f.pendingFocus != "" || focused == nil {
		return
	}
	focusedWidget := focused.GetWidget()
	if focusedWidget == nil {
		return
	}
	for key, btn := range f.focusButtons {
		if btn.GetWidget() == focusedWidget {
			f.pendingFocus = key
			return
		}
	}
}

// GetPendingFocusButton returns the button that should receive focus after rebuild.
// Returns nil if no pending focus or button not found.
func (f *focusRegistry) GetPendingFocusButton() *widget.Button {
	if f.pendingFocus == "" {
		return nil
	}
	return f.focusButtons[f.pendingFocus]
}

// ClearPendingFocus clears the pending focus state.
func (f *focusRegistry) ClearPendingFocus() {
	f.pendingFocus = ""
}
