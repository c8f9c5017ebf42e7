package standalone

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/libview/grid"
	"github.com/user-none/libview/standalone/style"
)

// UINavigation represents the result of UI input polling
type UINavigation struct {
	Direction grid.Direction
	Activate  bool // A/Cross button just pressed
	Back      bool // ESC or B/Circle button just pressed
	Page      int  // -1 for LB, +1 for RB
}

// InputManager handles all input for UI navigation.
// It tracks gamepad state, handles repeat navigation, and provides
// a clean interface for UI code to query input state.
type InputManager struct {
	// Navigation state for repeat handling
	direction   grid.Direction
	startTime   time.Time     // When direction was first pressed
	lastMove    time.Time     // When last move occurred
	repeatDelay time.Duration // Current repeat interval
}

// NewInputManager creates a new input manager
func NewInputManager() *InputManager {
	return &InputManager{
		repeatDelay: style.NavStartInterval,
	}
}

// Update polls input state. Should be called once per frame.
// Returns global key states: F12 screenshot and F11 fullscreen toggle.
func (im *InputManager) Update() (screenshotRequested, fullscreenToggle bool) {
	screenshotRequested = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	fullscreenToggle = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	return screenshotRequested, fullscreenToggle
}

// GetUINavigation returns the current UI navigation state.
// This handles keyboard arrow keys and gamepad D-pad/analog stick with repeat navigation,
// and A/B/shoulder button presses.
func (im *InputManager) GetUINavigation() UINavigation {
	result := UINavigation{}

	// Navigation direction flags - keyboard and gamepad both contribute
	navUp := ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	navDown := ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	navLeft := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	navRight := ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	// Gamepad navigation (if connected)
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	var gamepadID ebiten.GamepadID
	hasGamepad := len(gamepadIDs) > 0
	if hasGamepad {
		gamepadID = gamepadIDs[0]

		// D-pad
		navUp = navUp || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftTop)
		navDown = navDown || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftBottom)
		navLeft = navLeft || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftLeft)
		navRight = navRight || ebiten.IsStandardGamepadButtonPressed(gamepadID, ebiten.StandardGamepadButtonLeftRight)

		// Analog stick (0.5 threshold for UI)
		axisY := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickVertical)
		axisX := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		navUp = navUp || axisY < -0.5
		navDown = navDown || axisY > 0.5
		navLeft = navLeft || axisX < -0.5
		navRight = navRight || axisX > 0.5
	}

	result.Direction = im.step(desiredDirection(navUp, navDown, navLeft, navRight), time.Now())

	// Activate: A button (gamepad only - Enter is handled by the screen or ebitenui)
	if hasGamepad {
		result.Activate = inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonRightBottom)
	}

	// Back: ESC (keyboard) or B button (gamepad)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		result.Back = true
	}
	if hasGamepad && inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonRightRight) {
		result.Back = true
	}

	// Page: shoulder buttons
	if hasGamepad {
		if inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonFrontTopLeft) {
			result.Page = -1
		}
		if inpututil.IsStandardGamepadButtonJustPressed(gamepadID, ebiten.StandardGamepadButtonFrontTopRight) {
			result.Page = 1
		}
	}

	return result
}

// desiredDirection picks one direction from the pressed set. Vertical takes
// priority for menu-like behavior.
func desiredDirection(up, down, left, right bool) grid.Direction {
	switch {
	case up:
		return grid.DirUp
	case down:
		return grid.DirDown
	case left:
		return grid.DirLeft
	case right:
		return grid.DirRight
	}
	return grid.DirNone
}

// step advances the repeat state for the direction held at now and returns
// the direction to move this frame, or DirNone.
func (im *InputManager) step(desired grid.Direction, now time.Time) grid.Direction {
	switch {
	case desired == grid.DirNone:
		// No direction pressed - reset state
		im.direction = grid.DirNone
		im.repeatDelay = style.NavStartInterval
		return grid.DirNone

	case desired != im.direction:
		// Direction changed - move immediately and start tracking
		im.direction = desired
		im.startTime = now
		im.lastMove = now
		im.repeatDelay = style.NavStartInterval
		return desired
	}

	// Same direction held - check for repeat
	if now.Sub(im.startTime) < style.NavInitialDelay || now.Sub(im.lastMove) < im.repeatDelay {
		return grid.DirNone
	}
	im.lastMove = now

	// Accelerate (decrease interval)
	im.repeatDelay -= style.NavAcceleration
	if im.repeatDelay < style.NavMinInterval {
		im.repeatDelay = style.NavMinInterval
	}
	return desired
}
