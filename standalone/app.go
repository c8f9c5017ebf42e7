package standalone

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/user-none/libview/grid"
	"github.com/user-none/libview/libloader"
	"github.com/user-none/libview/standalone/screens"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// Version is the application version, set at build time with -ldflags.
var Version = "dev"

// DataDirName is the per-user data directory name.
const DataDirName = "libview"

// Options overrides saved settings for one run. Empty fields keep the
// saved values.
type Options struct {
	DataDir     string // replaces the platform data directory
	LibraryPath string // library file to open instead of library.json
	ViewMode    string // "icon" or "list"
	OpenPolicy  string // "single" or "multi"
}

// App is the main application struct that implements ebiten.Game
type App struct {
	ui *ebitenui.UI

	opts  Options
	state AppState

	// Data
	config  *storage.Config
	library *storage.Library

	// Screens
	libraryScreen  *screens.LibraryScreen
	settingsScreen *screens.SettingsScreen
	errorScreen    *screens.ErrorScreen

	// UI managers
	notification      *Notification
	searchOverlay     *SearchOverlay
	inputManager      *InputManager
	screenshotManager *ScreenshotManager
	clipboard         style.Clipboard

	// Error state
	configLoadFailed bool // True if config.json failed to load (don't overwrite on exit)

	// Window tracking for persistence
	windowX, windowY   int
	lastWindowedWidth  int // Last non-fullscreen width (physical pixels)
	lastWindowedHeight int // Last non-fullscreen height (physical pixels)

	// Rebuild pending flag (set by screens, processed at the start of Update)
	rebuildPending bool

	// Screenshot pending flag (set in Update, processed in Draw)
	screenshotPending bool

	// HiDPI: current device scale factor tracked across Layout calls
	currentDPIScale float64

	// Fullscreen: track state so it can be saved on exit even if macOS
	// has already left native fullscreen by the time saveWindowState runs.
	lastFullscreenState bool
}

// Run is the public entry point for the library viewer. It initializes
// storage, configures the window, creates the app, and starts the Ebiten
// game loop.
func Run(opts Options) error {
	storage.Init(DataDirName)
	if opts.DataDir != "" {
		storage.SetBaseDir(opts.DataDir)
	}
	if opts.LibraryPath != "" {
		abs, err := filepath.Abs(opts.LibraryPath)
		if err != nil {
			return fmt.Errorf("failed to resolve library path: %w", err)
		}
		// A library inside an archive is extracted once and the copy is
		// used from then on
		if format, err := libloader.Detect(abs); err == nil && format.IsArchive() {
			if err := storage.EnsureDirectories(); err != nil {
				return fmt.Errorf("failed to create directories: %w", err)
			}
			_, imported, err := readLibrary(abs)
			if err != nil {
				return err
			}
			abs = imported
		}
		storage.SetLibraryPath(abs)
	}

	ebiten.SetWindowTitle("Library")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(640, 480, -1, -1)

	app, err := newApp(opts)
	if err != nil {
		return err
	}

	// Restore window size from saved config (before RunGame to avoid resize flash)
	win := app.config.Window
	ebiten.SetWindowSize(max(win.Width, 640), max(win.Height, 480))
	if win.X != nil && win.Y != nil {
		ebiten.SetWindowPosition(*win.X, *win.Y)
	}
	if win.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(app); err != nil {
		return err
	}

	app.SaveAndClose()
	return nil
}

// newApp creates the application and loads config and library. Load
// failures put the app in the error state rather than failing.
func newApp(opts Options) (*App, error) {
	app := &App{
		opts:  opts,
		state: StateLibrary,
	}

	// Ensure directory structure exists
	if err := storage.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	// Create config/library files if missing
	if err := storage.CreateConfigIfMissing(); err != nil {
		log.Printf("Warning: failed to create config: %v", err)
	}
	if err := storage.CreateLibraryIfMissing(); err != nil {
		log.Printf("Warning: failed to create library: %v", err)
	}

	app.notification = NewNotification()
	app.inputManager = NewInputManager()
	app.screenshotManager = NewScreenshotManager(app.notification)
	app.errorScreen = screens.NewErrorScreen(app)
	app.searchOverlay = NewSearchOverlay(func(text string) {
		if app.state == StateLibrary && app.libraryScreen != nil {
			app.libraryScreen.SetSearchText(text)
			app.rebuildPending = true
		}
	})
	app.searchOverlay.SetPasteSource(app.clipboard.Paste)

	config, err := storage.LoadConfig()
	if err != nil {
		// JSON parse error - show error screen with defaults for display
		log.Printf("Failed to load config: %v", err)
		configPath, _ := storage.GetConfigPath()
		app.config = storage.DefaultConfig()
		app.library = storage.DefaultLibrary()
		app.configLoadFailed = true // Don't overwrite the file on exit
		app.showCorrupted(configPath, app.handleDeleteAndContinue)
		return app, nil
	}
	app.config = config

	// Validate config values against allowed ranges
	if errs := storage.ValidateConfig(app.config, style.ThemeNames()); len(errs) > 0 {
		configPath, _ := storage.GetConfigPath()
		app.library = storage.DefaultLibrary()
		app.configLoadFailed = true
		app.showInvalid(configPath, errs, app.handleResetAndContinue)
		return app, nil
	}

	app.applyConfig()
	app.loadLibrary()
	return app, nil
}

// applyOverrides copies the command line settings onto cfg.
func applyOverrides(cfg *storage.Config, opts Options) {
	if opts.ViewMode != "" {
		cfg.Library.ViewMode = opts.ViewMode
	}
	if opts.OpenPolicy != "" {
		cfg.Library.OpenPolicy = opts.OpenPolicy
	}
}

// applyConfig applies overrides, theme and font size from the loaded config.
func (a *App) applyConfig() {
	applyOverrides(a.config, a.opts)
	style.ApplyThemeByName(a.config.Theme)
	style.ApplyFontSize(storage.ValidFontSize(a.config.FontSize))
}

// loadLibrary loads and validates the library, then shows the library
// screen, or the error screen if the file is corrupt or invalid.
func (a *App) loadLibrary() {
	libraryPath, _ := storage.GetLibraryPath()

	library, err := storage.LoadLibrary()
	if err != nil {
		log.Printf("Failed to load library: %v", err)
		a.library = storage.DefaultLibrary()
		a.showCorrupted(libraryPath, a.handleDeleteAndContinue)
		return
	}

	a.library = library
	if errs := storage.ValidateLibrary(library); len(errs) > 0 {
		a.showInvalid(libraryPath, errs, a.handleLibraryResetAndContinue)
		return
	}
	a.enterLibrary()
}

// enterLibrary switches to the library screen with the current data.
func (a *App) enterLibrary() {
	if a.libraryScreen == nil {
		a.libraryScreen = screens.NewLibraryScreen(a, a.library, a.config)
		a.settingsScreen = screens.NewSettingsScreen(a, a.config)
	} else {
		a.libraryScreen.SetConfig(a.config)
		a.libraryScreen.SetLibrary(a.library)
		a.settingsScreen.SetConfig(a.config)
	}
	a.state = StateLibrary
	a.rebuildCurrentScreen()
}

func (a *App) showCorrupted(path string, onDelete func()) {
	a.errorScreen.SetCorrupted(filepath.Base(path), path, onDelete)
	a.state = StateError
	a.rebuildCurrentScreen()
}

func (a *App) showInvalid(path string, details []string, onReset func()) {
	a.errorScreen.SetInvalid(filepath.Base(path), path, details, onReset)
	a.state = StateError
	a.rebuildCurrentScreen()
}

// saveWindowState saves current window position and size to config
func (a *App) saveWindowState() {
	// Don't overwrite config if it failed to load (user may want to fix it manually)
	if a.configLoadFailed {
		return
	}

	// lastWindowedWidth/Height are only set when not in fullscreen, so if the
	// app was fullscreen for its entire lifetime they remain 0.
	if a.lastWindowedWidth == 0 || a.lastWindowedHeight == 0 {
		return
	}

	// Use lastFullscreenState instead of IsFullscreen() because macOS exits
	// native fullscreen before this handler runs on Cmd+Q.
	s := style.DPIScale()
	a.config.Window.Width = int(float64(a.lastWindowedWidth) / s)
	a.config.Window.Height = int(float64(a.lastWindowedHeight) / s)
	a.config.Window.X = &a.windowX
	a.config.Window.Y = &a.windowY
	a.config.Window.Fullscreen = a.lastFullscreenState

	if err := storage.SaveConfig(a.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// toggleFullscreen toggles between fullscreen and windowed mode
func (a *App) toggleFullscreen() {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	a.lastFullscreenState = ebiten.IsFullscreen()
}

// rebuildCurrentScreen rebuilds the UI for the current state
func (a *App) rebuildCurrentScreen() {
	var container *widget.Container

	switch a.state {
	case StateLibrary:
		if a.ui != nil {
			a.libraryScreen.SaveFocusState(a.ui.GetFocusedWidget())
		}
		container = a.libraryScreen.Build()
	case StateSettings:
		if a.ui != nil {
			a.settingsScreen.SaveFocusState(a.ui.GetFocusedWidget())
		}
		container = a.settingsScreen.Build()
	case StateError:
		container = a.errorScreen.Build()
	default:
		return
	}

	a.ui = &ebitenui.UI{Container: container}
}

// Update implements ebiten.Game
func (a *App) Update() error {
	// Track window position and fullscreen state for save on exit.
	// Layout() handles width/height, but position must be queried here.
	a.windowX, a.windowY = ebiten.WindowPosition()
	a.lastFullscreenState = ebiten.IsFullscreen()

	if a.rebuildPending {
		a.rebuildPending = false
		a.rebuildCurrentScreen()
	}

	// Poll input manager for global keys (F12 screenshot, F11 fullscreen)
	screenshotRequested, fullscreenToggle := a.inputManager.Update()
	if screenshotRequested {
		a.screenshotPending = true
	}
	if fullscreenToggle {
		a.toggleFullscreen()
	}

	if a.ui == nil {
		return nil
	}

	switch a.state {
	case StateLibrary:
		a.updateLibrary()
	case StateSettings:
		nav := a.updateButtonScreen()
		if !a.rebuildPending {
			a.restorePendingFocus(a.settingsScreen)
		}
		if nav.Back {
			a.SwitchToLibrary()
		}
	default:
		a.updateButtonScreen()
	}
	return nil
}

// updateButtonScreen drives screens made only of buttons: directions move
// focus linearly and Activate clicks the focused button.
func (a *App) updateButtonScreen() UINavigation {
	nav := a.inputManager.GetUINavigation()
	switch nav.Direction {
	case grid.DirUp, grid.DirLeft:
		a.ui.ChangeFocus(widget.FOCUS_PREVIOUS)
	case grid.DirDown, grid.DirRight:
		a.ui.ChangeFocus(widget.FOCUS_NEXT)
	}
	if nav.Activate {
		a.clickFocused()
	}
	a.ui.Update()
	return nav
}

// updateLibrary routes input between the search overlay, the toolbar
// widgets and the library screen.
func (a *App) updateLibrary() {
	// Handle search overlay input first
	if a.searchOverlay.IsActive() {
		a.searchOverlay.HandleInput()
	}

	// Check for '/' to activate search (when not already active)
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && !a.searchOverlay.IsActive() {
		a.searchOverlay.Activate()
	}

	// ESC clears search if visible or active (before normal back handling)
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && (a.searchOverlay.IsVisible() || a.searchOverlay.IsActive()) {
		a.searchOverlay.Clear()
		return
	}

	// Skip navigation input if search is capturing
	var nav UINavigation
	searching := a.searchOverlay.IsActive()
	if !searching {
		nav = a.inputManager.GetUINavigation()
	}

	a.ui.Update()
	if !a.rebuildPending {
		a.restorePendingFocus(a.libraryScreen)
	}

	// Arrow keys hand control from the toolbar back to the items
	focused := a.ui.GetFocusedWidget()
	if focused != nil && nav.Direction != grid.DirNone {
		focused.Focus(false)
		focused = nil
	}
	if nav.Activate && focused != nil {
		a.clickFocused()
		nav.Activate = false
	}

	a.libraryScreen.Update(screens.LibraryInput{
		Direction:     nav.Direction,
		Activate:      nav.Activate,
		Back:          nav.Back,
		Page:          nav.Page,
		Shortcuts:     !searching,
		WidgetFocused: focused != nil,
	})

	if path, ok := a.libraryScreen.PendingLibraryPath(); ok {
		a.OpenLibraryFile(path)
	}
}

// clickFocused activates the focused button (gamepad A/Cross).
func (a *App) clickFocused() {
	if btn, ok := a.ui.GetFocusedWidget().(*widget.Button); ok {
		btn.Click()
	}
}

// restorePendingFocus restores focus to a pending button if one exists
func (a *App) restorePendingFocus(screen screens.FocusRestorer) {
	btn := screen.GetPendingFocusButton()
	if btn != nil {
		btn.Focus(true)
		screen.ClearPendingFocus()
	}
}

// Draw implements ebiten.Game
func (a *App) Draw(screen *ebiten.Image) {
	if a.ui != nil {
		a.ui.Draw(screen)
	}
	if a.state == StateLibrary && a.libraryScreen != nil {
		a.libraryScreen.Draw(screen)
		a.searchOverlay.Draw(screen)
	}
	a.notification.Draw(screen)

	// Take screenshot if pending (after everything is drawn)
	if a.screenshotPending {
		a.screenshotPending = false
		if _, err := a.screenshotManager.TakeScreenshot(screen, time.Now()); err != nil {
			log.Printf("Screenshot failed: %v", err)
		}
	}
}

// Layout implements ebiten.Game
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	// Query the device scale factor for HiDPI/Retina rendering
	s := 1.0
	if m := ebiten.Monitor(); m != nil {
		s = m.DeviceScaleFactor()
	}
	if s != a.currentDPIScale {
		a.currentDPIScale = s
		style.SetDPIScale(s)
		if a.libraryScreen != nil {
			a.libraryScreen.ClearArtworkCache()
		}
		a.rebuildPending = true
	}

	// Return physical pixel dimensions so the UI renders at full resolution
	w := int(float64(outsideWidth) * s)
	h := int(float64(outsideHeight) * s)
	// Track windowed dimensions separately so fullscreen doesn't overwrite them.
	if !ebiten.IsFullscreen() {
		a.lastWindowedWidth = w
		a.lastWindowedHeight = h
	}
	return w, h
}

// ScreenCallback implementations

// Exit closes the application
func (a *App) Exit() {
	a.SaveAndClose()
	// Clean exit using os.Exit to avoid log.Fatal's stack trace
	os.Exit(0)
}

// RequestRebuild triggers a UI rebuild for the current screen at the start
// of the next Update. Focus restoration is handled after ui.Update().
func (a *App) RequestRebuild() {
	a.rebuildPending = true
}

// ShowNotification displays a short message in the corner of the window.
func (a *App) ShowNotification(message string) {
	a.notification.ShowDefault(message)
}

// GetPlaceholderImageData returns the raw embedded placeholder image data
func (a *App) GetPlaceholderImageData() []byte {
	return placeholderImageData
}

// SwitchToLibrary returns to the library screen. Grid settings changed
// meanwhile take effect in the rebuild.
func (a *App) SwitchToLibrary() {
	if a.libraryScreen == nil {
		return
	}
	a.state = StateLibrary
	a.libraryScreen.SetPendingFocus("toolbar-settings")
	a.rebuildCurrentScreen()
}

// SwitchToSettings transitions to the settings screen
func (a *App) SwitchToSettings() {
	if a.settingsScreen == nil {
		return
	}
	a.state = StateSettings
	a.settingsScreen.OnEnter()
	a.rebuildCurrentScreen()
}

// OpenLibraryFile switches to the library stored at path. The current
// library is saved first. A file that cannot be read leaves the current
// library in place.
func (a *App) OpenLibraryFile(path string) {
	library, savePath, err := readLibrary(path)
	if err != nil {
		log.Printf("Failed to open library %s: %v", path, err)
		a.notification.ShowDefault(fmt.Sprintf("Could not open %s", filepath.Base(path)))
		return
	}
	if errs := storage.ValidateLibrary(library); len(errs) > 0 {
		storage.CorrectLibrary(library)
	}

	if err := storage.SaveLibrary(a.library); err != nil {
		log.Printf("Failed to save library: %v", err)
	}

	storage.SetLibraryPath(savePath)
	a.library = library
	a.searchOverlay.Clear()
	a.libraryScreen.SetLibrary(library)
	a.rebuildPending = true
	a.notification.ShowDefault(fmt.Sprintf("Opened %s (%d games)", filepath.Base(path), library.GameCount()))
}

// readLibrary loads the library at path. A library inside an archive is
// extracted into the imports directory and savePath points at that copy.
func readLibrary(path string) (library *storage.Library, savePath string, err error) {
	file, err := libloader.Load(path)
	if err != nil {
		return nil, "", err
	}
	library, err = storage.DecodeLibrary(file.Data)
	if err != nil {
		return nil, "", err
	}
	if !file.Archived() {
		return library, path, nil
	}

	savePath, err = storage.GetImportedLibraryPath(file.Name)
	if err != nil {
		return nil, "", err
	}
	if err := storage.AtomicWriteJSON(savePath, library); err != nil {
		return nil, "", fmt.Errorf("failed to save imported library: %w", err)
	}
	return library, savePath, nil
}

// handleDeleteAndContinue deletes the corrupted file, replaces it with
// defaults and continues.
func (a *App) handleDeleteAndContinue() {
	if a.configLoadFailed {
		if err := storage.DeleteConfig(); err != nil {
			log.Printf("Failed to delete config: %v", err)
		}
		a.config = storage.DefaultConfig()
		if err := storage.SaveConfig(a.config); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		a.configLoadFailed = false
		a.applyConfig()

		// Now try loading library
		a.loadLibrary()
		return
	}

	if err := storage.DeleteLibrary(); err != nil {
		log.Printf("Failed to delete library: %v", err)
	}
	a.library = storage.DefaultLibrary()
	if err := storage.SaveLibrary(a.library); err != nil {
		log.Printf("Failed to save library: %v", err)
	}
	a.enterLibrary()
}

// handleResetAndContinue corrects invalid config fields to defaults, saves,
// and proceeds to load the library.
func (a *App) handleResetAndContinue() {
	storage.CorrectConfig(a.config, style.ThemeNames())
	if err := storage.SaveConfig(a.config); err != nil {
		log.Printf("Failed to save corrected config: %v", err)
	}
	a.configLoadFailed = false
	a.applyConfig()
	a.loadLibrary()
}

// handleLibraryResetAndContinue corrects invalid library-level fields,
// saves, and proceeds to the library screen.
func (a *App) handleLibraryResetAndContinue() {
	storage.CorrectLibrary(a.library)
	if err := storage.SaveLibrary(a.library); err != nil {
		log.Printf("Failed to save corrected library: %v", err)
	}
	a.enterLibrary()
}

// SaveAndClose saves window state and library before exit
func (a *App) SaveAndClose() {
	a.saveWindowState()

	// A library that failed to load is left untouched on disk
	if a.state == StateError {
		return
	}
	if err := storage.SaveLibrary(a.library); err != nil {
		log.Printf("Failed to save library: %v", err)
	}
}
