package screens

import (
	"errors"
	"fmt"
	"image"
	"log"
	"strings"
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"
	"github.com/user-none/libview/grid"
	"github.com/user-none/libview/standalone/storage"
	"github.com/user-none/libview/standalone/style"
)

// LibraryInput is the navigation state the app hands to the library screen
// each frame.
type LibraryInput struct {
	Direction grid.Direction
	Activate  bool
	Back      bool
	Page      int // -1 or +1 to scroll a page

	// Shortcuts is false while another overlay (search) owns the keyboard.
	Shortcuts bool
	// WidgetFocused is true when a toolbar button has keyboard focus, in
	// which case Enter belongs to that button.
	WidgetFocused bool
}

var sortLabels = map[string]string{
	storage.SortTitle:      "Title",
	storage.SortLastPlayed: "Last Played",
	storage.SortPlayTime:   "Play Time",
}

// LibraryScreen displays the game library as a windowed grid or list.
// Only the items the engine reports as visible are drawn; the widget tree
// holds the toolbar, the alphabet rail and the scrollbar, plus an empty
// container whose rectangle the items are painted into.
type LibraryScreen struct {
	focusRegistry

	callback ScreenCallback
	library  *storage.Library
	config   *storage.Config

	engine     *grid.Engine
	games      []*storage.GameEntry
	searchText string
	selectedID string

	// Widgets from the last Build
	gridArea    *widget.Container
	listHeader  *widget.Container
	vSlider     *widget.Slider
	countLabel  *widget.Text
	railButtons map[string]*widget.Button
	sliderValue int

	areaSize image.Point
	listCols listColumns

	cardArt   *artworkCache
	detailArt *artworkCache
	clipboard style.Clipboard

	// Paths chosen in the native open dialog, which runs off the UI goroutine
	openPaths chan string
}

// NewLibraryScreen creates a new library screen
func NewLibraryScreen(callback ScreenCallback, library *storage.Library, config *storage.Config) *LibraryScreen {
	placeholder := callback.GetPlaceholderImageData()
	s := &LibraryScreen{
		callback:  callback,
		library:   library,
		config:    config,
		cardArt:   newArtworkCache(placeholder),
		detailArt: newArtworkCache(placeholder),
		openPaths: make(chan string, 1),
	}
	s.engine = grid.New(engineOptions(config))
	s.refreshItems()
	return s
}

// engineOptions converts the persisted view settings into engine options in
// physical pixels.
func engineOptions(cfg *storage.Config) grid.Options {
	g := cfg.Grid
	opts := grid.Options{
		Mode:           grid.ParseMode(cfg.Library.ViewMode),
		MinColumns:     2,
		MinCardWidth:   style.Px(g.MinCardWidth),
		Gap:            style.Px(g.Gap),
		Padding:        style.Px(g.Padding),
		OpenHeight:     style.Px(g.OpenHeight),
		OverscanTop:    style.Px(g.Overscan),
		OverscanBottom: style.Px(g.Overscan),
		Policy:         grid.ParseOpenPolicy(cfg.Library.OpenPolicy),
	}
	if opts.Mode == grid.ModeList {
		opts.ClosedHeight = style.PxFont(g.ListRowHeight)
	} else {
		// Box art is roughly 3:4, with the title line underneath
		opts.ClosedHeightFor = func(cardWidth int) int {
			return cardWidth*4/3 + style.IconCardTextHeight
		}
	}
	return opts
}

// Engine returns the layout engine backing the screen.
func (s *LibraryScreen) Engine() *grid.Engine {
	return s.engine
}

// SetLibrary replaces the library, for example after opening another file.
func (s *LibraryScreen) SetLibrary(library *storage.Library) {
	s.library = library
	s.selectedID = ""
	s.ClearArtworkCache()
	s.refreshItems()
	s.engine.ScrollTo(0)
}

// SetConfig updates the config reference
func (s *LibraryScreen) SetConfig(config *storage.Config) {
	s.config = config
	s.engine.SetOptions(engineOptions(config))
	s.refreshItems()
}

// ClearArtworkCache drops every cached artwork image.
func (s *LibraryScreen) ClearArtworkCache() {
	s.cardArt.clear()
	s.detailArt.clear()
}

// SetSearchText sets the search filter text and resets the scroll position.
func (s *LibraryScreen) SetSearchText(text string) {
	if text == s.searchText {
		return
	}
	s.searchText = text
	s.refreshItems()
	s.engine.ScrollTo(0)
}

// refreshItems re-queries the library and hands the new sequence to the
// engine. The layout is committed immediately so indexes from hit testing
// always agree with s.games.
func (s *LibraryScreen) refreshItems() {
	s.games = s.library.GetGamesSortedFiltered(s.config.Library.SortBy, s.config.Library.FavoritesFilter, s.searchText)
	items := make([]grid.Item, len(s.games))
	for i, g := range s.games {
		items[i] = g
	}
	s.engine.SetItems(items)
	s.engine.Commit()

	if s.selectedID != "" && s.engine.IndexOf(s.selectedID) < 0 {
		s.selectedID = ""
	}
}

func (s *LibraryScreen) saveConfig() {
	if err := storage.SaveConfig(s.config); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
}

// Build creates the library screen UI
func (s *LibraryScreen) Build() *widget.Container {
	s.clearFocusButtons()
	s.gridArea = nil
	s.listHeader = nil
	s.vSlider = nil
	s.railButtons = nil
	s.areaSize = image.Point{}

	s.engine.SetOptions(engineOptions(s.config))
	s.engine.Commit()

	rootContainer := style.ScreenContainer()
	innerContainer := style.ScreenContentContainer([]bool{false, true}) // toolbar=fixed, content=stretch
	innerContainer.AddChild(s.buildToolbar())

	switch {
	case s.library.GameCount() == 0:
		innerContainer.AddChild(style.EmptyState("No games in library", "Use Open to choose a library file", nil))
	case len(s.games) == 0 && s.searchText != "":
		innerContainer.AddChild(style.EmptyState("No matches found", "Try a different search term or press ESC to clear", nil))
	case len(s.games) == 0:
		innerContainer.AddChild(style.EmptyState("No favorites yet", "Turn off the favorites filter to see all games", nil))
	default:
		innerContainer.AddChild(s.buildBody())
	}

	rootContainer.AddChild(innerContainer)
	return rootContainer
}

// buildToolbar creates the library toolbar
func (s *LibraryScreen) buildToolbar() *widget.Container {
	// Use GridLayout with 3 columns: left (view toggles), center (sort/filters), right (file actions)
	toolbar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Stretch([]bool{false, true, false}, nil),
			widget.GridLayoutOpts.Spacing(style.SmallSpacing, 0),
		)),
	)

	// LEFT SECTION: View mode toggles and count
	leftSection := style.ButtonRow()

	iconViewBtn := style.ToggleButton("Icon", s.config.Library.ViewMode != "list", func(args *widget.ButtonClickedEventArgs) {
		s.setViewMode("icon")
		s.SetPendingFocus("toolbar-icon")
	})
	s.registerFocusButton("toolbar-icon", iconViewBtn)
	leftSection.AddChild(iconViewBtn)

	listViewBtn := style.ToggleButton("List", s.config.Library.ViewMode == "list", func(args *widget.ButtonClickedEventArgs) {
		s.setViewMode("list")
		s.SetPendingFocus("toolbar-list")
	})
	s.registerFocusButton("toolbar-list", listViewBtn)
	leftSection.AddChild(listViewBtn)

	s.countLabel = widget.NewText(
		widget.TextOpts.Text(s.countText(), style.FontFace(), style.TextSecondary),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	leftSection.AddChild(s.countLabel)

	toolbar.AddChild(leftSection)

	// CENTER SECTION: Sort, favorites and open policy
	centerSection := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	centerContent := style.ButtonRow()
	centerContent.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	sortLabel := widget.NewText(
		widget.TextOpts.Text("Sort:", style.FontFace(), style.Text),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
	centerContent.AddChild(sortLabel)

	sortText, ok := sortLabels[s.config.Library.SortBy]
	if !ok {
		sortText = sortLabels[storage.SortTitle]
	}
	sortButton := style.TextButton(sortText, style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.config.Library.SortBy = storage.NextSortOrder(s.config.Library.SortBy)
		s.saveConfig()
		s.refreshItems()
		s.engine.ScrollTo(0)
		s.SetPendingFocus("toolbar-sort")
		s.callback.RequestRebuild()
	})
	s.registerFocusButton("toolbar-sort", sortButton)
	centerContent.AddChild(sortButton)

	favText := "Favorites"
	if s.config.Library.FavoritesFilter {
		favText = "[*] Favorites"
	}
	favButton := style.ToggleButton(favText, s.config.Library.FavoritesFilter, func(args *widget.ButtonClickedEventArgs) {
		s.config.Library.FavoritesFilter = !s.config.Library.FavoritesFilter
		s.saveConfig()
		s.refreshItems()
		s.engine.ScrollTo(0)
		s.SetPendingFocus("toolbar-favorites")
		s.callback.RequestRebuild()
	})
	s.registerFocusButton("toolbar-favorites", favButton)
	centerContent.AddChild(favButton)

	multi := s.config.Library.OpenPolicy == "multi"
	policyText := "Open: Single"
	if multi {
		policyText = "Open: Multi"
	}
	policyButton := style.ToggleButton(policyText, multi, func(args *widget.ButtonClickedEventArgs) {
		if multi {
			s.config.Library.OpenPolicy = "single"
		} else {
			s.config.Library.OpenPolicy = "multi"
		}
		s.saveConfig()
		s.SetPendingFocus("toolbar-policy")
		s.callback.RequestRebuild()
	})
	s.registerFocusButton("toolbar-policy", policyButton)
	centerContent.AddChild(policyButton)

	centerSection.AddChild(centerContent)
	toolbar.AddChild(centerSection)

	// RIGHT SECTION: Close all, open file and settings
	rightSection := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	rightContent := style.ButtonRow()
	rightContent.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
	}

	closeButton := style.TextButton("Close All", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.engine.CloseAll()
	})
	s.registerFocusButton("toolbar-close", closeButton)
	rightContent.AddChild(closeButton)

	openButton := style.TextButton("Open...", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("toolbar-open")
		s.browseForLibrary()
	})
	s.registerFocusButton("toolbar-open", openButton)
	rightContent.AddChild(openButton)

	settingsButton := style.TextButton("Settings", style.ButtonPaddingSmall, func(args *widget.ButtonClickedEventArgs) {
		s.SetPendingFocus("toolbar-settings")
		s.callback.SwitchToSettings()
	})
	s.registerFocusButton("toolbar-settings", settingsButton)
	rightContent.AddChild(settingsButton)

	rightSection.AddChild(rightContent)
	toolbar.AddChild(rightSection)

	return toolbar
}

// setViewMode switches between icon and list view, keeping the selected
// game in view.
func (s *LibraryScreen) setViewMode(mode string) {
	if s.config.Library.ViewMode == mode {
		return
	}
	s.config.Library.ViewMode = mode
	s.saveConfig()
	s.engine.SetOptions(engineOptions(s.config))
	if i := s.engine.IndexOf(s.selectedID); i >= 0 {
		s.engine.ScrollToIndex(i)
	}
	s.callback.RequestRebuild()
}

// browseForLibrary shows the native open dialog. The dialog blocks, so it
// runs on its own goroutine and the chosen path is picked up in Update.
func (s *LibraryScreen) browseForLibrary() {
	go func() {
		path, err := dialog.File().Filter("Library files", "json", "zip", "7z", "gz", "tgz", "rar").Title("Open Library").Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				log.Printf("Failed to show open dialog: %v", err)
			}
			return
		}
		select {
		case s.openPaths <- path:
		default:
		}
	}()
}

// buildBody creates the item area with its optional alphabet rail and the
// scrollbar.
func (s *LibraryScreen) buildBody() *widget.Container {
	showRail := s.showRail()
	columnStretch := []bool{true}
	if showRail {
		columnStretch = append(columnStretch, false)
	}
	columnStretch = append(columnStretch, false)

	body := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(len(columnStretch)),
			widget.GridLayoutOpts.Stretch(columnStretch, []bool{true}),
			widget.GridLayoutOpts.Spacing(style.TinySpacing, 0),
		)),
	)

	s.gridArea = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	if s.engine.Params().Mode == grid.ModeList {
		// Header row above the list; its labels are painted in Draw so they
		// line up with the computed columns.
		listArea := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(1),
				widget.GridLayoutOpts.Stretch([]bool{true}, []bool{false, true}),
			)),
		)
		s.listHeader = widget.NewContainer(
			widget.ContainerOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(0, style.ListHeaderHeight),
			),
		)
		listArea.AddChild(s.listHeader)
		listArea.AddChild(s.gridArea)
		body.AddChild(listArea)
	} else {
		body.AddChild(s.gridArea)
	}

	if showRail {
		body.AddChild(s.buildRail())
	}

	s.vSlider = style.ScrollSlider(
		func() int {
			return style.SliderPageSize(s.engine.ViewportHeight(), s.engine.ContainerHeight())
		},
		func(fraction float64) {
			v := int(fraction*1000 + 0.5)
			if v == s.sliderValue {
				return
			}
			s.sliderValue = v
			s.engine.ScrollTo(int(fraction * float64(s.engine.MaxScrollOffset())))
		},
	)
	s.sliderValue = style.SliderPosition(s.engine.ScrollOffset(), s.engine.MaxScrollOffset())
	s.vSlider.Current = s.sliderValue
	body.AddChild(s.vSlider)

	return body
}

// showRail reports whether the alphabet rail is useful: the list is sorted
// by title and spans more than one letter.
func (s *LibraryScreen) showRail() bool {
	return s.config.Library.SortBy == storage.SortTitle && s.engine.Rail().Meaningful()
}

// buildRail creates one button per rail letter. Letters with no games are
// disabled.
func (s *LibraryScreen) buildRail() *widget.Container {
	rail := s.engine.Rail()
	letters := rail.Alphabet()

	rowStretch := make([]bool, len(letters))
	for i := range rowStretch {
		rowStretch[i] = true
	}
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch([]bool{true}, rowStretch),
		)),
	)

	s.railButtons = make(map[string]*widget.Button, len(letters))
	active := s.engine.ActiveLetter()
	for _, letter := range letters {
		btn := style.RailButton(letter, rail.Count(letter) > 0, letter == active, func(args *widget.ButtonClickedEventArgs) {
			s.jumpToLetter(letter)
		})
		s.railButtons[letter] = btn
		container.AddChild(btn)
	}
	return container
}

// jumpToLetter scrolls to the first game under letter and selects it.
func (s *LibraryScreen) jumpToLetter(letter string) {
	if !s.engine.JumpToLetter(letter) {
		return
	}
	if i := s.engine.Rail().FirstIndex(letter); i >= 0 && i < len(s.games) {
		s.selectedID = s.games[i].ID
	}
}

// countText returns the toolbar summary, e.g. "3 of 12 games, 1 open".
func (s *LibraryScreen) countText() string {
	return countText(len(s.games), s.library.GameCount(), len(s.engine.OpenIDs()))
}

func countText(shown, total, open int) string {
	noun := "games"
	if total == 1 {
		noun = "game"
	}
	var b strings.Builder
	if shown == total {
		fmt.Fprintf(&b, "%d %s", total, noun)
	} else {
		fmt.Fprintf(&b, "%d of %d %s", shown, total, noun)
	}
	if open > 0 {
		fmt.Fprintf(&b, ", %d open", open)
	}
	return b.String()
}

// PendingLibraryPath returns a library file chosen in the open dialog, if
// one is waiting.
func (s *LibraryScreen) PendingLibraryPath() (string, bool) {
	select {
	case path := <-s.openPaths:
		return path, true
	default:
		return "", false
	}
}

// Update handles input for the item area and runs the engine's per-frame
// commit. Call it after the widget tree has been updated so the item area's
// rectangle is current.
func (s *LibraryScreen) Update(in LibraryInput) {
	if s.countLabel != nil {
		s.countLabel.Label = s.countText()
	}
	if s.gridArea == nil {
		return
	}

	rect := s.gridArea.GetWidget().Rect
	if size := rect.Size(); size != s.areaSize {
		s.areaSize = size
		s.engine.Resize(size.X, size.Y)
		s.listCols = computeListColumns(size.X)
	}

	s.handleMouse(rect)
	s.handleKeys(in)

	s.engine.Tick()
	s.updateArtworkSizes()
	s.syncSlider()
}

func (s *LibraryScreen) handleMouse(rect image.Rectangle) {
	x, y := ebiten.CursorPosition()
	if !image.Pt(x, y).In(rect) {
		return
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		s.engine.ScrollBy(-int(dy * float64(style.Px(style.ScrollWheelStep))))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if i := s.engine.HitTest(x-rect.Min.X, y-rect.Min.Y); i >= 0 && i < len(s.games) {
			s.selectedID = s.games[i].ID
			s.engine.ToggleOpen(s.selectedID)
		}
	}
}

func (s *LibraryScreen) handleKeys(in LibraryInput) {
	if in.Direction != grid.DirNone {
		s.moveSelection(in.Direction)
	}

	activate := in.Activate
	if in.Shortcuts && !in.WidgetFocused && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		activate = true
	}
	if activate && s.selectedID != "" {
		s.engine.ToggleOpen(s.selectedID)
	}
	if in.Back {
		s.engine.CloseAll()
	}

	page := s.engine.ViewportHeight() - style.ListHeaderHeight
	if in.Page != 0 {
		s.engine.ScrollBy(in.Page * page)
	}

	if !in.Shortcuts {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		s.engine.ScrollBy(page)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.engine.ScrollBy(-page)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.engine.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.engine.ScrollTo(s.engine.MaxScrollOffset())
	}

	if style.ModifierPressed() {
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			s.copySelectedTitle()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			s.toggleSelectedFavorite()
		}
		return
	}

	for k := ebiten.KeyA; k <= ebiten.KeyZ; k++ {
		if inpututil.IsKeyJustPressed(k) {
			s.jumpToLetter(string(rune('A' + (k - ebiten.KeyA))))
			break
		}
	}
}

// moveSelection moves the keyboard selection one step in dir and scrolls
// just enough to reveal it. With nothing selected, the first item in view
// is selected instead.
func (s *LibraryScreen) moveSelection(dir grid.Direction) {
	i := s.engine.IndexOf(s.selectedID)
	if i < 0 {
		i = s.firstVisibleItem()
	} else {
		i = s.engine.Neighbor(i, dir)
	}
	if i < 0 || i >= len(s.games) {
		return
	}
	s.selectedID = s.games[i].ID
	if offset, ok := scrollToReveal(s.engine.ItemBounds(i), s.engine.ScrollOffset(), s.engine.ViewportHeight()); ok {
		s.engine.ScrollTo(offset)
	}
}

// firstVisibleItem returns the first item whose top edge is in view, or the
// first mounted item, or -1.
func (s *LibraryScreen) firstVisibleItem() int {
	vr := s.engine.VisibleRange()
	offset := s.engine.ScrollOffset()
	for i := vr.Start; i < vr.End; i++ {
		if s.engine.ItemBounds(i).Min.Y >= offset {
			return i
		}
	}
	if vr.Len() > 0 {
		return vr.Start
	}
	return -1
}

// scrollToReveal returns the smallest scroll change that brings b (content
// coordinates) into a view of height viewport at offset. An item taller than
// the view is aligned to its top. ok is false when b is already in view.
func scrollToReveal(b image.Rectangle, offset, viewport int) (int, bool) {
	switch {
	case b.Min.Y < offset:
		return b.Min.Y, true
	case b.Max.Y > offset+viewport:
		return min(b.Max.Y-viewport, b.Min.Y), true
	}
	return offset, false
}

// selectedGame returns the selected game, or the most recently opened one.
func (s *LibraryScreen) selectedGame() *storage.GameEntry {
	id := s.selectedID
	if id == "" {
		if open := s.engine.OpenIDs(); len(open) > 0 {
			id = open[len(open)-1]
		}
	}
	if i := s.engine.IndexOf(id); i >= 0 && i < len(s.games) {
		return s.games[i]
	}
	return nil
}

func (s *LibraryScreen) copySelectedTitle() {
	game := s.selectedGame()
	if game == nil {
		return
	}
	if !s.clipboard.Copy(game.Title()) {
		s.callback.ShowNotification("Clipboard unavailable")
		return
	}
	s.callback.ShowNotification(fmt.Sprintf("Copied %q", game.Title()))
}

func (s *LibraryScreen) toggleSelectedFavorite() {
	game := s.selectedGame()
	if game == nil {
		return
	}
	favorite := s.library.ToggleFavorite(game.ID)
	if err := storage.SaveLibrary(s.library); err != nil {
		log.Printf("Failed to save library: %v", err)
	}
	if favorite {
		s.callback.ShowNotification("Added to favorites")
	} else {
		s.callback.ShowNotification("Removed from favorites")
	}
	if s.config.Library.FavoritesFilter {
		s.refreshItems()
		s.callback.RequestRebuild()
	}
}

// updateArtworkSizes keeps the artwork caches at the current card and detail
// sizes. A size change drops the cache.
func (s *LibraryScreen) updateArtworkSizes() {
	p := s.engine.Params()
	if p.Mode == grid.ModeGrid {
		s.cardArt.setSize(p.CardWidth, p.ClosedHeight-style.IconCardTextHeight)
	}
	s.detailArt.setSize(style.DetailArtWidth, max(1, p.OpenHeight-2*style.DefaultPadding))
}

// syncSlider moves the scrollbar handle to the engine's scroll offset.
func (s *LibraryScreen) syncSlider() {
	if s.vSlider == nil {
		return
	}
	v := style.SliderPosition(s.engine.ScrollOffset(), s.engine.MaxScrollOffset())
	if v != s.sliderValue {
		s.sliderValue = v
		s.vSlider.Current = v
	}
}

// Draw paints the mounted items into the item area. Call it after the widget
// tree has been drawn.
func (s *LibraryScreen) Draw(screen *ebiten.Image) {
	if s.gridArea == nil {
		return
	}
	rect := s.gridArea.GetWidget().Rect
	if rect.Empty() {
		return
	}

	if s.listHeader != nil {
		s.drawListHeader(screen, s.listHeader.GetWidget().Rect)
	}

	area := screen.SubImage(rect).(*ebiten.Image)
	shift := image.Pt(rect.Min.X, rect.Min.Y-s.engine.ScrollOffset())
	list := s.engine.Params().Mode == grid.ModeList

	vr := s.engine.VisibleRange()
	for i := vr.Start; i < vr.End && i < len(s.games); i++ {
		game := s.games[i]
		b := s.engine.ItemBounds(i).Add(shift)
		selected := game.ID == s.selectedID
		switch {
		case s.engine.IsOpen(game.ID):
			s.drawDetail(area, b, game)
		case list:
			s.drawListRow(area, b, i, game)
		default:
			s.drawCard(area, b, game, selected)
		}
		if selected {
			strokeRect(area, b, style.SelectionBorder, style.Selection)
		}
	}

	s.drawRailMarker(screen)
}

func (s *LibraryScreen) drawCard(dst *ebiten.Image, b image.Rectangle, game *storage.GameEntry, selected bool) {
	artRect := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y-style.IconCardTextHeight)
	fillRect(dst, artRect, style.Surface)

	if art := s.cardArt.get(game); art != nil {
		var dim float32 = style.CardUnselectedDim
		if selected {
			dim = 1
		}
		drawImageAt(dst, art, centerIn(artRect, art.Bounds().Dx(), art.Bounds().Dy()), dim)
	}

	face := *style.FontFace()
	if game.Favorite {
		w := textWidth("*", face)
		drawText(dst, "*", face, artRect.Max.X-w-style.TinySpacing, artRect.Min.Y+style.TinySpacing, style.Accent)
	}

	title := fitText(game.Title(), face, b.Dx()-2*style.TinySpacing)
	w := textWidth(title, face)
	textRect := image.Rect(b.Min.X, artRect.Max.Y, b.Max.X, b.Max.Y)
	drawText(dst, title, face, textRect.Min.X+(textRect.Dx()-w)/2, textRect.Min.Y+(textRect.Dy()-lineHeight(face))/2, style.Text)
}

func (s *LibraryScreen) drawListRow(dst *ebiten.Image, b image.Rectangle, index int, game *storage.GameEntry) {
	bg := style.Background
	if index%2 == 1 {
		bg = style.Surface
	}
	fillRect(dst, b, bg)

	face := *style.FontFace()
	offsets := s.listCols.xOffsets()
	y := b.Min.Y + (b.Dy()-lineHeight(face))/2

	if game.Favorite {
		drawText(dst, "*", face, b.Min.X+offsets[0], y, style.Accent)
	}

	region := strings.ToUpper(game.Region)
	cells := []struct {
		text  string
		width int
		col   int
	}{
		{game.Title(), s.listCols.Title, 1},
		{game.Genre, s.listCols.Genre, 2},
		{region, s.listCols.Region, 3},
		{playTime(game.PlayTimeSeconds), s.listCols.PlayTime, 4},
		{lastPlayed(game.LastPlayed, time.Now()), s.listCols.LastPlayed, 5},
	}
	for _, c := range cells {
		clr := style.TextSecondary
		if c.col == 1 {
			clr = style.Text
		}
		t := fitText(c.text, face, c.width)
		drawText(dst, t, face, b.Min.X+offsets[c.col], y, clr)
	}
}

func (s *LibraryScreen) drawListHeader(dst *ebiten.Image, r image.Rectangle) {
	if r.Empty() {
		return
	}
	fillRect(dst, r, style.Surface)
	fillRect(dst, image.Rect(r.Min.X, r.Max.Y-style.Px(1), r.Max.X, r.Max.Y), style.Border)

	face := *style.FontFace()
	offsets := s.listCols.xOffsets()
	y := r.Min.Y + (r.Dy()-lineHeight(face))/2
	labels := [listColumnCount]string{"", "Title", "Genre", "Region", "Play Time", "Last Played"}
	for i, label := range labels {
		drawText(dst, label, face, r.Min.X+offsets[i], y, style.TextSecondary)
	}
}

// drawRailMarker marks the rail letter of the item in the middle of the
// view.
func (s *LibraryScreen) drawRailMarker(dst *ebiten.Image) {
	btn, ok := s.railButtons[s.engine.ActiveLetter()]
	if !ok {
		return
	}
	r := btn.GetWidget().Rect
	fillRect(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+style.Px(3), r.Max.Y), style.Accent)
}
