package grid

import "image"

// Options configures an Engine. Pixel values are physical pixels.
type Options struct {
	Mode Mode

	// Grid sizing. Columns fixes the column count; when zero the count is
	// derived from the container width and MinCardWidth. CardWidth fixes the
	// card width; when zero cards stretch to fill the row.
	Columns      int
	MinColumns   int
	MinCardWidth int
	CardWidth    int

	Gap     int
	Padding int

	// ClosedHeight is the height of a closed row. ClosedHeightFor, when set,
	// derives it from the resolved card width instead.
	ClosedHeight    int
	ClosedHeightFor func(cardWidth int) int

	// OpenHeight is the basis for an open row's height. Zero means the
	// viewport height, so an open row fills the visible area.
	OpenHeight int

	OverscanTop    int
	OverscanBottom int

	Policy OpenPolicy

	// Alphabet lists the rail letters. Nil means DefaultAlphabet.
	Alphabet []string
}

// Size is a measured container size.
type Size struct {
	Width  int
	Height int
}

type rowsKey struct {
	items   uint64
	open    uint64
	columns int
}

type layoutKey struct {
	rows   rowsKey
	params LayoutParams
}

// Engine composes the layout pipeline for one scroll container. It is not
// safe for concurrent use; all calls belong on the UI goroutine.
type Engine struct {
	opts Options

	items        []Item
	itemsVersion uint64
	index        map[string]int

	open   *OpenSet
	scroll Scroll
	anchor AnchorController

	width  int
	height int

	size       Latest[Size]
	userScroll Latest[int]

	// Derived state, memoized on input versions.
	params      LayoutParams
	columns     int
	rows        []Row
	rowsMemo    rowsKey
	layout      *RowLayout
	layoutMemo  layoutKey
	positions   []Position
	rail        *Rail
	railVersion uint64
	visible     VisibleRange
	active      string

	// Actions that must observe the committed layout (jumps, anchor
	// restoration). Drained in order by Commit.
	pending []func()
}

// New creates an engine with an empty item sequence.
func New(opts Options) *Engine {
	if opts.Alphabet == nil {
		opts.Alphabet = DefaultAlphabet
	}
	e := &Engine{
		opts:  opts,
		index: make(map[string]int),
		open:  NewOpenSet(opts.Policy),
	}
	e.itemsVersion = 1
	e.Commit()
	return e
}

// Options returns the engine's options.
func (e *Engine) Options() Options {
	return e.opts
}

// SetOptions replaces the options. A policy change is applied to the open
// set immediately; everything else takes effect at the next commit.
func (e *Engine) SetOptions(opts Options) {
	if opts.Alphabet == nil {
		opts.Alphabet = DefaultAlphabet
	}
	e.opts = opts
	e.open.SetPolicy(opts.Policy)
	// The rail depends on the alphabet.
	e.railVersion = 0
}

// SetItems replaces the item sequence. The sequence is borrowed, not copied;
// the caller must pass a new slice rather than mutating the old one.
func (e *Engine) SetItems(items []Item) {
	e.items = items
	e.itemsVersion++
	e.index = make(map[string]int, len(items))
	for i, item := range items {
		e.index[item.ItemID()] = i
	}
}

// Items returns the current item sequence.
func (e *Engine) Items() []Item {
	return e.items
}

// IndexOf returns the index of the item with the given id, or -1.
func (e *Engine) IndexOf(id string) int {
	if i, ok := e.index[id]; ok {
		return i
	}
	return -1
}

// Resize reports a new container size. Only the latest size before the next
// Tick is used.
func (e *Engine) Resize(width, height int) {
	e.size.Set(Size{Width: width, Height: height})
}

// ScrollTo reports a user scroll to offset, applied at the next Tick.
func (e *Engine) ScrollTo(offset int) {
	e.userScroll.Set(offset)
}

// ScrollBy reports a relative user scroll, applied at the next Tick.
// Successive calls within one tick accumulate.
func (e *Engine) ScrollBy(delta int) {
	base := e.scroll.Offset()
	if v, ok := e.userScroll.Peek(); ok {
		base = v
	}
	e.userScroll.Set(base + delta)
}

// Tick runs one display refresh: applies the newest coalesced size and
// scroll samples, then commits.
func (e *Engine) Tick() {
	if sz, ok := e.size.Take(); ok {
		e.width = max(0, sz.Width)
		e.height = max(0, sz.Height)
		e.scroll.Attach(e.height)
	}
	e.recompute()
	if offset, ok := e.userScroll.Take(); ok {
		e.scroll.ScrollTo(offset, e.layout.ContainerHeight)
	}
	e.Commit()
}

// Commit synchronously recomputes whatever the changed inputs invalidate,
// then runs the deferred actions that depend on the new geometry, then
// recomputes the visible range.
func (e *Engine) Commit() {
	e.recompute()
	for len(e.pending) > 0 {
		actions := e.pending
		e.pending = nil
		for _, fn := range actions {
			fn()
		}
		e.recompute()
	}
	e.scroll.Clamp(e.layout.ContainerHeight)
	e.updateWindow()
}

// afterCommit defers fn until the layout reflecting every change made so far
// has been committed.
func (e *Engine) afterCommit(fn func()) {
	e.pending = append(e.pending, fn)
}

// ToggleOpen opens or closes the item with the given id, keeping the user's
// place. The layout change and the scroll adjustments happen at the next
// commit. Ids not in the sequence are ignored unless they are still in the
// open set, in which case they are simply removed.
func (e *Engine) ToggleOpen(id string) {
	// Earlier requests must land first so the geometry read below is current.
	e.Commit()

	idx := e.IndexOf(id)
	if e.open.Has(id) {
		if idx < 0 {
			e.open.Toggle(id)
			return
		}
		e.anchor.BeginClose(e.layout, &e.scroll, idx, e.params.Mode)
		e.open.Toggle(id)
		e.afterCommit(func() {
			e.anchor.FinishClose(e.layout, &e.scroll, e.IndexOf(id), e.open.Len() > 0)
		})
		return
	}

	if idx < 0 {
		return
	}
	if e.open.Policy() == SingleOpen && e.open.Len() > 0 {
		e.anchor.BeginSwitch()
	} else {
		e.anchor.BeginOpen(&e.scroll)
	}
	e.open.Toggle(id)
	e.afterCommit(func() {
		e.anchor.FinishOpen(e.layout, e.positions, &e.scroll, e.IndexOf(id), e.open.Len() > 0)
	})
}

// CloseAll closes every open item, most recently opened first.
func (e *Engine) CloseAll() {
	ids := e.open.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		e.ToggleOpen(ids[i])
	}
}

// ScrollToIndex scrolls so item i's row starts at the top of the view,
// clamped to the valid range. It waits for any pending layout change to
// commit first. No-op when no container is attached or i is out of range.
func (e *Engine) ScrollToIndex(i int) {
	e.afterCommit(func() {
		e.scroll.JumpToIndex(e.positions, e.layout.ContainerHeight, i)
	})
	e.Commit()
}

// JumpToLetter scrolls to the first item in letter's bucket. Returns false
// if no item has that bucket.
func (e *Engine) JumpToLetter(letter string) bool {
	e.Commit()
	i := e.rail.FirstIndex(letter)
	if i < 0 {
		return false
	}
	e.ScrollToIndex(i)
	return true
}

// recompute rebuilds the derived state whose inputs changed since the last
// call.
func (e *Engine) recompute() {
	e.params, e.columns = e.resolveParams()

	// Open ids that left the sequence are dropped here. The partitioner
	// would ignore them anyway.
	if e.open.Prune(func(id string) bool { return e.IndexOf(id) >= 0 }) &&
		e.open.Len() == 0 && e.anchor.State() == AnchorOpen {
		e.anchor.Reset()
	}

	rk := rowsKey{items: e.itemsVersion, open: e.open.Version(), columns: e.columns}
	if e.rows == nil || rk != e.rowsMemo {
		e.rows = PartitionRows(e.items, e.open.Has, e.columns)
		if e.rows == nil {
			e.rows = []Row{}
		}
		e.rowsMemo = rk
	}

	lk := layoutKey{rows: rk, params: e.params}
	if e.layout == nil || lk != e.layoutMemo {
		e.layout = BuildLayout(e.rows, len(e.items), e.params)
		e.positions = ProjectPositions(e.layout, e.params)
		e.layoutMemo = lk
	}

	if e.rail == nil || e.railVersion != e.itemsVersion {
		e.rail = BuildRail(e.items, e.opts.Alphabet)
		e.railVersion = e.itemsVersion
	}
}

// resolveParams turns the options and the measured size into concrete
// layout metrics and a column count.
func (e *Engine) resolveParams() (LayoutParams, int) {
	o := e.opts
	padding := max(0, o.Padding)
	content := max(0, e.width-padding*2)

	p := LayoutParams{
		Mode:    o.Mode,
		Gap:     max(0, o.Gap),
		Padding: padding,
	}

	columns := 1
	if o.Mode == ModeList {
		p.CardWidth = content
	} else {
		columns = o.Columns
		if columns < 1 {
			columns = ColumnsForWidth(content, o.MinCardWidth, p.Gap, o.MinColumns)
		}
		p.CardWidth = o.CardWidth
		if p.CardWidth <= 0 {
			p.CardWidth = CardWidthFor(content, columns, p.Gap)
		}
	}

	p.ClosedHeight = max(0, o.ClosedHeight)
	if o.ClosedHeightFor != nil {
		p.ClosedHeight = max(0, o.ClosedHeightFor(p.CardWidth))
	}
	p.OpenHeight = o.OpenHeight
	if p.OpenHeight <= 0 {
		p.OpenHeight = e.height
	}
	p.OpenHeight = max(p.ClosedHeight, p.OpenHeight)
	return p, columns
}

func (e *Engine) updateWindow() {
	e.visible = ComputeVisibleRange(e.layout, Viewport{
		Offset:         e.scroll.Offset(),
		Height:         e.scroll.ViewportHeight(),
		OverscanTop:    e.opts.OverscanTop,
		OverscanBottom: e.opts.OverscanBottom,
	}, e.columns)
	e.active = ActiveLetter(e.items, e.visible)
}

// VisibleRange returns the slice of items to mount.
func (e *Engine) VisibleRange() VisibleRange {
	return e.visible
}

// Positions returns the pixel position of every item.
func (e *Engine) Positions() []Position {
	return e.positions
}

// ContainerHeight returns the full content height, for sizing scrollbars.
func (e *Engine) ContainerHeight() int {
	return e.layout.ContainerHeight
}

// Layout returns the committed row layout.
func (e *Engine) Layout() *RowLayout {
	return e.layout
}

// Params returns the resolved layout metrics.
func (e *Engine) Params() LayoutParams {
	return e.params
}

// Columns returns the resolved column count.
func (e *Engine) Columns() int {
	return e.columns
}

// ContentWidth returns the measured container width.
func (e *Engine) ContentWidth() int {
	return e.width
}

// ViewportHeight returns the measured container height.
func (e *Engine) ViewportHeight() int {
	return e.height
}

// ScrollOffset returns the current scroll offset.
func (e *Engine) ScrollOffset() int {
	return e.scroll.Offset()
}

// MaxScrollOffset returns the largest valid scroll offset.
func (e *Engine) MaxScrollOffset() int {
	return e.scroll.MaxOffset(e.layout.ContainerHeight)
}

// OpenIDs returns the ids of the open items, in the order they were opened.
func (e *Engine) OpenIDs() []string {
	return e.open.IDs()
}

// IsOpen reports whether id is open.
func (e *Engine) IsOpen(id string) bool {
	return e.open.Has(id)
}

// AnchorState returns the state of the open/close transition machine.
func (e *Engine) AnchorState() AnchorState {
	return e.anchor.State()
}

// Rail returns the alphabet index of the current sequence.
func (e *Engine) Rail() *Rail {
	return e.rail
}

// ActiveLetter returns the bucket of the item in the middle of the view.
func (e *Engine) ActiveLetter() string {
	return e.active
}

// ItemBounds returns item i's rectangle in content coordinates.
func (e *Engine) ItemBounds(i int) image.Rectangle {
	return ItemBounds(e.layout, e.positions, e.params, e.width, i)
}

// HitTest returns the item under the point (x, y) given in view
// coordinates, or -1.
func (e *Engine) HitTest(x, y int) int {
	if y < 0 || y >= e.height {
		return -1
	}
	return ItemAt(e.layout, e.positions, e.params, e.width, x, y+e.scroll.Offset())
}

// Neighbor returns the item one step from i in dir, or -1.
func (e *Engine) Neighbor(i int, dir Direction) int {
	return Neighbor(e.layout, i, dir)
}
