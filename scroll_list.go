package tview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/tview/keybind"
)

// ScrollListItem is a list row primitive that can measure itself.
type ScrollListItem interface {
	Primitive
	// Height returns the rows the item needs at width.
	Height(width int) int
}

// ScrollListBuilder returns the item at index, or nil past the end of the
// list. cursor is the selected index, so the builder can style that row.
type ScrollListBuilder func(index int, cursor int) ScrollListItem

// ScrollListKeyMap holds the keys a ScrollList reacts to.
type ScrollListKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
}

// DefaultScrollListKeyMap returns arrow, page and vi style keys.
func DefaultScrollListKeyMap() ScrollListKeyMap {
	return ScrollListKeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f"), keybind.WithHelp("pgdn", "page down")),
		Top:      keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g", "top")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G", "bottom")),
	}
}

// ShortHelp returns the keybinds in display order.
func (k ScrollListKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}
}

// ScrollList is a virtual list: items come from a builder on demand and only
// the ones reaching the viewport are built and drawn. Items may have any
// height, and scrolling is by row.
//
// A StickyHeader installed with SetStickyHeader is drawn over the items after
// every frame, with the rows of that frame as its visible children.
type ScrollList struct {
	*Box

	Builder ScrollListBuilder
	keyMap  ScrollListKeyMap
	gap     int
	cursor  int
	scroll  listScroll
	changed func(index int)

	// Rows laid out by the last frame, the viewport they were laid out in,
	// and the subset intersecting it.
	rows     []listRow
	viewport listViewport
	visible  []listRow
	atEnd    bool

	sticky        *StickyHeader
	stickyAdapter StickyAdapter
}

// listScroll is the scroll position, anchored on an item so it survives
// items changing height.
type listScroll struct {
	// Index of the item at the top of the viewport.
	anchor int
	// Rows of the anchor item hidden above the viewport.
	hidden int
	// Rows to scroll by on the next frame. Positive scrolls down.
	pending int
	// Scroll the cursor into view on the next frame.
	revealCursor bool
}

// listRow is an item placed in a frame. top is relative to the viewport.
type listRow struct {
	index  int
	item   ScrollListItem
	top    int
	height int
}

func (r listRow) bottom() int {
	return r.top + r.height
}

type listViewport struct {
	x, y, width, height int
}

// NewScrollList returns an empty list with the default key map.
func NewScrollList() *ScrollList {
	return &ScrollList{
		Box:    NewBox(),
		keyMap: DefaultScrollListKeyMap(),
		cursor: -1,
	}
}

func (l *ScrollList) SetBuilder(builder ScrollListBuilder) *ScrollList {
	l.Builder = builder
	return l
}

func (l *ScrollList) SetKeyMap(keyMap ScrollListKeyMap) *ScrollList {
	l.keyMap = keyMap
	return l
}

func (l *ScrollList) KeyMap() ScrollListKeyMap {
	return l.keyMap
}

// SetGap sets the blank rows between items.
func (l *ScrollList) SetGap(gap int) *ScrollList {
	l.gap = max(gap, 0)
	return l
}

// SetStickyHeader installs a sticky header fed by adapter. A nil header
// removes it. The header keeps binding through the adapter it first created
// its holder from, so a new adapter needs a new StickyHeader.
func (l *ScrollList) SetStickyHeader(header *StickyHeader, adapter StickyAdapter) *ScrollList {
	l.sticky = header
	l.stickyAdapter = adapter
	return l
}

// Layout describes the list for NewStickyHeader. leading is the number of
// decoration items the builder returns before the adapter's first item; it is
// taken off here and added back by the sticky header, whose positions are
// therefore list indices.
func (l *ScrollList) Layout(leading int) SequentialLayout {
	return SequentialLayout{First: func() int {
		return l.FirstVisibleIndex() - leading
	}}
}

// Clear drops the builder and resets scroll and cursor.
func (l *ScrollList) Clear() *ScrollList {
	l.Builder = nil
	l.cursor = -1
	l.scroll = listScroll{}
	l.rows, l.visible = nil, nil
	l.viewport = listViewport{}
	l.atEnd = false
	return l
}

// ScrollToStart shows the first item at the top. The cursor is kept.
func (l *ScrollList) ScrollToStart() *ScrollList {
	l.scroll = listScroll{}
	l.atEnd = false
	return l
}

// ScrollToEnd shows the last item at the bottom. The cursor is kept.
func (l *ScrollList) ScrollToEnd() *ScrollList {
	_, _, width, height := l.GetInnerRect()
	if width <= 0 || height <= 0 {
		return l
	}
	l.scroll.anchor, l.scroll.hidden = l.endAnchor(width, height)
	l.scroll.pending = 0
	l.scroll.revealCursor = false
	l.atEnd = true
	return l
}

// AtEnd reports whether the last frame showed the bottom of the last item.
func (l *ScrollList) AtEnd() bool {
	return l.atEnd
}

// SetCursor selects index, or nothing for -1.
func (l *ScrollList) SetCursor(index int) *ScrollList {
	index = max(index, -1)
	if l.cursor == index {
		return l
	}
	l.moveCursor(index)
	return l
}

func (l *ScrollList) Cursor() int {
	return l.cursor
}

// SetPendingScroll scrolls by lines rows on the next frame, replacing any
// scroll not yet applied.
func (l *ScrollList) SetPendingScroll(lines int) *ScrollList {
	l.scroll.pending = lines
	return l
}

func (l *ScrollList) ScrollUp() *ScrollList {
	l.scroll.pending--
	return l
}

func (l *ScrollList) ScrollDown() *ScrollList {
	l.scroll.pending++
	return l
}

// NextItem selects the item after the cursor and reports whether there was
// one.
func (l *ScrollList) NextItem() bool {
	next := max(l.cursor+1, 0)
	if l.Builder == nil || l.Builder(next, l.cursor) == nil {
		return false
	}
	l.moveCursor(next)
	return true
}

// PrevItem selects the item before the cursor and reports whether there was
// one.
func (l *ScrollList) PrevItem() bool {
	if l.Builder == nil || l.cursor <= 0 || l.Builder(l.cursor-1, l.cursor) == nil {
		return false
	}
	l.moveCursor(l.cursor - 1)
	return true
}

// SetChangedFunc sets a handler called with the new cursor after it moves.
func (l *ScrollList) SetChangedFunc(handler func(index int)) *ScrollList {
	l.changed = handler
	return l
}

func (l *ScrollList) moveCursor(index int) {
	l.cursor = index
	l.atEnd = false
	switch {
	case index < 0:
		l.scroll.revealCursor = false
	case index > l.scroll.anchor:
		l.scroll.revealCursor = true
	default:
		l.scroll.anchor, l.scroll.hidden = index, 0
	}
	if l.changed != nil {
		l.changed(index)
	}
}

// FirstVisibleIndex returns the index of the first item intersecting the
// viewport in the last frame, or 0 before the first frame.
func (l *ScrollList) FirstVisibleIndex() int {
	if len(l.visible) == 0 {
		return 0
	}
	return l.visible[0].index
}

// StickyAdapter implements StickyHost.
func (l *ScrollList) StickyAdapter() StickyAdapter {
	return l.stickyAdapter
}

// StickyChildCount implements StickyHost.
func (l *ScrollList) StickyChildCount() int {
	return len(l.visible)
}

// StickyChildAt implements StickyHost.
func (l *ScrollList) StickyChildAt(slot SlotIndex) StickyChild {
	row := l.visible[slot]
	return StickyChild{Item: row.item, Top: row.top}
}

// Draw lays out the items reaching the viewport, draws them and then the
// sticky header.
func (l *ScrollList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)

	x, y, width, height := l.GetInnerRect()
	viewport := listViewport{x: x, y: y, width: width, height: height}
	if width <= 0 || height <= 0 || l.Builder == nil {
		return
	}

	delta := l.scroll.pending
	l.scroll.pending = 0

	rows, reachedEnd := l.layoutRows(width, height, delta)
	l.viewport = viewport
	l.visible = l.visible[:0]
	if len(rows) == 0 {
		l.scroll = listScroll{}
		l.rows = nil
		l.atEnd = false
		return
	}

	// Scrolling down past the end pins the last item to the bottom.
	if last := rows[len(rows)-1]; reachedEnd && delta > 0 && rows[0].top < 0 && last.bottom() < height {
		shiftRows(rows, height-last.bottom())
	}
	if l.scroll.revealCursor {
		l.showCursorRow(rows, height)
	}
	l.reanchor(rows)

	last := rows[len(rows)-1]
	if !reachedEnd {
		reachedEnd = l.Builder(last.index+1, l.cursor) == nil
	}
	l.atEnd = reachedEnd && last.bottom() <= height

	l.rows = rows
	for _, row := range rows {
		if row.bottom() > 0 && row.top < height {
			l.visible = append(l.visible, row)
		}
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	for _, row := range rows {
		row.item.SetRect(x, y+row.top, width, row.height)
		row.item.Draw(clipped)
	}

	if l.sticky != nil {
		l.sticky.DrawOver(screen, l)
	}
}

// layoutRows places items from the scroll anchor moved by delta rows until
// the viewport is filled. It reports whether the builder ran out of items.
func (l *ScrollList) layoutRows(width, height, delta int) ([]listRow, bool) {
	top := -(l.scroll.hidden + delta)
	if top > 0 && l.scroll.anchor == 0 {
		top, l.scroll.hidden = 0, 0
	}

	rows := make([]listRow, 0, 16)
	first := l.scroll.anchor
	if top > 0 {
		// Scrolled up past the anchor: place the items above it first.
		rows = l.prependRows(rows, width, top)
		if len(rows) > 0 {
			top = rows[len(rows)-1].bottom() + l.gap
		}
	}

	for index := first; ; index++ {
		item := l.Builder(index, l.cursor)
		if item == nil {
			return rows, true
		}
		row := listRow{index: index, item: item, top: top, height: itemHeight(item, width)}
		rows = append(rows, row)
		top = row.bottom() + l.gap

		if l.scroll.revealCursor && index <= l.cursor {
			continue
		}
		if top >= height {
			return rows, false
		}
	}
}

// prependRows places items above the anchor until space rows are covered or
// the first item is reached.
func (l *ScrollList) prependRows(rows []listRow, width, space int) []listRow {
	if l.scroll.anchor <= 0 {
		return rows
	}

	var above []listRow
	bottom := space
	for index := l.scroll.anchor - 1; index >= 0 && bottom > 0; index-- {
		item := l.Builder(index, l.cursor)
		if item == nil {
			break
		}
		bottom -= l.gap
		height := itemHeight(item, width)
		bottom -= height
		above = append(above, listRow{index: index, item: item, top: bottom, height: height})
	}
	if len(above) == 0 {
		return rows
	}

	// above runs bottom up.
	for i, j := 0, len(above)-1; i < j; i, j = i+1, j-1 {
		above[i], above[j] = above[j], above[i]
	}
	l.scroll.anchor = above[0].index
	l.scroll.hidden = -above[0].top

	if above[0].index == 0 && above[0].top > 0 {
		// Hit the top of the list: lay out from row 0.
		l.scroll.hidden = 0
		top := 0
		for i := range above {
			above[i].top = top
			top = above[i].bottom() + l.gap
		}
	}
	return append(rows, above...)
}

// showCursorRow shifts rows up so the cursor item ends inside the viewport.
func (l *ScrollList) showCursorRow(rows []listRow, height int) {
	for _, row := range rows {
		if row.index != l.cursor {
			continue
		}
		if row.bottom() > height {
			shiftRows(rows, height-row.bottom())
		}
		l.scroll.revealCursor = false
		return
	}
}

// reanchor makes the first item reaching row 0 the scroll anchor.
func (l *ScrollList) reanchor(rows []listRow) {
	for _, row := range rows {
		if row.top <= 0 && row.bottom()+l.gap > 0 {
			l.scroll.anchor, l.scroll.hidden = row.index, -row.top
			return
		}
	}
}

func shiftRows(rows []listRow, delta int) {
	for i := range rows {
		rows[i].top += delta
	}
}

func itemHeight(item ScrollListItem, width int) int {
	return max(item.Height(width), 1)
}

// endAnchor returns the anchor and hidden rows that put the bottom of the
// last item at the bottom of a viewport of the given size.
func (l *ScrollList) endAnchor(width, height int) (int, int) {
	if l.Builder == nil {
		return 0, 0
	}
	last := max(l.scroll.anchor, 0)
	if l.Builder(last, l.cursor) == nil {
		last = 0
	}
	for l.Builder(last+1, l.cursor) != nil {
		last++
	}
	if l.Builder(last, l.cursor) == nil {
		return 0, 0
	}

	used := 0
	for index := last; index >= 0; index-- {
		h := itemHeight(l.Builder(index, l.cursor), width)
		if used > 0 {
			used += l.gap
		}
		if used+h > height {
			return index, used + h - height
		}
		used += h
	}
	return 0, 0
}

// InputHandler moves the cursor or scrolls by page with the key map.
func (l *ScrollList) InputHandler(event *tcell.EventKey) Command {
	_, _, _, page := l.GetInnerRect()
	page = max(page, 1)

	switch {
	case keybind.Matches(event, l.keyMap.Down):
		l.NextItem()
	case keybind.Matches(event, l.keyMap.Up):
		l.PrevItem()
	case keybind.Matches(event, l.keyMap.PageDown):
		l.scroll.pending += page
	case keybind.Matches(event, l.keyMap.PageUp):
		l.scroll.pending -= page
	case keybind.Matches(event, l.keyMap.Top):
		l.ScrollToStart()
	case keybind.Matches(event, l.keyMap.Bottom):
		l.ScrollToEnd()
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler selects a clicked item and scrolls with the wheel.
func (l *ScrollList) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !l.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftClick:
		var cmd Command = SetFocusCommand{Target: l}
		if index := l.indexAt(x, y); index >= 0 {
			if index != l.cursor {
				l.moveCursor(index)
			}
			cmd = AppendCommand(cmd, RedrawCommand{})
		}
		return nil, cmd
	case MouseScrollUp:
		l.scroll.pending -= 3
		return nil, RedrawCommand{}
	case MouseScrollDown:
		l.scroll.pending += 3
		return nil, RedrawCommand{}
	}
	return nil, nil
}

// indexAt returns the item drawn at screen position x, y in the last frame,
// counting the gap below an item as part of it, or -1.
func (l *ScrollList) indexAt(x, y int) int {
	v := l.viewport
	if x < v.x || x >= v.x+v.width || y < v.y || y >= v.y+v.height {
		return -1
	}
	row := y - v.y
	for _, r := range l.rows {
		if row >= r.top && row < r.bottom()+l.gap {
			return r.index
		}
	}
	return -1
}

var (
	_ Primitive  = &ScrollList{}
	_ StickyHost = &ScrollList{}
)
