package tview

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v3"
)

// StickyRole is implemented by list items that can act as section headers.
type StickyRole interface {
	IsStickyHeader() bool
}

// StickyAdapter supplies the content of a sticky header.
type StickyAdapter interface {
	// ItemCount returns the number of items in the adapter, without leading
	// or trailing decorations.
	ItemCount() int
	// CreateStickyHeader returns the holder primitive header content is bound
	// into. It is called once per StickyHeader.
	CreateStickyHeader() ScrollListItem
	// BindStickyHeader fills item with the header content of position.
	BindStickyHeader(item ScrollListItem, position AdapterPosition)
}

// StickyChild is a child visible in the current frame.
type StickyChild struct {
	Item ScrollListItem
	// Top is the child's first row relative to the top of the viewport.
	// Negative values mean the child is partially scrolled out.
	Top int
}

// StickyHost is a list view a StickyHeader draws over.
type StickyHost interface {
	// StickyAdapter returns the adapter, or nil when there is none yet.
	StickyAdapter() StickyAdapter
	StickyChildCount() int
	StickyChildAt(slot SlotIndex) StickyChild
	GetInnerRect() (int, int, int, int)
}

// StickyHeader pins the header governing the top of a list to its viewport
// until the next header pushes it out.
//
// DrawOver must be called once per frame after the host drew its items. A
// StickyHeader belongs to exactly one host and is not safe for concurrent use.
type StickyHeader struct {
	layout      StickyLayout
	leading     int
	trailing    int
	fixedHeight int
	logger      *log.Logger

	positions stickyPositions

	// adapter is the one the holder was created from. Every bind goes through it.
	adapter StickyAdapter
	overlay *stickyOverlay

	bound  AdapterPosition
	height int
	offset int
}

// NewStickyHeader returns a sticky header for a host arranged by layout. It
// panics if layout is nil or has no position source.
func NewStickyHeader(layout StickyLayout) *StickyHeader {
	if layout == nil || !layout.valid() {
		panic("tview: sticky header requires a SequentialLayout or StaggeredLayout with a position source")
	}
	return &StickyHeader{
		layout: layout,
		bound:  NoPosition,
	}
}

// SetOffsets sets the number of decoration items the host shows before and
// after the adapter's items, such as a refresh banner or a footer.
func (s *StickyHeader) SetOffsets(leading, trailing int) *StickyHeader {
	s.leading = max(leading, 0)
	s.trailing = max(trailing, 0)
	return s
}

// SetHeaderHeight fixes the height of the pinned header. Zero or less uses the
// holder's natural height.
func (s *StickyHeader) SetHeaderHeight(height int) *StickyHeader {
	s.fixedHeight = height
	if s.overlay != nil {
		s.overlay.requestLayout()
	}
	return s
}

// SetLogger sets a logger receiving debug records about header creation and
// binding. A nil logger disables logging.
func (s *StickyHeader) SetLogger(logger *log.Logger) *StickyHeader {
	s.logger = logger
	return s
}

// BoundPosition returns the position whose content is currently pinned, or
// NoPosition.
func (s *StickyHeader) BoundPosition() AdapterPosition {
	return s.bound
}

// Offset returns the number of rows the pinned header is pushed up by.
func (s *StickyHeader) Offset() int {
	return s.offset
}

// Height returns the height of the pinned header as of the last bind.
func (s *StickyHeader) Height() int {
	return s.height
}

// Positions returns a copy of the header positions seen so far.
func (s *StickyHeader) Positions() []AdapterPosition {
	return s.positions.snapshot()
}

// DrawOver resolves the pinned header for the host's current frame and draws
// it over the top of the host's viewport.
func (s *StickyHeader) DrawOver(screen tcell.Screen, host StickyHost) {
	adapter := host.StickyAdapter()
	if adapter == nil || adapter.ItemCount() <= s.leading+s.trailing {
		return
	}

	x, y, width, height := host.GetInnerRect()
	if s.overlay != nil && s.bound != NoPosition {
		if s.overlay.width != width {
			s.overlay.requestLayout()
		}
		s.height = s.overlay.layout(width, s.fixedHeight)
	}

	first := s.firstVisible()
	count := host.StickyChildCount()
	for m := range count {
		slot := SlotIndex(m)
		child := host.StickyChildAt(slot)
		if !s.isHeader(child, first) {
			continue
		}

		s.ensureOverlay(adapter)
		position := s.positionOf(first, slot)
		s.positions.record(position)

		if child.Top <= 0 {
			s.bind(first, width)
		} else if governing, ok := s.positions.governing(position); ok {
			s.bind(governing, width)
		}

		s.offset = s.pushOff(host, child, count)
		s.draw(screen, x, y, width, height)
		return
	}

	// No header is visible: keep the last one pinned once the end of the
	// list is on screen.
	s.offset = 0
	if last, ok := s.positions.last(); ok && int(first)+count == adapter.ItemCount()+s.leading+s.trailing {
		s.bind(last, width)
	}
	s.draw(screen, x, y, width, height)
}

func (s *StickyHeader) firstVisible() AdapterPosition {
	return AdapterPosition(s.layout.FirstVisiblePosition() + s.leading)
}

// positionOf converts a visible slot into an adapter position.
func (s *StickyHeader) positionOf(first AdapterPosition, slot SlotIndex) AdapterPosition {
	return first + AdapterPosition(slot)
}

// isHeader reports whether child plays the header role. Grid layouts classify
// by the span of the first visible position, not by the child's own position.
func (s *StickyHeader) isHeader(child StickyChild, first AdapterPosition) bool {
	if spans := s.layout.SpanSize(); spans != nil && spans(first) == 1 {
		return true
	}
	return isStickyRole(child.Item)
}

func isStickyRole(item ScrollListItem) bool {
	role, ok := item.(StickyRole)
	return ok && role.IsStickyHeader()
}

// pushOff returns how many rows the pinned header moves up because a header
// row is about to reach it.
func (s *StickyHeader) pushOff(host StickyHost, child StickyChild, count int) int {
	if child.Top > 0 && child.Top <= s.height {
		return s.height - child.Top
	}
	if next, ok := nextStickyChild(host, count); ok && next.Top <= s.height {
		return min(s.height-next.Top, s.height)
	}
	return 0
}

// nextStickyChild returns the second self-declared header among the visible
// children.
func nextStickyChild(host StickyHost, count int) (StickyChild, bool) {
	seen := 0
	for m := range count {
		child := host.StickyChildAt(SlotIndex(m))
		if !isStickyRole(child.Item) {
			continue
		}
		seen++
		if seen == 2 {
			return child, true
		}
	}
	return StickyChild{}, false
}

func (s *StickyHeader) ensureOverlay(adapter StickyAdapter) {
	if s.overlay != nil {
		return
	}
	s.adapter = adapter
	s.overlay = newStickyOverlay(adapter.CreateStickyHeader())
	if s.logger != nil {
		s.logger.Debug("sticky header created")
	}
}

// bind loads the content of position into the holder and measures it. Binding
// the position that is already bound does nothing.
func (s *StickyHeader) bind(position AdapterPosition, width int) {
	if s.bound == position || s.overlay == nil {
		return
	}

	s.bound = position
	s.adapter.BindStickyHeader(s.overlay.item, position)
	s.overlay.requestLayout()
	s.height = s.overlay.layout(width, s.fixedHeight)
	if s.logger != nil {
		s.logger.Debug("sticky header bound", "position", int(position), "height", s.height)
	}
}

func (s *StickyHeader) draw(screen tcell.Screen, x, y, width, height int) {
	if s.overlay == nil || s.bound == NoPosition {
		return
	}
	s.overlay.draw(screen, x, y, width, height, s.offset)
}
