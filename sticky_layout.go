package tview

// AdapterPosition is the position handed to a StickyAdapter and stored in the
// header cache. It is the layout's first visible position shifted by the
// leading decoration count, plus the slot of the child, so it counts leading
// decorations like the host list does.
type AdapterPosition int

// NoPosition means no header content has been bound.
const NoPosition AdapterPosition = -1

// SlotIndex is the index of a child among the children visible in the current
// frame. Slot 0 is the first visible child.
type SlotIndex int

// SpanSizeLookup reports how many columns the item at position occupies in a
// grid.
type SpanSizeLookup func(position AdapterPosition) int

// StickyLayout describes the layout strategy of a sticky host. The set of
// layouts is closed: use SequentialLayout or StaggeredLayout.
type StickyLayout interface {
	// FirstVisiblePosition returns the first visible position as reported by
	// the layout, not counting leading decorations.
	FirstVisiblePosition() int
	// SpanSize returns the grid span lookup, or nil when the layout has no
	// notion of spans.
	SpanSize() SpanSizeLookup

	valid() bool
}

// SequentialLayout is a single column list, optionally arranged as a grid
// whose span sizes are reported by Spans.
type SequentialLayout struct {
	First func() int
	Spans SpanSizeLookup
}

func (l SequentialLayout) FirstVisiblePosition() int {
	return l.First()
}

func (l SequentialLayout) SpanSize() SpanSizeLookup {
	return l.Spans
}

func (l SequentialLayout) valid() bool {
	return l.First != nil
}

// StaggeredLayout is a multi-column layout where every column reports its own
// first visible position. The first column's position is used.
type StaggeredLayout struct {
	FirstPositions func() []int
}

func (l StaggeredLayout) FirstVisiblePosition() int {
	positions := l.FirstPositions()
	if len(positions) == 0 {
		return 0
	}
	return positions[0]
}

func (l StaggeredLayout) SpanSize() SpanSizeLookup {
	return nil
}

func (l StaggeredLayout) valid() bool {
	return l.FirstPositions != nil
}
