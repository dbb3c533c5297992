package tview

import "slices"

// stickyPositions remembers every position seen hosting a header, in the
// order first seen. Entries are never removed or reordered.
type stickyPositions struct {
	positions []AdapterPosition
}

// record appends position unless it is already known. It reports whether the
// position was new.
func (p *stickyPositions) record(position AdapterPosition) bool {
	if p.contains(position) {
		return false
	}
	p.positions = append(p.positions, position)
	return true
}

func (p *stickyPositions) contains(position AdapterPosition) bool {
	return slices.Contains(p.positions, position)
}

func (p *stickyPositions) len() int {
	return len(p.positions)
}

func (p *stickyPositions) at(i int) AdapterPosition {
	return p.positions[i]
}

func (p *stickyPositions) last() (AdapterPosition, bool) {
	if len(p.positions) == 0 {
		return NoPosition, false
	}
	return p.positions[len(p.positions)-1], true
}

// lastIndex returns the index of the last occurrence of position, or -1.
func (p *stickyPositions) lastIndex(position AdapterPosition) int {
	for i := len(p.positions) - 1; i >= 0; i-- {
		if p.positions[i] == position {
			return i
		}
	}
	return -1
}

// governing returns the header that owns the pinned bar while the header at
// position is still below the top of the viewport: the only header when just
// one is known, otherwise the one recorded before position.
func (p *stickyPositions) governing(position AdapterPosition) (AdapterPosition, bool) {
	switch p.len() {
	case 0:
		return NoPosition, false
	case 1:
		return p.at(0), true
	}
	if i := p.lastIndex(position); i >= 1 {
		return p.at(i - 1), true
	}
	return NoPosition, false
}

func (p *stickyPositions) snapshot() []AdapterPosition {
	return slices.Clone(p.positions)
}
