package tview

import "github.com/gdamore/tcell/v3"

// stickyOverlay is the holder primitive the pinned header is bound into. It is
// laid out on its own, at the origin, and never joins the list's items.
type stickyOverlay struct {
	item ScrollListItem

	// Width used by the last layout pass.
	width int
	// Set when the next draw must measure and lay out the holder again.
	layoutRequested bool
}

func newStickyOverlay(item ScrollListItem) *stickyOverlay {
	return &stickyOverlay{item: item, layoutRequested: true}
}

func (o *stickyOverlay) requestLayout() {
	o.layoutRequested = true
}

// layout measures the holder for width when a layout was requested and
// returns its height. A positive fixedHeight is used as is; otherwise the
// holder reports its natural height.
func (o *stickyOverlay) layout(width, fixedHeight int) int {
	if o.layoutRequested {
		height := fixedHeight
		if height <= 0 {
			height = max(o.item.Height(width), 1)
		}
		o.item.SetRect(0, 0, width, height)
		o.width = width
		o.layoutRequested = false
	}
	_, _, _, height := o.item.GetRect()
	return height
}

// draw renders the holder at the top of the viewport, moved up by offset
// rows. The holder keeps its own layout once drawing is done.
func (o *stickyOverlay) draw(screen tcell.Screen, x, y, width, height, offset int) {
	ox, oy, ow, oh := o.item.GetRect()
	defer o.item.SetRect(ox, oy, ow, oh)

	o.item.SetRect(x+ox, y+oy-offset, ow, oh)
	o.item.Draw(newClippedScreen(screen, x, y, width, height))
}
