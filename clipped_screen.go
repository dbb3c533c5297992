package tview

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// clippedScreen is a view of a screen that ignores writes outside one
// rectangle. List items and the sticky header draw through it, so rows
// scrolled partly out of the viewport stay inside it.
type clippedScreen struct {
	tcell.Screen
	left, top, right, bottom int // right and bottom are exclusive
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		left:   x,
		top:    y,
		right:  x + width,
		bottom: y + height,
	}
}

func (s *clippedScreen) contains(x, y int) bool {
	return x >= s.left && x < s.right && y >= s.top && y < s.bottom
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if s.contains(x, y) {
		s.Screen.SetContent(x, y, primary, combining, style)
	}
}

// Put drops a clipped cluster but still consumes it, so callers walking a
// string stay in step.
func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if s.contains(x, y) {
		return s.Screen.Put(x, y, str, style)
	}
	_, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	return rest, width
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

// PutStrStyled writes the clusters of str that fit entirely inside the clip.
func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.top || y >= s.bottom {
		return
	}
	state := -1
	for str != "" && x < s.right {
		var (
			cluster string
			width   int
		)
		cluster, str, width, state = uniseg.FirstGraphemeClusterInString(str, state)
		width = max(width, 1)
		if x >= s.left && x+width <= s.right {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

// ShowCursor hides the cursor when it falls outside the clip.
func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.contains(x, y) {
		x, y = -1, -1
	}
	s.Screen.ShowCursor(x, y)
}
