package catalog

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// captureScreen records the grapheme written to each cell.
type captureScreen struct {
	tcell.Screen
	width, height int
	cells         []string
	styles        []tcell.Style
}

func newCaptureScreen(width, height int) *captureScreen {
	s := &captureScreen{width: width, height: height}
	s.cells = make([]string, width*height)
	s.styles = make([]tcell.Style, width*height)
	for i := range s.cells {
		s.cells[i] = " "
	}
	return s
}

func (s *captureScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *captureScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if x >= 0 && x < s.width && y >= 0 && y < s.height {
		s.cells[y*s.width+x] = cluster
		s.styles[y*s.width+x] = style
	}
	return rest, max(width, 1)
}

func (s *captureScreen) Get(x, y int) (string, tcell.Style, int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return "", tcell.StyleDefault, 1
	}
	return s.cells[y*s.width+x], s.styles[y*s.width+x], 1
}

func (s *captureScreen) row(y int) string {
	return strings.TrimRight(strings.Join(s.cells[y*s.width:(y+1)*s.width], ""), " ")
}
