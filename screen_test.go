package tview

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type testCell struct {
	text  string
	style tcell.Style
}

// testScreen is an in-memory screen holding one grapheme per cell. Methods not
// overridden here are never called by the primitives under test.
type testScreen struct {
	tcell.Screen
	width  int
	height int
	cells  []testCell
}

func newTestScreen(width, height int) *testScreen {
	s := &testScreen{width: width, height: height}
	s.Clear()
	return s
}

func (s *testScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *testScreen) Clear() {
	s.cells = make([]testCell, s.width*s.height)
	for i := range s.cells {
		s.cells[i] = testCell{text: " ", style: tcell.StyleDefault}
	}
}

func (s *testScreen) Show() {}

func (s *testScreen) Fini() {}

func (s *testScreen) SetTitle(title string) {}

func (s *testScreen) HideCursor() {}

func (s *testScreen) ShowCursor(x, y int) {}

func (s *testScreen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *testScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Put(x, y, string(append([]rune{primary}, combining...)), style)
}

func (s *testScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}
	cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if s.inBounds(x, y) {
		s.cells[y*s.width+x] = testCell{text: cluster, style: style}
	}
	return rest, max(width, 1)
}

func (s *testScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

func (s *testScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" {
		var width int
		str, width = s.Put(x, y, str, style)
		x += width
	}
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	if !s.inBounds(x, y) {
		return "", tcell.StyleDefault, 1
	}
	c := s.cells[y*s.width+x]
	return c.text, c.style, 1
}

// row returns the text of row y without trailing blanks.
func (s *testScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		text, _, _ := s.Get(x, y)
		b.WriteString(text)
	}
	return strings.TrimRight(b.String(), " ")
}
