package tview

import "github.com/gdamore/tcell/v3"

// TextItem is a scroll list item showing word wrapped text. It can declare
// itself a sticky header.
type TextItem struct {
	*Box

	text      string
	textStyle tcell.Style
	alignment Alignment
	header    bool
}

// NewTextItem returns a text item showing text.
func NewTextItem(text string) *TextItem {
	return &TextItem{
		Box:       NewBox(),
		text:      text,
		textStyle: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
	}
}

// SetText replaces the item's text.
func (t *TextItem) SetText(text string) *TextItem {
	t.text = text
	return t
}

// GetText returns the item's text.
func (t *TextItem) GetText() string {
	return t.text
}

// SetTextStyle sets the style used to print the text.
func (t *TextItem) SetTextStyle(style tcell.Style) *TextItem {
	t.textStyle = style
	return t
}

// SetTextAlignment sets the alignment of every wrapped line.
func (t *TextItem) SetTextAlignment(alignment Alignment) *TextItem {
	t.alignment = alignment
	return t
}

// SetStickyHeader marks the item as a section header.
func (t *TextItem) SetStickyHeader(header bool) *TextItem {
	t.header = header
	return t
}

// IsStickyHeader implements StickyRole.
func (t *TextItem) IsStickyHeader() bool {
	return t.header
}

// Height returns the number of rows the item needs at the given width.
func (t *TextItem) Height(width int) int {
	columns, rows := t.chrome()
	return len(wrapText(t.text, max(width-columns, 1))) + rows
}

// Draw draws this primitive onto the screen.
func (t *TextItem) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}
	for row, line := range wrapText(t.text, width) {
		if row >= height {
			break
		}
		printLine(screen, line, x, y+row, width, t.alignment, t.textStyle)
	}
}

var _ ScrollListItem = &TextItem{}
var _ StickyRole = &TextItem{}
