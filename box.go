package tview

import (
	"github.com/gdamore/tcell/v3"
)

// Box is the base primitive: a rect with a background and an optional frame
// made of borders, a title on the top row and a footer on the bottom row.
// Other primitives embed it and draw their content into GetInnerRect.
type Box struct {
	x, y, width, height int

	// Cached inner rect. innerX < 0 means it must be computed again.
	innerX, innerY, innerWidth, innerHeight int

	paddingTop, paddingBottom, paddingLeft, paddingRight int

	backgroundColor tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer          string
	footerStyle     tcell.Style
	footerAlignment Alignment

	hasFocus bool
	onFocus  func()
	onBlur   func()
}

// NewBox returns a box without borders using the current Styles.
func NewBox() *Box {
	return &Box{
		innerX:          -1,
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderSet:   BorderSetPlain(),
		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),

		titleStyle:      tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment:  AlignmentCenter,
		footerStyle:     tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
		footerAlignment: AlignmentLeft,
	}
}

func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

func (b *Box) SetRect(x, y, width, height int) {
	if b.x == x && b.y == y && b.width == width && b.height == height {
		return
	}
	b.x, b.y, b.width, b.height = x, y, width, height
	b.innerX = -1
}

// GetInnerRect returns the rect left for content once the frame and padding
// are taken off. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y := b.x+b.paddingLeft, b.y+b.paddingTop
	if b.hasTopRow() {
		y++
	}
	if b.borders.Has(BordersLeft) {
		x++
	}
	columns, rows := b.chrome()
	return x, y, max(b.width-columns, 0), max(b.height-rows, 0)
}

func (b *Box) hasTopRow() bool {
	return b.title != "" || b.borders.Has(BordersTop)
}

func (b *Box) hasBottomRow() bool {
	return b.footer != "" || b.borders.Has(BordersBottom)
}

// chrome returns the columns and rows taken by the frame and padding.
func (b *Box) chrome() (columns, rows int) {
	columns = b.paddingLeft + b.paddingRight
	rows = b.paddingTop + b.paddingBottom
	if b.hasTopRow() {
		rows++
	}
	if b.hasBottomRow() {
		rows++
	}
	if b.borders.Has(BordersLeft) {
		columns++
	}
	if b.borders.Has(BordersRight) {
		columns++
	}
	return columns, rows
}

// InRect reports whether the screen position x, y is inside the box.
func (b *Box) InRect(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}

// SetBorderPadding sets the blank space kept between the frame and content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	b.innerX = -1
	return b
}

// SetBackgroundColor sets the color the box is filled with. Borders follow.
func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.backgroundColor = color
	b.borderStyle = b.borderStyle.Background(color)
	return b
}

func (b *Box) SetBorders(borders Borders) *Box {
	b.borders = borders
	b.innerX = -1
	return b
}

func (b *Box) SetBorderSet(set BorderSet) *Box {
	b.borderSet = set
	return b
}

func (b *Box) GetTitle() string {
	return b.title
}

// SetTitle sets the label on the top row. A title takes the top row even
// without a top border.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	b.innerX = -1
	return b
}

func (b *Box) GetFooter() string {
	return b.footer
}

// SetFooter sets the label on the bottom row, used for key help.
func (b *Box) SetFooter(footer string) *Box {
	b.footer = footer
	b.innerX = -1
	return b
}

// Draw fills the background and draws the frame.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws the box part of p, a primitive embedding b. Embedders
// call it first, then draw into GetInnerRect.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.Put(x, y, " ", background)
		}
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen)
	}
	if b.title != "" && b.width >= 4 {
		b.drawLabel(screen, b.title, b.y, b.titleAlignment, b.titleStyle)
	}
	if b.footer != "" && b.width >= 4 {
		b.drawLabel(screen, b.footer, b.y+b.height-1, b.footerAlignment, b.footerStyle)
	}

	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

func (b *Box) drawBorders(screen tcell.Screen) {
	left, top := b.x, b.y
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set, style := b.borderSet, b.borderStyle

	for x := left + 1; x < right; x++ {
		if b.borders.Has(BordersTop) {
			screen.Put(x, top, set.Top, style)
		}
		if b.borders.Has(BordersBottom) {
			screen.Put(x, bottom, set.Bottom, style)
		}
	}
	for y := top + 1; y < bottom; y++ {
		if b.borders.Has(BordersLeft) {
			screen.Put(left, y, set.Left, style)
		}
		if b.borders.Has(BordersRight) {
			screen.Put(right, y, set.Right, style)
		}
	}

	if b.borders.HasAll(BordersTop | BordersLeft) {
		screen.Put(left, top, set.TopLeft, style)
	}
	if b.borders.HasAll(BordersTop | BordersRight) {
		screen.Put(right, top, set.TopRight, style)
	}
	if b.borders.HasAll(BordersBottom | BordersLeft) {
		screen.Put(left, bottom, set.BottomLeft, style)
	}
	if b.borders.HasAll(BordersBottom | BordersRight) {
		screen.Put(right, bottom, set.BottomRight, style)
	}
}

// drawLabel prints a title or footer on row y between the corners. A label
// that does not fit ends in an ellipsis on the side it was cut.
func (b *Box) drawLabel(screen tcell.Screen, text string, y int, alignment Alignment, style tcell.Style) {
	if printLine(screen, text, b.x+1, y, b.width-2, alignment, style) {
		return
	}
	x := b.x + b.width - 2
	if alignment == AlignmentRight {
		x = b.x + 1
	}
	putKeepingBackground(screen, x, y, SemigraphicsHorizontalEllipsis, style)
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler asks for focus when the box is pressed.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

// SetFocusFunc sets a callback run when the box gains focus.
func (b *Box) SetFocusFunc(callback func()) *Box {
	b.onFocus = callback
	return b
}

// SetBlurFunc sets a callback run when the box loses focus.
func (b *Box) SetBlurFunc(callback func()) *Box {
	b.onBlur = callback
	return b
}

func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
	if b.onFocus != nil {
		b.onFocus()
	}
}

func (b *Box) Blur() {
	b.hasFocus = false
	if b.onBlur != nil {
		b.onBlur()
	}
}

func (b *Box) HasFocus() bool {
	return b.hasFocus
}
