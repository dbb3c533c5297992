package tview

import "github.com/gdamore/tcell/v3"

// Primitive is anything the Application can lay out, draw and route events
// to. Handlers do not act on the application directly; they return a Command
// the event loop executes.
type Primitive interface {
	// Draw renders the primitive within its rect. Only a focused primitive
	// should show the cursor.
	Draw(screen tcell.Screen)

	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)

	// InputHandler handles a key event while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler handles a mouse action. A non-nil primitive captures the
	// mouse until a later call returns nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command)
	// PasteHandler handles a bracketed paste while the primitive has focus.
	PasteHandler(text string) Command

	HasFocus() bool
	// Focus is called when the primitive gains focus. Containers pass it on
	// to a child by calling delegate.
	Focus(delegate func(p Primitive))
	Blur()
}
