package tview

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v3"
)

// Size of the queue of functions waiting for the event loop.
const updatesQueueSize = 100

// DoubleClickInterval is the longest time between two clicks that still counts
// as a double click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction is a logical mouse action derived from raw mouse events.
type MouseAction int16

const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var mouseButtons = []struct {
	button                    tcell.ButtonMask
	down, up, click, dblClick MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

var mouseWheels = []struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseState is what the event loop remembers between mouse events.
type mouseState struct {
	capture      Primitive
	x, y         int
	downX, downY int
	buttons      tcell.ButtonMask
	lastClick    time.Time
}

// Application owns the screen and runs the event loop. Key events go to the
// input capture first, then to the root primitive. Commands returned by
// handlers are executed by the loop.
//
//	if err := tview.NewApplication().SetRoot(list).Run(); err != nil {
//		return err
//	}
type Application struct {
	mu sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive

	inputCapture func(event *tcell.EventKey) Command
	logger       *log.Logger

	updates chan func()

	// Clear the screen before the next frame.
	fullRedraw bool

	// Only touched by the event loop.
	mouse   mouseState
	pasting bool
	paste   strings.Builder
}

// NewApplication returns an application without a screen or root.
func NewApplication() *Application {
	return &Application{
		updates: make(chan func(), updatesQueueSize),
	}
}

// SetInputCapture installs a function that sees every key event before the
// root primitive. A non-nil command consumes the event.
func (a *Application) SetInputCapture(capture func(event *tcell.EventKey) Command) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inputCapture = capture
	return a
}

// SetLogger sets the logger for event loop diagnostics. Nil disables logging.
func (a *Application) SetLogger(logger *log.Logger) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger = logger
	return a
}

// SetScreen makes the application draw on screen instead of opening the
// terminal. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.fullRedraw = true
	}
	return a
}

// SetRoot sets the primitive filling the screen and focuses it.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	a.fullRedraw = true
	a.mu.Unlock()

	return a.SetFocus(root)
}

// SetFocus blurs the focused primitive and focuses p.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.mu.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the focused primitive, or nil.
func (a *Application) GetFocus() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.focus
}

// Run opens the terminal unless a screen was set, draws the first frame and
// handles events until Stop is called or a QuitCommand runs.
func (a *Application) Run() error {
	screen, err := a.ensureScreen()
	if err != nil {
		return err
	}

	// Restore the terminal before a panic is printed.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	events := screen.EventQ()
	for {
		select {
		case event := <-events:
			if event == nil {
				return nil
			}
			if err := a.handleEvent(event); err != nil {
				a.Stop()
				return err
			}
		case update := <-a.updates:
			update()
		}
	}
}

func (a *Application) ensureScreen() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen != nil {
		return a.screen, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	a.screen = screen
	a.fullRedraw = true
	return screen, nil
}

func (a *Application) handleEvent(event tcell.Event) error {
	switch event := event.(type) {
	case *tcell.EventKey:
		if a.pasting {
			a.collectPaste(event)
			return nil
		}
		a.run(a.keyCommand(event))
	case *tcell.EventPaste:
		a.handlePaste(event)
	case *tcell.EventResize:
		a.mu.Lock()
		a.fullRedraw = true
		a.mu.Unlock()
		a.draw()
	case *tcell.EventMouse:
		a.handleMouse(event)
	case *tcell.EventError:
		if logger := a.getLogger(); logger != nil {
			logger.Error("terminal event error", "err", event)
		}
		return event
	}
	return nil
}

// keyCommand routes a key event to the input capture, then to the root.
func (a *Application) keyCommand(event *tcell.EventKey) Command {
	a.mu.RLock()
	capture, root := a.inputCapture, a.root
	a.mu.RUnlock()

	if capture != nil {
		if cmd := capture(event); cmd != nil {
			return cmd
		}
	}
	if root != nil && root.HasFocus() {
		return root.InputHandler(event)
	}
	return nil
}

func (a *Application) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		a.paste.WriteString(event.Str())
	case tcell.KeyEnter:
		a.paste.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.WriteByte('\t')
	}
}

func (a *Application) handlePaste(event *tcell.EventPaste) {
	if event.Start() {
		a.pasting = true
		a.paste.Reset()
		return
	}
	if !event.End() {
		return
	}
	a.pasting = false

	a.mu.RLock()
	root := a.root
	a.mu.RUnlock()
	if root != nil && root.HasFocus() && a.paste.Len() > 0 {
		a.run(root.PasteHandler(a.paste.String()))
	}
}

func (a *Application) handleMouse(event *tcell.EventMouse) {
	a.mu.RLock()
	root := a.root
	a.mu.RUnlock()

	redraw := false
	for _, action := range a.mouseActions(event) {
		target := a.mouse.capture
		if target == nil {
			target = root
		}
		if target == nil {
			continue
		}
		var cmd Command
		a.mouse.capture, cmd = target.MouseHandler(action, event)
		if a.executeCommand(cmd) {
			redraw = true
		}
	}
	if redraw {
		a.draw()
	}
}

// mouseActions turns a raw mouse event into logical actions, in the order
// they happened: move, button transitions and clicks, then wheel.
func (a *Application) mouseActions(event *tcell.EventMouse) []MouseAction {
	m := &a.mouse
	x, y := event.Position()
	buttons := event.Buttons()

	var actions []MouseAction
	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
		m.x, m.y = x, y
	}

	changed := buttons ^ m.buttons
	for _, b := range mouseButtons {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			actions = append(actions, b.down)
			m.downX, m.downY = x, y
			continue
		}
		actions = append(actions, b.up)
		if x != m.downX || y != m.downY {
			continue
		}
		if time.Since(m.lastClick) < DoubleClickInterval {
			actions = append(actions, b.dblClick)
			m.lastClick = time.Time{}
		} else {
			actions = append(actions, b.click)
			m.lastClick = time.Now()
		}
	}

	for _, w := range mouseWheels {
		if buttons&w.button != 0 {
			actions = append(actions, w.action)
		}
	}
	m.buttons = buttons
	return actions
}

// Stop releases the screen, which ends Run.
func (a *Application) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// QueueUpdate runs f on the event loop and waits for it to finish. Use it to
// change primitives from other goroutines. It must not be called from the
// event loop itself.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- func() {
		defer close(done)
		f()
	}
	<-done
	return a
}

// QueueUpdateDraw works like QueueUpdate and draws a frame after f.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// Draw queues a frame. Like QueueUpdate, it must not be called from the event
// loop.
func (a *Application) Draw() *Application {
	return a.QueueUpdate(func() {
		a.draw()
	})
}

// ForceDraw draws a frame right away. Only call it from the event loop or
// before Run.
func (a *Application) ForceDraw() *Application {
	return a.draw()
}

func (a *Application) draw() *Application {
	a.mu.Lock()
	screen, root, full := a.screen, a.root, a.fullRedraw
	a.fullRedraw = false
	a.mu.Unlock()

	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	// tcell only sends changed cells, so a full clear is kept for resizes and
	// new roots.
	if full {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
	return a
}

func (a *Application) getLogger() *log.Logger {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.logger
}

func (a *Application) currentScreen() tcell.Screen {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.screen
}

// run executes cmd and draws a frame when it asks for one.
func (a *Application) run(cmd Command) {
	if a.executeCommand(cmd) {
		a.draw()
	}
}

// executeCommand performs cmd and reports whether a redraw is needed.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		if logger := a.getLogger(); logger != nil {
			logger.Debug("quit requested")
		}
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil || c.Target == a.GetFocus() {
			return false
		}
		a.SetFocus(c.Target)
		return true
	case SetTitleCommand:
		if screen := a.currentScreen(); screen != nil {
			screen.SetTitle(string(c))
		}
		return false
	}
	return false
}
