package tview

// Command is a side effect a primitive asks the event loop to perform. A nil
// Command means the event was not handled.
type Command any

// BatchCommand runs several commands in order.
type BatchCommand []Command

// AppendCommand combines two commands into one, flattening batches. Nil
// commands are dropped.
func AppendCommand(current Command, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}

	var batch BatchCommand
	for _, c := range []Command{current, next} {
		if nested, ok := c.(BatchCommand); ok {
			batch = append(batch, nested...)
		} else {
			batch = append(batch, c)
		}
	}
	return batch
}

// SetFocusCommand moves keyboard focus to Target.
type SetFocusCommand struct {
	Target Primitive
}

// RedrawCommand asks for a new frame.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}

// SetTitleCommand sets the terminal window title.
type SetTitleCommand string
