package core

// Action is a semantic input, abstracted from the physical key or mouse
// event that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k
	ActionDown           // Down arrow, j
	ActionLeft           // Left arrow, h
	ActionRight          // Right arrow, l
	ActionFlip           // Space, Enter - flip the card under the cursor
	ActionRestart        // R - discard the session and start over
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFlip:
		return "Flip"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool

	// Clicks holds mouse presses in screen coordinates, oldest first.
	Clicks []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Click records a mouse press at (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
