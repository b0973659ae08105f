package core

// Action is a semantic input, abstracted from the key that produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - move the cursor up
	ActionDown           // S, J, Down arrow - move the cursor down
	ActionLeft           // A, H, Left arrow - move the cursor left
	ActionRight          // D, L, Right arrow - move the cursor right
	ActionPress          // Space, Enter - press the square under the cursor
	ActionCommand        // Submitted prompt text, carried in InputFrame.Text
	ActionRestart        // R - new module after game over
	ActionPause          // P - pause/unpause
	ActionQuit           // Q, Ctrl+C - leave the game
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
	case ActionPress:
		return "Press"
	case ActionCommand:
		return "Command"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received during one tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Text is the command submitted with ActionCommand.
	Text string
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

// SetCommand records a submitted command.
func (f *InputFrame) SetCommand(text string) {
	f.Set(ActionCommand)
	f.Text = text
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Text = ""
}
