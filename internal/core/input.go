package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see intents such as "interact", never raw keys.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // W, Up arrow - walk up
	ActionDown               // S, Down arrow - walk down
	ActionLeft               // A, Left arrow - walk left
	ActionRight              // D, Right arrow - walk right
	ActionInteract           // E, Space - pick up, place, bin or deliver
	ActionAltInteract        // Shift+E - lift the contents off a plate
	ActionChop               // F - use the tool on the selected counter
	ActionSkip               // K - skip the tutorial
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back
	ActionRestart            // R key - start a new round after time runs out
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause
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
	case ActionInteract:
		return "Interact"
	case ActionAltInteract:
		return "AltInteract"
	case ActionChop:
		return "Chop"
	case ActionSkip:
		return "Skip"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
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

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
