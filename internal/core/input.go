package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // held: walk left
	ActionRight        // held: walk right
	ActionJump         // pressed this frame: jump
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Held directions and discrete events share the same action set; a pointer
// click, when present, is expressed in world coordinates.
type InputFrame struct {
	Actions map[Action]bool

	presses map[Action]int

	click    Vec2
	hasClick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Press records one discrete press of a. Presses accumulate until Clear,
// so several presses between ticks are all kept.
func (f *InputFrame) Press(a Action) {
	f.Set(a)
	if f.presses == nil {
		f.presses = make(map[Action]int)
	}
	f.presses[a]++
}

// Presses returns how many times a was pressed this frame. An action that
// was only Set counts as one press.
func (f InputFrame) Presses(a Action) int {
	if n := f.presses[a]; n > 0 {
		return n
	}
	if f.Has(a) {
		return 1
	}
	return 0
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// ClickAt records a pointer click at the given world position.
// A later click in the same frame replaces an earlier one.
func (f *InputFrame) ClickAt(p Vec2) {
	f.click = p
	f.hasClick = true
}

// Click returns the clicked world position, if any.
func (f InputFrame) Click() (Vec2, bool) {
	return f.click, f.hasClick
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.presses {
		delete(f.presses, k)
	}
	f.hasClick = false
	f.click = Vec2{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.presses) > 0 {
		clone.presses = make(map[Action]int, len(f.presses))
		for k, v := range f.presses {
			clone.presses[k] = v
		}
	}
	clone.click = f.click
	clone.hasClick = f.hasClick
	return clone
}
