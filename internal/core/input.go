package core

// Action represents a semantic player action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveLeft
	ActionMoveDown
	ActionMoveRight
	ActionDash   // reserved, no behavior yet
	ActionAttack // fire a bullet toward the aim point

	// ActionCount is the number of actions; valid actions are [0, ActionCount).
	ActionCount
)

// Actions lists every action in declaration order.
func Actions() [ActionCount]Action {
	var all [ActionCount]Action
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveRight:
		return "MoveRight"
	case ActionDash:
		return "Dash"
	case ActionAttack:
		return "Attack"
	default:
		return "Unknown"
	}
}

// Valid reports whether a is one of the declared actions.
func (a Action) Valid() bool {
	return a >= 0 && a < ActionCount
}

// ActionState is the resolved state of one action for one frame.
type ActionState struct {
	Down    bool // held this frame
	Pressed bool // became held this frame
}

// InputFrame represents the player's input for a single simulation tick.
// Every action has a slot, so lookups never miss.
type InputFrame struct {
	Actions [ActionCount]ActionState

	// Pointer is the mouse position in arena coordinates.
	Pointer Vec2
	// PointerDown is true while the primary pointer button is held.
	PointerDown bool
	// ToggleDebug is set on the frame the debug toggle chord was pressed.
	ToggleDebug bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as held and newly pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if !a.Valid() {
		return
	}
	f.Actions[a] = ActionState{Down: true, Pressed: true}
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	if !a.Valid() {
		return
	}
	f.Actions[a].Down = true
}

// Down returns true if the action is held this frame.
func (f InputFrame) Down(a Action) bool {
	return a.Valid() && f.Actions[a].Down
}

// Pressed returns true if the action became held this frame.
func (f InputFrame) Pressed(a Action) bool {
	return a.Valid() && f.Actions[a].Pressed
}

// Clear resets all actions for the next frame. Pointer position is kept.
func (f *InputFrame) Clear() {
	f.Actions = [ActionCount]ActionState{}
	f.PointerDown = false
	f.ToggleDebug = false
}
