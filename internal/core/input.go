package core

// Action represents a semantic game action, abstracted from physical key presses.
// Bindings map raw keys to actions per player; the simulation only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Move left
	ActionRight          // Move right
	ActionUp             // Jump, or climb up while on a ladder
	ActionDown           // Climb down while on a ladder
	ActionShoot          // Fire a projectile in the facing direction
	ActionRestart        // Restart after victory or game over
	ActionQuit           // Exit the session
	ActionPause          // Pause/unpause
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionShoot:
		return "Shoot"
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

// PlayerID identifies a local player slot (control binding).
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// MaxPlayers is the number of control bindings the front-end provides.
const MaxPlayers = 2

// InputFrame is the input state of one player for one simulation tick.
// Held is the continuously sampled "key is down" set; Pressed holds the
// discrete key-down events delivered during this frame.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Press records a key-down event for this frame. A pressed key also counts as held.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
	f.Hold(a)
}

// IsHeld returns true if the action is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// WasPressed returns true if a key-down event for the action arrived this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// Horizontal returns -1, 0 or +1 from the held left/right actions.
// Holding both cancels out.
func (f InputFrame) Horizontal() int {
	dir := 0
	if f.IsHeld(ActionLeft) {
		dir--
	}
	if f.IsHeld(ActionRight) {
		dir++
	}
	return dir
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Held)
	clear(f.Pressed)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	return clone
}

// MultiInputFrame contains input from all local players for a single tick.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if the player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Press records a key-down event for a player.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	frame := m.Player(id)
	frame.Press(a)
	m.SetPlayer(id, frame)
}

// Hold marks an action as held for a player.
func (m *MultiInputFrame) Hold(id PlayerID, a Action) {
	frame := m.Player(id)
	frame.Hold(a)
	m.SetPlayer(id, frame)
}

// AnyPressed reports whether any player pressed the action this frame.
func (m MultiInputFrame) AnyPressed(a Action) bool {
	for _, frame := range m.ByPlayer {
		if frame.WasPressed(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}
