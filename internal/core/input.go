package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow
	ActionDown           // S, J, Down arrow
	ActionLeft           // A, H, Left arrow
	ActionRight          // D, L, Right arrow
	ActionConfirm        // Enter, Space
	ActionChoice         // Digit keys; the slot is carried in InputEvent.Slot
	ActionRestart        // R
	ActionBack           // Escape, the global cancel signal
	ActionQuit           // Ctrl+C
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
	case ActionConfirm:
		return "Confirm"
	case ActionChoice:
		return "Choice"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputKind distinguishes key transitions from pointer samples.
type InputKind int

const (
	InputPress   InputKind = iota // key went down (or auto-repeated)
	InputRelease                  // key went up, when the terminal reports it
	InputPointer                  // pointer moved; X and Y are screen cells
	InputClick                    // pointer pressed; X and Y are screen cells
)

// InputEvent is one input delivered to the mounted activity.
type InputEvent struct {
	Kind   InputKind
	Action Action
	Slot   int // 1-based choice slot for ActionChoice
	X, Y   int
}

// Press builds a key press event.
func Press(a Action) InputEvent {
	return InputEvent{Kind: InputPress, Action: a}
}

// Choice builds a press of the numbered choice slot.
func Choice(slot int) InputEvent {
	return InputEvent{Kind: InputPress, Action: ActionChoice, Slot: slot}
}

// Pointer builds a pointer motion sample.
func Pointer(x, y int) InputEvent {
	return InputEvent{Kind: InputPointer, X: x, Y: y}
}

// KeyState tracks which directional actions are currently held.
//
// Terminals report presses (including auto-repeat) but rarely releases. A
// fresh press stays held for the initial window, long enough to cover the
// terminal's delay before it starts repeating. Once a repeat has arrived the
// shorter repeat window applies. An explicit release ends the hold at once.
type KeyState struct {
	pressedAt map[Action]int
	repeating map[Action]bool
	initial   int
	window    int
}

// NewKeyState creates a key state. A first press stays held for initial steps,
// later repeats for window steps. initial is never shorter than window.
func NewKeyState(initial, window int) KeyState {
	window = max(window, 1)
	return KeyState{
		pressedAt: make(map[Action]int),
		repeating: make(map[Action]bool),
		initial:   max(initial, window),
		window:    window,
	}
}

// Press marks the action as held as of the given step. A press arriving while
// the action is still held counts as an auto-repeat.
func (k *KeyState) Press(a Action, step int) {
	if k.pressedAt == nil {
		k.pressedAt = make(map[Action]int)
		k.repeating = make(map[Action]bool)
	}
	k.repeating[a] = k.Held(a, step)
	k.pressedAt[a] = step
}

// Release marks the action as no longer held.
func (k *KeyState) Release(a Action) {
	delete(k.pressedAt, a)
	delete(k.repeating, a)
}

// Held reports whether the action counts as held at the given step.
func (k KeyState) Held(a Action, step int) bool {
	at, ok := k.pressedAt[a]
	if !ok {
		return false
	}
	limit := k.initial
	if k.repeating[a] {
		limit = k.window
	}
	return step-at <= limit
}

// Clear releases every action.
func (k *KeyState) Clear() {
	clear(k.pressedAt)
	clear(k.repeating)
}
