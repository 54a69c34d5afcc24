// Package nav is the top-level navigation state machine: which activity is
// current, and the score of the last completed session.
//
// Transition is a pure function so the whole flow can be tested without a
// terminal.
package nav

import "fmt"

// Activity is one of the closed set of screens.
type Activity int

const (
	Home Activity = iota
	Memory
	Arithmetic
	Catching
	BuddyReward
)

// Activities lists every activity in menu order.
var Activities = []Activity{Home, Memory, Arithmetic, Catching, BuddyReward}

// String returns the activity's stable identifier.
func (a Activity) String() string {
	switch a {
	case Home:
		return "home"
	case Memory:
		return "memory"
	case Arithmetic:
		return "arithmetic"
	case Catching:
		return "catching"
	case BuddyReward:
		return "buddy"
	default:
		return fmt.Sprintf("activity(%d)", int(a))
	}
}

// IsGame reports whether the activity is a scored mini-game session.
func (a Activity) IsGame() bool {
	return a == Memory || a == Arithmetic || a == Catching
}

// Parse maps an identifier back to an activity.
func Parse(id string) (Activity, error) {
	for _, a := range Activities {
		if a.String() == id {
			return a, nil
		}
	}
	return Home, fmt.Errorf("nav: unknown activity %q", id)
}

// EventKind is what happened.
type EventKind int

const (
	// EventSelect is a menu selection; Target says which activity.
	EventSelect EventKind = iota
	// EventComplete is a session's completion callback; Score is the result.
	EventComplete
	// EventReturnHome is the explicit "back to menu" action.
	EventReturnHome
	// EventCancel is the global cancel signal (Escape).
	EventCancel
)

// Event is the input to Transition.
type Event struct {
	Kind   EventKind
	Target Activity
	Score  int
}

// Select builds a menu selection event.
func Select(a Activity) Event { return Event{Kind: EventSelect, Target: a} }

// Complete builds a completion event.
func Complete(score int) Event { return Event{Kind: EventComplete, Score: score} }

// ReturnHome builds an explicit return-home event.
func ReturnHome() Event { return Event{Kind: EventReturnHome} }

// Cancel builds a global cancel event.
func Cancel() Event { return Event{Kind: EventCancel} }

// State is the machine's whole state.
type State struct {
	Current Activity
	Score   int // last reported session score
}

// Transition applies an event. The second result is false when the event is
// not valid in the current state; the state is then returned unchanged.
func Transition(s State, ev Event) (State, bool) {
	switch ev.Kind {
	case EventSelect:
		if s.Current != Home || ev.Target == Home {
			return s, false
		}
		s.Current = ev.Target
		return s, true

	case EventComplete:
		if !s.Current.IsGame() {
			return s, false
		}
		s.Current = BuddyReward
		s.Score = max(ev.Score, 0)
		return s, true

	case EventReturnHome, EventCancel:
		if s.Current == Home {
			return s, false
		}
		s.Current = Home
		return s, true
	}
	return s, false
}

// Machine holds the current state and applies events to it.
type Machine struct {
	state       State
	transitions int
}

// NewMachine starts at Home with score 0.
func NewMachine() *Machine {
	return &Machine{state: State{Current: Home}}
}

// Fire applies an event and reports whether the state changed.
func (m *Machine) Fire(ev Event) bool {
	next, ok := Transition(m.state, ev)
	if ok {
		m.state = next
		m.transitions++
	}
	return ok
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Current returns the current activity.
func (m *Machine) Current() Activity { return m.state.Current }

// Score returns the last completed session score.
func (m *Machine) Score() int { return m.state.Score }

// Transitions returns how many events changed the state.
func (m *Machine) Transitions() int { return m.transitions }
