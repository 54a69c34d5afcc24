package core

import "testing"

func TestKeyStateHoldWindow(t *testing.T) {
	k := NewKeyState(3, 3)

	if k.Held(ActionLeft, 0) {
		t.Error("nothing pressed yet, Left should not be held")
	}

	k.Press(ActionLeft, 10)
	for step := 10; step <= 13; step++ {
		if !k.Held(ActionLeft, step) {
			t.Errorf("Left should be held at step %d", step)
		}
	}
	if k.Held(ActionLeft, 14) {
		t.Error("Left should lapse once the window passes without a repeat")
	}

	// A press after the lapse starts a fresh hold.
	k.Press(ActionLeft, 14)
	if !k.Held(ActionLeft, 16) {
		t.Error("a new press should hold again")
	}
}

func TestKeyStateInitialWindowCoversRepeatDelay(t *testing.T) {
	k := NewKeyState(30, 9)

	k.Press(ActionLeft, 0)
	for step := 0; step <= 30; step++ {
		if !k.Held(ActionLeft, step) {
			t.Fatalf("Left should stay held until the first repeat, lapsed at step %d", step)
		}
	}

	// The first repeat arrives at step 30; from here the short window applies.
	k.Press(ActionLeft, 30)
	if !k.Held(ActionLeft, 39) {
		t.Error("Left should be held within the repeat window")
	}
	if k.Held(ActionLeft, 40) {
		t.Error("Left should lapse once repeats stop")
	}

	// After lapsing, the next press is a fresh one with the long window again.
	k.Press(ActionLeft, 100)
	if !k.Held(ActionLeft, 125) {
		t.Error("a fresh press should get the initial window")
	}
}

func TestKeyStateInitialNeverShorterThanWindow(t *testing.T) {
	k := NewKeyState(2, 5)
	k.Press(ActionRight, 0)
	if !k.Held(ActionRight, 5) {
		t.Error("initial window should be raised to the repeat window")
	}
}

func TestKeyStateReleaseWins(t *testing.T) {
	k := NewKeyState(100, 100)
	k.Press(ActionRight, 0)
	k.Release(ActionRight)

	if k.Held(ActionRight, 1) {
		t.Error("explicit release should end the hold immediately")
	}

	// Last write wins: a press after the release holds again.
	k.Press(ActionRight, 2)
	if !k.Held(ActionRight, 2) {
		t.Error("press after release should hold")
	}

	k.Clear()
	if k.Held(ActionRight, 2) {
		t.Error("Clear should release everything")
	}
}

func TestKeyStateZeroValue(t *testing.T) {
	var k KeyState
	k.Press(ActionLeft, 0)
	if !k.Held(ActionLeft, 0) {
		t.Error("zero-value KeyState should accept presses")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionBack.String() != "Back" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
