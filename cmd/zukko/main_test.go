package main

import "testing"

func TestResolveSeed(t *testing.T) {
	if got := resolveSeed(7); got != 7 {
		t.Errorf("resolveSeed(7) = %d, want 7", got)
	}

	a := resolveSeed(0)
	if a == 0 {
		t.Fatal("seed 0 should be replaced by a clock-based seed")
	}
	for i := 0; i < 1000; i++ {
		if b := resolveSeed(0); b != a {
			return
		}
	}
	t.Error("clock-based seeds should differ between calls")
}
