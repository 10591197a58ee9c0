package core

import "testing"

func TestBoxOverlapsX(t *testing.T) {
	actor := Box{X: 80, Y: 200, W: 80, H: 80}

	if !actor.OverlapsX(Box{X: 100, W: 50}) {
		t.Error("box inside actor span should overlap")
	}
	if actor.OverlapsX(Box{X: 160, W: 50}) {
		t.Error("box starting at actor right edge should not overlap")
	}
	if actor.OverlapsX(Box{X: 30, W: 50}) {
		t.Error("box ending at actor left edge should not overlap")
	}
}
