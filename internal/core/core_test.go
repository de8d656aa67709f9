package core

import "testing"

func TestTileColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorEmpty},
		{-2, ColorEmpty},
		{2, ColorTile2},
		{4, ColorTile4},
		{64, ColorTile64},
		{2048, ColorTile2048},
		{4096, ColorTileSuper},
		{1 << 40, ColorTileSuper},
	}

	for _, tc := range tests {
		if got := TileColor(tc.value); got != tc.expected {
			t.Errorf("TileColor(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b     int
		t        float64
		expected int
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{0, 10, 0.26, 3},
		{10, 0, 0.5, 5},
		{0, -10, 0.26, -3},
		{0, 10, -1, 0},
		{0, 10, 2, 10},
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.expected {
			t.Errorf("Lerp(%d, %d, %v) = %d, expected %d", tc.a, tc.b, tc.t, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (25, 25)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
	if !r.Contains(5, 10) || r.Contains(25, 25) {
		t.Error("Contains should include the top-left corner and exclude the far edges")
	}
}

func TestInputFrameDirection(t *testing.T) {
	f := NewInputFrame()
	if f.Direction() != ActionNone || !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionRestart)
	if f.Direction() != ActionNone {
		t.Error("restart is not a direction")
	}

	f.Set(ActionRight)
	f.Set(ActionUp)
	if got := f.Direction(); got != ActionUp {
		t.Errorf("Direction() = %v, expected Up (first in order)", got)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !clone.Has(ActionRight) {
		t.Error("Clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	for _, a := range DirectionActions {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	if ActionPause.IsDirection() {
		t.Error("Pause is not a direction")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unexpected name %q", Action(99).String())
	}
}
