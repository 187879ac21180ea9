package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},  // top-left corner (inclusive)
		{29, 29, true},  // bottom-right (exclusive edge - 1)
		{30, 30, false}, // bottom-right edge (exclusive)
		{9, 15, false},
		{15, 9, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	tests := []struct {
		name   string
		outer  Rect
		w, h   int
		expect Rect
	}{
		{"even fit", NewRect(0, 0, 80, 24), 20, 10, NewRect(30, 7, 20, 10)},
		{"offset outer", NewRect(4, 2, 10, 10), 4, 4, NewRect(7, 5, 4, 4)},
		{"larger than outer", NewRect(0, 0, 10, 10), 14, 12, NewRect(-2, -1, 14, 12)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outer.Centered(tc.w, tc.h); got != tc.expect {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tc.w, tc.h, got, tc.expect)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestValueColor(t *testing.T) {
	seen := make(map[Color]bool)
	for v := 1; v <= 10; v++ {
		c := ValueColor(v)
		if c == ColorDefault {
			t.Errorf("ValueColor(%d) should not be default", v)
		}
		if seen[c] {
			t.Errorf("ValueColor(%d) = %v duplicates an earlier value", v, c)
		}
		seen[c] = true
	}
	if ValueColor(0) != ColorDefault || ValueColor(11) != ColorDefault {
		t.Error("out-of-range values should map to ColorDefault")
	}
}

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionNone)
	f.Set(ActionSelect)
	f.Set(ActionRight)

	want := []Action{ActionRight, ActionSelect, ActionRight}
	if f.Len() != len(want) {
		t.Fatalf("Len() = %d, expected %d", f.Len(), len(want))
	}
	for i, a := range want {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
	if !f.Has(ActionSelect) || f.Has(ActionPause) {
		t.Error("Has() reported wrong membership")
	}

	clone := f.Clone()
	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear() left %d actions", f.Len())
	}
	if clone.Len() != 3 {
		t.Errorf("Clone should be independent of Clear, got %d actions", clone.Len())
	}
}
