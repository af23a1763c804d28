package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping boxes", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"fractional overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 1, 1), true},
		{"non-overlapping vertical", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching edges", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"contained box", NewBox(0, 0, 100, 100), NewBox(40, 40, 1, 1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", b.Bottom())
	}
	if c := b.Center(); c.X != 15 || c.Y != 17.5 {
		t.Errorf("Center() = %+v, expected (15, 17.5)", c)
	}
	if !b.Contains(Vec{X: 5, Y: 10}) {
		t.Error("Contains() should include the top-left corner")
	}
	if b.Contains(Vec{X: 25, Y: 25}) {
		t.Error("Contains() should exclude the bottom-right corner")
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{X: 1, Y: -2}.Add(Vec{X: 3, Y: 4}).Scale(0.5)
	if v.X != 2 || v.Y != 1 {
		t.Errorf("Add/Scale = %+v, expected (2, 1)", v)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
