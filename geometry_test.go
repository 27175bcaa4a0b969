package vtcore

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 3)
	cases := []struct {
		x, y uint16
		want bool
	}{
		{2, 2, true},
		{5, 4, true},
		{6, 4, false}, // right() == 6, exclusive
		{2, 5, false}, // bottom() == 5, exclusive
		{0, 0, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	if got, ok := r.Intersect(r); !ok || got != r {
		t.Errorf("R.Intersect(R) = %v,%v want %v,true", got, ok, r)
	}

	disjoint := NewRect(20, 20, 5, 5)
	if _, ok := r.Intersect(disjoint); ok {
		t.Errorf("expected disjoint intersect to be empty")
	}

	overlap := NewRect(5, 5, 10, 10)
	got, ok := r.Intersect(overlap)
	want := NewRect(5, 5, 5, 5)
	if !ok || got != want {
		t.Errorf("Intersect = %v,%v want %v,true", got, ok, want)
	}
}

func TestRectInner(t *testing.T) {
	r := NewRect(1, 1, 10, 6)
	if got := r.Inner(0); got != r {
		t.Errorf("Inner(0) = %v, want %v", got, r)
	}

	got := r.Inner(2)
	want := NewRect(3, 3, 6, 2)
	if got != want {
		t.Errorf("Inner(2) = %v, want %v", got, want)
	}

	// Margin collapses an axis: width 10 with a margin >= 5 collapses.
	collapsed := r.Inner(5)
	if !collapsed.IsEmpty() || collapsed.X != r.X || collapsed.Y != r.Y {
		t.Errorf("Inner(5) = %v, want empty at origin (%d,%d)", collapsed, r.X, r.Y)
	}
}

func TestRectAreaAndEmpty(t *testing.T) {
	r := NewRect(0, 0, 0, 5)
	if !r.IsEmpty() {
		t.Errorf("expected zero-width rect to be empty")
	}
	full := NewRect(0, 0, 80, 24)
	if full.Area() != 1920 {
		t.Errorf("Area() = %d, want 1920", full.Area())
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 5, 5)
	b := NewRect(10, 10, 5, 5)
	got := a.Union(b)
	want := NewRect(0, 0, 15, 15)
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}
