package layout

import (
	"reflect"
	"testing"

	"github.com/corvanis/vtcore"
)

func TestAreasVerticalLengths(t *testing.T) {
	rect := vtcore.NewRect(0, 0, 80, 24)
	got := Vertical(Length(3), Length(10), Length(3)).Areas(rect)
	want := []vtcore.Rect{
		vtcore.NewRect(0, 0, 80, 3),
		vtcore.NewRect(0, 3, 80, 10),
		vtcore.NewRect(0, 13, 80, 3),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Areas = %v, want %v", got, want)
	}
}

func TestAreasHorizontalRatios(t *testing.T) {
	rect := vtcore.NewRect(0, 0, 100, 24)
	got := Horizontal(Ratio(1, 4), Ratio(1, 2), Ratio(1, 4)).Areas(rect)
	want := []vtcore.Rect{
		vtcore.NewRect(0, 0, 25, 24),
		vtcore.NewRect(25, 0, 50, 24),
		vtcore.NewRect(75, 0, 25, 24),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Areas = %v, want %v", got, want)
	}
}

func TestAreasLengthThenFill(t *testing.T) {
	rect := vtcore.NewRect(0, 0, 80, 24)
	got := Horizontal(Length(20), Fill(1)).Areas(rect)
	want := []vtcore.Rect{
		vtcore.NewRect(0, 0, 20, 24),
		vtcore.NewRect(20, 0, 60, 24),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Areas = %v, want %v", got, want)
	}
}

// Property: for an all-Length layout with spacing 0 that fits within the
// axis, sizes equal the constraints exactly and positions are prefix sums.
func TestAreasLengthSumProperty(t *testing.T) {
	rect := vtcore.NewRect(5, 5, 50, 50)
	lens := []uint16{4, 8, 2, 6}
	cs := make([]Constraint, len(lens))
	for i, l := range lens {
		cs[i] = Length(l)
	}
	got := Horizontal(cs...).Areas(rect)
	pos := rect.X
	for i, l := range lens {
		if got[i].Width != l || got[i].X != pos || got[i].Height != rect.Height {
			t.Errorf("rect[%d] = %v, want width %d at x=%d", i, got[i], l, pos)
		}
		pos += l
	}
}

func TestMinDoesNotCompeteForFill(t *testing.T) {
	// Min claims its floor only; remaining fill is split among Fill/Max,
	// never topped up further from leftover for Min.
	rect := vtcore.NewRect(0, 0, 30, 1)
	got := Horizontal(Min(5), Fill(1), Fill(1)).Areas(rect)
	if got[0].Width != 5 {
		t.Errorf("Min(5) claimed %d, want exactly 5", got[0].Width)
	}
	// remaining after Min(5) = 25, split 1:1 between the two Fill(1)s.
	if got[1].Width != 12 || got[2].Width != 12 {
		t.Errorf("Fill split = %d,%d want 12,12 (25/2 floored)", got[1].Width, got[2].Width)
	}
}

func TestSpacingExceedsAxisCollapsesToZero(t *testing.T) {
	// Fill/Percentage/Ratio constraints derive their size from `available`,
	// which saturates to zero once spacing alone exceeds the axis.
	rect := vtcore.NewRect(0, 0, 4, 1)
	got := Horizontal(Fill(1), Percentage(50), Ratio(1, 2)).WithSpacing(10).Areas(rect)
	for i, r := range got {
		if r.Width != 0 {
			t.Errorf("rect[%d].Width = %d, want 0 when spacing exceeds axis", i, r.Width)
		}
	}
}

func TestContractViolationsPanic(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			f()
		})
	}
	mustPanic("ratio-zero-den", func() { Ratio(1, 0) })
	mustPanic("percentage-over-100", func() { Percentage(101) })
	mustPanic("zero-constraints", func() { Horizontal() })
}

func TestWithSpacingIsImmutableCopy(t *testing.T) {
	base := Horizontal(Length(1), Length(1))
	spaced := base.WithSpacing(3)
	rect := vtcore.NewRect(0, 0, 10, 1)
	if base.Areas(rect)[1].X == spaced.Areas(rect)[1].X {
		t.Errorf("WithSpacing must not mutate the receiver")
	}
}
