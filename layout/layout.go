// Package layout implements the constraint-based rectangle splitter:
// partition a vtcore.Rect into N sub-rectangles along one axis given
// declarative size constraints (fixed length, percentage, ratio, minimum,
// maximum, weighted fill).
//
// The solver is a pure function of its inputs — it holds no state and
// performs no I/O.
package layout

import "github.com/corvanis/vtcore"

// Direction is the axis a Layout splits along.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

type constraintKind int

const (
	kindLength constraintKind = iota
	kindPercentage
	kindMin
	kindMax
	kindFill
	kindRatio
)

// Constraint is a declarative size rule evaluated along one axis. Values
// are built exclusively through the constructor functions below, which
// keeps it a closed sum type despite Go having no sealed-enum idiom.
type Constraint struct {
	kind     constraintKind
	n        uint16 // Length/Percentage/Min/Max value, or Fill weight
	num, den uint16 // Ratio numerator/denominator
}

// Length is a fixed cell count.
func Length(n uint16) Constraint { return Constraint{kind: kindLength, n: n} }

// Percentage is a share of the available axis, 0-100. Panics if p > 100 —
// a contract violation (spec §7), not a runtime condition callers should
// need to recover from.
func Percentage(p uint16) Constraint {
	if p > 100 {
		panic("layout: Percentage must be in [0,100]")
	}
	return Constraint{kind: kindPercentage, n: p}
}

// Min claims at least n cells in the first pass; it does not compete for
// any leftover space in the second pass (see Areas doc comment).
func Min(n uint16) Constraint { return Constraint{kind: kindMin, n: n} }

// Max claims up to n cells of the leftover space after fixed constraints
// are satisfied, sharing that leftover with other Max/Fill constraints.
func Max(n uint16) Constraint { return Constraint{kind: kindMax, n: n} }

// Fill claims a weighted share of the leftover space, alongside any Max
// constraints.
func Fill(weight uint16) Constraint { return Constraint{kind: kindFill, n: weight} }

// Ratio claims num/den of the available axis. Panics if den == 0 — a
// contract violation (spec §7).
func Ratio(num, den uint16) Constraint {
	if den == 0 {
		panic("layout: Ratio denominator must be nonzero")
	}
	return Constraint{kind: kindRatio, num: num, den: den}
}

// Layout is an immutable description of how to split a rectangle: a
// direction, an ordered list of constraints, and the spacing inserted
// between adjacent sub-rectangles.
type Layout struct {
	direction   Direction
	constraints []Constraint
	spacing     uint16
}

// Vertical builds a Layout that splits along the vertical (row) axis.
// Panics if no constraints are given — a zero-length layout is a contract
// violation (spec §7).
func Vertical(constraints ...Constraint) Layout {
	return newLayout(DirectionVertical, constraints)
}

// Horizontal builds a Layout that splits along the horizontal (column)
// axis.
func Horizontal(constraints ...Constraint) Layout {
	return newLayout(DirectionHorizontal, constraints)
}

func newLayout(dir Direction, constraints []Constraint) Layout {
	if len(constraints) == 0 {
		panic("layout: a Layout needs at least one constraint")
	}
	cp := make([]Constraint, len(constraints))
	copy(cp, constraints)
	return Layout{direction: dir, constraints: cp}
}

// WithSpacing returns a copy of the layout with the given inter-rectangle
// spacing.
func (l Layout) WithSpacing(n uint16) Layout {
	l.spacing = n
	return l
}

// Areas partitions rect into len(constraints) sub-rectangles along the
// layout's direction, preserving the cross-axis extent of rect.
//
// Algorithm (spec §4.3), deterministic and single-pass-plus-one:
//  1. available = axis_len - spacing*(N-1), saturating.
//  2. First pass, in constraint order: Length/Percentage/Min/Ratio claim
//     their size immediately and subtract from the running remainder; Max
//     and Fill are deferred and contribute to fill_total (Max contributes
//     1, Fill contributes its weight).
//  3. Second pass, only if fill_total > 0: Fill gets remaining*weight /
//     fill_total; Max gets min(remaining/fill_total, its own cap).
//  4. Rectangles are laid out in order starting at rect's origin on the
//     split axis, each advancing by its size plus spacing.
//
// Sizes may not sum exactly to available; the remainder is left
// unallocated beyond the last rectangle — this is deliberate, not a bug,
// and matches the reference behavior the spec calls out. Min claims its
// floor in the first pass and never competes for leftover space in the
// second pass, which is also a deliberate divergence from solvers that let
// Min share in fill distribution.
func (l Layout) Areas(rect vtcore.Rect) []vtcore.Rect {
	n := len(l.constraints)
	axisLen := rect.Width
	if l.direction == DirectionVertical {
		axisLen = rect.Height
	}

	spacingTotal := uint32(l.spacing) * uint32(n-1)
	available := int64(axisLen) - int64(spacingTotal)
	if available < 0 {
		available = 0
	}

	sizes := make([]int64, n)
	remaining := available
	var fillTotal int64

	for i, c := range l.constraints {
		switch c.kind {
		case kindLength:
			sizes[i] = int64(c.n)
			remaining = satSub64(remaining, sizes[i])
		case kindPercentage:
			s := available * int64(c.n) / 100
			if s > available {
				s = available
			}
			sizes[i] = s
			remaining = satSub64(remaining, s)
		case kindMin:
			sizes[i] = int64(c.n)
			remaining = satSub64(remaining, sizes[i])
		case kindRatio:
			s := available * int64(c.num) / int64(c.den)
			if s > available {
				s = available
			}
			sizes[i] = s
			remaining = satSub64(remaining, s)
		case kindMax:
			fillTotal++
		case kindFill:
			fillTotal += int64(c.n)
		}
	}

	if fillTotal > 0 {
		for i, c := range l.constraints {
			switch c.kind {
			case kindFill:
				sizes[i] = remaining * int64(c.n) / fillTotal
			case kindMax:
				share := remaining / fillTotal
				if share > int64(c.n) {
					share = int64(c.n)
				}
				sizes[i] = share
			}
		}
	}

	rects := make([]vtcore.Rect, n)
	pos := rect.X
	if l.direction == DirectionVertical {
		pos = rect.Y
	}
	for i, s := range sizes {
		size := uint16(s)
		if l.direction == DirectionHorizontal {
			rects[i] = vtcore.Rect{X: pos, Y: rect.Y, Width: size, Height: rect.Height}
		} else {
			rects[i] = vtcore.Rect{X: rect.X, Y: pos, Width: rect.Width, Height: size}
		}
		pos = satAdd16(pos, size)
		pos = satAdd16(pos, l.spacing)
	}
	return rects
}

func satSub64(a, b int64) int64 {
	r := a - b
	if r < 0 {
		return 0
	}
	return r
}

func satAdd16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > 0xffff {
		return 0xffff
	}
	return uint16(sum)
}
