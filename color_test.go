package vtcore

import "testing"

func TestColorEquality(t *testing.T) {
	if RGBColor(1, 2, 3) != (Color{Kind: ColorRGB, R: 1, G: 2, B: 3}) {
		t.Errorf("RGBColor constructor did not match literal")
	}
	if IndexedColor(5) == RGBColor(5, 0, 0) {
		t.Errorf("different kinds with overlapping fields must not compare equal")
	}
}

func TestColorIsDefault(t *testing.T) {
	if !DefaultColor().IsDefault() {
		t.Errorf("DefaultColor() should report IsDefault")
	}
	if IndexedColor(0).IsDefault() {
		t.Errorf("IndexedColor(0) should not report IsDefault")
	}
}

func TestStyleBits(t *testing.T) {
	s := Style(0).With(StyleBold).With(StyleUnderline)
	if !s.Bold() || !s.Underline() || s.Italic() {
		t.Errorf("Style %08b has unexpected bits", s)
	}
	s = s.Without(StyleBold)
	if s.Bold() {
		t.Errorf("expected bold cleared after Without")
	}
	if s != StyleUnderline {
		t.Errorf("Style = %08b, want %08b", s, StyleUnderline)
	}
}
