package hexcolor

import (
	"testing"

	"github.com/corvanis/vtcore"
)

func TestParseShortForm(t *testing.T) {
	c, ok := Parse("#0f8")
	if !ok {
		t.Fatal("Parse(#0f8) returned ok=false")
	}
	want := vtcore.RGBColor(0x00, 0xff, 0x88)
	if c != want {
		t.Errorf("Parse(#0f8) = %+v, want %+v", c, want)
	}
}

func TestParseLongForm(t *testing.T) {
	c, ok := Parse("#1a2b3c")
	if !ok {
		t.Fatal("Parse(#1a2b3c) returned ok=false")
	}
	want := vtcore.RGBColor(0x1a, 0x2b, 0x3c)
	if c != want {
		t.Errorf("Parse(#1a2b3c) = %+v, want %+v", c, want)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{"", "1a2b3c", "#", "#12", "#gggggg", "#1234"}
	for _, s := range cases {
		if _, ok := Parse(s); ok {
			t.Errorf("Parse(%q) returned ok=true, want false", s)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	c := vtcore.RGBColor(0x1a, 0x2b, 0x3c)
	got := Format(c)
	want := "#1a2b3c"
	if got != want {
		t.Errorf("Format(%+v) = %s, want %s", c, got, want)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#1a2b3c"} {
		c, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) returned ok=false", s)
		}
		if got := Format(c); got != s {
			t.Errorf("Format(Parse(%q)) = %s, want %s", s, got, s)
		}
	}
}

func TestDistanceZeroForIdenticalColor(t *testing.T) {
	c := vtcore.RGBColor(100, 150, 200)
	if d := Distance(c, c); d != 0 {
		t.Errorf("Distance(c, c) = %v, want 0", d)
	}
}

func TestDistanceOrdering(t *testing.T) {
	white := vtcore.RGBColor(255, 255, 255)
	black := vtcore.RGBColor(0, 0, 0)
	nearWhite := vtcore.RGBColor(250, 250, 250)

	closeD := Distance(white, nearWhite)
	farD := Distance(white, black)
	if closeD >= farD {
		t.Errorf("Distance(white, nearWhite) = %v, want less than Distance(white, black) = %v", closeD, farD)
	}
}
