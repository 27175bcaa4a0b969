// Package hexcolor parses and formats CSS-style hex color literals
// (#rgb, #rrggbb) into vtcore.Color, and measures perceptual distance
// between colors for nearest-palette-entry lookups.
package hexcolor

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/corvanis/vtcore"
)

// Parse reads a hex color literal of the form "#rgb" or "#rrggbb" and
// returns the corresponding RGB vtcore.Color. The second return value is
// false if s is not a well-formed hex literal; Parse never returns a
// partially-populated Color on failure.
func Parse(s string) (vtcore.Color, bool) {
	if len(s) == 0 || s[0] != '#' {
		return vtcore.Color{}, false
	}
	body := s[1:]

	var r, g, b uint8
	var err error
	switch len(body) {
	case 3:
		r, err = expandNibble(body[0])
		if err != nil {
			return vtcore.Color{}, false
		}
		g, err = expandNibble(body[1])
		if err != nil {
			return vtcore.Color{}, false
		}
		b, err = expandNibble(body[2])
		if err != nil {
			return vtcore.Color{}, false
		}
	case 6:
		r, err = hexByte(body[0:2])
		if err != nil {
			return vtcore.Color{}, false
		}
		g, err = hexByte(body[2:4])
		if err != nil {
			return vtcore.Color{}, false
		}
		b, err = hexByte(body[4:6])
		if err != nil {
			return vtcore.Color{}, false
		}
	default:
		return vtcore.Color{}, false
	}

	return vtcore.RGBColor(r, g, b), true
}

// Format renders c as a "#rrggbb" literal. A default or indexed color has
// no fixed RGB value, so Format resolves it through the terminal's
// standard 16-color palette approximation before formatting; callers that
// need the raw index should inspect c.Index directly instead.
func Format(c vtcore.Color) string {
	r, g, b := rgbOf(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Distance reports the perceptual (CIE94) distance between two colors in
// Lab space, for use when snapping an arbitrary RGB value to the nearest
// entry in a fixed palette.
func Distance(a, b vtcore.Color) float64 {
	ar, ag, ab := rgbOf(a)
	br, bg, bb := rgbOf(b)
	ca := colorful.Color{R: float64(ar) / 255, G: float64(ag) / 255, B: float64(ab) / 255}
	cb := colorful.Color{R: float64(br) / 255, G: float64(bg) / 255, B: float64(bb) / 255}
	return ca.DistanceCIE94(cb)
}

func rgbOf(c vtcore.Color) (uint8, uint8, uint8) {
	switch c.Kind {
	case vtcore.ColorRGB:
		return c.R, c.G, c.B
	case vtcore.ColorIndexed:
		return ansi16[c.Index%16][0], ansi16[c.Index%16][1], ansi16[c.Index%16][2]
	default:
		return 0, 0, 0
	}
}

// ansi16 is the conventional approximation of the 16-color ANSI palette,
// used only to give Format/Distance a concrete RGB value for indexed and
// default colors.
var ansi16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func hexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}

func expandNibble(c byte) (uint8, error) {
	v, err := strconv.ParseUint(string(c), 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v*16 + v), nil
}
