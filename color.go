package vtcore

// ColorKind discriminates the three Color variants.
type ColorKind uint8

const (
	// ColorDefault is the terminal's inherited foreground/background.
	ColorDefault ColorKind = iota
	// ColorIndexed selects a palette entry (0-255).
	ColorIndexed
	// ColorRGB is a 24-bit true color.
	ColorRGB
)

// Color is a tagged sum of the three ways a terminal cell's color can be
// specified. It is a plain, comparable value type — equality is structural,
// matching spec.
type Color struct {
	Kind    ColorKind
	Index   uint8 // valid when Kind == ColorIndexed
	R, G, B uint8 // valid when Kind == ColorRGB
}

// DefaultColor is the terminal's inherited color.
func DefaultColor() Color {
	return Color{Kind: ColorDefault}
}

// IndexedColor builds a palette-indexed color. 0-7 are the standard ANSI
// colors, 8-15 the bright variants, 16-255 the extended 256-color cube.
func IndexedColor(index uint8) Color {
	return Color{Kind: ColorIndexed, Index: index}
}

// RGBColor builds a 24-bit true color.
func RGBColor(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// IsDefault reports whether c is the terminal-inherited default.
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}
