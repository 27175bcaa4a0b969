package vtcore

// Cell is the smallest drawable unit in the frame buffer: one glyph plus
// its foreground, background, and text attributes. Cells are plain values;
// the frame buffer owns them inline in its flat array.
type Cell struct {
	Char  rune // 21-bit Unicode scalar; default is U+0020 (space)
	Fg    Color
	Bg    Color
	Style Style
}

// DefaultCell is the empty cell: a space with default colors and no
// attributes.
func DefaultCell() Cell {
	return Cell{Char: ' ', Fg: DefaultColor(), Bg: DefaultColor()}
}

// BorderStyle selects which box-drawing glyph set to use when painting a
// bordered rectangle. It is a cell-model value type, not a rendering
// driver: BoxChars is a pure lookup with no I/O.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSingle
	BorderDouble
	BorderHeavy
	BorderRounded
)

// BoxChars is the set of runes used to draw a border in a particular
// BorderStyle.
type BoxChars struct {
	TopLeft, TopRight       rune
	BottomLeft, BottomRight rune
	Horizontal, Vertical    rune
}

var boxCharSets = map[BorderStyle]BoxChars{
	BorderSingle: {
		TopLeft: '┌', TopRight: '┐',
		BottomLeft: '└', BottomRight: '┘',
		Horizontal: '─', Vertical: '│',
	},
	BorderDouble: {
		TopLeft: '╔', TopRight: '╗',
		BottomLeft: '╚', BottomRight: '╝',
		Horizontal: '═', Vertical: '║',
	},
	BorderHeavy: {
		TopLeft: '┏', TopRight: '┓',
		BottomLeft: '┗', BottomRight: '┛',
		Horizontal: '━', Vertical: '┃',
	},
	BorderRounded: {
		TopLeft: '╭', TopRight: '╮',
		BottomLeft: '╰', BottomRight: '╯',
		Horizontal: '─', Vertical: '│',
	},
}

// BoxChars returns the glyph set for a border style. BorderNone and any
// unrecognized style return the zero value (all runes 0).
func (bs BorderStyle) BoxChars() BoxChars {
	return boxCharSets[bs]
}
