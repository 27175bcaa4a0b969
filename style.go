package vtcore

// Style is a packed bit-field of the seven boolean text attributes a cell
// can carry. It fits in one byte with a single reserved padding bit, which
// keeps large frame buffers cache-dense. Equality is bitwise.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleDim
	StyleItalic
	StyleUnderline
	StyleBlink
	StyleReverse
	StyleStrikethrough
	// bit 7 reserved for byte alignment
)

// Bold reports whether the bold attribute is set.
func (s Style) Bold() bool { return s&StyleBold != 0 }

// Dim reports whether the dim/faint attribute is set.
func (s Style) Dim() bool { return s&StyleDim != 0 }

// Italic reports whether the italic attribute is set.
func (s Style) Italic() bool { return s&StyleItalic != 0 }

// Underline reports whether the underline attribute is set.
func (s Style) Underline() bool { return s&StyleUnderline != 0 }

// Blink reports whether the blink attribute is set.
func (s Style) Blink() bool { return s&StyleBlink != 0 }

// Reverse reports whether foreground/background should be swapped.
func (s Style) Reverse() bool { return s&StyleReverse != 0 }

// Strikethrough reports whether the strikethrough attribute is set.
func (s Style) Strikethrough() bool { return s&StyleStrikethrough != 0 }

// With returns a copy of s with the given attribute bits set.
func (s Style) With(attrs Style) Style {
	return s | attrs
}

// Without returns a copy of s with the given attribute bits cleared.
func (s Style) Without(attrs Style) Style {
	return s &^ attrs
}
