// Package escseq holds the named, ready-to-write ANSI escape sequences a
// renderer needs: cursor movement, SGR attribute/color set and reset,
// alternate-screen toggling, cursor visibility, and screen/line clears.
// Each function returns a complete byte sequence; callers write it
// directly to the output stream.
package escseq

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/corvanis/vtcore"
)

// CursorPosition moves the cursor to the 1-indexed (row, col) position.
func CursorPosition(row, col int) string {
	return ansi.CursorPosition(col, row)
}

// CursorUp, CursorDown, CursorForward, and CursorBackward move the cursor
// by n cells relative to its current position.
func CursorUp(n int) string       { return ansi.CursorUp(n) }
func CursorDown(n int) string     { return ansi.CursorDown(n) }
func CursorForward(n int) string  { return ansi.CursorForward(n) }
func CursorBackward(n int) string { return ansi.CursorBackward(n) }

// ShowCursor and HideCursor toggle cursor visibility (DECTCEM).
const (
	ShowCursor = ansi.ShowCursor
	HideCursor = ansi.HideCursor
)

// EnterAltScreen and ExitAltScreen switch to and from the alternate
// screen buffer.
const (
	EnterAltScreen = ansi.SetAltScreenSaveCursorMode
	ExitAltScreen  = ansi.ResetAltScreenSaveCursorMode
)

// ClearScreen erases the visible screen without touching scrollback.
func ClearScreen() string { return ansi.EraseEntireScreen }

// ClearScreenAndScrollback erases the visible screen and the terminal's
// scrollback buffer.
func ClearScreenAndScrollback() string {
	return ansi.EraseEntireScreen + ansi.EraseScrollbackBuffer
}

// ClearLine erases the current line.
func ClearLine() string { return ansi.EraseEntireLine }

// ResetStyle emits SGR 0, clearing every attribute and color override.
const ResetStyle = ansi.ResetStyle

// attrCodes maps each vtcore.Style bit to its SGR parameter, in the fixed
// order terminals expect them.
var attrCodes = []struct {
	bit  vtcore.Style
	code string
}{
	{vtcore.StyleBold, "1"},
	{vtcore.StyleDim, "2"},
	{vtcore.StyleItalic, "3"},
	{vtcore.StyleUnderline, "4"},
	{vtcore.StyleBlink, "5"},
	{vtcore.StyleReverse, "7"},
	{vtcore.StyleStrikethrough, "9"},
}

// SetStyle builds the SGR sequence applying fg, bg, and every attribute
// bit set in style, as a single CSI ... m. A default-kind Color
// contributes no SGR parameter for that slot, matching the terminal's own
// "leave it alone" semantics. Color parameters (true-color and 256-color
// forms) are built by colorParam and attribute codes are plain SGR
// numbers; this function does not use x/ansi.
func SetStyle(fg, bg vtcore.Color, style vtcore.Style) string {
	var parts []string
	for _, a := range attrCodes {
		if style&a.bit != 0 {
			parts = append(parts, a.code)
		}
	}
	if !fg.IsDefault() {
		parts = append(parts, colorParam(38, fg))
	}
	if !bg.IsDefault() {
		parts = append(parts, colorParam(48, bg))
	}
	if len(parts) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// colorParam renders the SGR 38/48 (foreground/background) extended
// color parameter, base included: "38;5;n" for an indexed color,
// "38;2;r;g;b" for any other kind (true color).
func colorParam(base int, c vtcore.Color) string {
	if c.Kind == vtcore.ColorIndexed {
		return fmt.Sprintf("%d;5;%d", base, c.Index)
	}
	return fmt.Sprintf("%d;2;%d;%d;%d", base, c.R, c.G, c.B)
}
