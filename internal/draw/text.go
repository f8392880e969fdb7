package draw

import (
	"github.com/mattn/go-runewidth"
)

// CellText returns glyph padded to CellWidth columns. Wide glyphs that already
// fill a cell are returned as is.
func CellText(glyph rune) string {
	return runewidth.FillRight(string(glyph), CellWidth)
}

// TextWidth returns the number of terminal columns s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts s to at most width columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight fits s to exactly width columns, truncating or padding with blanks.
// Fixed width fields overwrite whatever the previous frame left behind.
func PadRight(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// CenterCol returns the 1-based column at which s starts when centered on
// column center, never less than 1.
func CenterCol(s string, center int) int {
	return max(1, center-TextWidth(s)/2)
}
