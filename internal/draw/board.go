package draw

import (
	"fmt"
	"io"
	"strings"
)

// CellWidth is the number of terminal columns one board cell occupies.
// Two columns per cell keeps the grid roughly square on most fonts.
const CellWidth = 2

// emptyCell is the text of a cell with nothing in it.
var emptyCell = strings.Repeat(" ", CellWidth)

// Board is a drawing buffer for a grid of fixed size cells.
// Each cell holds pre-rendered text exactly CellWidth columns wide.
type Board struct {
	cols, rows int
	cells      []string // Flat slice: [y * cols + x]; "" means empty

	// Terminal position of the board's top-left cell, 1-based.
	col, row int

	renderBuf strings.Builder
}

// NewBoard creates an empty board of cols x rows cells whose top-left cell
// is drawn at terminal position (col, row).
func NewBoard(cols, rows, col, row int) *Board {
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: make([]string, cols*rows),
		col:   col,
		row:   row,
	}
}

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// TermWidth returns the board width in terminal columns.
func (b *Board) TermWidth() int { return b.cols * CellWidth }

// SetOrigin moves the board's top-left cell to terminal position (col, row).
func (b *Board) SetOrigin(col, row int) {
	b.col, b.row = col, row
}

// Clear empties every cell.
func (b *Board) Clear() {
	clear(b.cells)
}

// Set stores text for cell (x, y). Off-board coordinates are ignored.
// text must occupy exactly CellWidth columns; see CellText.
func (b *Board) Set(x, y int, text string) {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return
	}
	b.cells[y*b.cols+x] = text
}

// Render writes every row of the board to w, one cursor move per row.
// Empty cells are written as blanks so stale glyphs from the previous frame
// are overwritten.
func (b *Board) Render(w io.Writer) error {
	b.renderBuf.Reset()
	b.renderBuf.Grow(b.rows * (b.cols*CellWidth + 12))

	for y := 0; y < b.rows; y++ {
		fmt.Fprintf(&b.renderBuf, "\033[%d;%dH", b.row+y, b.col)
		for x := 0; x < b.cols; x++ {
			cell := b.cells[y*b.cols+x]
			if cell == "" {
				cell = emptyCell
			}
			b.renderBuf.WriteString(cell)
		}
	}

	return writeChunked(w, b.renderBuf.String())
}

// RenderBorder draws a box one cell outside the board area.
// Sides that would fall off the terminal (column or row 0) are skipped.
func (b *Board) RenderBorder(w io.Writer) error {
	width := b.TermWidth()
	left := b.col - 1
	right := b.col + width
	top := b.row - 1
	bottom := b.row + b.rows

	hasH := left >= 1 // Room for left/right vertical bars
	hasV := top >= 1  // Room for top/bottom horizontal bars

	var buf strings.Builder
	line := strings.Repeat("─", width)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, b.col, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, b.col, line)
		}
	}

	if hasH {
		for row := b.row; row < bottom; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	return writeChunked(w, buf.String())
}
