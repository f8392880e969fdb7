package physics

// CellGrid buckets object indices by the grid cell they occupy so that only
// coordinate-equal objects are ever compared.
//
// Indices must be inserted in ascending order; ForEachPair then visits pairs
// within a cell in the same (i, j) order a full pairwise scan would.
type CellGrid struct {
	cols  int
	rows  int
	cells []gridCell
	used  []int // cells touched since the last Clear
}

// gridCell stores the indices of objects in one cell.
// The slice is reused between cycles (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewCellGrid creates a grid of cols x rows cells.
func NewCellGrid(cols, rows int) *CellGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &CellGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *CellGrid) Clear() {
	for _, idx := range g.used {
		g.cells[idx].items = g.cells[idx].items[:0]
	}
	g.used = g.used[:0]
}

// Insert adds an item at the given cell. Returns false if the cell is off-grid.
func (g *CellGrid) Insert(x, y, index int) bool {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return false
	}
	idx := y*g.cols + x
	if len(g.cells[idx].items) == 0 {
		g.used = append(g.used, idx)
	}
	g.cells[idx].items = append(g.cells[idx].items, index)
	return true
}

// ForEachPair calls fn once for every unordered pair of items sharing a cell,
// with i < j.
func (g *CellGrid) ForEachPair(fn func(i, j int)) {
	for _, idx := range g.used {
		items := g.cells[idx].items
		for a := 0; a < len(items); a++ {
			for b := a + 1; b < len(items); b++ {
				fn(items[a], items[b])
			}
		}
	}
}
