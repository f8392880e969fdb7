package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// occupancy counts the items inserted at cell (x, y).
func occupancy(g *CellGrid, x, y int) int {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return 0
	}
	return len(g.cells[y*g.cols+x].items)
}

func TestCellGridPairsOnlySameCell(t *testing.T) {
	g := NewCellGrid(10, 20)
	g.Insert(3, 4, 0)
	g.Insert(5, 5, 1)
	g.Insert(3, 4, 2)
	g.Insert(3, 4, 3)

	var pairs [][2]int
	g.ForEachPair(func(i, j int) {
		pairs = append(pairs, [2]int{i, j})
	})

	assert.Equal(t, [][2]int{{0, 2}, {0, 3}, {2, 3}}, pairs)
	assert.Equal(t, 3, occupancy(g, 3, 4))
	assert.Equal(t, 1, occupancy(g, 5, 5))
}

func TestCellGridRejectsOffGrid(t *testing.T) {
	g := NewCellGrid(10, 20)
	assert.False(t, g.Insert(-1, 0, 0))
	assert.False(t, g.Insert(10, 0, 1))
	assert.False(t, g.Insert(0, 20, 2))
	assert.True(t, g.Insert(9, 19, 3))
	assert.Equal(t, 0, occupancy(g, 10, 0))
}

func TestCellGridClear(t *testing.T) {
	g := NewCellGrid(4, 4)
	g.Insert(1, 1, 0)
	g.Insert(1, 1, 1)
	g.Clear()

	called := false
	g.ForEachPair(func(i, j int) { called = true })
	assert.False(t, called)
	assert.Equal(t, 0, occupancy(g, 1, 1))

	g.Insert(1, 1, 0)
	g.Insert(1, 1, 1)
	count := 0
	g.ForEachPair(func(i, j int) { count++ })
	assert.Equal(t, 1, count)
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy, ok := tt.dir.Delta()
			assert.True(t, ok)
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}

	_, _, ok := Direction(42).Delta()
	assert.False(t, ok)
	assert.Equal(t, "unknown", Direction(42).String())
}
