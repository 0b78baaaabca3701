package battleship

import "strings"

const (
	MarkerEmpty rune = '.'
	MarkerShip  rune = '#'
	MarkerShot  rune = 'X'
)

type Grid [][]rune

// Creates a new grid with every cell set to MarkerEmpty
func NewGrid(gridSize int) Grid {
	grid := make(Grid, gridSize)

	for i := 0; i < gridSize; i++ {
		grid[i] = make([]rune, gridSize)
		for j := range grid[i] {
			grid[i][j] = MarkerEmpty
		}
	}
	return grid
}

// Mark sets the cell at pos. Positions off the grid are skipped.
func (g Grid) Mark(pos *Position, marker rune) {
	if pos == nil {
		return
	}
	if pos.Row() < 0 || pos.Row() >= len(g) || pos.Column() < 0 || pos.Column() >= len(g[pos.Row()]) {
		return
	}
	g[pos.Row()][pos.Column()] = marker
}

func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func RenderPositions(gridSize int, positions []*Position, marker rune) string {
	grid := NewGrid(gridSize)
	for _, pos := range positions {
		grid.Mark(pos, marker)
	}
	return grid.String()
}
