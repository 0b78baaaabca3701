package battleship

import "fmt"

// Position is a cell on the board. Row and column never change;
// occupied and hit are state and take no part in equality.
type Position struct {
	row      int
	column   int
	occupied bool
	hit      bool
}

func NewPosition(row, column int) *Position {
	return &Position{row: row, column: column}
}

func (p *Position) Row() int {
	return p.row
}

func (p *Position) Column() int {
	return p.column
}

func (p *Position) Occupy() {
	p.occupied = true
}

func (p *Position) Shoot() {
	p.hit = true
}

func (p *Position) IsOccupied() bool {
	return p.occupied
}

func (p *Position) IsHit() bool {
	return p.hit
}

// Equals compares coordinates only.
func (p *Position) Equals(other *Position) bool {
	if p == nil || other == nil {
		return false
	}
	return p.row == other.row && p.column == other.column
}

// IsAdjacentTo is true when both coordinates differ by at most one,
// diagonals and the cell itself included.
func (p *Position) IsAdjacentTo(other *Position) bool {
	return abs(p.row-other.row) <= 1 && abs(p.column-other.column) <= 1
}

func (p *Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.row, p.column)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
