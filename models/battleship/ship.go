package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

// Extent is the bounding box of a ship's occupied cells.
type Extent struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

type Ship struct {
	kind      ShipKind
	bearing   Compass
	anchor    *Position
	positions []*Position
}

// NewShip computes the footprint of the ship once. The positions are
// owned by the ship and only their hit flag changes afterwards.
func NewShip(kind ShipKind, bearing Compass, anchor *Position) (*Ship, error) {
	if anchor == nil {
		return nil, cerr.ErrNilAnchor(kind.String())
	}

	positions, err := shapeOf(kind, bearing, anchor)
	if err != nil {
		return nil, err
	}

	return &Ship{
		kind:      kind,
		bearing:   bearing,
		anchor:    NewPosition(anchor.Row(), anchor.Column()),
		positions: positions,
	}, nil
}

// BuildShip is NewShip for callers holding the kind as text.
func BuildShip(kindName string, bearing Compass, anchor *Position) (*Ship, error) {
	kind := ParseShipKind(kindName)
	if !kind.IsValid() {
		return nil, cerr.ErrUnknownShipKind(kindName)
	}
	return NewShip(kind, bearing, anchor)
}

func (sh *Ship) Kind() ShipKind {
	return sh.kind
}

// Category is the kind name, the key used by Fleet.ShipsLike.
func (sh *Ship) Category() string {
	return sh.kind.String()
}

func (sh *Ship) Size() int {
	return len(sh.positions)
}

func (sh *Ship) Bearing() Compass {
	return sh.bearing
}

func (sh *Ship) Anchor() *Position {
	return sh.anchor
}

func (sh *Ship) Positions() []*Position {
	positions := make([]*Position, len(sh.positions))
	copy(positions, sh.positions)
	return positions
}

func (sh *Ship) StillFloating() bool {
	for _, pos := range sh.positions {
		if !pos.IsHit() {
			return true
		}
	}
	return false
}

func (sh *Ship) Extent() (Extent, error) {
	if len(sh.positions) == 0 {
		return Extent{}, cerr.ErrShipHasNoPositions(sh.kind.String())
	}

	first := sh.positions[0]
	ext := Extent{Top: first.Row(), Bottom: first.Row(), Left: first.Column(), Right: first.Column()}
	for _, pos := range sh.positions[1:] {
		ext.Top = min(ext.Top, pos.Row())
		ext.Bottom = max(ext.Bottom, pos.Row())
		ext.Left = min(ext.Left, pos.Column())
		ext.Right = max(ext.Right, pos.Column())
	}
	return ext, nil
}

func (sh *Ship) TopMostPos() int {
	ext, _ := sh.Extent()
	return ext.Top
}

func (sh *Ship) BottomMostPos() int {
	ext, _ := sh.Extent()
	return ext.Bottom
}

func (sh *Ship) LeftMostPos() int {
	ext, _ := sh.Extent()
	return ext.Left
}

func (sh *Ship) RightMostPos() int {
	ext, _ := sh.Extent()
	return ext.Right
}

func (sh *Ship) Occupies(pos *Position) bool {
	for _, p := range sh.positions {
		if p.Equals(pos) {
			return true
		}
	}
	return false
}

// TooCloseTo reports whether any cell of other touches or overlaps
// this ship, diagonals included.
func (sh *Ship) TooCloseTo(other *Ship) bool {
	if other == nil {
		return false
	}
	for _, pos := range other.positions {
		if sh.TooCloseToPosition(pos) {
			return true
		}
	}
	return false
}

func (sh *Ship) TooCloseToPosition(pos *Position) bool {
	if pos == nil {
		return false
	}
	for _, p := range sh.positions {
		if p.IsAdjacentTo(pos) {
			return true
		}
	}
	return false
}

// RegisterShot marks the owned cell at pos as hit. Shots elsewhere
// are ignored.
func (sh *Ship) RegisterShot(pos *Position) {
	for _, p := range sh.positions {
		if p.Equals(pos) {
			p.Shoot()
		}
	}
}

func (sh *Ship) String() string {
	return fmt.Sprintf("[%s %s %s]", sh.kind, sh.bearing, sh.anchor)
}
