package battleship

import (
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

const (
	DefaultBoardSize     int = 10
	DefaultFleetCapacity int = 10
)

// Fleet holds the ships of one side in placement order. Board size and
// capacity belong to the fleet so independent games can differ.
type Fleet struct {
	ships     []*Ship
	boardSize int
	capacity  int
}

type FleetOption func(*Fleet) error

func NewFleet(optFuncs ...FleetOption) (*Fleet, error) {
	fleet := Fleet{
		boardSize: DefaultBoardSize,
		capacity:  DefaultFleetCapacity,
	}
	for _, opt := range optFuncs {
		if err := opt(&fleet); err != nil {
			return nil, err
		}
	}

	fleet.ships = make([]*Ship, 0, fleet.capacity)
	return &fleet, nil
}

func WithBoardSize(size int) FleetOption {
	return func(f *Fleet) error {
		if size <= 0 {
			return cerr.ErrInvalidBoardSize(size)
		}
		f.boardSize = size
		return nil
	}
}

func WithCapacity(capacity int) FleetOption {
	return func(f *Fleet) error {
		if capacity <= 0 {
			return cerr.ErrInvalidFleetCapacity(capacity)
		}
		f.capacity = capacity
		return nil
	}
}

func (f *Fleet) BoardSize() int {
	return f.boardSize
}

func (f *Fleet) Capacity() int {
	return f.capacity
}

func (f *Fleet) IsFull() bool {
	return len(f.ships) >= f.capacity
}

func (f *Fleet) Ships() []*Ship {
	ships := make([]*Ship, len(f.ships))
	copy(ships, f.ships)
	return ships
}

// AddShip places s if the fleet has room, every cell of s is on the
// board and s keeps at least one empty cell from every placed ship.
// A rejected ship leaves the fleet untouched.
func (f *Fleet) AddShip(s *Ship) bool {
	if s == nil {
		return false
	}
	if f.IsFull() {
		return false
	}
	if !f.isInsideBoard(s) {
		return false
	}
	if f.collisionRisk(s) {
		return false
	}

	f.ships = append(f.ships, s)
	return true
}

// ShipAt returns the first ship, in placement order, occupying pos.
func (f *Fleet) ShipAt(pos *Position) *Ship {
	for _, s := range f.ships {
		if s.Occupies(pos) {
			return s
		}
	}
	return nil
}

func (f *Fleet) ShipsLike(kind ShipKind) []*Ship {
	shipsLike := make([]*Ship, 0)
	for _, s := range f.ships {
		if s.Kind() == kind {
			shipsLike = append(shipsLike, s)
		}
	}
	return shipsLike
}

func (f *Fleet) FloatingShips() []*Ship {
	floating := make([]*Ship, 0, len(f.ships))
	for _, s := range f.ships {
		if s.StillFloating() {
			floating = append(floating, s)
		}
	}
	return floating
}

func (f *Fleet) IsInsideBoard(pos *Position) bool {
	if pos == nil {
		return false
	}
	return pos.Row() >= 0 && pos.Row() < f.boardSize && pos.Column() >= 0 && pos.Column() < f.boardSize
}

func (f *Fleet) isInsideBoard(s *Ship) bool {
	ext, err := s.Extent()
	if err != nil {
		return false
	}
	return ext.Left >= 0 && ext.Right <= f.boardSize-1 && ext.Top >= 0 && ext.Bottom <= f.boardSize-1
}

func (f *Fleet) collisionRisk(s *Ship) bool {
	for _, placed := range f.ships {
		if placed.TooCloseTo(s) {
			return true
		}
	}
	return false
}
