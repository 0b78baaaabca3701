package error

import (
	"errors"
	"fmt"
)

const (
	ShipErrInvalidOrientation uint8 = iota
	ShipErrUnknownKind
	ShipErrNoPositions
)

// ShipErr is returned when a ship cannot be built or measured.
// The code tells callers which rule was broken.
type ShipErr struct {
	code uint8
	desc string
}

func NewShipErr(code uint8) ShipErr {
	return ShipErr{code: code}
}

func (s ShipErr) AddDesc(desc string) ShipErr {
	s.desc = desc
	return s
}

func (s ShipErr) Error() string {
	return fmt.Sprintf("ship error - code: %d\tdesc: %s", s.code, s.desc)
}

func (s ShipErr) Code() uint8 {
	return s.code
}

// IsShipErr reports whether err carries a ShipErr with the given code.
func IsShipErr(err error, code uint8) bool {
	var shipErr ShipErr
	if !errors.As(err, &shipErr) {
		return false
	}
	return shipErr.code == code
}

func ErrInvalidOrientation(kind, bearing string) error {
	return NewShipErr(ShipErrInvalidOrientation).AddDesc(fmt.Sprintf("invalid bearing for the %s: %s", kind, bearing))
}

func ErrUnknownShipKind(kind string) error {
	return NewShipErr(ShipErrUnknownKind).AddDesc(fmt.Sprintf("unknown ship kind: %s", kind))
}

func ErrShipHasNoPositions(kind string) error {
	return NewShipErr(ShipErrNoPositions).AddDesc(fmt.Sprintf("ship has no positions: %s", kind))
}

func ErrNilAnchor(kind string) error {
	return fmt.Errorf("anchor position is nil for the %s", kind)
}

func ErrNilFleet() error {
	return fmt.Errorf("fleet is nil")
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrInvalidBoardSize(size int) error {
	return fmt.Errorf("board size must be positive, got: %d", size)
}

func ErrInvalidFleetCapacity(capacity int) error {
	return fmt.Errorf("fleet capacity must be positive, got: %d", capacity)
}

func ErrShipRejected(ship string) error {
	return fmt.Errorf("ship placement rejected (out of board, too close to another ship or fleet full): %s", ship)
}

func ErrLayoutEntry(index int, err error) error {
	return fmt.Errorf("layout entry %d: %w", index, err)
}

func ErrEmptyLayout() error {
	return fmt.Errorf("layout has no ships")
}
