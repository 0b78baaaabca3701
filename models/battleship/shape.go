package battleship

import (
	cerr "github.com/saeidalz13/battleship-core/internal/error"
)

type offset struct {
	row    int
	column int
}

// Galleon footprints are fixed per bearing. Offsets may be negative,
// the anchor is not always the top-left cell.
var galleonOffsets = map[Compass][]offset{
	CompassNorth: {{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}},
	CompassSouth: {{0, 0}, {1, 0}, {2, -1}, {2, 0}, {2, 1}},
	CompassEast:  {{0, 0}, {1, -2}, {1, -1}, {1, 0}, {2, 0}},
	CompassWest:  {{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 0}},
}

// shapeOffsets returns the footprint of a kind placed with the given
// bearing, relative to the anchor.
func shapeOffsets(kind ShipKind, bearing Compass) ([]offset, error) {
	if !kind.IsValid() {
		return nil, cerr.ErrUnknownShipKind(kind.String())
	}
	if !bearing.IsValid() {
		return nil, cerr.ErrInvalidOrientation(kind.String(), bearing.String())
	}

	if kind == ShipKindGalleon {
		return galleonOffsets[bearing], nil
	}

	size := kind.Size()
	offsets := make([]offset, size)
	for i := 0; i < size; i++ {
		switch bearing {
		case CompassNorth, CompassSouth:
			offsets[i] = offset{row: i}
		case CompassEast, CompassWest:
			offsets[i] = offset{column: i}
		}
	}
	return offsets, nil
}

// shapeOf allocates the occupied positions of a ship. Nothing is
// allocated when the kind or bearing is invalid. Board bounds are not
// checked here.
func shapeOf(kind ShipKind, bearing Compass, anchor *Position) ([]*Position, error) {
	offsets, err := shapeOffsets(kind, bearing)
	if err != nil {
		return nil, err
	}

	positions := make([]*Position, 0, len(offsets))
	for _, o := range offsets {
		pos := NewPosition(anchor.Row()+o.row, anchor.Column()+o.column)
		pos.Occupy()
		positions = append(positions, pos)
	}
	return positions, nil
}
