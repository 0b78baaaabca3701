package battleship_test

import (
	"testing"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validBearings = []mb.Compass{mb.CompassNorth, mb.CompassSouth, mb.CompassEast, mb.CompassWest}

func coordsOf(ship *mb.Ship) [][2]int {
	coords := make([][2]int, 0, ship.Size())
	for _, pos := range ship.Positions() {
		coords = append(coords, [2]int{pos.Row(), pos.Column()})
	}
	return coords
}

func mustShip(t *testing.T, kind mb.ShipKind, bearing mb.Compass, row, column int) *mb.Ship {
	t.Helper()
	ship, err := mb.NewShip(kind, bearing, mb.NewPosition(row, column))
	require.NoError(t, err)
	return ship
}

func TestShipSizeAndDistinctPositions(t *testing.T) {
	for _, kind := range mb.AllShipKinds {
		for _, bearing := range validBearings {
			t.Run(kind.String()+"_"+bearing.String(), func(t *testing.T) {
				ship := mustShip(t, kind, bearing, 4, 4)

				assert.Equal(t, kind.Size(), ship.Size())
				coords := coordsOf(ship)
				seen := make(map[[2]int]bool, len(coords))
				for _, c := range coords {
					assert.False(t, seen[c], "duplicated coordinate %v", c)
					seen[c] = true
				}
				for _, pos := range ship.Positions() {
					assert.True(t, pos.IsOccupied())
					assert.False(t, pos.IsHit())
				}
			})
		}
	}
}

func TestShipShapes(t *testing.T) {
	tests := []struct {
		name     string
		kind     mb.ShipKind
		bearing  mb.Compass
		expected [][2]int
	}{
		{name: "barge north", kind: mb.ShipKindBarge, bearing: mb.CompassNorth, expected: [][2]int{{5, 5}}},
		{name: "barge west", kind: mb.ShipKindBarge, bearing: mb.CompassWest, expected: [][2]int{{5, 5}}},
		{name: "caravel east", kind: mb.ShipKindCaravel, bearing: mb.CompassEast, expected: [][2]int{{5, 5}, {5, 6}}},
		{name: "caravel north", kind: mb.ShipKindCaravel, bearing: mb.CompassNorth, expected: [][2]int{{5, 5}, {6, 5}}},
		{name: "carrack south", kind: mb.ShipKindCarrack, bearing: mb.CompassSouth, expected: [][2]int{{5, 5}, {6, 5}, {7, 5}}},
		{name: "frigate west", kind: mb.ShipKindFrigate, bearing: mb.CompassWest, expected: [][2]int{{5, 5}, {5, 6}, {5, 7}, {5, 8}}},
		{name: "galleon north", kind: mb.ShipKindGalleon, bearing: mb.CompassNorth, expected: [][2]int{{5, 5}, {5, 6}, {5, 7}, {6, 6}, {7, 6}}},
		{name: "galleon south", kind: mb.ShipKindGalleon, bearing: mb.CompassSouth, expected: [][2]int{{5, 5}, {6, 5}, {7, 4}, {7, 5}, {7, 6}}},
		{name: "galleon east", kind: mb.ShipKindGalleon, bearing: mb.CompassEast, expected: [][2]int{{5, 5}, {6, 3}, {6, 4}, {6, 5}, {7, 5}}},
		{name: "galleon west", kind: mb.ShipKindGalleon, bearing: mb.CompassWest, expected: [][2]int{{5, 5}, {6, 5}, {6, 6}, {6, 7}, {7, 5}}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ship := mustShip(t, test.kind, test.bearing, 5, 5)
			assert.ElementsMatch(t, test.expected, coordsOf(ship))
		})
	}
}

func TestNewShipRejectsInvalidBearing(t *testing.T) {
	for _, kind := range mb.AllShipKinds {
		t.Run(kind.String(), func(t *testing.T) {
			ship, err := mb.NewShip(kind, mb.CompassUnknown, mb.NewPosition(1, 1))
			assert.Nil(t, ship)
			require.Error(t, err)
			assert.True(t, cerr.IsShipErr(err, cerr.ShipErrInvalidOrientation))

			ship, err = mb.NewShip(kind, mb.Compass(42), mb.NewPosition(1, 1))
			assert.Nil(t, ship)
			assert.True(t, cerr.IsShipErr(err, cerr.ShipErrInvalidOrientation))
		})
	}
}

func TestNewShipRejectsUnknownKindAndNilAnchor(t *testing.T) {
	ship, err := mb.NewShip(mb.ShipKindUnknown, mb.CompassNorth, mb.NewPosition(0, 0))
	assert.Nil(t, ship)
	assert.True(t, cerr.IsShipErr(err, cerr.ShipErrUnknownKind))

	ship, err = mb.NewShip(mb.ShipKindBarge, mb.CompassNorth, nil)
	assert.Nil(t, ship)
	assert.Error(t, err)
}

func TestBuildShip(t *testing.T) {
	ship, err := mb.BuildShip("galeao", mb.CompassNorth, mb.NewPosition(0, 0))
	require.NoError(t, err)
	assert.Equal(t, mb.ShipKindGalleon, ship.Kind())
	assert.Equal(t, "galleon", ship.Category())

	ship, err = mb.BuildShip("Frigate", mb.CompassEast, mb.NewPosition(0, 0))
	require.NoError(t, err)
	assert.Equal(t, mb.ShipKindFrigate, ship.Kind())

	ship, err = mb.BuildShip("canoe", mb.CompassEast, mb.NewPosition(0, 0))
	assert.Nil(t, ship)
	assert.True(t, cerr.IsShipErr(err, cerr.ShipErrUnknownKind))
}

func TestShipAnchorIsNotAlwaysOccupied(t *testing.T) {
	ship := mustShip(t, mb.ShipKindGalleon, mb.CompassEast, 5, 5)
	anchor := ship.Anchor()
	assert.Equal(t, 5, anchor.Row())
	assert.Equal(t, 5, anchor.Column())

	ext, err := ship.Extent()
	require.NoError(t, err)
	assert.Equal(t, mb.Extent{Top: 5, Bottom: 7, Left: 3, Right: 5}, ext)
	assert.Equal(t, 3, ship.LeftMostPos())
	assert.Equal(t, 5, ship.RightMostPos())
	assert.Equal(t, 5, ship.TopMostPos())
	assert.Equal(t, 7, ship.BottomMostPos())
}

func TestShipExtentWithoutPositions(t *testing.T) {
	var ship mb.Ship
	_, err := ship.Extent()
	assert.True(t, cerr.IsShipErr(err, cerr.ShipErrNoPositions))
}

func TestShipOccupies(t *testing.T) {
	ship := mustShip(t, mb.ShipKindCarrack, mb.CompassNorth, 2, 3)

	assert.True(t, ship.Occupies(mb.NewPosition(2, 3)))
	assert.True(t, ship.Occupies(mb.NewPosition(4, 3)))
	assert.False(t, ship.Occupies(mb.NewPosition(5, 3)))
	assert.False(t, ship.Occupies(mb.NewPosition(2, 4)))
}

func TestShipTooCloseTo(t *testing.T) {
	ship := mustShip(t, mb.ShipKindCaravel, mb.CompassEast, 2, 2)

	tests := []struct {
		name     string
		other    *mb.Ship
		expected bool
	}{
		{name: "overlap", other: mustShip(t, mb.ShipKindBarge, mb.CompassNorth, 2, 3), expected: true},
		{name: "touching side", other: mustShip(t, mb.ShipKindCarrack, mb.CompassNorth, 3, 2), expected: true},
		{name: "touching diagonal", other: mustShip(t, mb.ShipKindBarge, mb.CompassNorth, 1, 4), expected: true},
		{name: "one cell gap", other: mustShip(t, mb.ShipKindFrigate, mb.CompassEast, 4, 0), expected: false},
		{name: "gap on the right", other: mustShip(t, mb.ShipKindBarge, mb.CompassNorth, 2, 5), expected: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ship.TooCloseTo(test.other))
			assert.Equal(t, test.expected, test.other.TooCloseTo(ship))
		})
	}

	assert.True(t, ship.TooCloseToPosition(mb.NewPosition(3, 4)))
	assert.False(t, ship.TooCloseToPosition(mb.NewPosition(4, 4)))
	assert.False(t, ship.TooCloseTo(nil))
}

func TestShipRegisterShotAndFloating(t *testing.T) {
	ship := mustShip(t, mb.ShipKindCaravel, mb.CompassNorth, 0, 0)
	assert.True(t, ship.StillFloating())

	ship.RegisterShot(mb.NewPosition(5, 5))
	assert.True(t, ship.StillFloating())

	ship.RegisterShot(mb.NewPosition(0, 0))
	ship.RegisterShot(mb.NewPosition(0, 0))
	assert.True(t, ship.StillFloating())

	ship.RegisterShot(mb.NewPosition(1, 0))
	assert.False(t, ship.StillFloating())
	for _, pos := range ship.Positions() {
		assert.True(t, pos.IsHit())
	}
}

func TestShipString(t *testing.T) {
	ship := mustShip(t, mb.ShipKindFrigate, mb.CompassSouth, 1, 2)
	assert.Equal(t, "[frigate s (1, 2)]", ship.String())
}
