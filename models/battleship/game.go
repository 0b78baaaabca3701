package battleship

import (
	"github.com/google/uuid"
)

// Game resolves shots against one fleet. It is not safe for concurrent
// use; Fire checks then mutates.
type Game struct {
	uuid          string
	fleet         *Fleet
	shots         []*Position
	invalidShots  int
	repeatedShots int
	hits          int
	sunkShips     int
}

func NewGame(fleet *Fleet) *Game {
	return &Game{
		uuid:  uuid.NewString()[:6],
		fleet: fleet,
		shots: make([]*Position, 0, fleet.BoardSize()*fleet.BoardSize()),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Fleet() *Fleet {
	return g.fleet
}

// Fire resolves one shot. Shots off the board or already fired are only
// counted. A fresh shot is recorded and, when it hits, registered on the
// ship; the ship is returned if that shot sank it.
func (g *Game) Fire(pos *Position) *Ship {
	if !g.fleet.IsInsideBoard(pos) {
		g.invalidShots++
		return nil
	}

	if g.isRepeatedShot(pos) {
		g.repeatedShots++
		return nil
	}

	g.shots = append(g.shots, NewPosition(pos.Row(), pos.Column()))

	ship := g.fleet.ShipAt(pos)
	if ship == nil {
		return nil
	}

	ship.RegisterShot(pos)
	g.hits++
	if !ship.StillFloating() {
		g.sunkShips++
		return ship
	}
	return nil
}

func (g *Game) isRepeatedShot(pos *Position) bool {
	for _, shot := range g.shots {
		if shot.Equals(pos) {
			return true
		}
	}
	return false
}

func (g *Game) Shots() []*Position {
	shots := make([]*Position, len(g.shots))
	copy(shots, g.shots)
	return shots
}

func (g *Game) InvalidShots() int {
	return g.invalidShots
}

func (g *Game) RepeatedShots() int {
	return g.repeatedShots
}

func (g *Game) Hits() int {
	return g.hits
}

// Misses is derived: every recorded shot that did not hit.
func (g *Game) Misses() int {
	return len(g.shots) - g.hits
}

func (g *Game) SunkShips() int {
	return g.sunkShips
}

// RemainingShips is recomputed from the ships on every call.
func (g *Game) RemainingShips() int {
	return len(g.fleet.FloatingShips())
}

func (g *Game) IsOver() bool {
	return g.RemainingShips() == 0
}

func (g *Game) FleetMap() string {
	positions := make([]*Position, 0)
	for _, s := range g.fleet.Ships() {
		positions = append(positions, s.Positions()...)
	}
	return RenderPositions(g.fleet.BoardSize(), positions, MarkerShip)
}

func (g *Game) ShotsMap() string {
	return RenderPositions(g.fleet.BoardSize(), g.shots, MarkerShot)
}
