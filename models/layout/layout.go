// Package layout reads fleet placements from YAML documents.
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	cerr "github.com/saeidalz13/battleship-core/internal/error"
	mb "github.com/saeidalz13/battleship-core/models/battleship"
)

type ShipEntry struct {
	Kind    string `yaml:"kind"`
	Row     int    `yaml:"row"`
	Column  int    `yaml:"column"`
	Bearing string `yaml:"bearing"`
}

type Layout struct {
	Ships []ShipEntry `yaml:"ships"`
}

func Load(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, cerr.ErrEmptyLayout()
		}
		return nil, fmt.Errorf("failed to decode layout: %w", err)
	}

	if len(l.Ships) == 0 {
		return nil, cerr.ErrEmptyLayout()
	}
	return &l, nil
}

func LoadFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func (e ShipEntry) Ship() (*mb.Ship, error) {
	return mb.BuildShip(e.Kind, mb.ParseCompass(e.Bearing), mb.NewPosition(e.Row, e.Column))
}

// BuildFleet places the entries in order. Every entry that cannot be
// built or placed is reported; the fleet is only returned when all of
// them were accepted.
func (l *Layout) BuildFleet(opts ...mb.FleetOption) (*mb.Fleet, error) {
	fleet, err := mb.NewFleet(opts...)
	if err != nil {
		return nil, err
	}

	var result *multierror.Error
	for i, entry := range l.Ships {
		ship, err := entry.Ship()
		if err != nil {
			result = multierror.Append(result, cerr.ErrLayoutEntry(i, err))
			continue
		}

		if !fleet.AddShip(ship) {
			result = multierror.Append(result, cerr.ErrLayoutEntry(i, cerr.ErrShipRejected(ship.String())))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return fleet, nil
}
