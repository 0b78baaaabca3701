package battleship

import "strings"

// Compass is the bearing a ship is placed with. The zero value is
// CompassUnknown so an absent bearing is never mistaken for a valid one.
type Compass uint8

const (
	CompassUnknown Compass = iota
	CompassNorth
	CompassSouth
	CompassEast
	CompassWest
)

func (c Compass) String() string {
	return string(c.Direction())
}

// Direction is the single letter used on the command line.
func (c Compass) Direction() byte {
	switch c {
	case CompassNorth:
		return 'n'
	case CompassSouth:
		return 's'
	case CompassEast:
		return 'e'
	case CompassWest:
		return 'w'
	default:
		return 'u'
	}
}

func (c Compass) IsValid() bool {
	return c >= CompassNorth && c <= CompassWest
}

// CompassFromChar maps n/s/e/w to a bearing. 'o' (oeste) is also
// accepted for west. Anything else is CompassUnknown.
func CompassFromChar(ch byte) Compass {
	switch ch {
	case 'n', 'N':
		return CompassNorth
	case 's', 'S':
		return CompassSouth
	case 'e', 'E':
		return CompassEast
	case 'w', 'W', 'o', 'O':
		return CompassWest
	default:
		return CompassUnknown
	}
}

// ParseCompass accepts either the single letter or the full name.
func ParseCompass(s string) Compass {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "north":
		return CompassNorth
	case "south":
		return CompassSouth
	case "east":
		return CompassEast
	case "west":
		return CompassWest
	}

	if len(s) != 1 {
		return CompassUnknown
	}
	return CompassFromChar(s[0])
}
