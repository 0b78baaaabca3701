package battleship

import "strings"

type ShipKind uint8

const (
	ShipKindUnknown ShipKind = iota
	ShipKindBarge
	ShipKindCaravel
	ShipKindCarrack
	ShipKindFrigate
	ShipKindGalleon
)

// AllShipKinds lists the valid kinds from smallest to largest.
var AllShipKinds = []ShipKind{
	ShipKindBarge,
	ShipKindCaravel,
	ShipKindCarrack,
	ShipKindFrigate,
	ShipKindGalleon,
}

func (k ShipKind) String() string {
	switch k {
	case ShipKindBarge:
		return "barge"
	case ShipKindCaravel:
		return "caravel"
	case ShipKindCarrack:
		return "carrack"
	case ShipKindFrigate:
		return "frigate"
	case ShipKindGalleon:
		return "galleon"
	default:
		return "unknown"
	}
}

func (k ShipKind) IsValid() bool {
	return k >= ShipKindBarge && k <= ShipKindGalleon
}

// Size is the number of cells a ship of this kind occupies.
func (k ShipKind) Size() int {
	switch k {
	case ShipKindBarge:
		return 1
	case ShipKindCaravel:
		return 2
	case ShipKindCarrack:
		return 3
	case ShipKindFrigate:
		return 4
	case ShipKindGalleon:
		return 5
	default:
		return 0
	}
}

// ParseShipKind accepts the English names and the Portuguese
// ones (barca, caravela, nau, fragata, galeao).
func ParseShipKind(s string) ShipKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "barge", "barca":
		return ShipKindBarge
	case "caravel", "caravela":
		return ShipKindCaravel
	case "carrack", "nau":
		return ShipKindCarrack
	case "frigate", "fragata":
		return ShipKindFrigate
	case "galleon", "galeao", "galeão":
		return ShipKindGalleon
	default:
		return ShipKindUnknown
	}
}
