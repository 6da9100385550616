package models

// Quadrant identifies one of the four child slots of a quadtree node.
// The order matches the serialization order of children.
type Quadrant int

const (
	NorthWest Quadrant = iota
	NorthEast
	SouthWest
	SouthEast
)

// Quadrants lists every quadrant in child order.
var Quadrants = [4]Quadrant{NorthWest, NorthEast, SouthWest, SouthEast}

func (q Quadrant) String() string {
	switch q {
	case NorthWest:
		return "NW"
	case NorthEast:
		return "NE"
	case SouthWest:
		return "SW"
	case SouthEast:
		return "SE"
	}
	return "invalid"
}

// Bit returns the quadrant's bit in a child presence mask.
func (q Quadrant) Bit() uint8 {
	return 1 << uint(q)
}
