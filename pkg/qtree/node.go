package qtree

import (
	"fmt"

	"quadimg/internal/models"
	"quadimg/pkg/pixel"
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle with inclusive corners.
type Rect struct {
	UpperLeft  Point
	LowerRight Point
}

// NewRect returns the rectangle spanning ul to lr inclusive.
func NewRect(ul, lr Point) Rect {
	return Rect{UpperLeft: ul, LowerRight: lr}
}

func (r Rect) Width() int  { return r.LowerRight.X - r.UpperLeft.X + 1 }
func (r Rect) Height() int { return r.LowerRight.Y - r.UpperLeft.Y + 1 }
func (r Rect) Area() int   { return r.Width() * r.Height() }

// Valid reports whether the corners are ordered.
func (r Rect) Valid() bool {
	return r.UpperLeft.X <= r.LowerRight.X && r.UpperLeft.Y <= r.LowerRight.Y
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.UpperLeft.X >= r.UpperLeft.X && o.LowerRight.X <= r.LowerRight.X &&
		o.UpperLeft.Y >= r.UpperLeft.Y && o.LowerRight.Y <= r.LowerRight.Y
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	return r.UpperLeft.X <= o.LowerRight.X && o.UpperLeft.X <= r.LowerRight.X &&
		r.UpperLeft.Y <= o.LowerRight.Y && o.UpperLeft.Y <= r.LowerRight.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.UpperLeft, r.LowerRight)
}

// Node covers one rectangle of the image and stores its approximate color.
// Each child is owned by exactly one parent.
type Node struct {
	Rect
	Average pixel.Pixel

	NW, NE, SW, SE *Node
}

// IsLeaf reports whether the node has no children, whatever its size.
func (n *Node) IsLeaf() bool {
	return n.NW == nil && n.NE == nil && n.SW == nil && n.SE == nil
}

// IsMinimal reports whether the node is a leaf covering exactly one pixel.
func (n *Node) IsMinimal() bool {
	return n.IsLeaf() && n.UpperLeft == n.LowerRight
}

// Child returns the child in quadrant q, or nil.
func (n *Node) Child(q models.Quadrant) *Node {
	switch q {
	case models.NorthWest:
		return n.NW
	case models.NorthEast:
		return n.NE
	case models.SouthWest:
		return n.SW
	case models.SouthEast:
		return n.SE
	}
	return nil
}

// SetChild stores c in quadrant q.
func (n *Node) SetChild(q models.Quadrant, c *Node) {
	switch q {
	case models.NorthWest:
		n.NW = c
	case models.NorthEast:
		n.NE = c
	case models.SouthWest:
		n.SW = c
	case models.SouthEast:
		n.SE = c
	}
}

// Children returns the four child slots in quadrant order.
func (n *Node) Children() [4]*Node {
	return [4]*Node{n.NW, n.NE, n.SW, n.SE}
}

func (n *Node) detachChildren() {
	n.NW, n.NE, n.SW, n.SE = nil, nil, nil, nil
}
