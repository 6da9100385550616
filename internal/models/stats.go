package models

// TreeStats summarizes the shape of a quadtree
type TreeStats struct {
	// Width and Height are the dimensions of the represented image
	Width  int
	Height int

	// Nodes is the total number of nodes, Leaves the number of childless ones
	Nodes  int
	Leaves int

	// Depth is the number of levels, a single root counts as 1
	Depth int

	// Pruned is set once the tree (or the tree it was copied from) was pruned
	Pruned bool
}

// Pixels returns the number of pixels of the represented image.
func (s TreeStats) Pixels() int {
	return s.Width * s.Height
}

// LeafRatio is the number of leaves per source pixel. A freshly built tree
// has a ratio of exactly 1.
func (s TreeStats) LeafRatio() float64 {
	if s.Pixels() == 0 {
		return 0
	}
	return float64(s.Leaves) / float64(s.Pixels())
}
