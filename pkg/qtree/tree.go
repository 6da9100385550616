// Package qtree implements a region quadtree that stores a lossy, spatially
// adaptive approximation of a raster image.
//
// Every node covers an axis-aligned rectangle of the image and keeps a single
// average color for it. Leaves are rendered back into pixels; pruning collapses
// color-uniform subtrees and the flip/rotate transforms rewrite the tree in
// place so that its render is mirrored or rotated.
//
// A QTree is not safe for concurrent use.
package qtree

import (
	"quadimg/internal/models"
)

// QTree owns a node graph plus the dimensions of the image it represents in
// its current orientation.
type QTree struct {
	root   *Node
	width  int
	height int
	pruned bool
}

// Width returns the width of the represented image in the current orientation.
func (t *QTree) Width() int { return t.width }

// Height returns the height of the represented image in the current orientation.
func (t *QTree) Height() int { return t.height }

// Root returns the root node, or nil for a cleared tree.
func (t *QTree) Root() *Node { return t.root }

// Empty reports whether the tree owns no nodes.
func (t *QTree) Empty() bool { return t.root == nil }

// Pruned reports whether Prune was applied to this tree or to the tree it was
// copied from.
func (t *QTree) Pruned() bool { return t.pruned }

// FromRoot wraps an already assembled node graph. The graph must tile the
// width x height image exactly; it is checked with Validate.
func FromRoot(root *Node, width, height int, pruned bool) (*QTree, error) {
	t := &QTree{root: root, width: width, height: height, pruned: pruned}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Walk visits every node in pre-order (parent, then NW, NE, SW, SE).
// Returning false from fn skips the node's descendants.
func (t *QTree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 1, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

// Leaves returns every childless node in pre-order.
func (t *QTree) Leaves() []*Node {
	var leaves []*Node
	t.Walk(func(n *Node, _ int) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		return true
	})
	return leaves
}

// NodeCount returns the number of nodes in the tree.
func (t *QTree) NodeCount() int {
	count := 0
	t.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Stats summarizes the tree.
func (t *QTree) Stats() models.TreeStats {
	s := models.TreeStats{
		Width:  t.width,
		Height: t.height,
		Pruned: t.pruned,
	}
	t.Walk(func(n *Node, depth int) bool {
		s.Nodes++
		if n.IsLeaf() {
			s.Leaves++
		}
		if depth > s.Depth {
			s.Depth = depth
		}
		return true
	})
	return s
}
