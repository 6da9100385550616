package qtree

// Copy returns a deep copy of t. The copy shares no node with t.
func (t *QTree) Copy() *QTree {
	return &QTree{
		root:   copyNode(t.root),
		width:  t.width,
		height: t.height,
		pruned: t.pruned,
	}
}

// Assign replaces the contents of t with a deep copy of src. Assigning a tree
// to itself does nothing.
func (t *QTree) Assign(src *QTree) {
	if t == src {
		return
	}
	t.Clear()
	if src == nil {
		return
	}
	t.root = copyNode(src.root)
	t.width = src.width
	t.height = src.height
	t.pruned = src.pruned
}

// Clear releases every node, children before parents. Clearing an empty tree
// is a no-op. The dimensions are kept; a cleared tree renders nothing.
func (t *QTree) Clear() {
	clearNode(t.root)
	t.root = nil
}

func copyNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Rect:    n.Rect,
		Average: n.Average,
		NW:      copyNode(n.NW),
		NE:      copyNode(n.NE),
		SW:      copyNode(n.SW),
		SE:      copyNode(n.SE),
	}
}

// clearNode releases the descendants of n, children before parents, and
// leaves n itself as a leaf.
func clearNode(n *Node) {
	if n == nil {
		return
	}
	for _, c := range n.Children() {
		clearNode(c)
	}
	n.detachChildren()
}
