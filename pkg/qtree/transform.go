package qtree

// FlipHorizontal rewrites the tree so that its render is mirrored across a
// vertical axis. West and east children swap places and every rectangle is
// recomputed from its parent's. Afterwards a one pixel wide node may have
// absent western children and present eastern ones.
func (t *QTree) FlipHorizontal() {
	if t.root == nil {
		return
	}
	t.root = flipNode(t.root, t.root.Rect)
}

// flipNode places n at r and lays out its swapped children inside r. Widths
// are taken from the children before they move; flipping never changes rows.
func flipNode(n *Node, r Rect) *Node {
	if n == nil {
		return nil
	}
	n.Rect = r

	oldNW, oldNE, oldSW, oldSE := n.NW, n.NE, n.SW, n.SE
	nwR, neR := mirrorRow(r, oldNE, oldNW)
	swR, seR := mirrorRow(r, oldSE, oldSW)

	n.NW = flipNode(oldNE, nwR)
	n.NE = flipNode(oldNW, neR)
	n.SW = flipNode(oldSE, swR)
	n.SE = flipNode(oldSW, seR)
	return n
}

// mirrorRow computes the new rectangles of one row of children: west is the
// node moving into the west slot (the old east child), east the one moving
// into the east slot. The west node starts at the parent's left edge and the
// east node ends at its right edge.
func mirrorRow(parent Rect, west, east *Node) (westR, eastR Rect) {
	westWidth := 0
	if west != nil {
		westWidth = west.Width()
		westR = NewRect(
			Point{parent.UpperLeft.X, west.UpperLeft.Y},
			Point{parent.UpperLeft.X + westWidth - 1, west.LowerRight.Y},
		)
	}
	if east != nil {
		eastR = NewRect(
			Point{parent.UpperLeft.X + westWidth, east.UpperLeft.Y},
			Point{parent.LowerRight.X, east.LowerRight.Y},
		)
	}
	return westR, eastR
}

// RotateCCW rewrites the tree so that its render is rotated 90 degrees
// counter-clockwise, then swaps the tracked width and height.
func (t *QTree) RotateCCW() {
	if t.root == nil {
		return
	}
	t.root = rotateNode(t.root, t.width)
	t.width, t.height = t.height, t.width
}

// rotateNode maps pixel (x, y) of a frame that is frameWidth wide onto
// (y, frameWidth-1-x) and shifts every child one slot counter-clockwise:
// the old NE becomes NW, SE becomes NE, SW becomes SE and NW becomes SW.
func rotateNode(n *Node, frameWidth int) *Node {
	if n == nil {
		return nil
	}

	ul, lr := n.UpperLeft, n.LowerRight
	n.UpperLeft = Point{ul.Y, frameWidth - 1 - lr.X}
	n.LowerRight = Point{lr.Y, frameWidth - 1 - ul.X}

	oldNW, oldNE, oldSW, oldSE := n.NW, n.NE, n.SW, n.SE
	n.NW = rotateNode(oldNE, frameWidth)
	n.NE = rotateNode(oldSE, frameWidth)
	n.SE = rotateNode(oldSW, frameWidth)
	n.SW = rotateNode(oldNW, frameWidth)
	return n
}
