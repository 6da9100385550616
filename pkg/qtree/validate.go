package qtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Validate checks that the root covers the whole image and that the children
// of every inner node tile their parent's rectangle with no gap and no overlap.
func (t *QTree) Validate() error {
	if t.root == nil {
		return errEmptyTree("validate")
	}
	want := NewRect(Point{0, 0}, Point{t.width - 1, t.height - 1})
	if t.root.Rect != want {
		return errors.New("root does not cover the image").
			WithType(ErrTypeBrokenPartition).
			WithTag("root", t.root.Rect.String()).
			WithTag("want", want.String())
	}
	return validateNode(t.root)
}

func validateNode(n *Node) error {
	if !n.Valid() {
		return errors.New("node rectangle has inverted corners").
			WithType(ErrTypeBrokenPartition).
			WithTag("rect", n.Rect.String())
	}
	if n.IsLeaf() {
		return nil
	}

	children := n.Children()
	area := 0
	for i, c := range children {
		if c == nil {
			continue
		}
		if !c.Valid() || !n.Contains(c.Rect) {
			return errors.New("child escapes its parent").
				WithType(ErrTypeBrokenPartition).
				WithTag("parent", n.Rect.String()).
				WithTag("child", c.Rect.String())
		}
		for _, o := range children[i+1:] {
			if o != nil && c.Overlaps(o.Rect) {
				return errors.New("sibling rectangles overlap").
					WithType(ErrTypeBrokenPartition).
					WithTag("a", c.Rect.String()).
					WithTag("b", o.Rect.String())
			}
		}
		area += c.Area()
	}

	// Disjoint children inside the parent cover it iff their areas add up.
	if area != n.Area() {
		return errors.New("children leave a gap in their parent").
			WithType(ErrTypeBrokenPartition).
			WithTag("parent", n.Rect.String()).
			WithTag("covered", area)
	}

	for _, c := range children {
		if c == nil {
			continue
		}
		if err := validateNode(c); err != nil {
			return err
		}
	}
	return nil
}
