package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"quadimg/pkg/qtree"
)

// DefaultOutlineColor is used by Outline when no color is given.
var DefaultOutlineColor = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// Viewer renders debugging views of a quadtree
type Viewer struct {
	// tree is the quadtree being inspected
	tree *qtree.QTree
}

// NewViewer creates a new viewer for the given tree
func NewViewer(tree *qtree.QTree) *Viewer {
	return &Viewer{tree: tree}
}

// Outline renders the tree at the given scale and draws the border of every
// leaf on top, which makes the partition visible.
func (v *Viewer) Outline(scale int, c color.Color) (*image.NRGBA, error) {
	img, err := v.tree.Render(scale)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c = DefaultOutlineColor
	}
	line := color.NRGBAModel.Convert(c).(color.NRGBA)

	for _, leaf := range v.tree.Leaves() {
		x0, y0 := leaf.UpperLeft.X*scale, leaf.UpperLeft.Y*scale
		x1, y1 := (leaf.LowerRight.X+1)*scale-1, (leaf.LowerRight.Y+1)*scale-1
		for x := x0; x <= x1; x++ {
			img.SetNRGBA(x, y0, line)
			img.SetNRGBA(x, y1, line)
		}
		for y := y0; y <= y1; y++ {
			img.SetNRGBA(x0, y, line)
			img.SetNRGBA(x1, y, line)
		}
	}
	return img, nil
}

// LeafAt returns the leaf whose rectangle contains pixel (x, y)
func (v *Viewer) LeafAt(x, y int) (*qtree.Node, error) {
	if v.tree.Empty() {
		return nil, errors.New("tree has no root").
			WithType(qtree.ErrTypeEmptyTree).
			WithTag("op", "leaf_at")
	}
	if x < 0 || y < 0 || x >= v.tree.Width() || y >= v.tree.Height() {
		return nil, errors.New("point outside image").
			WithType(qtree.ErrTypeInvalidArgument).
			WithTag("x", x).
			WithTag("y", y).
			WithTag("width", v.tree.Width()).
			WithTag("height", v.tree.Height())
	}

	target := qtree.NewRect(qtree.Point{X: x, Y: y}, qtree.Point{X: x, Y: y})
	n := v.tree.Root()
	for n != nil && !n.IsLeaf() {
		var next *qtree.Node
		for _, c := range n.Children() {
			if c != nil && c.Contains(target) {
				next = c
				break
			}
		}
		n = next
	}
	if n == nil {
		return nil, errors.New("no leaf covers point").
			WithType(qtree.ErrTypeBrokenPartition).
			WithTag("x", x).
			WithTag("y", y)
	}
	return n, nil
}

// SaveImage writes img to filename, as JPEG for .jpg/.jpeg and PNG otherwise
func (v *Viewer) SaveImage(img image.Image, filename string) error {
	return SaveImage(img, filename)
}

// SaveImage writes img to filename, as JPEG for .jpg/.jpeg and PNG otherwise.
// Missing parent directories are created.
func SaveImage(img image.Image, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(file, img)
	}
}

// SaveRotationSequence renders the tree in all four counter-clockwise
// orientations into outputDir. The viewer's tree is left untouched.
func (v *Viewer) SaveRotationSequence(outputDir string, scale int) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	rotated := v.tree.Copy()
	for turn := 0; turn < 4; turn++ {
		img, err := rotated.Render(scale)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("rotation_%03d.png", turn*90))
		if err := SaveImage(img, filename); err != nil {
			return err
		}
		rotated.RotateCCW()
	}

	return nil
}
