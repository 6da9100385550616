package qtree

import (
	"image"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"quadimg/internal/models"
	"quadimg/pkg/pixel"
)

// New builds a tree covering the whole of img. Every minimal leaf holds the
// exact source pixel; every other node holds the area-weighted average of its
// children, so each node costs constant time.
func New(img image.Image) (*QTree, error) {
	if img == nil {
		return nil, errors.New("source image is nil").
			WithType(ErrTypeEmptyImage)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.New("source image has no pixels").
			WithType(ErrTypeEmptyImage).
			WithTag("width", width).
			WithTag("height", height)
	}

	root := Build(img, Point{0, 0}, Point{width - 1, height - 1})
	return &QTree{root: root, width: width, height: height}, nil
}

// Build builds the subtree for the rectangle ul..lr of img. Coordinates are
// relative to img.Bounds().Min. The rectangle must lie inside the image.
func Build(img image.Image, ul, lr Point) *Node {
	b := &builder{img: img, origin: img.Bounds().Min}
	if rgba, ok := img.(*image.NRGBA); ok {
		b.nrgba = rgba
	}
	return b.build(NewRect(ul, lr))
}

type builder struct {
	img    image.Image
	nrgba  *image.NRGBA
	origin image.Point
}

func (b *builder) build(r Rect) *Node {
	n := &Node{Rect: r}

	rects, present := Partition(r)
	if !present[0] && !present[1] && !present[2] && !present[3] {
		n.Average = b.pixelAt(r.UpperLeft)
		return n
	}

	for _, q := range models.Quadrants {
		if present[q] {
			n.SetChild(q, b.build(rects[q]))
		}
	}
	n.Average = averageChildren(n)
	return n
}

// pixelAt is the only place source pixels are read.
func (b *builder) pixelAt(p Point) pixel.Pixel {
	x, y := b.origin.X+p.X, b.origin.Y+p.Y
	if b.nrgba != nil {
		c := b.nrgba.NRGBAAt(x, y)
		return pixel.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return pixel.FromColor(b.img.At(x, y))
}
