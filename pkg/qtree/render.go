package qtree

import (
	"image"
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"quadimg/pkg/pixel"
)

// Render rasterizes the leaves into a new width*scale x height*scale image.
// Each leaf fills its rectangle scaled by an integer factor with its average
// color; there is no interpolation.
func (t *QTree) Render(scale int) (*image.NRGBA, error) {
	if scale < 1 {
		return nil, errors.New("render scale must be at least 1").
			WithType(ErrTypeInvalidArgument).
			WithTag("scale", scale)
	}
	if t.root == nil {
		return nil, errEmptyTree("render")
	}
	if scale > math.MaxInt32/max(t.width, t.height) {
		return nil, errors.New("render scale too large").
			WithType(ErrTypeInvalidArgument).
			WithTag("scale", scale).
			WithTag("width", t.width).
			WithTag("height", t.height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, t.width*scale, t.height*scale))
	t.Walk(func(n *Node, _ int) bool {
		if n.IsLeaf() {
			fillRect(img, image.Rect(
				n.UpperLeft.X*scale,
				n.UpperLeft.Y*scale,
				(n.LowerRight.X+1)*scale,
				(n.LowerRight.Y+1)*scale,
			), n.Average)
		}
		return true
	})
	return img, nil
}

// fillRect writes c into every pixel of r, clipped to the image bounds.
// Writing the Pix buffer directly keeps the stored non-premultiplied values
// exact.
func fillRect(img *image.NRGBA, r image.Rectangle, c pixel.Pixel) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
			i += 4
		}
	}
}
