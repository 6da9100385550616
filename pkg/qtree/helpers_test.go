package qtree

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// newImage creates an NRGBA image filled by the given pattern
func newImage(width, height int, pattern func(x, y int) color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, pattern(x, y))
		}
	}
	return img
}

// patternImage is a deterministic image where neighboring pixels differ
func patternImage(width, height int) *image.NRGBA {
	return newImage(width, height, func(x, y int) color.NRGBA {
		return color.NRGBA{
			R: uint8((x * 37) ^ (y * 11)),
			G: uint8(x*13 + y*71),
			B: uint8((x * 7) ^ (y * 29)),
			A: uint8(128 + (x*y*5)%128),
		}
	})
}

func uniformImage(width, height int, c color.NRGBA) *image.NRGBA {
	return newImage(width, height, func(int, int) color.NRGBA { return c })
}

// mirror flips src across its vertical axis
func mirror(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetNRGBA(b.Dx()-1-x, y, src.NRGBAAt(x, y))
		}
	}
	return dst
}

// rotateCCW rotates src by 90 degrees counter-clockwise
func rotateCCW(src *image.NRGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetNRGBA(y, w-1-x, src.NRGBAAt(x, y))
		}
	}
	return dst
}

func buildTree(t *testing.T, img image.Image) *QTree {
	t.Helper()
	tree, err := New(img)
	require.NoError(t, err)
	require.NoError(t, tree.Validate())
	return tree
}

func render(t *testing.T, tree *QTree, scale int) *image.NRGBA {
	t.Helper()
	img, err := tree.Render(scale)
	require.NoError(t, err)
	return img
}

func requireSameImage(t *testing.T, want, got *image.NRGBA) {
	t.Helper()
	require.Equal(t, want.Bounds(), got.Bounds())
	require.Equal(t, want.Pix, got.Pix)
}

// sizes covers every parity combination plus degenerate strips
var sizes = []image.Point{
	{1, 1}, {2, 1}, {1, 2}, {3, 1}, {1, 3}, {2, 2},
	{3, 3}, {4, 3}, {3, 4}, {5, 2}, {7, 5}, {8, 8}, {13, 6}, {1, 9},
}
