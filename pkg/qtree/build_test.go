package qtree

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"

	"quadimg/pkg/pixel"
)

func TestNewRejectsEmptyImage(t *testing.T) {
	for _, img := range []image.Image{
		nil,
		image.NewNRGBA(image.Rect(0, 0, 0, 5)),
		image.NewNRGBA(image.Rect(0, 0, 5, 0)),
	} {
		_, err := New(img)
		require.Error(t, err)
		require.Equal(t, ErrTypeEmptyImage, errors.Type(err))
	}
}

func TestBuildExactReconstruction(t *testing.T) {
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			src := patternImage(size.X, size.Y)
			tree := buildTree(t, src)

			require.Equal(t, size.X, tree.Width())
			require.Equal(t, size.Y, tree.Height())
			require.Equal(t, size.X*size.Y, len(tree.Leaves()))
			for _, leaf := range tree.Leaves() {
				require.True(t, leaf.IsMinimal())
			}

			requireSameImage(t, src, render(t, tree, 1))
		})
	}
}

func TestBuildHonorsImageOrigin(t *testing.T) {
	full := patternImage(9, 7)
	sub := full.SubImage(image.Rect(3, 2, 8, 6)).(*image.NRGBA)

	tree := buildTree(t, sub)
	require.Equal(t, 5, tree.Width())
	require.Equal(t, 4, tree.Height())

	out := render(t, tree, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			require.Equal(t, full.NRGBAAt(x+3, y+2), out.NRGBAAt(x, y))
		}
	}
}

func TestBuildAcceptsOtherColorModels(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 40)
	}

	tree := buildTree(t, src)
	out := render(t, tree, 1)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			v := src.GrayAt(x, y).Y
			require.Equal(t, color.NRGBA{R: v, G: v, B: v, A: 255}, out.NRGBAAt(x, y))
		}
	}
}

func TestBuildDegenerateStrips(t *testing.T) {
	// 3x1: the extra column goes west, so NW holds pixels 0-1 and NE pixel 2.
	tree := buildTree(t, patternImage(3, 1))
	root := tree.Root()
	require.NotNil(t, root.NW)
	require.NotNil(t, root.NE)
	require.Nil(t, root.SW)
	require.Nil(t, root.SE)
	require.Equal(t, rect(0, 0, 1, 0), root.NW.Rect)
	require.Equal(t, rect(2, 0, 2, 0), root.NE.Rect)
	require.True(t, root.NE.IsMinimal())
	require.False(t, root.NW.IsLeaf())

	// 1x3: the extra row goes north.
	tree = buildTree(t, patternImage(1, 3))
	root = tree.Root()
	require.Nil(t, root.NE)
	require.Nil(t, root.SE)
	require.Equal(t, rect(0, 0, 0, 1), root.NW.Rect)
	require.Equal(t, rect(0, 2, 0, 2), root.SW.Rect)
}

func TestBuildFourDistinctPixels(t *testing.T) {
	colors := []color.NRGBA{
		{R: 255, A: 255},                 // red
		{G: 255, A: 255},                 // green
		{B: 255, A: 255},                 // blue
		{R: 255, G: 255, B: 255, A: 255}, // white
	}
	src := newImage(2, 2, func(x, y int) color.NRGBA { return colors[y*2+x] })
	tree := buildTree(t, src)

	root := tree.Root()
	for i, c := range root.Children() {
		require.NotNil(t, c)
		require.True(t, c.IsMinimal())
		require.Equal(t, pixel.FromColor(colors[i]), c.Average)
	}
	// (255+0+0+255)/4 = 127.5 truncates to 127 on every color channel.
	require.Equal(t, pixel.Pixel{R: 127, G: 127, B: 127, A: 255}, root.Average)
}

func TestBuildAveragesFromChildrenOnly(t *testing.T) {
	// Red values 0, 1, 2: NW averages 0 and 1 to 0.5 -> 0, so the root is
	// (0*2 + 2*1)/3 -> 0 rather than the exact mean of 1.
	src := newImage(3, 1, func(x, _ int) color.NRGBA {
		return color.NRGBA{R: uint8(x), A: 255}
	})
	tree := buildTree(t, src)

	require.Equal(t, pixel.Pixel{R: 0, A: 255}, tree.Root().NW.Average)
	require.Equal(t, pixel.Pixel{R: 0, A: 255}, tree.Root().Average)
}

func TestBuildWeightedAverageAtEveryNode(t *testing.T) {
	tree := buildTree(t, patternImage(7, 5))
	tree.Walk(func(n *Node, _ int) bool {
		if n.IsLeaf() {
			return true
		}
		var ws []Weighted
		for _, c := range n.Children() {
			if c != nil {
				ws = append(ws, Weighted{Color: c.Average, Area: c.Area()})
			}
		}
		require.Equal(t, Average(ws...), n.Average)
		return true
	})
}

func TestAverage(t *testing.T) {
	got := Average(
		Weighted{Color: pixel.Pixel{R: 100, G: 0, B: 10, A: 255}, Area: 3},
		Weighted{Color: pixel.Pixel{R: 200, G: 90, B: 10, A: 255}, Area: 1},
		Weighted{Color: pixel.Pixel{R: 255, G: 255, B: 255, A: 255}, Area: 0},
	)
	// R: (300+200)/4 = 125, G: 90/4 = 22.5 -> 22
	require.Equal(t, pixel.Pixel{R: 125, G: 22, B: 10, A: 255}, got)

	require.Equal(t, pixel.Pixel{}, Average())
}

func TestStats(t *testing.T) {
	tree := buildTree(t, patternImage(2, 2))
	s := tree.Stats()
	require.Equal(t, 5, s.Nodes)
	require.Equal(t, 4, s.Leaves)
	require.Equal(t, 2, s.Depth)
	require.Equal(t, 1.0, s.LeafRatio())
	require.False(t, s.Pruned)

	tree = buildTree(t, patternImage(8, 8))
	require.Equal(t, 85, tree.NodeCount())
	require.Equal(t, 4, tree.Stats().Depth)
}
