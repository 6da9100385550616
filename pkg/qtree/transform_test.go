package qtree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlipHorizontalMirrorsRender(t *testing.T) {
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			src := patternImage(size.X, size.Y)
			tree := buildTree(t, src)

			tree.FlipHorizontal()
			require.NoError(t, tree.Validate())
			require.Equal(t, size.X, tree.Width())
			require.Equal(t, size.Y, tree.Height())
			requireSameImage(t, mirror(src), render(t, tree, 1))

			tree.FlipHorizontal()
			require.NoError(t, tree.Validate())
			requireSameImage(t, src, render(t, tree, 1))
			requireSameImage(t, render(t, buildTree(t, src), 3), render(t, tree, 3))
		})
	}
}

func TestFlipHorizontalMovesStripChildrenEast(t *testing.T) {
	tree := buildTree(t, patternImage(1, 4))
	tree.FlipHorizontal()

	root := tree.Root()
	require.Nil(t, root.NW)
	require.Nil(t, root.SW)
	require.NotNil(t, root.NE)
	require.NotNil(t, root.SE)
	require.Equal(t, rect(0, 0, 0, 1), root.NE.Rect)
	require.Equal(t, rect(0, 2, 0, 3), root.SE.Rect)
}

func TestFlipHorizontalOddRow(t *testing.T) {
	tree := buildTree(t, patternImage(3, 1))
	oldNW, oldNE := tree.Root().NW, tree.Root().NE

	tree.FlipHorizontal()
	root := tree.Root()
	require.Same(t, oldNE, root.NW)
	require.Same(t, oldNW, root.NE)
	require.Equal(t, rect(0, 0, 0, 0), root.NW.Rect)
	require.Equal(t, rect(1, 0, 2, 0), root.NE.Rect)
}

func TestRotateCCWRotatesRender(t *testing.T) {
	for _, size := range sizes {
		t.Run(fmt.Sprintf("%dx%d", size.X, size.Y), func(t *testing.T) {
			src := patternImage(size.X, size.Y)
			tree := buildTree(t, src)

			want := src
			for i := 1; i <= 4; i++ {
				tree.RotateCCW()
				want = rotateCCW(want)
				require.NoError(t, tree.Validate())
				requireSameImage(t, want, render(t, tree, 1))

				if i%2 == 1 {
					require.Equal(t, size.Y, tree.Width())
					require.Equal(t, size.X, tree.Height())
				} else {
					require.Equal(t, size.X, tree.Width())
					require.Equal(t, size.Y, tree.Height())
				}
			}

			requireSameImage(t, src, render(t, tree, 1))
			requireSameImage(t, render(t, buildTree(t, src), 2), render(t, tree, 2))
		})
	}
}

func TestRotateCCWTwiceIsHalfTurn(t *testing.T) {
	src := patternImage(5, 3)
	tree := buildTree(t, src)
	tree.RotateCCW()
	tree.RotateCCW()

	out := render(t, tree, 1)
	require.Equal(t, 5, tree.Width())
	require.Equal(t, 3, tree.Height())
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			require.Equal(t, src.NRGBAAt(x, y), out.NRGBAAt(4-x, 2-y))
		}
	}
}

func TestRotateCCWShiftsChildren(t *testing.T) {
	tree := buildTree(t, patternImage(2, 2))
	old := tree.Root().Children()

	tree.RotateCCW()
	root := tree.Root()
	require.Same(t, old[1], root.NW)
	require.Same(t, old[3], root.NE)
	require.Same(t, old[0], root.SW)
	require.Same(t, old[2], root.SE)
}

func TestMixedTransforms(t *testing.T) {
	src := patternImage(7, 4)
	tree := buildTree(t, src)

	want := src
	steps := []string{"rotate", "flip", "rotate", "rotate", "flip", "rotate", "flip"}
	for _, step := range steps {
		switch step {
		case "rotate":
			tree.RotateCCW()
			want = rotateCCW(want)
		case "flip":
			tree.FlipHorizontal()
			want = mirror(want)
		}
		require.NoError(t, tree.Validate())
		requireSameImage(t, want, render(t, tree, 1))
	}
}

func TestTransformsOnEmptyTree(t *testing.T) {
	tree := buildTree(t, patternImage(3, 2))
	tree.Clear()

	tree.FlipHorizontal()
	tree.RotateCCW()
	require.True(t, tree.Empty())
	require.Equal(t, 3, tree.Width())
	require.Equal(t, 2, tree.Height())
}
