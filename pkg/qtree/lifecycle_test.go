package qtree

import (
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/stretchr/testify/require"
)

func nodeSet(tree *QTree) map[*Node]struct{} {
	set := make(map[*Node]struct{})
	tree.Walk(func(n *Node, _ int) bool {
		set[n] = struct{}{}
		return true
	})
	return set
}

func TestCopyIsDeep(t *testing.T) {
	src := patternImage(6, 5)
	tree := buildTree(t, src)
	cp := tree.Copy()

	require.NoError(t, cp.Validate())
	require.Equal(t, tree.NodeCount(), cp.NodeCount())
	requireSameImage(t, render(t, tree, 1), render(t, cp, 1))

	original := nodeSet(tree)
	for n := range nodeSet(cp) {
		_, shared := original[n]
		require.False(t, shared)
	}

	cp.FlipHorizontal()
	require.NoError(t, cp.Prune(50))
	requireSameImage(t, src, render(t, tree, 1))
	require.False(t, tree.Pruned())
}

func TestAssign(t *testing.T) {
	a := buildTree(t, patternImage(4, 3))
	b := buildTree(t, patternImage(2, 5))
	want := render(t, a, 1)

	a.Assign(a)
	requireSameImage(t, want, render(t, a, 1))

	for i := 0; i < 3; i++ {
		a.Assign(b)
		require.NoError(t, a.Validate())
		require.Equal(t, 2, a.Width())
		require.Equal(t, 5, a.Height())
		requireSameImage(t, render(t, b, 1), render(t, a, 1))
	}

	b.RotateCCW()
	require.Equal(t, 2, a.Width())
	require.NoError(t, a.Validate())

	a.Assign(nil)
	require.True(t, a.Empty())
}

func TestClear(t *testing.T) {
	tree := buildTree(t, patternImage(5, 5))
	root := tree.Root()

	tree.Clear()
	require.True(t, tree.Empty())
	require.Zero(t, tree.NodeCount())
	require.True(t, root.IsLeaf())

	tree.Clear()
	require.True(t, tree.Empty())

	cp := tree.Copy()
	require.True(t, cp.Empty())
}

func TestValidateDetectsBrokenPartition(t *testing.T) {
	tree := buildTree(t, patternImage(4, 4))
	tree.Root().SE.LowerRight.X = 2

	err := tree.Validate()
	require.Error(t, err)
	require.Equal(t, ErrTypeBrokenPartition, errors.Type(err))

	tree = buildTree(t, patternImage(4, 4))
	tree.Root().NE.UpperLeft.X = 1
	require.Equal(t, ErrTypeBrokenPartition, errors.Type(tree.Validate()))

	tree = buildTree(t, patternImage(4, 4))
	tree.Root().SE = nil
	require.Equal(t, ErrTypeBrokenPartition, errors.Type(tree.Validate()))
}

func TestFromRoot(t *testing.T) {
	tree := buildTree(t, patternImage(3, 3))

	rebuilt, err := FromRoot(tree.Root(), 3, 3, true)
	require.NoError(t, err)
	require.True(t, rebuilt.Pruned())

	_, err = FromRoot(tree.Root(), 4, 3, false)
	require.Equal(t, ErrTypeBrokenPartition, errors.Type(err))

	_, err = FromRoot(nil, 3, 3, false)
	require.Equal(t, ErrTypeEmptyTree, errors.Type(err))
}
