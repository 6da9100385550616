package qtree

import (
	"github.com/aukilabs/go-tooling/pkg/errors"

	"quadimg/pkg/pixel"
)

// Error types reported by tree operations. Use errors.Type to match them.
const (
	ErrTypeInvalidArgument = pixel.ErrTypeInvalidArgument
	ErrTypeEmptyImage      = "qtree_empty_image"
	ErrTypeEmptyTree       = "qtree_empty_tree"
	ErrTypeAlreadyPruned   = "qtree_already_pruned"
	ErrTypeBrokenPartition = "qtree_broken_partition"
)

func errEmptyTree(op string) error {
	return errors.New("tree has no root").
		WithType(ErrTypeEmptyTree).
		WithTag("op", op)
}
