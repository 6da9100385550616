package qtree

import (
	"math"

	"github.com/aukilabs/go-tooling/pkg/errors"

	"quadimg/pkg/pixel"
)

// Prune collapses, as high in the tree as possible, every subtree whose leaves
// all lie within tolerance (inclusive) of that subtree's own average color,
// using the Euclidean RGBA distance. A collapsed node keeps its rectangle and
// becomes a leaf. A tree can only be pruned once.
func (t *QTree) Prune(tolerance float64) error {
	return t.PruneWithMetric(tolerance, pixel.Euclidean)
}

// PruneWithMetric is Prune with a caller supplied color distance. A nil metric
// means pixel.Euclidean.
func (t *QTree) PruneWithMetric(tolerance float64, metric pixel.Metric) error {
	if t.root == nil {
		return errEmptyTree("prune")
	}
	if tolerance < 0 || math.IsNaN(tolerance) {
		return errors.New("prune tolerance must be non-negative").
			WithType(ErrTypeInvalidArgument).
			WithTag("tolerance", tolerance)
	}
	if t.pruned {
		return errors.New("tree was already pruned").
			WithType(ErrTypeAlreadyPruned)
	}
	if metric == nil {
		metric = pixel.Euclidean
	}

	pruneNode(t.root, tolerance, metric)
	t.pruned = true
	return nil
}

// pruneNode works top-down: a collapsed node's descendants are never visited.
func pruneNode(n *Node, tolerance float64, metric pixel.Metric) {
	if n == nil || n.IsLeaf() {
		return
	}
	if leavesWithin(n, n.Average, tolerance, metric) {
		clearNode(n)
		return
	}
	for _, c := range n.Children() {
		pruneNode(c, tolerance, metric)
	}
}

// leavesWithin reports whether every leaf below n is within tolerance of ref.
func leavesWithin(n *Node, ref pixel.Pixel, tolerance float64, metric pixel.Metric) bool {
	if n.IsLeaf() {
		return metric.Distance(n.Average, ref) <= tolerance
	}
	for _, c := range n.Children() {
		if c != nil && !leavesWithin(c, ref, tolerance, metric) {
			return false
		}
	}
	return true
}
