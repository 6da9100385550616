// Package compression runs the end to end pipeline: load an image, build its
// quadtree, prune and transform it, then write the encoded tree and a render.
package compression

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"quadimg/pkg/pixel"
	"quadimg/pkg/qtree"
	"quadimg/pkg/quality"
	"quadimg/pkg/visualization"
)

// Params holds the pipeline configuration.
type Params struct {
	// InputFile is the source image (png, jpeg, gif, bmp, tiff or webp).
	InputFile string

	// OutputFile receives the encoded tree. Empty skips encoding.
	OutputFile string

	// RenderFile receives the rendered tree. Empty skips rendering to disk.
	RenderFile string

	// Tolerance is the prune tolerance. Negative disables pruning.
	Tolerance float64

	// Metric names the color distance used by the pruner.
	Metric string

	// Level is the zstd level for OutputFile.
	Level int

	// Scale is the render upscaling factor.
	Scale int

	// Outline draws leaf borders on RenderFile.
	Outline bool

	// FlipHorizontal and Rotations are applied after pruning, flip first.
	FlipHorizontal bool
	Rotations      int

	// SaveIntermediaryResults renders every stage into IntermediaryDir.
	SaveIntermediaryResults bool
	IntermediaryDir         string
}

// Compressor drives one run of the pipeline.
type Compressor struct {
	params *Params

	source  image.Image
	tree    *qtree.QTree
	metrics quality.Metrics
}

// NewCompressor creates a compressor for the given parameters.
func NewCompressor(params *Params) *Compressor {
	return &Compressor{params: params}
}

// Process runs the complete pipeline.
func (c *Compressor) Process() error {
	start := time.Now()

	metric, err := pixel.ParseMetric(c.params.Metric)
	if err != nil {
		return err
	}
	scale := c.params.Scale
	if scale < 1 {
		scale = 1
	}

	if c.params.SaveIntermediaryResults {
		if err := os.MkdirAll(c.params.IntermediaryDir, 0755); err != nil {
			return errors.New("creating intermediary directory failed").
				WithTag("dir", c.params.IntermediaryDir).
				Wrap(err)
		}
	}

	// Step 1: load the source image
	logs.WithTag("step", 1).
		WithTag("file", c.params.InputFile).
		Info("loading image")
	if c.source, err = LoadImage(c.params.InputFile); err != nil {
		return err
	}
	c.saveIntermediaryResult("01_original", c.source)

	// Step 2: build the full quadtree
	logs.WithTag("step", 2).Info("building quadtree")
	if c.tree, err = qtree.New(c.source); err != nil {
		return err
	}
	logs.WithTag("nodes", c.tree.NodeCount()).
		WithTag("leaves", len(c.tree.Leaves())).
		Debug("quadtree built")
	c.saveIntermediaryTree("02_built")

	// Step 3: prune
	if c.params.Tolerance >= 0 {
		logs.WithTag("step", 3).
			WithTag("tolerance", c.params.Tolerance).
			WithTag("metric", metric.Name()).
			Info("pruning")
		if err := c.tree.PruneWithMetric(c.params.Tolerance, metric); err != nil {
			return err
		}
		logs.WithTag("leaves", len(c.tree.Leaves())).Debug("quadtree pruned")
		c.saveIntermediaryTree("03_pruned")
	}

	// Metrics compare against the untransformed source.
	rendered, err := c.tree.Render(1)
	if err != nil {
		return err
	}
	if c.metrics, err = quality.CompareTree(c.source, rendered, c.tree.Stats()); err != nil {
		return err
	}

	// Step 4: transforms. Negative rotations turn clockwise.
	turns := ((c.params.Rotations % 4) + 4) % 4
	if c.params.FlipHorizontal || turns != 0 {
		logs.WithTag("step", 4).
			WithTag("flip", c.params.FlipHorizontal).
			WithTag("rotations", c.params.Rotations).
			Info("transforming")
		if c.params.FlipHorizontal {
			c.tree.FlipHorizontal()
		}
		for i := 0; i < turns; i++ {
			c.tree.RotateCCW()
		}
		c.saveIntermediaryTree("04_transformed")
	}

	// Step 5: outputs
	if c.params.OutputFile != "" {
		logs.WithTag("step", 5).
			WithTag("file", c.params.OutputFile).
			Info("encoding tree")
		if err := SaveTree(c.tree, c.params.OutputFile, c.params.Level); err != nil {
			return err
		}
	}
	if c.params.RenderFile != "" {
		logs.WithTag("step", 5).
			WithTag("file", c.params.RenderFile).
			Info("rendering")
		if err := c.saveRender(c.params.RenderFile, scale); err != nil {
			return err
		}
	}

	logs.WithTag("rmse", c.metrics.RMSE).
		WithTag("psnr", c.metrics.PSNR).
		WithTag("ssim", c.metrics.SSIM).
		WithTag("duration", time.Since(start)).
		Info("compression completed")
	return nil
}

// GetMetrics returns the fidelity of the pruned tree against the source.
func (c *Compressor) GetMetrics() quality.Metrics {
	return c.metrics
}

// GetTree returns the final tree, or nil before Process succeeded.
func (c *Compressor) GetTree() *qtree.QTree {
	return c.tree
}

func (c *Compressor) saveRender(path string, scale int) error {
	var (
		img *image.NRGBA
		err error
	)
	if c.params.Outline {
		img, err = visualization.NewViewer(c.tree).Outline(scale, nil)
	} else {
		img, err = c.tree.Render(scale)
	}
	if err != nil {
		return err
	}
	return SaveImage(img, path)
}

// saveIntermediaryTree renders the current tree as a pipeline stage.
func (c *Compressor) saveIntermediaryTree(stage string) {
	if !c.params.SaveIntermediaryResults {
		return
	}
	img, err := c.tree.Render(1)
	if err != nil {
		logs.Warn(errors.New("rendering intermediary result failed").
			WithTag("stage", stage).
			Wrap(err))
		return
	}
	c.saveIntermediaryResult(stage, img)
}

func (c *Compressor) saveIntermediaryResult(stage string, img image.Image) {
	if !c.params.SaveIntermediaryResults {
		return
	}
	filename := filepath.Join(c.params.IntermediaryDir, fmt.Sprintf("%s.png", stage))
	if err := SaveImage(img, filename); err != nil {
		logs.Warn(errors.New("saving intermediary result failed").
			WithTag("stage", stage).
			Wrap(err))
	}
}
