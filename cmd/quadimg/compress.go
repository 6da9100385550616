package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quadimg/pkg/codec"
	"quadimg/pkg/compression"
)

var compressCmd = &cobra.Command{
	Use:   "compress",
	Short: "Build, prune and encode an image as a quadtree",
	RunE:  runCompress,
}

func init() {
	compressCmd.Flags().StringP("input", "i", "", "Input image (png, jpeg, gif, bmp, tiff, webp)")
	compressCmd.Flags().StringP("output", "o", "", "Output tree file (default: input name with "+codec.Extension+")")
	compressCmd.Flags().StringP("render", "r", "", "Also render the final tree to this image file")
	compressCmd.Flags().Float64P("tolerance", "t", 0, "Prune tolerance")
	compressCmd.Flags().Bool("no-prune", false, "Keep the full tree")
	compressCmd.Flags().String("metric", "", "Color distance (euclidean, lab)")
	compressCmd.Flags().Int("level", 0, "zstd level (1-22)")
	compressCmd.Flags().Int("scale", 0, "Render scale factor")
	compressCmd.Flags().Bool("outline", false, "Draw leaf borders on the render")
	compressCmd.Flags().Bool("flip", false, "Mirror horizontally after pruning")
	compressCmd.Flags().Int("rotate", 0, "Number of 90 degree counter-clockwise turns after pruning")
	compressCmd.Flags().Bool("save-intermediary", false, "Render every pipeline stage")
	compressCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	input, _ := flags.GetString("input")
	output, _ := flags.GetString("output")
	render, _ := flags.GetString("render")

	if flags.Changed("tolerance") {
		cfg.Compression.Tolerance, _ = flags.GetFloat64("tolerance")
	}
	if flags.Changed("metric") {
		cfg.Compression.Metric, _ = flags.GetString("metric")
	}
	if flags.Changed("level") {
		cfg.Compression.Level, _ = flags.GetInt("level")
	}
	if flags.Changed("scale") {
		cfg.Render.Scale, _ = flags.GetInt("scale")
	}
	if flags.Changed("outline") {
		cfg.Render.Outline, _ = flags.GetBool("outline")
	}
	if flags.Changed("flip") {
		cfg.Transform.FlipHorizontal, _ = flags.GetBool("flip")
	}
	if flags.Changed("rotate") {
		cfg.Transform.Rotations, _ = flags.GetInt("rotate")
	}
	if flags.Changed("save-intermediary") {
		cfg.Output.SaveIntermediaryResults, _ = flags.GetBool("save-intermediary")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	tolerance := cfg.Compression.Tolerance
	if noPrune, _ := flags.GetBool("no-prune"); noPrune {
		tolerance = -1
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + codec.Extension
	}

	compressor := compression.NewCompressor(&compression.Params{
		InputFile:               input,
		OutputFile:              output,
		RenderFile:              render,
		Tolerance:               tolerance,
		Metric:                  cfg.Compression.Metric,
		Level:                   cfg.Compression.Level,
		Scale:                   cfg.Render.Scale,
		Outline:                 cfg.Render.Outline,
		FlipHorizontal:          cfg.Transform.FlipHorizontal,
		Rotations:               cfg.Transform.Rotations,
		SaveIntermediaryResults: cfg.Output.SaveIntermediaryResults,
		IntermediaryDir:         cfg.Output.IntermediaryDir,
	})
	if err := compressor.Process(); err != nil {
		return err
	}

	stats := compressor.GetTree().Stats()
	metrics := compressor.GetMetrics()
	fmt.Printf("Output:     %s\n", output)
	fmt.Printf("Dimensions: %d x %d\n", stats.Width, stats.Height)
	fmt.Printf("Nodes:      %d (%d leaves, depth %d)\n", stats.Nodes, stats.Leaves, stats.Depth)
	fmt.Printf("Leaf ratio: %.4f\n", metrics.LeafRatio)
	fmt.Printf("RMSE:       %.6f\n", metrics.RMSE)
	fmt.Printf("PSNR:       %.2f dB\n", metrics.PSNR)
	fmt.Printf("SSIM:       %.4f\n", metrics.SSIM)
	return nil
}
