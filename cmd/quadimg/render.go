package main

import (
	"github.com/spf13/cobra"

	"quadimg/pkg/compression"
	"quadimg/pkg/visualization"
)

var renderCmd = &cobra.Command{
	Use:   "render [tree] [image]",
	Short: "Render an encoded quadtree to an image",
	Args:  cobra.ExactArgs(2),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Int("scale", 0, "Render scale factor")
	renderCmd.Flags().Bool("outline", false, "Draw leaf borders")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("scale") {
		cfg.Render.Scale, _ = cmd.Flags().GetInt("scale")
	}
	if cmd.Flags().Changed("outline") {
		cfg.Render.Outline, _ = cmd.Flags().GetBool("outline")
	}

	if !cfg.Render.Outline {
		return compression.Decompress(args[0], args[1], cfg.Render.Scale)
	}

	tree, err := compression.LoadTree(args[0])
	if err != nil {
		return err
	}
	img, err := visualization.NewViewer(tree).Outline(cfg.Render.Scale, nil)
	if err != nil {
		return err
	}
	return compression.SaveImage(img, args[1])
}
