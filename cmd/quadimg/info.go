package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quadimg/pkg/compression"
)

var infoCmd = &cobra.Command{
	Use:   "info [tree]",
	Short: "Print statistics about an encoded quadtree",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := compression.LoadTree(path)
	if err != nil {
		return err
	}
	if err := tree.Validate(); err != nil {
		return err
	}
	stats := tree.Stats()

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("File size:  %d bytes\n", fi.Size())
	fmt.Printf("Dimensions: %d x %d\n", stats.Width, stats.Height)
	fmt.Printf("Nodes:      %d\n", stats.Nodes)
	fmt.Printf("Leaves:     %d (%.4f per pixel)\n", stats.Leaves, stats.LeafRatio())
	fmt.Printf("Depth:      %d\n", stats.Depth)
	fmt.Printf("Pruned:     %t\n", stats.Pruned)
	fmt.Printf("Raw size:   %d bytes\n", stats.Pixels()*4)
	return nil
}
