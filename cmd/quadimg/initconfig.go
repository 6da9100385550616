package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"quadimg/pkg/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default configuration file to --config",
	// An existing file is overwritten without being loaded.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.CreateDefaultConfigFile(configPath); err != nil {
			return err
		}
		fmt.Printf("Default configuration written to %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initConfigCmd)
}
