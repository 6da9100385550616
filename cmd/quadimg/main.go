package main

import (
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/spf13/cobra"

	"quadimg/pkg/config"
)

var (
	configPath string
	logLevel   string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "quadimg",
	Short:         "Lossy image compression with region quadtrees",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Output.LogLevel = logLevel
		}
		logs.SetLevel(logs.ParseLevel(cfg.Output.LogLevel))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "quadimg.yaml", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warning, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logs.Fatal(err)
	}
}
