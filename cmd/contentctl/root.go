package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ndmedia/internal/config"
	"ndmedia/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "contentctl",
	Short: "Validate and render site content documents",
	Long: `contentctl loads YAML content documents the way the server does,
reports every validation problem it finds and can render a single page
to a file for review.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if verbose {
			level = "debug"
		}
		return logger.Initialize(config.LoggerConfig{Env: "development", Level: level})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logger.Sync(); err != nil {
			logger.Get().Debug("logger sync failed", zap.Error(err))
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
