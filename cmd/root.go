package cmd

import (
	"fmt"
	"os"

	"fromenv/core/logger"
	"fromenv/core/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	envFile   string
	logConfig logger.Config

	// log is set up by the root command before any subcommand runs.
	log = zap.NewNop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "fromenv",
	Short: "Inspect configuration assembled from .env files and flags",
	Long: `fromenv shows how a program's settings resolve from its command line and
a key = value file. Command-line values win over file values, which win over
the defaults declared by the program.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(&logConfig)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		// Syncing stderr fails on some terminals; nothing is left to flush then.
		_ = log.Sync()
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&envFile, "file", "f", source.DefaultFile, "key = value file to read")
	RootCmd.PersistentFlags().StringVar(&logConfig.Level, "log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().StringVar(&logConfig.Format, "log-format", "console", "log format (console, json)")
}
