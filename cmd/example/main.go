package main

import (
	"fmt"
	"os"

	"fromenv/core/config"
	"fromenv/core/logger"

	"go.uber.org/zap"
)

// Constants are the settings of this program. Every field can come from the
// command line (--server_url localhost:9090) or from .env (cred_file = x.json).
type Constants struct {
	CredFile  string `mapstructure:"cred_file" default:"credentials.json"`
	ServerURL string `mapstructure:"server_url" default:"127.0.0.1:8080"`
}

func main() {
	constants, err := config.FromEnv[Constants]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Please provide valid args for constants: %v\n", err)
		os.Exit(1)
	}

	// --log_level and --log_format are read from the same sources.
	logConfig, err := config.FromEnv[logger.Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid logging settings: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&logConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logg.Sync()

	run(constants, logg)
}

func run(c Constants, logg *zap.Logger) {
	logg.Info("Loaded constants",
		zap.String("cred_file", c.CredFile),
		zap.String("server_url", c.ServerURL),
	)
}
