// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). The fromenv tool builds one from its global
// flags, and programs using the config package can hand the same logger to
// config.WithLogger to see skipped file lines and ignored keys.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// Config carries `mapstructure` and `default` tags, so it can be populated
// by the config package like any other settings struct.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Configuration loaded")
package logger
