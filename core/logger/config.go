package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `mapstructure:"log_level" default:"info"`
	// Format is the output encoding (console, json).
	Format string `mapstructure:"log_format" default:"console"`
}
