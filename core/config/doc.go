// Package config populates a caller-defined settings struct from the command
// line, a ".env"-style file and per-field defaults.
//
// Precedence is fixed: a command-line value beats a file value, which beats
// the field default. A field with no value anywhere and no default is an
// error, so a successful load always returns a fully populated struct.
//
// # Declaring Settings
//
//	type Constants struct {
//	    CredFile  string `mapstructure:"cred_file" default:"credentials.json"`
//	    ServerURL string `mapstructure:"server_url" default:"127.0.0.1:8080"`
//	}
//
// # Usage
//
// Build the value once at start-up and pass it to whatever needs it:
//
//	cfg, err := config.FromEnv[Constants]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Values can then come from a ".env" file
//
//	cred_file = credentials.json
//
// or directly from the command line
//
//	./app --server_url localhost:9090
//
// Load accepts options to read other arguments or another file, to attach a
// zap logger, to treat malformed file lines or unknown keys as errors, and to
// supply defaults as functions instead of tags.
//
// Process environment variables are never read.
package config
