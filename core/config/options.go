package config

import (
	"fromenv/core/schema"
	"fromenv/core/source"

	"go.uber.org/zap"
)

// Options controls where values are read from and how strictly.
type Options struct {
	// Args are the command-line arguments without the program name.
	// Nil means os.Args[1:].
	Args []string
	// File is the path of the key = value file. Empty means ".env".
	File string
	// Logger receives warnings about skipped file lines. Nil disables logging.
	Logger *zap.Logger
	// StrictFile makes a malformed file line a terminal error.
	StrictFile bool
	// DisallowUnknown rejects keys that match no field.
	DisallowUnknown bool
	// Defaults adds or overrides field defaults by key.
	Defaults schema.Defaults
}

// Option mutates Options.
type Option func(*Options)

// WithArgs reads args instead of the process arguments.
func WithArgs(args ...string) Option {
	return func(o *Options) {
		if args == nil {
			args = []string{}
		}
		o.Args = args
	}
}

// WithFile reads path instead of ".env".
func WithFile(path string) Option {
	return func(o *Options) {
		o.File = path
	}
}

// WithLogger sets the logger used for warnings and debug output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithStrictFile turns malformed file lines into errors.
func WithStrictFile() Option {
	return func(o *Options) {
		o.StrictFile = true
	}
}

// WithDisallowUnknown rejects keys that match no field.
func WithDisallowUnknown() Option {
	return func(o *Options) {
		o.DisallowUnknown = true
	}
}

// WithDefaults supplies a default-producing function per field key.
func WithDefaults(defaults schema.Defaults) Option {
	return func(o *Options) {
		if o.Defaults == nil {
			o.Defaults = make(schema.Defaults, len(defaults))
		}
		for k, fn := range defaults {
			o.Defaults[k] = fn
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{File: source.DefaultFile}
	for _, opt := range opts {
		opt(&o)
	}
	if o.File == "" {
		o.File = source.DefaultFile
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
