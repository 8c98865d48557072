package config

import (
	"errors"
	"fmt"

	"fromenv/core/decode"
	"fromenv/core/merge"
	"fromenv/core/source"

	"go.uber.org/zap"
)

// Resolution holds the raw values collected for one load.
type Resolution struct {
	// File is the path that was read.
	File string
	// FileValues are the values found in the file.
	FileValues source.Map
	// CLIValues are the values found in the arguments.
	CLIValues source.Map
	// Merged is FileValues overlaid with CLIValues.
	Merged source.Map
	// Origins tells which source supplied each merged key.
	Origins map[string]merge.Origin
	// Malformed lists the file lines that were skipped.
	Malformed []*source.MalformedLineError
}

// FromEnv populates T from the process arguments and ".env" in the working directory.
func FromEnv[T any]() (T, error) {
	return Load[T]()
}

// Load populates T from the command line, the file and the field defaults,
// in that order of precedence.
func Load[T any](opts ...Option) (T, error) {
	o := newOptions(opts)

	var zero T
	res, err := resolve(o)
	if err != nil {
		return zero, err
	}

	cfg, err := decode.Populate[T](res.Merged, decode.Options{
		Defaults:        o.Defaults,
		DisallowUnknown: o.DisallowUnknown,
		Logger:          o.Logger,
	})
	if err != nil {
		return zero, fmt.Errorf("failed to populate configuration: %w", err)
	}

	return cfg, nil
}

// Resolve reads and merges both sources without decoding them.
func Resolve(opts ...Option) (*Resolution, error) {
	return resolve(newOptions(opts))
}

func resolve(o Options) (*Resolution, error) {
	fileValues, malformed, err := source.ReadFile(o.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	for _, m := range malformed {
		o.Logger.Warn("Skipping malformed line",
			zap.String("file", m.Path),
			zap.Int("line", m.Line),
			zap.String("text", m.Text),
		)
	}
	if o.StrictFile && len(malformed) > 0 {
		errs := make([]error, len(malformed))
		for i, m := range malformed {
			errs[i] = m
		}
		return nil, fmt.Errorf("invalid configuration file: %w", errors.Join(errs...))
	}

	var cliValues source.Map
	if o.Args == nil {
		cliValues = source.FromProcess()
	} else {
		cliValues = source.FromArgs(o.Args)
	}

	return &Resolution{
		File:       o.File,
		FileValues: fileValues,
		CLIValues:  cliValues,
		Merged:     merge.Merge(fileValues, cliValues),
		Origins:    merge.Provenance(fileValues, cliValues),
		Malformed:  malformed,
	}, nil
}
