package merge

import (
	"fromenv/core/source"

	"dario.cat/mergo"
)

// Origin names the source that supplied a merged value.
type Origin string

const (
	OriginFile Origin = "file"
	OriginCLI  Origin = "cli"
)

// Merge returns the union of file and cli where cli wins on conflicts.
// Neither input is modified.
func Merge(file, cli source.Map) source.Map {
	merged := make(source.Map, len(file)+len(cli))

	// Both inputs share merged's type, so mergo cannot fail here.
	_ = mergo.Merge(&merged, file)
	_ = mergo.Merge(&merged, cli, mergo.WithOverride)

	return merged
}

// Provenance reports, for every merged key, which source its value came from.
func Provenance(file, cli source.Map) map[string]Origin {
	origins := make(map[string]Origin, len(file)+len(cli))
	for k := range file {
		origins[k] = OriginFile
	}
	for k := range cli {
		origins[k] = OriginCLI
	}
	return origins
}
