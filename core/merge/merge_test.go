package merge_test

import (
	"testing"

	"fromenv/core/merge"
	"fromenv/core/source"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		file source.Map
		cli  source.Map
		want source.Map
	}{
		{"BothEmpty", source.Map{}, source.Map{}, source.Map{}},
		{"NilInputs", nil, nil, source.Map{}},
		{"FileOnly", source.Map{"cred_file": "creds.json"}, nil, source.Map{"cred_file": "creds.json"}},
		{"CLIOnly", nil, source.Map{"server_url": "localhost:9090"}, source.Map{"server_url": "localhost:9090"}},
		{
			name: "CLIWins",
			file: source.Map{"server_url": "file:1", "cred_file": "creds.json"},
			cli:  source.Map{"server_url": "cli:2"},
			want: source.Map{"server_url": "cli:2", "cred_file": "creds.json"},
		},
		{
			name: "EmptyCLIValueStillWins",
			file: source.Map{"name": "from-file"},
			cli:  source.Map{"name": ""},
			want: source.Map{"name": ""},
		},
		{
			name: "EmptyFileValueKept",
			file: source.Map{"name": ""},
			cli:  source.Map{},
			want: source.Map{"name": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, merge.Merge(tt.file, tt.cli))
		})
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	file := source.Map{"a": "file"}
	cli := source.Map{"a": "cli", "b": "cli"}

	_ = merge.Merge(file, cli)

	assert.Equal(t, source.Map{"a": "file"}, file)
	assert.Equal(t, source.Map{"a": "cli", "b": "cli"}, cli)
}

func TestProvenance(t *testing.T) {
	file := source.Map{"a": "1", "b": "2"}
	cli := source.Map{"b": "3", "c": "4"}

	assert.Equal(t, map[string]merge.Origin{
		"a": merge.OriginFile,
		"b": merge.OriginCLI,
		"c": merge.OriginCLI,
	}, merge.Provenance(file, cli))
}
