package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fromenv/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadFile(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		m, malformed, err := source.ReadFile(filepath.Join(t.TempDir(), "nope.env"))
		require.NoError(t, err)
		assert.Empty(t, m)
		assert.Empty(t, malformed)
	})

	t.Run("Directory", func(t *testing.T) {
		dir := t.TempDir()
		_, _, err := source.ReadFile(dir)

		var readErr *source.FileReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, dir, readErr.Path)
	})

	t.Run("Assignments", func(t *testing.T) {
		path := writeFile(t, strings.Join([]string{
			"# settings",
			"",
			"cred_file = creds.json",
			"  server_url=localhost:9090  ",
			`quoted = "hello world"`,
			`single = 'x'`,
			"empty =",
			"padded = abc==",
		}, "\n"))

		m, malformed, err := source.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, malformed)
		assert.Equal(t, source.Map{
			"cred_file":  "creds.json",
			"server_url": "localhost:9090",
			"quoted":     "hello world",
			"single":     "x",
			"empty":      "",
			"padded":     "abc==",
		}, m)
	})

	t.Run("MalformedLinesAreSkipped", func(t *testing.T) {
		path := writeFile(t, "good = 1\nno equals here\n= orphan\nalso_good = 2\n")

		m, malformed, err := source.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, source.Map{"good": "1", "also_good": "2"}, m)
		require.Len(t, malformed, 2)
		assert.Equal(t, 2, malformed[0].Line)
		assert.Equal(t, "no equals here", malformed[0].Text)
		assert.Equal(t, 3, malformed[1].Line)
		assert.Equal(t, path, malformed[1].Path)
		assert.Contains(t, malformed[0].Error(), ":2: malformed line")
	})

	t.Run("DuplicateKeyLastWins", func(t *testing.T) {
		path := writeFile(t, "port = 80\nport = 81\n")
		m, _, err := source.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "81", m["port"])
	})
}

func TestReadFile_LongLine(t *testing.T) {
	cert := strings.Repeat("A", 70000)
	path := writeFile(t, "cert = "+cert+"\nname = svc")

	m, malformed, err := source.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, malformed)
	assert.Equal(t, cert, m["cert"])
	assert.Equal(t, "svc", m["name"])
}

func TestReadFile_Escapes(t *testing.T) {
	path := writeFile(t, strings.Join([]string{
		`price = "\$5"`,
		`quote = "say \"hi\""`,
		`win = "C:\\tmp"`,
		`multi = "a\nb"`,
		`bang = "wow\!"`,
		`other = "keep \t as is"`,
		`literal = 'C:\tmp'`,
		`bare = C:\tmp`,
	}, "\n"))

	m, _, err := source.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, source.Map{
		"price":   "$5",
		"quote":   `say "hi"`,
		"win":     `C:\tmp`,
		"multi":   "a\nb",
		"bang":    "wow!",
		"other":   `keep \t as is`,
		"literal": `C:\tmp`,
		"bare":    `C:\tmp`,
	}, m)
}

func TestParseFile(t *testing.T) {
	m, malformed, err := source.ParseFile(strings.NewReader("a = 1\r\nb = 2\r\n"), "inline")
	require.NoError(t, err)
	assert.Empty(t, malformed)
	assert.Equal(t, source.Map{"a": "1", "b": "2"}, m)
}
