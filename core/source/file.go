package source

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

const commentPrefix = "#"

// ReadFile reads a "key = value" file.
//
// A missing file is not an error and yields an empty Map. Malformed lines are
// skipped and returned alongside the Map; every other failure is a
// *FileReadError.
func ReadFile(path string) (Map, []*MalformedLineError, error) {
	if path == "" {
		path = DefaultFile
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Map{}, nil, nil
		}
		return nil, nil, &FileReadError{Path: path, Err: err}
	}
	defer f.Close()

	return ParseFile(f, path)
}

// ParseFile parses the content of r. name is only used in errors.
// Lines have no length limit.
func ParseFile(r io.Reader, name string) (Map, []*MalformedLineError, error) {
	m := Map{}
	var malformed []*MalformedLineError

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, &FileReadError{Path: name, Err: err}
		}
		if raw == "" && err != nil {
			break
		}

		lineNo++
		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, commentPrefix) {
			key, value, ok := strings.Cut(line, "=")
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				malformed = append(malformed, &MalformedLineError{Path: name, Line: lineNo, Text: line})
			} else {
				m[key] = fileValue(strings.TrimSpace(value))
			}
		}

		if err != nil {
			break
		}
	}

	return m, malformed, nil
}

// fileValue strips surrounding quotes. Inside double quotes the escapes
// written by godotenv (\\ \" \$ \! \` \n \r) are decoded; single quotes are literal.
func fileValue(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return unescape(s[1 : len(s)-1])
	}
	return unquote(s)
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}

		next := s[i+1]
		switch next {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case '\\', '"', '$', '!', '`':
			b.WriteByte(next)
		default:
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}
	return b.String()
}
