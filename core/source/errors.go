package source

import "fmt"

// FileReadError is returned when the file exists but cannot be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// MalformedLineError describes a line that is not a "key = value" assignment.
type MalformedLineError struct {
	Path string
	// Line is 1-based.
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s:%d: malformed line %q: expected key = value", e.Path, e.Line, e.Text)
}
