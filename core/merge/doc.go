// Package merge overlays the file and command-line sources.
//
// The rule is fixed: a command-line value wins over a file value for the same
// key. Defaults are never added here; a key that appears in neither source is
// absent from the result and the decode package applies the field default.
package merge
