// Package utils provides type conversion helpers shared by the decode package.
// The converters accept loosely typed values, such as the result of a default
// function, and return an error instead of guessing when a value does not fit.
package utils
