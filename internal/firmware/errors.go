package firmware

import (
	"fmt"
	"strings"
)

// Image kinds used in MissingFileError.
const (
	KindELF = "ELF"
	KindBIN = "BIN"
)

// MissingFileError represents an input image that does not exist.
type MissingFileError struct {
	// Kind is KindELF or KindBIN
	Kind string
	// Path is the path that was checked last
	Path string
	// Underlying error if any
	Err error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file not found: %s", e.Kind, e.Path)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// ParseError represents size output that ran fine but could not be read.
type ParseError struct {
	// Reason says which part of the expected shape was missing
	Reason string
	// Output is the text that failed to parse
	Output string
	// Underlying error if any
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse firmware size output: %s\nOutput: %s",
		e.Reason, strings.TrimSpace(e.Output))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
