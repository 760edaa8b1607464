package core

import (
	"fmt"

	"github.com/JonMunkholm/acme-reports/internal/schema"
)

// MissingFileError is returned when an input file cannot be opened.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing input file %q: %v", e.Path, e.Err)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// MalformedRowError is returned when a row lacks a required column.
type MalformedRowError struct {
	Source schema.Source
	Line   int
	Column string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("%s line %d: missing required column %q", e.Source, e.Line, e.Column)
}

// InvalidNumericFieldError is returned when a numeric column cannot be parsed.
type InvalidNumericFieldError struct {
	Source schema.Source
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *InvalidNumericFieldError) Error() string {
	return fmt.Sprintf("%s line %d: invalid number for %q: %q", e.Source, e.Line, e.Column, e.Value)
}

func (e *InvalidNumericFieldError) Unwrap() error { return e.Err }
