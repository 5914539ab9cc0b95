package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedInput marks rows the loader could not parse: an unreadable
// period label or a non-numeric reading. Matched with errors.Is.
var ErrMalformedInput = errors.New("malformed input")

// ErrYearNotFound marks a chart request for a year absent from the grid.
var ErrYearNotFound = errors.New("year not found")

// ParseError reports a malformed input row with its 1-based line number so
// users can find it in the source file. Wraps ErrMalformedInput.
type ParseError struct {
	Line  int
	Field string // "period" or "reading"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// YearError reports which year a chart request failed for. Wraps ErrYearNotFound.
type YearError struct {
	Year int
	Err  error
}

func (e *YearError) Error() string {
	return fmt.Sprintf("year %d: %v", e.Year, e.Err)
}

func (e *YearError) Unwrap() error {
	return e.Err
}
