package errors

import (
	"errors"
	"fmt"
)

var (
	ErrParse                = errors.New("gib parse failure")
	ErrInvalidDate          = errors.New("invalid calendar date")
	ErrInvalidHandicap      = errors.New("invalid handicap")
	ErrCoordinateOutOfRange = errors.New("coordinate out of board range")
	ErrCacheMiss            = errors.New("sgf not found in cache")
	ErrConversionNotFound   = errors.New("conversion not found")
	ErrExportDisabled       = errors.New("sgf export is not configured")
	ErrInvalidJSON          = errors.New("invalid JSON")
)

// ParseError describes where and why a GIB file could not be parsed.
// It matches ErrParse with errors.Is.
type ParseError struct {
	Line int
	Msg  string
}

func NewParseError(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("gib: line %d: %s", e.Line, e.Msg)
	}
	return "gib: " + e.Msg
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
