package input

import (
	"errors"
	"fmt"
)

var (
	// ErrFileUnavailable is returned when an input file cannot be opened or read.
	ErrFileUnavailable = errors.New("input file unavailable")
	// ErrMalformedRecord is returned when a line is not a valid record.
	ErrMalformedRecord = errors.New("malformed record")
)

// RecordError locates a malformed line.
type RecordError struct {
	Path   string
	Line   int
	Column int
	Text   string
	Reason string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s %q: %s", e.Path, e.Line, e.Column, ErrMalformedRecord, e.Text, e.Reason)
}

func (e *RecordError) Unwrap() error {
	return ErrMalformedRecord
}
