package importer

import (
	"errors"
	"fmt"
)

// ErrMalformedFile is the only batch-scoped failure: the upload could not be
// read as a spreadsheet at all. Everything else is scoped to a single row.
var ErrMalformedFile = errors.New("file could not be parsed as a spreadsheet")

// ErrorKind classifies a row-scoped failure.
type ErrorKind string

const (
	ErrMissingRequiredField   ErrorKind = "MISSING_REQUIRED_FIELD"
	ErrInvalidDateFormat      ErrorKind = "INVALID_DATE_FORMAT"
	ErrInvalidGender          ErrorKind = "INVALID_GENDER"
	ErrDistanceNotFound       ErrorKind = "DISTANCE_NOT_FOUND"
	ErrDistanceFull           ErrorKind = "DISTANCE_FULL"
	ErrPartialShirtDescriptor ErrorKind = "PARTIAL_SHIRT_DESCRIPTOR"
	ErrInvalidShirtDescriptor ErrorKind = "INVALID_SHIRT_DESCRIPTOR"
	ErrShirtNotFound          ErrorKind = "SHIRT_NOT_FOUND"
	ErrOutOfStock             ErrorKind = "OUT_OF_STOCK"
	ErrCancelled              ErrorKind = "CANCELLED"
)

// Error is a row-scoped import failure. It is recorded against the row and
// never aborts the batch.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the ErrorKind of a row-scoped error, or "" for any other
// error (including infrastructure failures).
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
