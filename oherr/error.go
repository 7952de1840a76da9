// Package oherr defines the error taxonomy for the opening_hours engine:
// a single parse/semantic-rejection type and the programmer-range errors
// that share its surface (spec.md §7).
package oherr

import (
	"encoding/json"
	"errors"
	"fmt"
)

// OsmParsingException wraps the built-in error interface to allow JSON
// marshaling. It is raised for any syntactic or semantic rejection during
// Parse, and for value-range violations while constructing model values
// (e.g. an ExtendedTime with hour > 48).
type OsmParsingException struct {
	error
}

// New creates an OsmParsingException from a format string with no verbs.
func New(message string) *OsmParsingException {
	return NewError(errors.New(message))
}

// Newf creates an OsmParsingException using fmt.Errorf semantics.
func Newf(format string, a ...interface{}) *OsmParsingException {
	return NewError(fmt.Errorf(format, a...))
}

// NewError wraps a non-nil error. Returns nil if err is nil.
func NewError(err error) *OsmParsingException {
	if err == nil {
		return nil
	}
	return &OsmParsingException{error: err}
}

// IsNil reports whether the exception (or its embedded error) is nil.
func (e *OsmParsingException) IsNil() bool {
	return e == nil || e.error == nil
}

// MarshalJSON customizes JSON marshaling for OsmParsingException.
func (e OsmParsingException) MarshalJSON() ([]byte, error) {
	if e.error == nil {
		return []byte(`null`), nil
	}
	return json.Marshal(e.Error())
}

// UnmarshalJSON customizes JSON unmarshaling for OsmParsingException.
func (e *OsmParsingException) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		e.error = nil
		return nil
	}

	var msg string
	if err := json.Unmarshal(b, &msg); err != nil {
		return err
	}

	e.error = errors.New(msg)
	return nil
}

// Error returns the underlying message.
func (e *OsmParsingException) Error() string {
	if e == nil || e.error == nil {
		return ""
	}
	return e.error.Error()
}

// Unwrap supports errors.Is/errors.As against the embedded error.
func (e *OsmParsingException) Unwrap() error {
	return e.error
}
