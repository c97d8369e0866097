// Package domain holds transient value objects that enforce field-level
// invariants before anything touches the database. Validation here is pure:
// no I/O, no clock beyond reading the current year.
package domain

import "fmt"

// ErrorKind classifies a domain validation failure.
type ErrorKind string

const (
	EmptyField       ErrorKind = "empty_field"
	FieldTooLong     ErrorKind = "field_too_long"
	InvalidYear      ErrorKind = "invalid_year"
	InvalidGenre     ErrorKind = "invalid_genre"
	InvalidRating    ErrorKind = "invalid_rating"
	InvalidPageCount ErrorKind = "invalid_page_count"
)

// DomainError is returned when a raw value violates an entity invariant.
type DomainError struct {
	Kind  ErrorKind
	Field string
	Msg   string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Msg
	}
	return e.Msg
}

func errEmpty(field string) *DomainError {
	return &DomainError{Kind: EmptyField, Field: field, Msg: "must not be empty"}
}

func errTooLong(field string, max int) *DomainError {
	return &DomainError{Kind: FieldTooLong, Field: field, Msg: fmt.Sprintf("must be at most %d characters", max)}
}
