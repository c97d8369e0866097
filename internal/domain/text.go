package domain

import "strings"

// NormalizeRequired trims value and enforces non-empty and max length.
func NormalizeRequired(field, value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", errEmpty(field)
	}
	if len([]rune(v)) > max {
		return "", errTooLong(field, max)
	}
	return v, nil
}

// NormalizeOptional trims value; empty after trim collapses to nil rather
// than being stored as an empty string.
func NormalizeOptional(field string, value *string, max int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil, nil
	}
	if len([]rune(v)) > max {
		return nil, errTooLong(field, max)
	}
	return &v, nil
}
