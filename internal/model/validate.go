package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationError reports malformed user input. Field is zero when the input
// is not tied to one field.
type ValidationError struct {
	Field  Field
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == 0 {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequireText trims s and rejects it when nothing is left.
func RequireText(f Field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: f, Reason: "must not be empty"}
	}
	return s, nil
}

// ParseMinutes parses a non-negative whole number of minutes.
func ParseMinutes(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Field: FieldMinutes, Reason: "enter a whole number of minutes"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: FieldMinutes, Reason: "must not be negative"}
	}
	return n, nil
}
