package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError names the form field the user has to fix.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validate checks form input before an item is created or edited.
// Tabs and line breaks are refused because the data file has no escaping.
func Validate(shortDescription, details string, deadline Date) error {
	if strings.TrimSpace(shortDescription) == "" {
		return &ValidationError{Field: "description", Reason: "required"}
	}
	if strings.ContainsAny(shortDescription, "\t\r\n") {
		return &ValidationError{Field: "description", Reason: "must be a single line without tabs"}
	}
	if strings.ContainsAny(details, "\t\r\n") {
		return &ValidationError{Field: "details", Reason: "must not contain tabs or line breaks"}
	}
	if deadline.IsZero() {
		return &ValidationError{Field: "deadline", Reason: "required"}
	}
	if !deadline.InRange() {
		return &ValidationError{Field: "deadline", Reason: fmt.Sprintf("year must be between %d and %d", MinYear, MaxYear)}
	}
	return nil
}
