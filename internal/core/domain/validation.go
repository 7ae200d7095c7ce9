package domain

import (
	"slices"
	"strings"
)

const (
	validationHeader = "Cannot generate project dependency accessors"
	violationPrefix  = "  - " + validationHeader + " because "
)

// ValidationError aggregates every naming violation found in a project tree.
// It matches ErrInvalidProjectNames with errors.Is.
type ValidationError struct {
	Violations []string
}

// NewValidationError returns nil when there are no violations.
func NewValidationError(violations []string) *ValidationError {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: slices.Clone(violations)}
}

// Error renders the report as a tree, one violation per line.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(validationHeader)
	for _, v := range e.Violations {
		b.WriteString("\n")
		b.WriteString(violationPrefix)
		b.WriteString(v)
	}
	return b.String()
}

// Unwrap returns ErrInvalidProjectNames.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidProjectNames
}
