package common

import "strings"

// FieldViolation describes a single rejected request field.
type FieldViolation struct {
	Field       string
	Description string
}

// ValidationError collects every field violation found in a request.
// It matches ErrorInvalidArgument via errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

// Add records a violation for field.
func (e *ValidationError) Add(field, description string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Description: description})
}

// Fields returns the names of the offending fields in the order they were added.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// OrNil returns nil when no violations were recorded, so a validator can
// always end with `return verr.OrNil()`.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Violations) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Description)
	}
	return "invalid argument: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrorInvalidArgument
}
