package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEnum  = errors.New("value not in allowed set")
	ErrInvalidDate  = errors.New("invalid date")
	ErrNotFound     = errors.New("record not found")
	ErrStore        = errors.New("store failure")
)

// Rule names reported to clients alongside a 400.
const (
	RuleMissingField = "MissingField"
	RuleInvalidEnum  = "InvalidEnum"
	RuleInvalidDate  = "InvalidDate"
)

// ValidationError names the first rule an input violated and the field it applies to.
type ValidationError struct {
	Rule    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Field)
}

// Unwrap maps the rule back onto its sentinel so callers can use errors.Is.
func (e *ValidationError) Unwrap() error {
	switch e.Rule {
	case RuleMissingField:
		return ErrMissingField
	case RuleInvalidEnum:
		return ErrInvalidEnum
	case RuleInvalidDate:
		return ErrInvalidDate
	}
	return nil
}

func MissingField(field string) *ValidationError {
	return &ValidationError{
		Rule:    RuleMissingField,
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func InvalidEnum(field string, allowed ...string) *ValidationError {
	return &ValidationError{
		Rule:    RuleInvalidEnum,
		Field:   field,
		Message: fmt.Sprintf("%s must be one of %q", field, allowed),
	}
}

func InvalidDate(field, value string) *ValidationError {
	return &ValidationError{
		Rule:    RuleInvalidDate,
		Field:   field,
		Message: fmt.Sprintf("%s %q is not a valid date", field, value),
	}
}

// StoreError wraps a persistence failure so it matches ErrStore while keeping the cause.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
