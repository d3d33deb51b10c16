package payments

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("invalid payment intent")
	ErrConfiguration = errors.New("payment gateway not configured")
	ErrConstruction  = errors.New("payment redirect construction failed")
)

// ValidationError reports the first field of an intent that failed a rule.
// Field uses the JSON name the caller sent.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("%s is required", e.Field)
	case "numeric", "positiveamount":
		return fmt.Sprintf("%s must be a positive number", e.Field)
	case "kopecks":
		return fmt.Sprintf("%s must have at most two decimal places", e.Field)
	case "utf8":
		return fmt.Sprintf("%s must be valid UTF-8 text", e.Field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field)
	case "max":
		return fmt.Sprintf("%s is too long", e.Field)
	case "provider":
		return fmt.Sprintf("unsupported payment %s", e.Field)
	default:
		return fmt.Sprintf("%s is invalid", e.Field)
	}
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigurationError lists the environment variables that were absent.
// It carries names only, never values.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrConfiguration, strings.Join(e.Missing, ", "))
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

type ConstructionError struct {
	Op  string
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrConstruction, e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}
