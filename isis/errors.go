package isis

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField signals that a field an entity cannot do
	// without is absent, e.g. the publisher id of an article.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrMetadataUnavailable signals that a derived entity (journal, issue)
	// was requested, but the document carries no namespace to build it from.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
	// ErrInvalidConfiguration is returned on construction, when an option
	// value is not supported.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// MissingFieldError names the field, and optionally the subfield, that was
// required but absent.
type MissingFieldError struct {
	Field    string
	Subfield string
}

func (e *MissingFieldError) Error() string {
	if e.Subfield == "" {
		return fmt.Sprintf("missing required field: %s", e.Field)
	}
	return fmt.Sprintf("missing required field: %s (subfield %s)", e.Field, e.Subfield)
}

// Is implements errors.Is support.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// UnavailableError is returned when a sub entity cannot be built.
type UnavailableError struct {
	Entity    string
	Namespace string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s metadata unavailable: no %q namespace in document", e.Entity, e.Namespace)
}

// Is implements errors.Is support.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrMetadataUnavailable
}

// ConfigError reports an unsupported option value.
type ConfigError struct {
	Option string
	Value  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: unsupported %s %q", e.Option, e.Value)
}

// Is implements errors.Is support.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
