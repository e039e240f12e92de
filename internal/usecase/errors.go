package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrExternalService   = errors.New("external service error")
)

var (
	ErrJobNotFound        = fmt.Errorf("job %w", ErrNotFound)
	ErrListingNotFound    = fmt.Errorf("listing %w", ErrNotFound)
	ErrQuoteNotFound      = fmt.Errorf("quote %w", ErrNotFound)
	ErrAgendaItemNotFound = fmt.Errorf("agenda item %w", ErrNotFound)
	ErrProfileNotFound    = fmt.Errorf("profile %w", ErrNotFound)
)

// ValidationError names the offending field. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func transitionError(entity, id string, from, to any) error {
	return fmt.Errorf("%w: %s %s is %v, cannot become %v", ErrInvalidTransition, entity, id, from, to)
}

// ExternalTag classifies identity/profile provider failures.
type ExternalTag string

const (
	TagInvalidCredentials ExternalTag = "InvalidCredentials"
	TagEmailUnconfirmed   ExternalTag = "EmailUnconfirmed"
	TagUnknown            ExternalTag = "Unknown"
)

// ExternalServiceError is a collaborator failure passed through with its tag.
// errors.Is matches both ErrExternalService and the wrapped cause.
type ExternalServiceError struct {
	Service string
	Tag     ExternalTag
	Message string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s: %s: %s", e.Service, e.Tag, msg)
}

func (e *ExternalServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExternalService}
	}
	return []error{ErrExternalService, e.Err}
}

// ExternalTagOf returns the tag of the first ExternalServiceError in err's chain.
func ExternalTagOf(err error) (ExternalTag, bool) {
	var ext *ExternalServiceError
	if errors.As(err, &ext) {
		return ext.Tag, true
	}
	return "", false
}
