package services

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("User not found")
	ErrClientNotFound    = errors.New("Client not found")
	ErrAttorneyNotFound  = errors.New("Attorney not found")
	ErrCaseNotFound      = errors.New("Case not found")
	ErrCourtDateNotFound = errors.New("Court date not found")
	ErrDocumentNotFound  = errors.New("Document not found")
)

// ValidationError reports a request body the backend refuses to store
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "field required"}
	}
	return nil
}

func invalid(field, value string) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf("invalid value %q", value)}
}

// firstError returns the first non-nil error
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
