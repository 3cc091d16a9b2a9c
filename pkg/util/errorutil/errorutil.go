package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// DomainError standardizes application errors. Message is rendered to clients; Err
// is kept for logs only.
type DomainError struct {
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(message string, status int) *DomainError {
	return &DomainError{Message: message, HTTPStatus: status}
}

// NewBadRequest reports malformed or incomplete client input.
func NewBadRequest(message string) error {
	return NewDomainError(message, http.StatusBadRequest)
}

// NewNotFound reports a missing resource using message verbatim.
func NewNotFound(message string) error {
	return NewDomainError(message, http.StatusNotFound)
}

func NewMethodNotAllowed() error {
	return NewDomainError("Method not allowed", http.StatusMethodNotAllowed)
}

func NewUnsupportedMediaType() error {
	return NewDomainError("Unsupported media type", http.StatusUnsupportedMediaType)
}

func NewInternalError(err error) error {
	return &DomainError{
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts any error into a DomainError. Routing errors raised by fiber
// keep their status; everything unrecognised becomes a 500 with a generic message.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fromFiberError(fiberErr)
	}
	return NewInternalError(err).(*DomainError)
}

func fromFiberError(err *fiber.Error) *DomainError {
	var mapped error
	switch err.Code {
	case http.StatusNotFound:
		mapped = NewNotFound("Not found")
	case http.StatusMethodNotAllowed:
		mapped = NewMethodNotAllowed()
	case http.StatusUnsupportedMediaType:
		mapped = NewUnsupportedMediaType()
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		mapped = NewBadRequest("Bad request")
	default:
		return NewInternalError(err).(*DomainError)
	}
	domainErr := mapped.(*DomainError)
	domainErr.Err = err
	return domainErr
}
