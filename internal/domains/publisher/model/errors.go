package model

import (
	"errors"
	"fmt"
	"net/http"
)

// PublisherError is the base error of the publisher domain
type PublisherError struct {
	Code    string // unique error code, e.g. "PUBLISHER_NOT_FOUND"
	Message string
	Err     error
}

func (e *PublisherError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PublisherError) Unwrap() error {
	return e.Err
}

const (
	CodePublisherNotFound = "PUBLISHER_NOT_FOUND"
	CodeInvalidID         = "INVALID_ID"
	CodeInvalidPayload    = "INVALID_PAYLOAD"
	CodeGetPublisher      = "GET_PUBLISHER_ERROR"
	CodeListPublisher     = "LIST_PUBLISHER_ERROR"
	CodeCreatePublisher   = "CREATE_PUBLISHER_ERROR"
	CodeUpdatePublisher   = "UPDATE_PUBLISHER_ERROR"
	CodeDeletePublisher   = "DELETE_PUBLISHER_ERROR"
)

// ErrPublisherNotFound is returned when no publisher row matches the id
var ErrPublisherNotFound = &PublisherError{
	Code:    CodePublisherNotFound,
	Message: "Publisher not found",
}

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewPublisherNotFound() *PublisherError {
	return &PublisherError{
		Code:    CodePublisherNotFound,
		Message: "Publisher not found",
	}
}

func NewInvalidID(id string) *PublisherError {
	return &PublisherError{
		Code:    CodeInvalidID,
		Message: fmt.Sprintf("Invalid publisher id: %s", id),
	}
}

func NewInvalidPayload(err error) *PublisherError {
	return &PublisherError{
		Code:    CodeInvalidPayload,
		Message: "Invalid request payload",
		Err:     err,
	}
}

func NewGetPublisherError(err error) *PublisherError {
	return &PublisherError{Code: CodeGetPublisher, Message: "Failed to get publisher", Err: err}
}

func NewListPublisherError(err error) *PublisherError {
	return &PublisherError{Code: CodeListPublisher, Message: "Failed to list publishers", Err: err}
}

func NewCreatePublisherError(err error) *PublisherError {
	return &PublisherError{Code: CodeCreatePublisher, Message: "Failed to create publisher", Err: err}
}

func NewUpdatePublisherError(err error) *PublisherError {
	return &PublisherError{Code: CodeUpdatePublisher, Message: "Failed to update publisher", Err: err}
}

func NewDeletePublisherError(err error) *PublisherError {
	return &PublisherError{Code: CodeDeletePublisher, Message: "Failed to delete publisher", Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func IsPublisherNotFound(err error) bool {
	var pubErr *PublisherError
	return errors.As(err, &pubErr) && pubErr.Code == CodePublisherNotFound
}

func IsDomainError(err error) bool {
	var pubErr *PublisherError
	return errors.As(err, &pubErr)
}

func GetErrorCode(err error) string {
	var pubErr *PublisherError
	if errors.As(err, &pubErr) {
		return pubErr.Code
	}
	return "UNKNOWN_ERROR"
}

func GetErrorMessage(err error) string {
	var pubErr *PublisherError
	if errors.As(err, &pubErr) {
		return pubErr.Message
	}
	return err.Error()
}

// MapErrorToHTTP converts an error to status code, message and error code.
// Persistence failures keep their code but never leak the underlying error text.
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	switch {
	case IsPublisherNotFound(err):
		return http.StatusNotFound, GetErrorMessage(err), CodePublisherNotFound

	case IsDomainError(err):
		switch code := GetErrorCode(err); code {
		case CodeInvalidID, CodeInvalidPayload:
			return http.StatusBadRequest, GetErrorMessage(err), code
		default:
			return http.StatusInternalServerError, GetErrorMessage(err), code
		}

	default:
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}
}
