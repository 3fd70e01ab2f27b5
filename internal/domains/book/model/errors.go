package model

import (
	"errors"
	"fmt"
	"net/http"

	publisherModel "alexandria-backend/internal/domains/publisher/model"
)

// BookError is the base error of the book domain
type BookError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *BookError) Unwrap() error {
	return e.Err
}

const (
	CodeBookNotFound            = "BOOK_NOT_FOUND"
	CodeBookDetailNotFound      = "BOOK_DETAIL_NOT_FOUND"
	CodeBookDetailAlreadyExists = "BOOK_DETAIL_ALREADY_EXISTS"
	CodeInvalidID               = "INVALID_ID"
	CodeInvalidPayload          = "INVALID_PAYLOAD"
	CodeGetBook                 = "GET_BOOK_ERROR"
	CodeListBook                = "LIST_BOOK_ERROR"
	CodeCreateBook              = "CREATE_BOOK_ERROR"
	CodeUpdateBook              = "UPDATE_BOOK_ERROR"
	CodeDeleteBook              = "DELETE_BOOK_ERROR"
	CodeSaveBookDetail          = "SAVE_BOOK_DETAIL_ERROR"
	CodeDeleteBookDetail        = "DELETE_BOOK_DETAIL_ERROR"
)

var (
	ErrBookNotFound = &BookError{
		Code:    CodeBookNotFound,
		Message: "Book not found",
	}
	ErrBookDetailNotFound = &BookError{
		Code:    CodeBookDetailNotFound,
		Message: "Book detail not found",
	}
	ErrBookDetailAlreadyExists = &BookError{
		Code:    CodeBookDetailAlreadyExists,
		Message: "Book already has a detail",
	}
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewBookNotFound() *BookError {
	return &BookError{Code: CodeBookNotFound, Message: "Book not found"}
}

func NewBookDetailNotFound() *BookError {
	return &BookError{Code: CodeBookDetailNotFound, Message: "Book detail not found"}
}

func NewBookDetailAlreadyExists(bookID int64) *BookError {
	return &BookError{
		Code:    CodeBookDetailAlreadyExists,
		Message: fmt.Sprintf("Book %d already has a detail", bookID),
	}
}

func NewInvalidID(id string) *BookError {
	return &BookError{Code: CodeInvalidID, Message: fmt.Sprintf("Invalid id: %s", id)}
}

func NewInvalidPayload(err error) *BookError {
	return &BookError{Code: CodeInvalidPayload, Message: "Invalid request payload", Err: err}
}

func NewGetBookError(err error) *BookError {
	return &BookError{Code: CodeGetBook, Message: "Failed to get book", Err: err}
}

func NewListBookError(err error) *BookError {
	return &BookError{Code: CodeListBook, Message: "Failed to list books", Err: err}
}

func NewCreateBookError(err error) *BookError {
	return &BookError{Code: CodeCreateBook, Message: "Failed to create book", Err: err}
}

func NewUpdateBookError(err error) *BookError {
	return &BookError{Code: CodeUpdateBook, Message: "Failed to update book", Err: err}
}

func NewDeleteBookError(err error) *BookError {
	return &BookError{Code: CodeDeleteBook, Message: "Failed to delete book", Err: err}
}

func NewSaveBookDetailError(err error) *BookError {
	return &BookError{Code: CodeSaveBookDetail, Message: "Failed to save book detail", Err: err}
}

func NewDeleteBookDetailError(err error) *BookError {
	return &BookError{Code: CodeDeleteBookDetail, Message: "Failed to delete book detail", Err: err}
}

// ============================================
// ERROR CHECKING FUNCTIONS
// ============================================

func hasCode(err error, code string) bool {
	var bookErr *BookError
	return errors.As(err, &bookErr) && bookErr.Code == code
}

func IsBookNotFound(err error) bool {
	return hasCode(err, CodeBookNotFound)
}

func IsBookDetailNotFound(err error) bool {
	return hasCode(err, CodeBookDetailNotFound)
}

func IsBookDetailAlreadyExists(err error) bool {
	return hasCode(err, CodeBookDetailAlreadyExists)
}

func GetErrorCode(err error) string {
	var bookErr *BookError
	if errors.As(err, &bookErr) {
		return bookErr.Code
	}
	return "UNKNOWN_ERROR"
}

// MapErrorToHTTP converts book (and publisher, for the link endpoints) errors
// to status code, message and error code
func MapErrorToHTTP(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "Success", ""
	}

	if publisherModel.IsDomainError(err) {
		return publisherModel.MapErrorToHTTP(err)
	}

	var bookErr *BookError
	if !errors.As(err, &bookErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR"
	}

	switch bookErr.Code {
	case CodeBookNotFound, CodeBookDetailNotFound:
		return http.StatusNotFound, bookErr.Message, bookErr.Code
	case CodeBookDetailAlreadyExists:
		return http.StatusConflict, bookErr.Message, bookErr.Code
	case CodeInvalidID, CodeInvalidPayload:
		return http.StatusBadRequest, bookErr.Message, bookErr.Code
	default:
		return http.StatusInternalServerError, bookErr.Message, bookErr.Code
	}
}
