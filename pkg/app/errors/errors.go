// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError marks a call that did not fail.
	CategoryNoError Category = iota
	// CategoryDataError The client sent invalid data in the request,
	// for example missing or malformed fields.
	CategoryDataError
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryDataConflict The client sent data that conflicts with existing data
	CategoryDataConflict
	// CategoryDependencyFailure A dependent service (database, record store) is throwing errors
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

var categoryNames = map[Category]string{
	CategoryNoError:           "CategoryNoError",
	CategoryDataError:         "CategoryDataError",
	CategoryResourceNotFound:  "CategoryResourceNotFound",
	CategoryDataConflict:      "CategoryDataConflict",
	CategoryDependencyFailure: "CategoryDependencyFailure",
	CategoryGeneralError:      "CategoryGeneralError",
}

var categoryStatus = map[Category]int{
	CategoryNoError:           http.StatusOK,
	CategoryDataError:         http.StatusBadRequest,
	CategoryResourceNotFound:  http.StatusNotFound,
	CategoryDataConflict:      http.StatusConflict,
	CategoryDependencyFailure: http.StatusBadGateway,
	CategoryGeneralError:      http.StatusInternalServerError,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "CategoryGeneralError"
}

// ServiceError carries a category, a message that is safe to show to the
// caller, and the underlying error that is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is matches a target whose text equals the public message
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	if code, ok := categoryStatus[err.Category]; ok {
		return code
	}
	return http.StatusInternalServerError
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Category == cat
}

// CategoryOf returns the category of err, CategoryNoError for nil and
// CategoryGeneralError for errors that are not ServiceErrors.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// IsInternalError reports whether err is a failure of the service itself
// rather than of the caller's input.
func IsInternalError(err error) bool {
	return CategoryOf(err) >= CategoryDependencyFailure
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{Category: cat, Message: message, Err: err}
}

// GeneralError returns a general service error.
// The message sent to the user is "Internal Server Error"; err is only logged.
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// BadRequestError returns an error with category DataError.
// message is returned to the user, err is logged.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// ConflictError returns an error with category CategoryDataConflict.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// DependencyError returns an error with category CategoryDependencyFailure.
// Use it when a backing store fails; message should not leak the cause.
func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure")
}
