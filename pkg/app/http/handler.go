// Package http provides HTTP utilities including chi-compatible error handling
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/chainsafe/wifi-whitelist/pkg/app/errors"
)

// HandlerFunc defines a function that returns an error for clean error handling
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	ErrMsg     string `json:"error"`
	ErrMsgCode int    `json:"code"`
}

// HandleError wraps an error-returning HandlerFunc into a standard http.HandlerFunc
//
// Usage with chi:
//
//	r.Post("/whitelist", http.HandleError(handler.create))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			DefaultErrorHandler(w, err)
		}
	}
}

// DefaultErrorHandler writes the public part of a ServiceError. Errors of any
// other type are reported as a generic 500.
func DefaultErrorHandler(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
			ErrMsg:     svcErr.Message,
			ErrMsgCode: svcErr.StatusCode(),
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, &ErrorResponse{
		ErrMsg:     "Unexpected Service Error",
		ErrMsgCode: http.StatusInternalServerError,
	})
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
