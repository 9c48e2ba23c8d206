package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nunnu1028/kkutu-korea-hack/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInvalidOptions   = "INVALID_OPTIONS"
	CodeNotInitialized   = "NOT_INITIALIZED"
	CodeNotRunning       = "NOT_RUNNING"
	CodeAlreadyRunning   = "ALREADY_RUNNING"
	CodeCorpusLoadFailed = "CORPUS_LOAD_FAILED"
	CodeCorpusNotLoaded  = "CORPUS_NOT_LOADED"
	CodeElementNotFound  = "ELEMENT_NOT_FOUND"
	CodeNoCandidates     = "NO_CANDIDATES"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// StatusOf returns the HTTP status WriteError would use for err
func StatusOf(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrNotInitialized):
		return &httpError{http.StatusConflict, APIError{CodeNotInitialized, "Loop is not initialized"}}
	case errors.Is(err, model.ErrNotRunning):
		return &httpError{http.StatusConflict, APIError{CodeNotRunning, "Loop is not running"}}
	case errors.Is(err, model.ErrAlreadyRunning):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyRunning, "Loop is already running"}}
	case errors.Is(err, model.ErrCorpusLoad):
		return &httpError{http.StatusBadGateway, APIError{CodeCorpusLoadFailed, "Corpus could not be loaded"}}
	case errors.Is(err, model.ErrCorpusNotLoaded):
		return &httpError{http.StatusNotFound, APIError{CodeCorpusNotLoaded, "Corpus not loaded"}}
	case errors.Is(err, model.ErrElementNotFound):
		return &httpError{http.StatusBadGateway, APIError{CodeElementNotFound, "Game page element not found"}}
	case errors.Is(err, model.ErrNoCandidates):
		return &httpError{http.StatusNotFound, APIError{CodeNoCandidates, "No candidate words"}}
	case errors.Is(err, model.ErrInvalidOptions):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidOptions, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError is returned for unknown API paths
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "No such endpoint"}}
}

// NewMethodNotAllowedError is returned when a path exists under another method
func NewMethodNotAllowedError(method string) error {
	return &httpError{http.StatusMethodNotAllowed, APIError{CodeMethodNotAllowed, method + " is not supported here"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
