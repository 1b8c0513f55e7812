package errs

import (
	"errors"
	"net/http"
)

// DefaultInternalErrorMessage is the only message an internal failure ever
// returns to a caller.
const DefaultInternalErrorMessage = "Something went wrong! Please try again."

// HandlerErrorKind classifies a failure as seen by the HTTP layer.
type HandlerErrorKind int

const (
	KindBadRequest HandlerErrorKind = iota + 1
	KindInternalError
)

func (k HandlerErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// HandlerError is returned by the service layer.
type HandlerError struct {
	Kind    HandlerErrorKind
	Message string
}

// NewBadRequest returns a KindBadRequest error carrying message.
func NewBadRequest(message string) *HandlerError {
	return &HandlerError{Kind: KindBadRequest, Message: message}
}

// DefaultInternalError returns a KindInternalError error with the fixed
// generic message.
func DefaultInternalError() *HandlerError {
	return &HandlerError{Kind: KindInternalError, Message: DefaultInternalErrorMessage}
}

func (e *HandlerError) Error() string {
	return e.Message
}

// Is reports whether target is a *HandlerError of the same kind.
func (e *HandlerError) Is(target error) bool {
	t, ok := target.(*HandlerError)
	return ok && t.Kind == e.Kind
}

// FromDBError maps a repository error onto the caller-visible taxonomy.
//
// KindInvalidUUID becomes a bad request carrying the detail; everything else,
// including errors that are not a *DBError at all, becomes the generic
// internal error.
func FromDBError(err error) *HandlerError {
	var dbErr *DBError
	if errors.As(err, &dbErr) && dbErr.Kind == KindInvalidUUID {
		return NewBadRequest(dbErr.Detail)
	}
	return DefaultInternalError()
}

// ToHTTPError converts a HandlerError into the JSON error sent to clients.
func (e *HandlerError) ToHTTPError() *HTTPError {
	switch e.Kind {
	case KindBadRequest:
		return NewBadRequestError(e.Message, true, nil, nil, nil)
	default:
		httpErr := NewInternalServerError()
		httpErr.Message = DefaultInternalErrorMessage
		return httpErr
	}
}

// StatusCode returns the HTTP status associated with the error kind.
func (e *HandlerError) StatusCode() int {
	if e.Kind == KindBadRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
