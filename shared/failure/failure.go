package failure

import (
	"errors"
	"net/http"
)

const (
	KindBadRequest       = "bad_request"
	KindUnauthorized     = "unauthorized"
	KindForbidden        = "forbidden"
	KindNotFound         = "not_found"
	KindConflict         = "conflict"
	KindInternal         = "internal"
	KindUnimplemented    = "unimplemented"
	KindStoreUnavailable = "store_unavailable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind identifies the failure independently of its message, two failures with the same
// kind match under errors.Is.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

var ErrStoreUnavailable = &Failure{Code: http.StatusServiceUnavailable, Kind: KindStoreUnavailable, Message: "store unavailable, retry later"}

// Error returns the error message.
func (e *Failure) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Failure) Unwrap() error {
	return e.Err
}

// Is reports whether target is a Failure of the same kind.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok || t == nil {
		return false
	}

	return e.Kind != "" && e.Kind == t.Kind
}

// New returns a new Failure with an explicit kind.
func New(code int, kind, message string) *Failure {
	return &Failure{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
			Err:     err,
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Kind:    KindUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// Unavailable marks err as a transient storage failure the caller may retry.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    ErrStoreUnavailable.Code,
		Kind:    ErrStoreUnavailable.Kind,
		Message: ErrStoreUnavailable.Message,
		Err:     err,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or KindInternal.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// IsRetryable reports whether the error is a transient failure.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
