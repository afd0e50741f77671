// ================== pkg/errors/errors.go =================
package errors

import "errors"

// Kind classifies a failure for the HTTP boundary. Handlers never
// branch on concrete error types, only on the kind carried here.
type Kind int

const (
	KindUnauthorized Kind = iota
	KindNotFound
	KindBadRequest
	KindInternal
)

// Error is the single error type crossing service boundaries.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthorized builds an authentication failure.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NotFound builds an absent-or-not-owned failure.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// BadRequest builds a business-rule violation.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// Internal wraps an unexpected failure from a collaborator.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind from err. Unclassified errors report
// KindInternal; the HTTP layer still answers those with 401, matching
// the conservative default of the original exception handler.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
