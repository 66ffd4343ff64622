package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a workflow failure so the transport layer can pick the
// HTTP status without inspecting reason strings.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindBadRequest
	KindNotImplemented
)

// Error is a tagged workflow error. Reason is a stable machine-readable code
// (e.g. "community_not_found", "person_not_moderator") suitable for
// client-side branching.
type Error struct {
	Err    error
	Reason string
	Kind   Kind
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthorized means the principal is absent or lacks the required permission.
func Unauthorized(reason string) *Error {
	return &Error{Kind: KindUnauthorized, Reason: reason}
}

// Forbidden means the principal is authenticated but lacks the specific
// community relationship the action requires.
func Forbidden(reason string) *Error {
	return &Error{Kind: KindForbidden, Reason: reason}
}

// NotFound means a referenced entity does not exist.
func NotFound(reason string) *Error {
	return &Error{Kind: KindNotFound, Reason: reason}
}

// BadRequest means the request violates a business invariant.
func BadRequest(reason string) *Error {
	return &Error{Kind: KindBadRequest, Reason: reason}
}

// NotImplemented marks a feature that is intentionally incomplete.
func NotImplemented(reason string) *Error {
	return &Error{Kind: KindNotImplemented, Reason: reason}
}

// Internal wraps an unexpected persistence or infrastructure failure.
func Internal(reason string, err error) *Error {
	return &Error{Kind: KindInternal, Reason: reason, Err: err}
}

// KindOf extracts the kind from an error chain, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ReasonOf extracts the machine-readable reason code from an error chain.
func ReasonOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason
	}
	return "internal_error"
}
