package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures of the lookup workflow.
type ErrorKind int

const (
	// KindUnknown is used for errors that were not produced by this package.
	KindUnknown ErrorKind = iota
	// KindValidation marks input rejected locally before any network call.
	KindValidation
	// KindTransport marks network or provider failures, including unparseable responses.
	KindTransport
	// KindSemanticInvalid marks numbers the provider reports as not valid.
	KindSemanticInvalid
	// KindPermissionDenied marks a refused platform permission.
	KindPermissionDenied
	// KindPersistence marks history write or read failures.
	KindPersistence
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindSemanticInvalid:
		return "semantic_invalid"
	case KindPermissionDenied:
		return "permission_denied"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is a classified workflow error.
type Error struct {
	Kind    ErrorKind
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithOp sets the operation that failed.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Transport creates a transport error wrapping the underlying cause.
func Transport(message string, err error) *Error {
	return &Error{Kind: KindTransport, Message: message, Err: err}
}

// SemanticInvalid creates an error for numbers the provider rejected.
func SemanticInvalid(message string) *Error {
	return &Error{Kind: KindSemanticInvalid, Message: message}
}

// PermissionDenied creates a permission error.
func PermissionDenied(message string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

// Persistence creates a storage error wrapping the underlying cause.
func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf extracts the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
