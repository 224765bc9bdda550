package dispatch

import (
	"errors"
	"fmt"
)

// ErrTableNotFound is returned by Store.Resolve when the table name does
// not resolve to an existing table. Implementations should wrap it so the
// dispatcher can map the failure to [KindTableNotFound].
var ErrTableNotFound = errors.New("dispatch: table not found")

// Kind classifies a dispatch failure.
type Kind string

const (
	// KindMalformedRequest means a required request field was missing or empty.
	KindMalformedRequest Kind = "MalformedRequest"

	// KindUnsupportedOperation means the operation name is not recognized.
	KindUnsupportedOperation Kind = "UnsupportedOperation"

	// KindTableNotFound means the table name does not resolve to an existing table.
	KindTableNotFound Kind = "TableNotFound"

	// KindStoreFailure means the store raised an error during a read or write.
	KindStoreFailure Kind = "StoreFailure"
)

// Error is the typed failure returned by [Dispatcher.Handle].
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the taxonomy kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func malformedf(format string, args ...any) *Error {
	return &Error{Kind: KindMalformedRequest, Message: fmt.Sprintf(format, args...)}
}

func unsupported(name string) *Error {
	return &Error{
		Kind:    KindUnsupportedOperation,
		Message: fmt.Sprintf("unrecognized operation %q", name),
	}
}

func tableNotFound(name string, cause error) *Error {
	return &Error{
		Kind:    KindTableNotFound,
		Message: fmt.Sprintf("table %q does not exist", name),
		cause:   cause,
	}
}

func storeFailure(op string, cause error) *Error {
	return &Error{
		Kind:    KindStoreFailure,
		Message: fmt.Sprintf("%s: %v", op, cause),
		cause:   cause,
	}
}
