// Package errs defines the error taxonomy shared by the sparse matrix
// engine and the worker pool: the five kinds a C implementation would
// have returned as negative errno-style codes from every builder.
package errs

import "fmt"

// Kind classifies a failure the core must be able to distinguish.
type Kind int

const (
	// KindInvalid marks an argument or range violation: a nil output, an
	// out-of-bounds index, a zero-sized pool.
	KindInvalid Kind = iota
	// KindNoMem marks an allocation failure on an allocating path.
	KindNoMem
	// KindSync marks a mutex/condition-variable initialization failure.
	KindSync
	// KindThread marks a worker start failure after partial pool startup.
	KindThread
	// KindShutdown marks a submit against a pool that is shutting down.
	KindShutdown
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "INVALID"
	case KindNoMem:
		return "NOMEM"
	case KindSync:
		return "SYNC"
	case KindThread:
		return "THREAD"
	case KindShutdown:
		return "SHUTDOWN"
	default:
		return "UNKNOWN"
	}
}

// Error is a tagged-variant result type standing in for the source's
// numeric error codes: callers can match on Kind, and Unwrap exposes the
// underlying cause (if any) for errors.Is/errors.As chains.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(op string, kind Kind) *Error {
	return &Error{Op: op, Kind: kind}
}

// Wrap builds an *Error around an existing cause.
func Wrap(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// IsKind reports whether err is an *Error of the given kind, unwrapping
// as needed.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind == kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
