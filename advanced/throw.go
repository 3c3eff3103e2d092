package advanced

import "github.com/pkg/errors"

// Checking for degenerate geometry happens deep inside the insertion loop, and
// only when the caller asked for it. Rather than threading an error through
// every step, we panic with a TriangulateError, and the public API recovers to
// convert it to an error.

// Distinct type so that runtime errors raised as panics are never mistaken for
// our own failures.
type TriangulateError struct {
	error
}

func (e TriangulateError) Cause() error  { return e.error }
func (e TriangulateError) Unwrap() error { return e.error }

// Returned (wrapped) when a triangle with collinear or coincident vertices is
// built while RejectDegenerate is set.
var ErrDegenerate = errors.New("degenerate triangle")

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping err.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(err, format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
