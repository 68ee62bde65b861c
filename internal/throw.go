package internal

import "github.com/pkg/errors"

// A broken mesh (asymmetric links, a boundary that doesn't close, a hole that
// isn't manifold) can only be noticed deep inside a capping step. Those checks
// panic through fatalf, and the exported functions of the root package turn
// the panic back into an error at the API boundary.

// An error raised by a failed capping assertion. Any other panic value is not
// ours and keeps propagating.
type CapError error

func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Meant to be called as HandleCapPanicRecover(recover()) in a deferred func.
// Returns nil when nothing panicked.
func HandleCapPanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(CapError); ok {
		return err
	}
	panic(r)
}
