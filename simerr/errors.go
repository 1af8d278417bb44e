// Package simerr defines the small error taxonomy the simulator's public
// operations fail with (spec §7): every error is a precondition failure
// surfaced synchronously at the call site, never a recoverable internal
// error. No third-party typed-error library in the retrieved example pack
// fits a closed three-entry taxonomy better than the standard errors/fmt.Errorf
// wrapping already used throughout the pack (e.g. jhkimqd-chaos-utils'
// pkg/config and pkg/reporting), so SimError is built directly on it.
package simerr

import (
	"errors"
	"fmt"
)

// Kind classifies why a public operation refused to run.
type Kind int

const (
	// InvalidArgument: fault not in the installed list, index out of
	// range, test-vector size mismatch. The caller fixes its inputs.
	InvalidArgument Kind = iota
	// InvalidState: an operation that requires a capability the bound
	// simulator does not have (e.g. previous-time-frame query on a
	// simulator built without has_prev_state). The caller rebuilds the
	// simulator.
	InvalidState
	// ValueError: a 3-valued input given to a 2-valued simulator. The
	// caller fixes its configuration.
	ValueError
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case InvalidState:
		return "InvalidState"
	case ValueError:
		return "ValueError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SimError is the concrete error type returned by fsim's public API.
type SimError struct {
	Kind Kind
	Op   string // the operation that failed, e.g. "Simulator.SPSFP"
	Msg  string
	err  error // optional wrapped cause
}

func (e *SimError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Msg, e.err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

func (e *SimError) Unwrap() error { return e.err }

// New builds a SimError with no wrapped cause.
func New(kind Kind, op, msg string) *SimError {
	return &SimError{Kind: kind, Op: op, Msg: msg}
}

// Wrap builds a SimError that wraps an underlying cause.
func Wrap(kind Kind, op, msg string, cause error) *SimError {
	return &SimError{Kind: kind, Op: op, Msg: msg, err: cause}
}

// Is reports whether err is a SimError of the given kind.
func Is(err error, kind Kind) bool {
	var se *SimError
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
