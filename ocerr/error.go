// Package ocerr defines the error taxonomy shared by every OCuLaR
// component so that callers can branch on failure kind with errors.As
// instead of parsing strings.
package ocerr

import "fmt"

// Kind classifies a failure the router can report.
type Kind int

// The error kinds a caller may need to distinguish.
const (
	// Config marks an invalid or inconsistent configuration.
	Config Kind = iota
	// Graph marks an impossible adjacency (dangling destination,
	// overflow of the edge count).
	Graph
	// FixedRoutingConflict marks a net whose pre-existing routing is
	// partially present and partially missing.
	FixedRoutingConflict
	// Capacity marks a scratch queue overflow. Recoverable by the
	// congestion loop.
	Capacity
	// Unroutable marks that the outer iteration cap was hit with
	// overused nodes remaining.
	Unroutable
	// Device marks a failure reported by the GPU host abstraction.
	Device
)

func (k Kind) String() string {
	switch k {
	case Config:
		return "Config"
	case Graph:
		return "Graph"
	case FixedRoutingConflict:
		return "FixedRoutingConflict"
	case Capacity:
		return "Capacity"
	case Unroutable:
		return "Unroutable"
	case Device:
		return "Device"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by every OCuLaR package.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// New creates an Error of the given kind for the given operation.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("ocular: %s: %s", e.Op, e.Kind)
	}

	return fmt.Sprintf("ocular: %s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap allows errors.Is / errors.As to see through to the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, ocerr.Unroutable) style checks are not required —
// callers instead do errors.Is(err, &ocerr.Error{Kind: ocerr.Unroutable}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}
