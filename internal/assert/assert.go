/*
Package assert implements an internal invariant checker.

The engine's invariants (dot_position within range, a goal item carrying
the backpointers its rule demands, and so on) must hold for any
well-formed grammar and input. Invariant violations therefore indicate a
bug in the engine, not a problem with client input, and are reported by
panicking rather than by returning an error a caller could reasonably
handle.
*/
package assert

import "fmt"

// InvariantViolation is the panic value raised by Invariant.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "internal invariant violation: " + e.Msg
}

// Invariant panics with an InvariantViolation if cond is false.
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(&InvariantViolation{Msg: fmt.Sprintf(format, args...)})
	}
}
