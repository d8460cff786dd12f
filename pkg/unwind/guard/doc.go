// Package guard ties the unwind scope protocol to a protected
// function, guaranteeing that every Enter gets exactly one Exit no
// matter how the function leaves: normal return, error return, early
// return or panic.
//
// Key operations:
// - With: run a func(ctx) error inside a fresh scope on a given Stack
// - WithValue: the same for funcs that also produce a value
// - Run/RunValue: the same on the process-wide default stack
//
// The outcome handed to Exit is derived from the protected block
// alone: an error or panic means OutcomeFailure, anything else means
// OutcomeSuccess. Errors and panic values are re-propagated unchanged
// after the frame's actions have run, so callers observe exactly what
// the protected block produced. A nested scope's failure does not, by
// itself, fail the enclosing scope.
package guard
