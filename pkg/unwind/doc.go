// Package unwind keeps per-scope lists of deferred cleanup actions
// and runs the right subset when the scope exits, depending on how it
// exited. Code that synchronizes several points of failure becomes a
// flat "do X, then register its undo" sequence instead of one nested
// error handler per resource.
//
// Key constructs:
// - Stack/NewStack: LIFO of scope frames; a root frame is always open
// - Enter/Exit: the scope protocol; Exit takes an explicit Outcome
// - OnSuccess/OnFailure/Always: register actions on the current frame
// - Default and the package-level bindings: process-wide stack
//
// Per exit exactly one of the success and failure lists runs, never
// both, then the always list; each list runs last registered first,
// so the most recently acquired resource is released first. The stack
// never inspects or swallows the caller's error: the caller maps it
// to an Outcome and re-propagates it itself.
//
// For the enter/exit discipline tied to a protected function, with
// the outcome derived from its error or panic, see package guard.
package unwind
