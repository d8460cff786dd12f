package unwind

// defaultStack backs the package-level bindings. It is created at
// load, lives for the process's duration and its root frame is never
// exited. Like any Stack it must not be shared across goroutines.
var defaultStack = NewStack()

// Default returns the process-wide Stack behind the package-level
// registration functions and behind guard.Run.
func Default() *Stack {
	return defaultStack
}

// OnSuccess registers a on the default stack's current frame.
func OnSuccess(a Action) {
	defaultStack.OnSuccess(a)
}

// OnFailure registers a on the default stack's current frame.
func OnFailure(a Action) {
	defaultStack.OnFailure(a)
}

// Always registers a on the default stack's current frame.
func Always(a Action) {
	defaultStack.Always(a)
}
