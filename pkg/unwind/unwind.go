package unwind

// Action is a deferred, zero-argument unit of work registered on a
// scope frame. Its own failures are not intercepted here: an Action
// that panics propagates out of Exit immediately and the actions that
// had not run yet are abandoned.
type Action func()

// Stack is a LIFO sequence of scope frames. A root frame is open for
// the whole life of the Stack, so registration is always legal; the
// root frame itself is never exited.
//
// A Stack has no internal locking and serves one logical sequence of
// scope entries and exits. Concurrent goroutines each need their own
// Stack.
type Stack struct {
	frames []*Frame
}

// NewStack returns a Stack holding only the root frame.
func NewStack() *Stack {
	return &Stack{frames: []*Frame{newFrame()}}
}

// Enter pushes a new empty frame and returns it. Registrations target
// the newest frame until the matching Exit.
func (s *Stack) Enter() *Frame {
	f := newFrame()
	s.frames = append(s.frames, f)
	return f
}

// Exit drains the top frame and discards it. Exactly one of the
// success and failure lists runs, chosen by o, then the always list;
// each list runs last registered first.
//
// The frame is popped before its lists run, so an Action that panics
// cannot leave a half-drained frame on the stack. Exiting the root
// frame is a programming error and panics.
func (s *Stack) Exit(o Outcome) {
	if len(s.frames) <= 1 {
		panic("unwind: Exit without a matching Enter")
	}

	f := s.top()
	s.frames = s.frames[:len(s.frames)-1]

	if o == OutcomeFailure {
		runReversed(f.failure)
	} else {
		runReversed(f.success)
	}
	runReversed(f.always)
}

// OnSuccess registers a on the current frame; it runs only when that
// frame exits with OutcomeSuccess.
func (s *Stack) OnSuccess(a Action) {
	s.top().OnSuccess(a)
}

// OnFailure registers a on the current frame; it runs only when that
// frame exits with OutcomeFailure.
func (s *Stack) OnFailure(a Action) {
	s.top().OnFailure(a)
}

// Always registers a on the current frame; it runs on every exit of
// that frame, after the outcome-specific list.
func (s *Stack) Always(a Action) {
	s.top().Always(a)
}

// Top returns the innermost open frame.
func (s *Stack) Top() *Frame {
	return s.top()
}

// Depth reports the number of open frames, the root frame included.
func (s *Stack) Depth() int {
	return len(s.frames)
}

func (s *Stack) top() *Frame {
	return s.frames[len(s.frames)-1]
}

func runReversed(actions []Action) {
	for i := len(actions) - 1; i >= 0; i-- {
		actions[i]()
	}
}
