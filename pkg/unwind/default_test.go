package unwind

import "testing"

// The default stack is process-wide shared state, so these tests do
// not run in parallel.

func TestDefault_SameInstance(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default must return the same process-wide stack")
	}
	if Default().Depth() < 1 {
		t.Fatalf("default stack must always hold its root frame")
	}
}

func TestDefaultBindings_TargetDefaultStack(t *testing.T) {
	var got tally

	Default().Enter()
	OnSuccess(func() { got.s++ })
	OnFailure(func() { got.f++ })
	Always(func() { got.c++ })
	Default().Exit(OutcomeSuccess)

	if got != (tally{s: 1, c: 1}) {
		t.Fatalf("expected (s=1,f=0,c=1), got %+v", got)
	}

	Default().Enter()
	OnFailure(func() { got.f++ })
	Default().Exit(OutcomeFailure)

	if got != (tally{s: 1, f: 1, c: 1}) {
		t.Fatalf("expected (s=1,f=1,c=1), got %+v", got)
	}
}
