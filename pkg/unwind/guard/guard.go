package guard

import (
	"context"

	"github.com/ib-77/unwind/pkg/unwind"
)

// With runs protected inside a fresh scope on s. The scope exits
// exactly once on every path out of protected: with OutcomeFailure
// when it returns an error or panics, with OutcomeSuccess otherwise.
// The error, or the panic value, leaves With unchanged after the
// frame's actions have run.
func With(ctx context.Context, s *unwind.Stack, protected func(ctx context.Context) error) error {
	s.Enter()

	outcome := unwind.OutcomeFailure
	defer func() { s.Exit(outcome) }()

	if err := protected(ctx); err != nil {
		return err
	}

	outcome = unwind.OutcomeSuccess
	return nil
}

// WithValue is With for protected blocks that produce a value. On
// failure the zero value of T is returned alongside the error.
func WithValue[T any](ctx context.Context, s *unwind.Stack, protected func(ctx context.Context) (T, error)) (T, error) {
	var out T

	err := With(ctx, s, func(ctx context.Context) error {
		v, err := protected(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return out, nil
}

// Run is With on the process-wide default stack.
func Run(ctx context.Context, protected func(ctx context.Context) error) error {
	return With(ctx, unwind.Default(), protected)
}

// RunValue is WithValue on the process-wide default stack.
func RunValue[T any](ctx context.Context, protected func(ctx context.Context) (T, error)) (T, error) {
	return WithValue(ctx, unwind.Default(), protected)
}
