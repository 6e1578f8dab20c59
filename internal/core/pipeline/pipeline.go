// Package pipeline threads a value through a sequence of stages. The first
// failing stage moves the result into a failed state; every later stage is
// skipped and the original error is carried to the end untouched.
package pipeline

import "context"

type Result[T any] struct {
	value T
	err   error
	stage string
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](stage string, err error) Result[T] {
	return Result[T]{err: err, stage: stage}
}

func (r Result[T]) Failed() bool {
	return r.err != nil
}

func (r Result[T]) Err() error {
	return r.err
}

// FailedAt returns the name of the stage that failed, or "" for a successful result.
func (r Result[T]) FailedAt() string {
	return r.stage
}

func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Then runs stage on the value of r unless r has already failed. A done
// context fails the result at this stage without running it.
func Then[A any, B any](
	ctx context.Context,
	r Result[A],
	name string,
	stage func(ctx context.Context, in A) (B, error),
) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err, stage: r.stage}
	}
	if err := ctx.Err(); err != nil {
		return Fail[B](name, err)
	}
	out, err := stage(ctx, r.value)
	if err != nil {
		return Fail[B](name, err)
	}
	return Ok(out)
}

// Map applies an infallible transformation to a successful result.
func Map[A any, B any](r Result[A], f func(A) B) Result[B] {
	if r.err != nil {
		return Result[B]{err: r.err, stage: r.stage}
	}
	return Ok(f(r.value))
}
