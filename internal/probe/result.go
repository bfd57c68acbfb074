package probe

import "errors"

// Sentinel is printed in place of any value a probe could not obtain.
const Sentinel = "N/A"

var ErrUnavailable = errors.New("unavailable")

// Result is the outcome of a single probe: either a value or the reason it is missing.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Available[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Unavailable records a failed probe. A nil err is replaced with ErrUnavailable.
func Unavailable[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnavailable
	}
	return Result[T]{err: err}
}

// Of converts an idiomatic (value, error) pair into a Result.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Unavailable[T](err)
	}
	return Available(v)
}

func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

func (r Result[T]) OK() bool {
	return r.ok
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) OrElse(fallback T) T {
	if !r.ok {
		return fallback
	}
	return r.value
}
