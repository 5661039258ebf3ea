package models

// Result is the envelope every pipeline stage returns.
//
// A Result is either a success carrying a value or a failure carrying an error.
// Failures still carry a neutral fallback value (an empty slice, the unknown
// rate limit) so callers can report something consistent. Debug echoes the
// dry-run flag the stage ran with.
type Result[T any] struct {
	value T
	err   error
	debug bool
}

// Ok builds a successful result.
func Ok[T any](value T, debug bool) Result[T] {
	return Result[T]{value: value, debug: debug}
}

// Fail builds a failed result. A nil err is a programming error and panics.
func Fail[T any](fallback T, err error, debug bool) Result[T] {
	if err == nil {
		panic("models.Fail called with a nil error")
	}
	return Result[T]{value: fallback, err: err, debug: debug}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) Success() bool {
	return r.err == nil
}

func (r Result[T]) Debug() bool {
	return r.debug
}
