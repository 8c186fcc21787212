// Package maybe provides an optional value type that carries error state
// through chains of fallible transformations. A Maybe is either a valid
// payload or a stored error; transformation failures become part of the
// value's state instead of interrupting the chain, and only Expect turns a
// stored error back into an observable failure.
package maybe

import "fmt"

// ExpectationError is the default error recorded when a Maybe is invalid
// with no more specific error, and the error kind produced from string
// messages.
type ExpectationError struct {
	Message string
}

func (e *ExpectationError) Error() string {
	if e.Message == "" {
		return "expectation violated"
	}
	return e.Message
}

// Maybe is a two-variant tagged union: Just(value) or Nothing(error).
// Exactly one variant is populated; a Nothing always carries a non-nil
// error. Values are immutable; every combinator returns a new instance.
type Maybe[T any] struct {
	value T
	err   error
}

// Just creates a Maybe holding a valid value.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value}
}

// Nothing creates an invalid Maybe holding err. A nil err defaults to an
// ExpectationError.
func Nothing[T any](err error) Maybe[T] {
	if err == nil {
		err = &ExpectationError{}
	}
	return Maybe[T]{err: err}
}

// NothingMsg creates an invalid Maybe holding an ExpectationError with the
// given message.
func NothingMsg[T any](msg string) Maybe[T] {
	return Maybe[T]{err: &ExpectationError{Message: msg}}
}

// IsValid reports whether the Maybe holds a value rather than an error.
func (m Maybe[T]) IsValid() bool {
	return m.err == nil
}

// Err returns the stored error, or nil when valid.
func (m Maybe[T]) Err() error {
	return m.err
}

func (m Maybe[T]) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Nothing(%v)", m.err)
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// Map transforms the value with a fallible function. An invalid input
// propagates its error unchanged; a failure returned by fn is captured and
// stored, not surfaced to the caller.
func Map[T, U any](m Maybe[T], fn func(T) (U, error)) Maybe[U] {
	if !m.IsValid() {
		return Nothing[U](m.err)
	}

	mapped, err := fn(m.value)
	if err != nil {
		return Nothing[U](err)
	}
	return Just(mapped)
}

// Apply transforms the value with a monadic function. An invalid input
// propagates its error unchanged; otherwise fn's result is returned directly
// with no additional wrapping.
func Apply[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if !m.IsValid() {
		return Nothing[U](m.err)
	}
	return fn(m.value)
}

// IfError recovers from an invalid state by invoking handler with the stored
// error and returning its result directly. A valid Maybe is returned
// unchanged. Unlike Map, a failure inside handler is not captured here;
// recovery handlers are expected to be well-behaved.
func (m Maybe[T]) IfError(handler func(error) Maybe[T]) Maybe[T] {
	if m.IsValid() {
		return m
	}
	return handler(m.err)
}

// Expect returns the stored value, or the stored error when invalid.
func (m Maybe[T]) Expect() (T, error) {
	if !m.IsValid() {
		var zero T
		return zero, m.err
	}
	return m.value, nil
}

// ExpectErr returns the stored value, or the override error when invalid.
// The override replaces any stored error. A nil override behaves like
// Expect.
func (m Maybe[T]) ExpectErr(override error) (T, error) {
	if !m.IsValid() && override != nil {
		var zero T
		return zero, override
	}
	return m.Expect()
}

// ExpectMsg returns the stored value, or an ExpectationError carrying msg
// when invalid, regardless of the originally stored error.
func (m Maybe[T]) ExpectMsg(msg string) (T, error) {
	return m.ExpectErr(&ExpectationError{Message: msg})
}
