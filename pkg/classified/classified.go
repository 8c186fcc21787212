// Package classified composes the maybe optional with a classification
// marking. A Classified value is a payload (or stored error) tagged with a
// marking that propagates monotonically through every combinator: unary
// transformations carry the marking through unchanged, and multi-argument
// evaluation produces the union of all participating markings. No code path
// yields a result marked below any of its inputs.
package classified

import (
	"fmt"

	"github.com/JaimeStill/cordon/pkg/marking"
	"github.com/JaimeStill/cordon/pkg/maybe"
)

// Classified is a value or stored error tagged with a marking. The marking
// is fixed at construction; instances are immutable and every combinator
// returns a new one.
type Classified[T any] struct {
	value T
	err   error
	mark  marking.Marking
}

// Just creates a valid Classified value with the given marking.
func Just[T any](value T, mark marking.Marking) Classified[T] {
	return Classified[T]{value: value, mark: mark}
}

// Nothing creates an invalid Classified with the given marking. A nil err
// defaults to a maybe.ExpectationError. An error arising from classified
// data is itself classified.
func Nothing[T any](err error, mark marking.Marking) Classified[T] {
	if err == nil {
		err = &maybe.ExpectationError{}
	}
	return Classified[T]{err: err, mark: mark}
}

// NothingMsg creates an invalid Classified holding an ExpectationError with
// the given message.
func NothingMsg[T any](msg string, mark marking.Marking) Classified[T] {
	return Classified[T]{err: &maybe.ExpectationError{Message: msg}, mark: mark}
}

// IsValid reports whether the value holds a payload rather than an error.
func (c Classified[T]) IsValid() bool {
	return c.err == nil
}

// Marking returns the classification marking assigned to the value.
func (c Classified[T]) Marking() marking.Marking {
	return c.mark
}

// Err returns the stored error, or nil when valid.
func (c Classified[T]) Err() error {
	return c.err
}

func (c Classified[T]) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("%s Nothing(%v)", c.mark, c.err)
	}
	return fmt.Sprintf("%s Just(%v)", c.mark, c.value)
}

// Map transforms the value with a fallible function. The marking on both the
// valid and the failure outcome is the receiver's own, unchanged: a unary
// transformation never downgrades and never upgrades a marking. An invalid
// input propagates its error unchanged; a failure returned by fn is captured
// and stored.
func Map[T, U any](c Classified[T], fn func(T) (U, error)) Classified[U] {
	if !c.IsValid() {
		return Nothing[U](c.err, c.mark)
	}

	mapped, err := fn(c.value)
	if err != nil {
		return Nothing[U](err, c.mark)
	}
	return Just(mapped, c.mark)
}

// Apply transforms the value with a monadic function operating on unwrapped
// values. fn has no marking of its own; whichever outcome it produces is
// re-tagged with the receiver's marking.
func Apply[T, U any](c Classified[T], fn func(T) maybe.Maybe[U]) Classified[U] {
	if !c.IsValid() {
		return Nothing[U](c.err, c.mark)
	}

	res := fn(c.value)
	if !res.IsValid() {
		return Nothing[U](res.Err(), c.mark)
	}

	v, _ := res.Expect()
	return Just(v, c.mark)
}

// IfError recovers from an invalid state by invoking handler with the stored
// error; the handler's Maybe result is coerced back under the receiver's
// marking. A valid value is returned unchanged. Failures inside handler are
// not captured here.
func (c Classified[T]) IfError(handler func(error) maybe.Maybe[T]) Classified[T] {
	if c.IsValid() {
		return c
	}
	return Coerce(FromMaybe(handler(c.err)), c.mark)
}

// Expect returns the stored value, or the stored error when invalid. The
// marking plays no role in unwrapping.
func (c Classified[T]) Expect() (T, error) {
	if !c.IsValid() {
		var zero T
		return zero, c.err
	}
	return c.value, nil
}

// ExpectErr returns the stored value, or the override error when invalid.
// The override replaces any stored error. A nil override behaves like
// Expect.
func (c Classified[T]) ExpectErr(override error) (T, error) {
	if !c.IsValid() && override != nil {
		var zero T
		return zero, override
	}
	return c.Expect()
}

// ExpectMsg returns the stored value, or an ExpectationError carrying msg
// when invalid, regardless of the originally stored error.
func (c Classified[T]) ExpectMsg(msg string) (T, error) {
	return c.ExpectErr(&maybe.ExpectationError{Message: msg})
}
