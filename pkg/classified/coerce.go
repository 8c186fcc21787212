package classified

import (
	"github.com/JaimeStill/cordon/pkg/marking"
	"github.com/JaimeStill/cordon/pkg/maybe"
)

type sourceKind uint8

const (
	sourceRaw sourceKind = iota
	sourceMaybe
	sourceClassified
)

// Source is the explicit variant type accepted by Coerce: a raw value, a
// maybe.Maybe, or an existing Classified. It replaces runtime type probing
// with an exhaustive tagged union.
type Source[T any] struct {
	kind       sourceKind
	raw        T
	opt        maybe.Maybe[T]
	classified Classified[T]
}

// Raw wraps a plain value as a coercion source.
func Raw[T any](value T) Source[T] {
	return Source[T]{kind: sourceRaw, raw: value}
}

// FromMaybe wraps an optional value as a coercion source.
func FromMaybe[T any](m maybe.Maybe[T]) Source[T] {
	return Source[T]{kind: sourceMaybe, opt: m}
}

// FromClassified wraps an already-classified value as a coercion source.
func FromClassified[T any](c Classified[T]) Source[T] {
	return Source[T]{kind: sourceClassified, classified: c}
}

// Coerce normalizes a source into a Classified value.
//
// An already-Classified source is returned unchanged and the marking
// argument is ignored: coercion never widens or narrows an existing marking.
// A Maybe source keeps its valid/invalid state and is tagged with mark. A
// raw source is wrapped as a valid value tagged with mark.
func Coerce[T any](src Source[T], mark marking.Marking) Classified[T] {
	switch src.kind {
	case sourceClassified:
		return src.classified
	case sourceMaybe:
		if !src.opt.IsValid() {
			return Nothing[T](src.opt.Err(), mark)
		}
		v, _ := src.opt.Expect()
		return Just(v, mark)
	default:
		return Just(src.raw, mark)
	}
}
