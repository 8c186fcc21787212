package classified

import "github.com/JaimeStill/cordon/pkg/marking"

// arguments stages coerced call inputs ahead of marking aggregation.
// Transient: it exists only inside Evaluate and EvaluateNamed.
type arguments struct {
	positional []Classified[any]
	named      map[string]Classified[any]
}

// Evaluate applies fn to a mix of raw and classified positional arguments.
// Raw arguments receive the UNCLASSIFIED marking. The result carries the
// union of every argument's marking, on success and on failure alike, so the
// output marking always dominates every input's.
//
// If any argument is in an error state, or unwrapping or fn itself fails,
// the result is an error-state Classified under the combined marking.
func Evaluate(fn func(vals ...any) (any, error), args ...Source[any]) Classified[any] {
	return EvaluateNamed(func(positional []any, _ map[string]any) (any, error) {
		return fn(positional...)
	}, args, nil)
}

// EvaluateNamed is Evaluate for functions taking positional and named
// arguments. Marking aggregation and failure capture behave identically.
func EvaluateNamed(
	fn func(positional []any, named map[string]any) (any, error),
	positional []Source[any],
	named map[string]Source[any],
) Classified[any] {
	staged := arguments{
		positional: make([]Classified[any], len(positional)),
		named:      make(map[string]Classified[any], len(named)),
	}

	markings := make([]marking.Marking, 0, len(positional)+len(named))
	for i, src := range positional {
		c := Coerce(src, marking.Marking{})
		staged.positional[i] = c
		markings = append(markings, c.Marking())
	}
	for name, src := range named {
		c := Coerce(src, marking.Marking{})
		staged.named[name] = c
		markings = append(markings, c.Marking())
	}

	combined := marking.Union(markings...)

	return Map(Just(staged, combined), func(a arguments) (any, error) {
		vals := make([]any, len(a.positional))
		for i, c := range a.positional {
			v, err := c.Expect()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}

		namedVals := make(map[string]any, len(a.named))
		for name, c := range a.named {
			v, err := c.Expect()
			if err != nil {
				return nil, err
			}
			namedVals[name] = v
		}

		return fn(vals, namedVals)
	})
}
