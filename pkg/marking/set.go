package marking

import "slices"

// tokenSet is an unordered, deduplicated set of marking tokens.
// A nil tokenSet is the empty set.
type tokenSet map[string]struct{}

func newTokenSet(tokens []string) tokenSet {
	if len(tokens) == 0 {
		return nil
	}
	s := make(tokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

func (s tokenSet) contains(token string) bool {
	_, ok := s[token]
	return ok
}

// subset reports whether every member of s is in other. The empty set is a
// subset of everything, including itself.
func (s tokenSet) subset(other tokenSet) bool {
	for t := range s {
		if !other.contains(t) {
			return false
		}
	}
	return true
}

// properSubset reports whether s is a subset of other and not equal to it.
func (s tokenSet) properSubset(other tokenSet) bool {
	return len(s) < len(other) && s.subset(other)
}

func (s tokenSet) equal(other tokenSet) bool {
	return len(s) == len(other) && s.subset(other)
}

// sorted returns the set members in lexical order.
func (s tokenSet) sorted() []string {
	if len(s) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(s))
	for t := range s {
		tokens = append(tokens, t)
	}
	slices.Sort(tokens)
	return tokens
}

func (s tokenSet) union(other tokenSet) tokenSet {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	merged := make(tokenSet, len(s)+len(other))
	for t := range s {
		merged[t] = struct{}{}
	}
	for t := range other {
		merged[t] = struct{}{}
	}
	return merged
}
