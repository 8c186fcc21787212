// Package marking implements classification markings and their dominance
// lattice. A marking pairs a hierarchical level set with a non-hierarchical
// compartment set; markings combine only through Union, so a derived marking
// is never less restrictive than the markings it was built from.
package marking

// Unclassified is the literal level token equivalent to the empty level set.
const Unclassified = "UNCLASSIFIED"

// Marking is an immutable classification marking. The zero value is the
// lattice bottom (UNCLASSIFIED, no compartments).
type Marking struct {
	level       tokenSet
	compartment tokenSet
}

// New creates a marking from level and compartment tokens.
// Tokens are deduplicated; order is not significant.
func New(level, compartment []string) Marking {
	return Marking{
		level:       newTokenSet(level),
		compartment: newTokenSet(compartment),
	}
}

// Level returns the level tokens in lexical order.
func (m Marking) Level() []string {
	return m.level.sorted()
}

// Compartment returns the compartment tokens in lexical order.
func (m Marking) Compartment() []string {
	return m.compartment.sorted()
}

// IsUnclassified reports whether the marking is the lattice bottom.
func (m Marking) IsUnclassified() bool {
	return len(m.level) == 0 && len(m.compartment) == 0
}

// Equal reports structural equality: both token sets match.
func (m Marking) Equal(other Marking) bool {
	return m.level.equal(other.level) && m.compartment.equal(other.compartment)
}

// AtMost reports whether m is dominated by other: the level set and the
// compartment set are each subsets of other's.
func (m Marking) AtMost(other Marking) bool {
	return m.level.subset(other.level) && m.compartment.subset(other.compartment)
}

// Dominates reports whether m dominates other, i.e. other is AtMost m.
// A holder cleared for m may handle any value marked other.
func (m Marking) Dominates(other Marking) bool {
	return other.AtMost(m)
}

// Below reports whether m is strictly dominated by other: at least one
// dimension is a proper subset while the remaining dimension does not exceed
// other's. Equal markings are never Below one another, and markings that
// disagree across dimensions (smaller level, larger compartment) are
// incomparable: neither Below nor Above nor Equal.
func (m Marking) Below(other Marking) bool {
	first := m.level.properSubset(other.level) && m.compartment.subset(other.compartment)
	second := m.level.subset(other.level) && m.compartment.properSubset(other.compartment)
	return first || second
}

// Above reports whether m strictly dominates other. Symmetric converse of
// Below.
func (m Marking) Above(other Marking) bool {
	return other.Below(m)
}

// Union returns the least upper bound of the given markings: the union of
// every level set and of every compartment set. Each input is AtMost the
// result. Union of no markings is the zero (UNCLASSIFIED) marking.
func Union(markings ...Marking) Marking {
	var joined Marking
	for _, m := range markings {
		joined.level = joined.level.union(m.level)
		joined.compartment = joined.compartment.union(m.compartment)
	}
	return joined
}
