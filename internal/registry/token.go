// Package registry implements the marking token registry for Cordon. It
// stores the level and compartment tokens recognized by the organization so
// that markings circulating through the system can be traced back to a
// governed vocabulary.
package registry

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes hierarchical level tokens from non-hierarchical
// compartment tokens.
type Kind string

const (
	KindLevel       Kind = "level"
	KindCompartment Kind = "compartment"
)

// Valid reports whether the kind is one of the recognized values.
func (k Kind) Valid() bool {
	return k == KindLevel || k == KindCompartment
}

// Token represents a registered marking token. It mirrors the tokens table
// schema.
type Token struct {
	ID          uuid.UUID `json:"id"`
	Token       string    `json:"token"`
	Kind        Kind      `json:"kind"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to register a new token.
type CreateCommand struct {
	Token       string `json:"token"`
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
}
