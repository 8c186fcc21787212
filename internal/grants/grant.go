// Package grants manages subject clearances. Each grant records the marking
// a subject is cleared to read, and access checks compare that clearance
// against the marking on requested material.
package grants

import (
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/cordon/pkg/marking"
)

// Grant represents a subject's clearance. It mirrors the grants table
// schema.
type Grant struct {
	ID          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	Level       []string  `json:"level"`
	Compartment []string  `json:"compartment"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clearance returns the grant's level and compartment tokens as a marking.
// A grant with no tokens clears only unclassified material.
func (g Grant) Clearance() marking.Marking {
	return marking.New(g.Level, g.Compartment)
}

// CreateCommand carries the data needed to record a new grant. Marking is
// textual, e.g. "(ALPHA/BRAVO//GAMMA)".
type CreateCommand struct {
	Subject string `json:"subject"`
	Marking string `json:"marking"`
}

// UpdateCommand replaces an existing grant's clearance marking.
type UpdateCommand struct {
	Marking string `json:"marking"`
}

// CheckResult reports the outcome of an access check: whether the subject's
// clearance dominates the requested marking.
type CheckResult struct {
	Subject   string          `json:"subject"`
	Requested marking.Marking `json:"requested"`
	Clearance marking.Marking `json:"clearance"`
	Granted   bool            `json:"granted"`
}
