package grants

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JaimeStill/cordon/pkg/query"
	"github.com/JaimeStill/cordon/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "grants", "g").
	Project("id", "ID").
	Project("subject", "Subject").
	Project("level", "Level").
	Project("compartment", "Compartment").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Subject",
}

// Filters contains optional filtering criteria for grant queries. Nil
// fields are ignored.
type Filters struct {
	Subject *string `json:"subject,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Subject", f.Subject)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("subject"); s != "" {
		f.Subject = &s
	}

	return f
}

func scanGrant(s repository.Scanner) (Grant, error) {
	var g Grant
	var levelRaw, compartmentRaw []byte

	err := s.Scan(
		&g.ID,
		&g.Subject,
		&levelRaw,
		&compartmentRaw,
		&g.CreatedAt,
		&g.UpdatedAt,
	)

	if err != nil {
		return g, err
	}

	if len(levelRaw) > 0 {
		if err := json.Unmarshal(levelRaw, &g.Level); err != nil {
			return g, fmt.Errorf("unmarshal level: %w", err)
		}
	}

	if len(compartmentRaw) > 0 {
		if err := json.Unmarshal(compartmentRaw, &g.Compartment); err != nil {
			return g, fmt.Errorf("unmarshal compartment: %w", err)
		}
	}

	if g.Level == nil {
		g.Level = []string{}
	}
	if g.Compartment == nil {
		g.Compartment = []string{}
	}

	return g, nil
}
