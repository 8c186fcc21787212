package registry

import (
	"net/url"

	"github.com/JaimeStill/cordon/pkg/query"
	"github.com/JaimeStill/cordon/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "tokens", "t").
	Project("id", "ID").
	Project("token", "Token").
	Project("kind", "Kind").
	Project("description", "Description").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field: "Token",
}

// Filters contains optional filtering criteria for token queries. Nil
// fields are ignored.
type Filters struct {
	Kind *Kind `json:"kind,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereEquals("Kind", f.Kind)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if k := Kind(values.Get("kind")); k.Valid() {
		f.Kind = &k
	}

	return f
}

func scanToken(s repository.Scanner) (Token, error) {
	var t Token

	err := s.Scan(
		&t.ID,
		&t.Token,
		&t.Kind,
		&t.Description,
		&t.CreatedAt,
	)

	return t, err
}
