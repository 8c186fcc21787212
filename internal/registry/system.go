package registry

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/cordon/pkg/classified"
	"github.com/JaimeStill/cordon/pkg/pagination"
)

// System defines the public contract for registry domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Token], error)

	Find(ctx context.Context, id uuid.UUID) (*Token, error)
	FindByToken(ctx context.Context, token string) (*Token, error)
	Create(ctx context.Context, cmd CreateCommand) (*Token, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Vocabulary returns every registered token folded into a single
	// marking, tagged with itself: the most restrictive marking the
	// registry currently knows how to express.
	Vocabulary(ctx context.Context) classified.Classified[[]Token]
}
