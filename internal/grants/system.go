package grants

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/cordon/pkg/classified"
	"github.com/JaimeStill/cordon/pkg/marking"
	"github.com/JaimeStill/cordon/pkg/pagination"
)

// System defines the public contract for grant domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Grant], error)

	Find(ctx context.Context, id uuid.UUID) (*Grant, error)
	Create(ctx context.Context, cmd CreateCommand) (*Grant, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Grant, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Resolve returns the subject's grant tagged with its own clearance
	// marking. Unknown subjects resolve to an empty grant at the
	// unclassified floor rather than an error.
	Resolve(ctx context.Context, subject string) classified.Classified[Grant]

	// Check reports whether the subject's clearance dominates the
	// requested marking.
	Check(ctx context.Context, subject string, requested marking.Marking) classified.Classified[CheckResult]
}
