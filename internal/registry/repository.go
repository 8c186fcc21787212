package registry

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/cordon/pkg/classified"
	"github.com/JaimeStill/cordon/pkg/marking"
	"github.com/JaimeStill/cordon/pkg/pagination"
	"github.com/JaimeStill/cordon/pkg/query"
	"github.com/JaimeStill/cordon/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a registry repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "registry"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Token], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Token", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryValue[int](ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count tokens: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanToken)
	if err != nil {
		return nil, fmt.Errorf("query tokens: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Token, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanToken)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) FindByToken(ctx context.Context, token string) (*Token, error) {
	q, args := query.NewBuilder(projection).BuildSingle("Token", normalize(token))

	t, err := repository.QueryOne(ctx, r.db, q, args, scanToken)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Token, error) {
	cmd.Token = normalize(cmd.Token)

	if cmd.Token == "" {
		return nil, ErrEmptyToken
	}
	if !cmd.Kind.Valid() {
		return nil, ErrInvalidKind
	}

	insertQ, insertArgs := query.
		NewInsert("public", "tokens").
		Value("token", cmd.Token).
		Value("kind", cmd.Kind).
		Value("description", cmd.Description).
		Returning("id", "token", "kind", "description", "created_at").
		Build()

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Token, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanToken)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("token registered",
		"id", t.ID,
		"token", t.Token,
		"kind", t.Kind,
	)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM tokens WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("token deleted", "id", id)
	return nil
}

func (r *repo) Vocabulary(ctx context.Context) classified.Classified[[]Token] {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	tokens, err := repository.QueryMany(ctx, r.db, q, args, scanToken)
	if err != nil {
		return classified.Nothing[[]Token](
			fmt.Errorf("query vocabulary: %w", err),
			marking.Marking{},
		)
	}

	var levels, compartments []string
	for _, t := range tokens {
		switch t.Kind {
		case KindLevel:
			levels = append(levels, t.Token)
		case KindCompartment:
			compartments = append(compartments, t.Token)
		}
	}

	return classified.Just(tokens, marking.New(levels, compartments))
}

// Tokens are stored uppercase so lookups and marking text agree on case.
func normalize(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
