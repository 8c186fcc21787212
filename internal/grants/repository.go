package grants

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
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

// New creates a grants repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "grants"),
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
) (*pagination.PageResult[Grant], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Subject")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.QueryValue[int](ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count grants: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanGrant)
	if err != nil {
		return nil, fmt.Errorf("query grants: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Grant, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGrant)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &g, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Grant, error) {
	cmd.Subject = strings.TrimSpace(cmd.Subject)
	if cmd.Subject == "" {
		return nil, ErrEmptySubject
	}

	mark, err := marking.Parse(cmd.Marking)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMarking, err)
	}

	levelJSON, compartmentJSON, err := encodeClearance(mark)
	if err != nil {
		return nil, err
	}

	insertQ, insertArgs := query.
		NewInsert("public", "grants").
		Value("subject", cmd.Subject).
		Value("level", levelJSON).
		Value("compartment", compartmentJSON).
		Returning("id", "subject", "level", "compartment", "created_at", "updated_at").
		Build()

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Grant, error) {
		return repository.QueryOne(ctx, tx, insertQ, insertArgs, scanGrant)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("grant recorded",
		"id", g.ID,
		"subject", g.Subject,
		"clearance", g.Clearance().String(),
	)
	return &g, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Grant, error) {
	mark, err := marking.Parse(cmd.Marking)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMarking, err)
	}

	levelJSON, compartmentJSON, err := encodeClearance(mark)
	if err != nil {
		return nil, err
	}

	updateQ := `
		UPDATE grants
		SET level = $1, compartment = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, subject, level, compartment, created_at, updated_at`

	g, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Grant, error) {
		return repository.QueryOne(ctx, tx, updateQ,
			[]any{levelJSON, compartmentJSON, id},
			scanGrant,
		)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("grant updated",
		"id", g.ID,
		"subject", g.Subject,
		"clearance", g.Clearance().String(),
	)
	return &g, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM grants WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("grant deleted", "id", id)
	return nil
}

func (r *repo) Resolve(ctx context.Context, subject string) classified.Classified[Grant] {
	q, args := query.NewBuilder(projection).BuildSingle("Subject", subject)

	g, err := repository.QueryOne(ctx, r.db, q, args, scanGrant)
	if errors.Is(err, sql.ErrNoRows) {
		// Unknown subjects hold no clearance rather than failing the
		// resolution outright.
		return classified.Just(Grant{
			Subject:     subject,
			Level:       []string{},
			Compartment: []string{},
		}, marking.Marking{})
	}
	if err != nil {
		return classified.Nothing[Grant](
			fmt.Errorf("resolve grant for %s: %w", subject, err),
			marking.Marking{},
		)
	}

	return classified.Just(g, g.Clearance())
}

func (r *repo) Check(ctx context.Context, subject string, requested marking.Marking) classified.Classified[CheckResult] {
	resolved := r.Resolve(ctx, subject)

	result := classified.Map(resolved, func(g Grant) (CheckResult, error) {
		return CheckResult{
			Subject:   g.Subject,
			Requested: requested,
			Clearance: g.Clearance(),
			Granted:   g.Clearance().Dominates(requested),
		}, nil
	})

	if result.IsValid() {
		check, _ := result.Expect()
		r.logger.Info("access check",
			"subject", subject,
			"requested", requested.String(),
			"clearance", check.Clearance.String(),
			"granted", check.Granted,
		)
	}

	return result
}

func encodeClearance(mark marking.Marking) ([]byte, []byte, error) {
	levelJSON, err := json.Marshal(mark.Level())
	if err != nil {
		return nil, nil, fmt.Errorf("marshal level: %w", err)
	}

	compartmentJSON, err := json.Marshal(mark.Compartment())
	if err != nil {
		return nil, nil, fmt.Errorf("marshal compartment: %w", err)
	}

	return levelJSON, compartmentJSON, nil
}
