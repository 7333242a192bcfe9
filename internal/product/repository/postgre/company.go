package postgre

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"catalog-api/internal/product"
	repo "catalog-api/internal/product/repository"
)

const selectCompanySummaries = `SELECT id, name FROM companies WHERE id IN (?)`

// ListCompanySummaries loads id and name for every known company in ids.
func (r *implRepository) ListCompanySummaries(ctx context.Context, ids []uuid.UUID) ([]product.CompanySummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	stmt, args, err := sqlx.In(selectCompanySummaries, keys)
	if err != nil {
		r.l.Errorf(ctx, "%s In: %v", r.dsn("ListCompanySummaries"), err)
		return nil, repo.ErrFailedToExpand
	}

	var out []product.CompanySummary
	if err := r.db.SelectContext(ctx, &out, r.db.Rebind(stmt), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompanySummaries"), err)
		return nil, repo.ErrFailedToExpand
	}
	return out, nil
}
