package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"catalog-api/internal/country"
	repo "catalog-api/internal/country/repository"
	"catalog-api/pkg/query"
)

// CreateCountry inserts a new row and returns the created entity.
func (r *implRepository) CreateCountry(ctx context.Context, opt repo.CreateCountryOptions) (country.Country, error) {
	c := country.Country{
		ID:        uuid.New(),
		Code:      opt.Code,
		Name:      opt.Name,
		Region:    opt.Region,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	stmt, args, err := r.sb.Insert(table).
		Columns(columns...).
		Values(c.ID.String(), c.Code, c.Name, int(c.Region), c.CreatedAt).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateCountry"), err)
		return country.Country{}, repo.ErrFailedToInsert
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCountry"), err)
		return country.Country{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCountry retrieves a single Country matching every non-empty option.
func (r *implRepository) GetOneCountry(ctx context.Context, opt repo.GetOneCountryOptions) (country.Country, error) {
	where := sq.Eq{}
	if opt.ID != uuid.Nil {
		where["id"] = opt.ID.String()
	}
	if opt.Code != "" {
		where["code"] = opt.Code
	}

	b := r.sb.Select(columns...).From(table).Limit(1)
	if len(where) > 0 {
		b = b.Where(where)
	}
	stmt, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneCountry"), err)
		return country.Country{}, repo.ErrFailedToGet
	}

	var c country.Country
	err = r.db.GetContext(ctx, &c, stmt, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return country.Country{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCountry"), err)
		return country.Country{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCountries runs a compiled list query.
func (r *implRepository) ListCountries(ctx context.Context, q query.Query[country.Country]) ([]country.Country, int64, error) {
	items, total, err := r.source.Fetch(ctx, q)
	if err != nil {
		// Cancelled requests are the caller's doing; surface the context error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, ctxErr)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCountries"), err)
		return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return items, total, nil
}

// UpdateCountry overwrites the mutable columns. A missing row yields a zero Country.
func (r *implRepository) UpdateCountry(ctx context.Context, opt repo.UpdateCountryOptions) (country.Country, error) {
	stmt, args, err := r.sb.Update(table).
		Set("code", opt.Code).
		Set("name", opt.Name).
		Set("region", int(opt.Region)).
		Where(sq.Eq{"id": opt.ID.String()}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateCountry"), err)
		return country.Country{}, repo.ErrFailedToUpdate
	}

	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCountry"), err)
		return country.Country{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return country.Country{}, nil
	}
	return r.GetOneCountry(ctx, repo.GetOneCountryOptions{ID: opt.ID})
}

// DeleteCountry removes a Country by ID.
func (r *implRepository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	stmt, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteCountry"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCountry"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
