package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"catalog-api/internal/company"
	repo "catalog-api/internal/company/repository"
	"catalog-api/pkg/query"
)

func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// CreateCompany inserts a new row and returns the created entity.
func (r *implRepository) CreateCompany(ctx context.Context, opt repo.CreateCompanyOptions) (company.Company, error) {
	ts := now()
	c := company.Company{
		ID:          uuid.New(),
		Name:        opt.Name,
		Description: opt.Description,
		CountryID:   opt.CountryID,
		Status:      opt.Status,
		FoundedAt:   utc(opt.FoundedAt),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	stmt, args, err := r.sb.Insert(table).
		Columns(columns...).
		Values(c.ID.String(), c.Name, c.Description, c.CountryID.String(), int(c.Status), c.FoundedAt, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateCompany"), err)
		return company.Company{}, repo.ErrFailedToInsert
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCompany"), err)
		return company.Company{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneCompany retrieves a single Company matching every non-empty option.
func (r *implRepository) GetOneCompany(ctx context.Context, opt repo.GetOneCompanyOptions) (company.Company, error) {
	where := sq.Eq{}
	if opt.ID != uuid.Nil {
		where["id"] = opt.ID.String()
	}
	if opt.Name != "" {
		where["name"] = opt.Name
	}

	b := r.sb.Select(columns...).From(table).Limit(1)
	if len(where) > 0 {
		b = b.Where(where)
	}
	stmt, args, err := b.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneCompany"), err)
		return company.Company{}, repo.ErrFailedToGet
	}

	var c company.Company
	err = r.db.GetContext(ctx, &c, stmt, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return company.Company{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCompany"), err)
		return company.Company{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListCompanies runs a compiled list query.
func (r *implRepository) ListCompanies(ctx context.Context, q query.Query[company.Company]) ([]company.Company, int64, error) {
	items, total, err := r.source.Fetch(ctx, q)
	if err != nil {
		// Cancelled requests are the caller's doing; surface the context error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, ctxErr)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompanies"), err)
		return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return items, total, nil
}

// UpdateCompany overwrites the mutable columns. A missing row yields a zero Company.
func (r *implRepository) UpdateCompany(ctx context.Context, opt repo.UpdateCompanyOptions) (company.Company, error) {
	stmt, args, err := r.sb.Update(table).
		Set("name", opt.Name).
		Set("description", opt.Description).
		Set("country_id", opt.CountryID.String()).
		Set("status", int(opt.Status)).
		Set("founded_at", utc(opt.FoundedAt)).
		Set("updated_at", now()).
		Where(sq.Eq{"id": opt.ID.String()}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateCompany"), err)
		return company.Company{}, repo.ErrFailedToUpdate
	}

	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCompany"), err)
		return company.Company{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return company.Company{}, nil
	}
	return r.GetOneCompany(ctx, repo.GetOneCompanyOptions{ID: opt.ID})
}

// DeleteCompany removes a Company by ID. Products cascade.
func (r *implRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	stmt, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteCompany"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCompany"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Microsecond)
	return &v
}
