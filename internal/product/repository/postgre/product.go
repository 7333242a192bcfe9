package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"catalog-api/internal/product"
	repo "catalog-api/internal/product/repository"
	"catalog-api/pkg/query"
)

func now() time.Time { return time.Now().UTC().Truncate(time.Microsecond) }

// CreateProduct inserts a new row and returns the created entity.
func (r *implRepository) CreateProduct(ctx context.Context, opt repo.CreateProductOptions) (product.Product, error) {
	ts := now()
	p := product.Product{
		ID:          uuid.New(),
		CompanyID:   opt.CompanyID,
		Title:       opt.Title,
		Description: opt.Description,
		Price:       opt.Price,
		Quantity:    opt.Quantity,
		Available:   opt.Available,
		Category:    opt.Category,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	stmt, args, err := r.sb.Insert(table).
		Columns(columns...).
		Values(p.ID.String(), p.CompanyID.String(), p.Title, p.Description, p.Price,
			p.Quantity, p.Available, int(p.Category), p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateProduct"), err)
		return product.Product{}, repo.ErrFailedToInsert
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProduct"), err)
		return product.Product{}, repo.ErrFailedToInsert
	}
	return p, nil
}

func (r *implRepository) GetOneProduct(ctx context.Context, id uuid.UUID) (product.Product, error) {
	stmt, args, err := r.sb.Select(columns...).From(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetOneProduct"), err)
		return product.Product{}, repo.ErrFailedToGet
	}

	var p product.Product
	err = r.db.GetContext(ctx, &p, stmt, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return product.Product{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneProduct"), err)
		return product.Product{}, repo.ErrFailedToGet
	}
	return p, nil
}

func (r *implRepository) ListProducts(ctx context.Context, q query.Query[product.Product]) ([]product.Product, int64, error) {
	items, total, err := r.source.Fetch(ctx, q)
	if err != nil {
		// Cancelled requests are the caller's doing; surface the context error.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, ctxErr)
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProducts"), err)
		return nil, 0, fmt.Errorf("%w: %w", repo.ErrFailedToList, err)
	}
	return items, total, nil
}

// UpdateProduct overwrites the mutable columns. A missing row yields a zero Product.
func (r *implRepository) UpdateProduct(ctx context.Context, opt repo.UpdateProductOptions) (product.Product, error) {
	stmt, args, err := r.sb.Update(table).
		SetMap(map[string]any{
			"company_id":  opt.CompanyID.String(),
			"title":       opt.Title,
			"description": opt.Description,
			"price":       opt.Price,
			"quantity":    opt.Quantity,
			"available":   opt.Available,
			"category":    int(opt.Category),
			"updated_at":  now(),
		}).
		Where(sq.Eq{"id": opt.ID.String()}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateProduct"), err)
		return product.Product{}, repo.ErrFailedToUpdate
	}

	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProduct"), err)
		return product.Product{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return product.Product{}, nil
	}
	return r.GetOneProduct(ctx, opt.ID)
}

func (r *implRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	stmt, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id.String()}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("DeleteProduct"), err)
		return repo.ErrFailedToDelete
	}
	if _, err := r.db.ExecContext(ctx, stmt, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProduct"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
