package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/product"
	"catalog-api/pkg/query"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateProduct(ctx context.Context, opt CreateProductOptions) (product.Product, error)
	// GetOneProduct returns a zero Product when the id is unknown.
	GetOneProduct(ctx context.Context, id uuid.UUID) (product.Product, error)
	ListProducts(ctx context.Context, q query.Query[product.Product]) ([]product.Product, int64, error)
	UpdateProduct(ctx context.Context, opt UpdateProductOptions) (product.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ListCompanySummaries batch-loads the companies behind ids. Unknown ids are skipped.
	ListCompanySummaries(ctx context.Context, ids []uuid.UUID) ([]product.CompanySummary, error)
}
