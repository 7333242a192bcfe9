package product

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Product, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id uuid.UUID) (Product, error)
	Update(ctx context.Context, input UpdateInput) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
