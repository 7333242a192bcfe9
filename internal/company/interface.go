package company

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Company, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id uuid.UUID) (Company, error)
	Update(ctx context.Context, input UpdateInput) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
