package country

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (Country, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id uuid.UUID) (Country, error)
	Update(ctx context.Context, input UpdateInput) (Country, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
