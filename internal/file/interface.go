package file

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Upload(ctx context.Context, input UploadInput) (File, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id uuid.UUID) (File, error)
	Download(ctx context.Context, id uuid.UUID) (DownloadOutput, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
