package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/file"
	"catalog-api/pkg/query"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateFile(ctx context.Context, opt CreateFileOptions) (file.File, error)
	// GetOneFile returns a zero File when the id is unknown.
	GetOneFile(ctx context.Context, id uuid.UUID) (file.File, error)
	ListFiles(ctx context.Context, q query.Query[file.File]) ([]file.File, int64, error)
	DeleteFile(ctx context.Context, id uuid.UUID) error
}
