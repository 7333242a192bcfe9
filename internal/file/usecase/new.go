package usecase

import (
	"catalog-api/internal/file"
	"catalog-api/internal/file/repository"
	"catalog-api/internal/model"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
	"catalog-api/pkg/storage"
)

const objectPrefix = "files/"

type implUseCase struct {
	repo    repository.Repository
	storage storage.Storage
	l       log.Logger
	exec    *query.Executor[file.File]
}

// New creates a new file UseCase implementation backed by blob storage.
func New(repo repository.Repository, st storage.Storage, l log.Logger, opts model.QueryOptions) (*implUseCase, error) {
	exec, err := query.NewExecutor(file.NewFieldMap(), opts.ExecutorConfig(file.DefaultSort, l))
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo:    repo,
		storage: st,
		l:       l,
		exec:    exec,
	}, nil
}
