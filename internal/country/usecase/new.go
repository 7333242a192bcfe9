package usecase

import (
	"catalog-api/internal/country"
	"catalog-api/internal/country/repository"
	"catalog-api/internal/model"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
)

// implUseCase is the private implementation of country.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	exec *query.Executor[country.Country]
}

// New creates a new country UseCase implementation.
func New(repo repository.Repository, l log.Logger, opts model.QueryOptions) (*implUseCase, error) {
	exec, err := query.NewExecutor(country.NewFieldMap(), opts.ExecutorConfig(country.DefaultSort, l))
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo: repo,
		l:    l,
		exec: exec,
	}, nil
}
