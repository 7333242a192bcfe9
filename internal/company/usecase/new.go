package usecase

import (
	"catalog-api/internal/company"
	"catalog-api/internal/company/repository"
	"catalog-api/internal/country"
	"catalog-api/internal/model"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
)

// implUseCase is the private implementation of company.UseCase.
type implUseCase struct {
	repo      repository.Repository
	countryUC country.UseCase
	l         log.Logger
	exec      *query.Executor[company.Company]
}

// New creates a new company UseCase implementation.
func New(repo repository.Repository, countryUC country.UseCase, l log.Logger, opts model.QueryOptions) (*implUseCase, error) {
	exec, err := query.NewExecutor(company.NewFieldMap(), opts.ExecutorConfig(company.DefaultSort, l))
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo:      repo,
		countryUC: countryUC,
		l:         l,
		exec:      exec,
	}, nil
}
