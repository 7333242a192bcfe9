package usecase

import (
	"catalog-api/internal/company"
	"catalog-api/internal/model"
	"catalog-api/internal/product"
	"catalog-api/internal/product/repository"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
)

type implUseCase struct {
	repo      repository.Repository
	companyUC company.UseCase
	l         log.Logger
	exec      *query.Executor[product.Product]
}

// New creates a new product UseCase implementation.
func New(repo repository.Repository, companyUC company.UseCase, l log.Logger, opts model.QueryOptions) (*implUseCase, error) {
	exec, err := query.NewExecutor(product.NewFieldMap(), opts.ExecutorConfig(product.DefaultSort, l))
	if err != nil {
		return nil, err
	}
	return &implUseCase{
		repo:      repo,
		companyUC: companyUC,
		l:         l,
		exec:      exec,
	}, nil
}
