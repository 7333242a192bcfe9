package usecase

import (
	"context"

	"catalog-api/internal/company"
	"catalog-api/pkg/query"
)

// List filters, sorts and pages companies from query-string params.
func (uc *implUseCase) List(ctx context.Context, input company.ListInput) (company.ListOutput, error) {
	page, err := uc.exec.Execute(ctx, query.SourceFunc[company.Company](uc.repo.ListCompanies), input.Params)
	if err != nil {
		if ctx.Err() == nil {
			uc.l.Errorf(ctx, "uc.List Execute: %v", err)
		}
		return company.ListOutput{}, err
	}
	return company.ListOutput{Page: page}, nil
}
