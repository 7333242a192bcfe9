package usecase

import (
	"context"

	"catalog-api/internal/country"
	"catalog-api/pkg/query"
)

// List filters, sorts and pages countries from query-string params.
func (uc *implUseCase) List(ctx context.Context, input country.ListInput) (country.ListOutput, error) {
	page, err := uc.exec.Execute(ctx, query.SourceFunc[country.Country](uc.repo.ListCountries), input.Params)
	if err != nil {
		if ctx.Err() == nil {
			uc.l.Errorf(ctx, "uc.List Execute: %v", err)
		}
		return country.ListOutput{}, err
	}
	return country.ListOutput{Page: page}, nil
}
