package usecase

import (
	"context"

	"github.com/google/uuid"

	"catalog-api/internal/product"
	"catalog-api/pkg/query"
)

// List runs the query engine and, with expand=company, attaches company summaries.
func (uc *implUseCase) List(ctx context.Context, input product.ListInput) (product.ListOutput, error) {
	page, err := uc.exec.Execute(ctx, query.SourceFunc[product.Product](uc.repo.ListProducts), input.Params)
	if err != nil {
		if ctx.Err() == nil {
			uc.l.Errorf(ctx, "uc.List Execute: %v", err)
		}
		return product.ListOutput{}, err
	}

	if input.Params.Expands(product.ExpandCompany) {
		if err := uc.attachCompanies(ctx, page.Items); err != nil {
			return product.ListOutput{}, err
		}
	}
	return product.ListOutput{Page: page}, nil
}

func (uc *implUseCase) attachCompanies(ctx context.Context, items []product.Product) error {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, p := range items {
		if !seen[p.CompanyID] {
			seen[p.CompanyID] = true
			ids = append(ids, p.CompanyID)
		}
	}

	summaries, err := uc.repo.ListCompanySummaries(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.attachCompanies ListCompanySummaries: %v", err)
		return err
	}
	byID := make(map[uuid.UUID]product.CompanySummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}
	for i := range items {
		if s, ok := byID[items[i].CompanyID]; ok {
			items[i].Company = &s
		}
	}
	return nil
}
