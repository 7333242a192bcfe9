package usecase

import (
	"context"

	"catalog-api/internal/file"
	"catalog-api/pkg/query"
)

func (uc *implUseCase) List(ctx context.Context, input file.ListInput) (file.ListOutput, error) {
	page, err := uc.exec.Execute(ctx, query.SourceFunc[file.File](uc.repo.ListFiles), input.Params)
	if err != nil {
		if ctx.Err() == nil {
			uc.l.Errorf(ctx, "uc.List Execute: %v", err)
		}
		return file.ListOutput{}, err
	}
	return file.ListOutput{Page: page}, nil
}
