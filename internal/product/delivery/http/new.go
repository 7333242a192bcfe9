package http

import (
	"catalog-api/internal/product"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
)

type handler struct {
	l      log.Logger
	uc     product.UseCase
	params query.ParamsConfig
}

// New creates a new HTTP handler for the product domain.
func New(l log.Logger, uc product.UseCase, params query.ParamsConfig) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		params: params,
	}
}
