package http

import (
	"catalog-api/internal/file"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
)

// DefaultMaxUploadSize caps multipart uploads when New is given zero.
const DefaultMaxUploadSize int64 = 32 << 20

type handler struct {
	l             log.Logger
	uc            file.UseCase
	params        query.ParamsConfig
	maxUploadSize int64
}

// New creates a new HTTP handler for the file domain.
func New(l log.Logger, uc file.UseCase, params query.ParamsConfig, maxUploadSize int64) *handler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &handler{
		l:             l,
		uc:            uc,
		params:        params,
		maxUploadSize: maxUploadSize,
	}
}
