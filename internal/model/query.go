package model

import (
	"context"
	"time"

	"catalog-api/pkg/datemath"
	"catalog-api/pkg/log"
	"catalog-api/pkg/query"
)

// QueryOptions are the list-endpoint settings shared by every domain.
type QueryOptions struct {
	DefaultLimit  int
	MaxLimit      int
	CaseSensitive bool
	LogRejections bool
	// Dates resolves relative datetime filters. Nil accepts absolute values only.
	Dates *datemath.Resolver
}

// Params returns the paging bounds for query.ParseParams.
func (o QueryOptions) Params() query.ParamsConfig {
	return query.ParamsConfig{DefaultLimit: o.DefaultLimit, MaxLimit: o.MaxLimit}
}

// ExecutorConfig builds a query.Config for one entity. Dropped filter tokens
// go to l at debug level when LogRejections is set.
func (o QueryOptions) ExecutorConfig(defaultSort string, l log.Logger) query.Config {
	cfg := query.Config{
		DefaultSort:   defaultSort,
		CaseSensitive: o.CaseSensitive,
	}
	if o.Dates != nil {
		cfg.RelativeTime = func(expr string) (time.Time, time.Time, bool) {
			span, ok := o.Dates.Resolve(expr)
			return span.Start, span.End, ok
		}
	}
	if o.LogRejections && l != nil {
		cfg.Reject = func(ctx context.Context, r query.Rejection) {
			l.Debugf(ctx, "query: ignored %s=%q: %v", r.Key, r.Value, r.Err)
		}
	}
	return cfg
}
