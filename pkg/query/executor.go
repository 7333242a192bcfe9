package query

import (
	"context"
	"fmt"
	"time"
)

// Config wires an Executor for one entity type.
type Config struct {
	// DefaultSort names the field used when the request carries no usable sort.
	DefaultSort string

	MatchAny      bool
	DenyByDefault bool
	CaseSensitive bool

	// Reject observes dropped filter tokens. Leave nil to drop them silently.
	Reject func(ctx context.Context, r Rejection)

	// RelativeTime resolves relative datetime filter values into inclusive
	// spans. Leave nil to accept absolute values only.
	RelativeTime func(expr string) (from, to time.Time, ok bool)
}

// Executor compiles request parameters against a FieldMap and hands the result
// to a data source. It holds no per-request state and is safe for concurrent use.
type Executor[T any] struct {
	fields *FieldMap[T]
	cfg    Config
}

// NewExecutor validates the wiring once at startup.
func NewExecutor[T any](fields *FieldMap[T], cfg Config) (*Executor[T], error) {
	if fields == nil {
		return nil, ErrNilFieldMap
	}
	if _, ok := fields.Lookup(cfg.DefaultSort); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, cfg.DefaultSort)
	}
	return &Executor[T]{fields: fields, cfg: cfg}, nil
}

func (e *Executor[T]) Fields() *FieldMap[T] { return e.fields }

// Compile turns params into a Query without touching storage.
func (e *Executor[T]) Compile(ctx context.Context, p Params) (Query[T], error) {
	opts := FilterOptions{
		MatchAny:      e.cfg.MatchAny,
		DenyByDefault: e.cfg.DenyByDefault,
		CaseSensitive: e.cfg.CaseSensitive,
		RelativeTime:  e.cfg.RelativeTime,
	}
	if e.cfg.Reject != nil {
		opts.Reject = func(r Rejection) { e.cfg.Reject(ctx, r) }
	}

	filter, err := CompileFilter(p.Filters, e.fields, opts)
	if err != nil {
		return Query[T]{}, err
	}
	ordering, err := CompileSort(ParseSort(p.Sort), e.fields, e.cfg.DefaultSort)
	if err != nil {
		return Query[T]{}, err
	}
	return Query[T]{
		Filter:   filter,
		Ordering: ordering,
		Offset:   p.Offset,
		Limit:    p.Limit,
		Expand:   p.Expand,
	}, nil
}

// Execute compiles p and pages through src.
func (e *Executor[T]) Execute(ctx context.Context, src Source[T], p Params) (Page[T], error) {
	q, err := e.Compile(ctx, p)
	if err != nil {
		return Page[T]{}, err
	}
	return Paginate(ctx, src, q)
}
