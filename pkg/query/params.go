package query

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Reserved query-string keys. Everything else is a filter candidate.
const (
	ParamSort   = "sort"
	ParamOffset = "offset"
	ParamLimit  = "limit"
	ParamExpand = "expand"
)

const fallbackLimit = 10

// ParamsConfig bounds the page size accepted from clients.
type ParamsConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// Params is a request's query string split into its roles.
type Params struct {
	Filters url.Values
	Sort    []string
	Offset  int
	Limit   int
	Expand  []string
}

// ParseParams splits values into filter, sort, paging and expand inputs.
// Keys are visited in sorted order, so spellings of a reserved key that differ
// only by case combine deterministically. Malformed paging values fall back to defaults instead of failing: offset to 0,
// limit to the configured default, and limits above MaxLimit are capped.
func ParseParams(values url.Values, cfg ParamsConfig) Params {
	defLimit := cfg.DefaultLimit
	if defLimit <= 0 {
		defLimit = fallbackLimit
	}
	p := Params{
		Filters: make(url.Values, len(values)),
		Limit:   defLimit,
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		vals := values[key]
		switch strings.ToLower(strings.TrimSpace(key)) {
		case ParamSort:
			p.Sort = append(p.Sort, vals...)
		case ParamOffset:
			if n, ok := lastInt(vals); ok && n >= 0 {
				p.Offset = n
			}
		case ParamLimit:
			if n, ok := lastInt(vals); ok && n > 0 {
				p.Limit = n
			}
		case ParamExpand:
			for _, v := range vals {
				for _, part := range strings.Split(v, ",") {
					if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
						p.Expand = append(p.Expand, part)
					}
				}
			}
		default:
			p.Filters[key] = append(p.Filters[key], vals...)
		}
	}

	if cfg.MaxLimit > 0 && p.Limit > cfg.MaxLimit {
		p.Limit = cfg.MaxLimit
	}
	return p
}

// Expands reports whether relation was requested through expand.
func (p Params) Expands(relation string) bool {
	for _, e := range p.Expand {
		if strings.EqualFold(e, relation) {
			return true
		}
	}
	return false
}

func lastInt(vals []string) (int, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(vals[len(vals)-1]))
	if err != nil {
		return 0, false
	}
	return n, true
}
