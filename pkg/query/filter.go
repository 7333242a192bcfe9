package query

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	suffixFrom = "from"
	suffixTo   = "to"
)

// FilterOptions controls how per-field tests are combined.
// The zero value is allow-all, AND across fields, case-insensitive contains.
type FilterOptions struct {
	// MatchAny ORs distinct fields together instead of ANDing them.
	MatchAny bool
	// DenyByDefault makes a filter with no usable tokens match nothing.
	DenyByDefault bool
	// CaseSensitive disables lower-casing for contains tests.
	CaseSensitive bool
	// Reject, when set, observes every dropped token.
	Reject func(Rejection)
	// RelativeTime, when set, resolves expressions like "today" on datetime
	// fields into the inclusive span they name. It reports false for input
	// that should be parsed as usual.
	RelativeTime func(expr string) (from, to time.Time, ok bool)
}

// Rejection describes a query token the filter compiler dropped.
type Rejection struct {
	Key   string
	Value string
	Err   error
}

// Group holds the tests for one query key. Any clause matching satisfies the group.
type Group[T any] struct {
	Key     string
	Clauses []Clause[T]
}

func (g Group[T]) Match(item T) bool {
	for _, c := range g.Clauses {
		if c.Match(item) {
			return true
		}
	}
	return false
}

// Filter is the compiled predicate over T. The zero value matches everything.
type Filter[T any] struct {
	groups   []Group[T]
	matchAny bool
	deny     bool
}

func (f Filter[T]) Groups() []Group[T] { return f.groups }

// Conjunctive reports whether groups are ANDed (true) or ORed (false).
func (f Filter[T]) Conjunctive() bool { return !f.matchAny }

// Default is the outcome when no group constrains the filter.
func (f Filter[T]) Default() bool { return !f.deny }

// Match evaluates the filter against item.
func (f Filter[T]) Match(item T) bool {
	if len(f.groups) == 0 {
		return !f.deny
	}
	all := !f.matchAny
	for _, g := range f.groups {
		if g.Match(item) != all {
			return !all
		}
	}
	return all
}

// CompileFilter builds a Filter from query-string values.
//
// Keys are matched against fields case-insensitively; keys that differ only by
// case share one group. Unknown keys and values that fail to coerce are dropped
// one by one and never fail the compilation. A datetime field also answers to
// <name>From and <name>To, each forming its own group.
func CompileFilter[T any](values url.Values, fields *FieldMap[T], opts FilterOptions) (Filter[T], error) {
	if fields == nil {
		return Filter[T]{}, ErrNilFieldMap
	}

	f := Filter[T]{matchAny: opts.MatchAny, deny: opts.DenyByDefault}
	index := make(map[string]int)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		lk := strings.ToLower(strings.TrimSpace(key))
		field, bound, ok := resolveField(fields, lk)
		for _, raw := range values[key] {
			if !ok {
				opts.reject(key, raw, ErrUnknownField)
				continue
			}
			c, relative := relativeClause(opts, field, raw, bound)
			if !relative {
				var err error
				if c, err = Coerce(field, raw, bound, opts.CaseSensitive); err != nil {
					opts.reject(key, raw, err)
					continue
				}
			}
			i, seen := index[lk]
			if !seen {
				i = len(f.groups)
				index[lk] = i
				f.groups = append(f.groups, Group[T]{Key: lk})
			}
			f.groups[i].Clauses = append(f.groups[i].Clauses, c)
		}
	}
	return f, nil
}

func (o FilterOptions) reject(key, value string, err error) {
	if o.Reject != nil {
		o.Reject(Rejection{Key: key, Value: value, Err: err})
	}
}

// relativeClause builds the clause for a relative datetime expression. A From
// bound takes the start of the span and a To bound its end; without a bound a
// day-valued expression matches the whole day. Quoted values are literal.
func relativeClause[T any](o FilterOptions, f Field[T], raw string, bound Bound) (Clause[T], bool) {
	if o.RelativeTime == nil || f.kind != KindTime {
		return Clause[T]{}, false
	}
	body, negated := strings.CutPrefix(raw, negationPrefix)
	body = strings.TrimSpace(body)
	if body == "" || isQuoted(body) {
		return Clause[T]{}, false
	}
	from, to, ok := o.RelativeTime(body)
	if !ok {
		return Clause[T]{}, false
	}

	switch bound {
	case BoundFrom:
		return Clause[T]{Field: f, Op: OpGreaterOrEqual, Value: from}, !negated
	case BoundTo:
		return Clause[T]{Field: f, Op: OpLessOrEqual, Value: to}, !negated
	}
	if from.Equal(to) {
		return Clause[T]{Field: f, Op: pick(negated, OpNotEquals, OpEquals), Value: from}, true
	}
	return Clause[T]{Field: f, Op: pick(negated, OpNotWithin, OpWithin), Value: TimeRange{From: from, To: to}}, true
}

// resolveField prefers an exact name and only then tries a From/To range suffix.
func resolveField[T any](fields *FieldMap[T], key string) (Field[T], Bound, bool) {
	if f, ok := fields.Lookup(key); ok {
		return f, BoundNone, true
	}
	for _, s := range []struct {
		suffix string
		bound  Bound
	}{{suffixFrom, BoundFrom}, {suffixTo, BoundTo}} {
		name, found := strings.CutSuffix(key, s.suffix)
		if !found || name == "" {
			continue
		}
		if f, ok := fields.Lookup(name); ok && f.kind == KindTime {
			return f, s.bound, true
		}
	}
	return Field[T]{}, BoundNone, false
}
