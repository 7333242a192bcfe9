package query

import (
	"strings"
	"time"
)

// Op is the comparison a Clause applies.
type Op int

const (
	OpEquals Op = iota + 1
	OpNotEquals
	OpContains
	OpNotContains
	OpGreaterOrEqual
	OpLessOrEqual
	OpIsNull
	OpIsNotNull
	// OpWithin and OpNotWithin test a datetime against an inclusive TimeRange.
	OpWithin
	OpNotWithin
)

func (o Op) String() string {
	switch o {
	case OpEquals:
		return "eq"
	case OpNotEquals:
		return "ne"
	case OpContains:
		return "contains"
	case OpNotContains:
		return "not_contains"
	case OpGreaterOrEqual:
		return "gte"
	case OpLessOrEqual:
		return "lte"
	case OpIsNull:
		return "is_null"
	case OpIsNotNull:
		return "is_not_null"
	case OpWithin:
		return "within"
	case OpNotWithin:
		return "not_within"
	default:
		return "unknown"
	}
}

// Negated reports whether the op is the negative form of another op.
// Negated ops match null values.
func (o Op) Negated() bool {
	return o == OpNotEquals || o == OpNotContains || o == OpNotWithin
}

// TimeRange is the inclusive value of a Within clause.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Clause is a single typed test against one field.
type Clause[T any] struct {
	Field Field[T]
	Op    Op
	Value any
	// Fold marks a case-insensitive contains test; Value is already lower-cased.
	Fold bool
}

// Match evaluates the clause against item.
func (c Clause[T]) Match(item T) bool {
	v, ok := c.Field.Value(item)
	switch c.Op {
	case OpIsNull:
		return !ok
	case OpIsNotNull:
		return ok
	}
	if !ok {
		return c.Op.Negated()
	}

	switch c.Op {
	case OpEquals:
		return c.Field.Compare(v, c.Value) == 0
	case OpNotEquals:
		return c.Field.Compare(v, c.Value) != 0
	case OpContains:
		return c.contains(v)
	case OpNotContains:
		return !c.contains(v)
	case OpGreaterOrEqual:
		return c.Field.Compare(v, c.Value) >= 0
	case OpLessOrEqual:
		return c.Field.Compare(v, c.Value) <= 0
	case OpWithin:
		return c.within(v)
	case OpNotWithin:
		return !c.within(v)
	}
	return false
}

func (c Clause[T]) within(v any) bool {
	r, ok := c.Value.(TimeRange)
	if !ok {
		return false
	}
	return c.Field.Compare(v, r.From) >= 0 && c.Field.Compare(v, r.To) <= 0
}

func (c Clause[T]) contains(v any) bool {
	s, _ := v.(string)
	needle, _ := c.Value.(string)
	if c.Fold {
		s = strings.ToLower(s)
	}
	return strings.Contains(s, needle)
}
