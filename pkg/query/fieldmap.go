package query

import (
	"fmt"
	"strings"
)

// FieldMap is the per-entity whitelist of filterable and sortable fields.
// Build it once at startup and share it; it is never mutated afterwards.
type FieldMap[T any] struct {
	fields map[string]Field[T]
	names  []string
}

// NewFieldMap registers fields under their case-insensitive external names.
func NewFieldMap[T any](fields ...Field[T]) (*FieldMap[T], error) {
	m := &FieldMap[T]{
		fields: make(map[string]Field[T], len(fields)),
		names:  make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		if strings.TrimSpace(f.name) == "" {
			return nil, ErrEmptyFieldName
		}
		key := strings.ToLower(f.name)
		if _, exists := m.fields[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.name)
		}
		if !isSafeIdentifier(f.Column()) {
			return nil, fmt.Errorf("%w: %q for field %s", ErrInvalidColumn, f.Column(), f.name)
		}
		m.fields[key] = f
		m.names = append(m.names, f.name)
	}
	return m, nil
}

// MustFieldMap is NewFieldMap for statically known registrations.
func MustFieldMap[T any](fields ...Field[T]) *FieldMap[T] {
	m, err := NewFieldMap(fields...)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup finds a field by external name, ignoring case.
func (m *FieldMap[T]) Lookup(name string) (Field[T], bool) {
	f, ok := m.fields[strings.ToLower(strings.TrimSpace(name))]
	return f, ok
}

// Names returns the registered external names in registration order.
func (m *FieldMap[T]) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

func (m *FieldMap[T]) Len() int { return len(m.fields) }

// isSafeIdentifier accepts plain or dot-qualified SQL identifiers: [A-Za-z_][A-Za-z0-9_]*.
func isSafeIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
		for i := 0; i < len(part); i++ {
			ch := part[i]
			letter := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
			if i == 0 && !letter {
				return false
			}
			if !letter && !(ch >= '0' && ch <= '9') {
				return false
			}
		}
	}
	return true
}
