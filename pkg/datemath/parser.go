// Package datemath resolves relative date expressions such as "today",
// "3 days ago" or "next monday" against the clock in a fixed timezone.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inPattern     = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months|year|years)$`)
	agoPattern    = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months|year|years) ago$`)
	offsetPattern = regexp.MustCompile(`^([+-]\d+)([dwmy])$`)
)

// Resolver turns relative expressions into absolute spans.
type Resolver struct {
	location *time.Location
	now      func() time.Time
}

// NewResolver creates a resolver for the given IANA timezone, e.g. "Asia/Ho_Chi_Minh".
func NewResolver(timezone string) (*Resolver, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc, now: time.Now}, nil
}

// WithClock returns a copy of r reading the current time from now.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	c := *r
	c.now = now
	return &c
}

// Location returns the timezone days are computed in.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve returns the span an expression names. ok is false for anything it
// does not recognise; callers then treat the input as an absolute value.
func (r *Resolver) Resolve(expr string) (Span, bool) {
	expr = strings.Join(strings.Fields(strings.ToLower(expr)), " ")
	base := r.now().In(r.location)

	switch expr {
	case "":
		return Span{}, false
	case "now":
		return Span{Start: base, End: base}, true
	case "today":
		return r.day(base), true
	case "tomorrow":
		return r.day(base.AddDate(0, 0, 1)), true
	case "yesterday":
		return r.day(base.AddDate(0, 0, -1)), true
	}

	if m := inPattern.FindStringSubmatch(expr); m != nil {
		return r.shift(base, m[1], m[2], 1)
	}
	if m := agoPattern.FindStringSubmatch(expr); m != nil {
		return r.shift(base, m[1], m[2], -1)
	}
	if m := offsetPattern.FindStringSubmatch(expr); m != nil {
		return r.shift(base, m[1], m[2], 1)
	}

	if name, ok := strings.CutPrefix(expr, "next "); ok {
		return r.weekday(base, name, 1)
	}
	if name, ok := strings.CutPrefix(expr, "last "); ok {
		return r.weekday(base, name, -1)
	}
	return Span{}, false
}

func (r *Resolver) shift(base time.Time, amount, unit string, sign int) (Span, bool) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return Span{}, false
	}
	n *= sign

	switch unit[0] {
	case 'd':
		return r.day(base.AddDate(0, 0, n)), true
	case 'w':
		return r.day(base.AddDate(0, 0, n*7)), true
	case 'm':
		return r.day(base.AddDate(0, n, 0)), true
	case 'y':
		return r.day(base.AddDate(n, 0, 0)), true
	}
	return Span{}, false
}

// weekday finds the next (dir 1) or previous (dir -1) occurrence of a weekday,
// never the current day.
func (r *Resolver) weekday(base time.Time, name string, dir int) (Span, bool) {
	target, ok := weekdays[name]
	if !ok {
		return Span{}, false
	}

	diff := int(target-base.Weekday()) * dir
	if diff <= 0 {
		diff += 7
	}
	return r.day(base.AddDate(0, 0, diff*dir)), true
}

func (r *Resolver) day(t time.Time) Span {
	start := r.startOfDay(t)
	return Span{Start: start, End: EndOfDay(start)}
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// EndOfDay returns the last microsecond of the day starting at startOfDay.
func EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.AddDate(0, 0, 1).Add(-time.Microsecond)
}
