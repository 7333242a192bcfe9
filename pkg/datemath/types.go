package datemath

import "time"

// Span is the calendar day (or instant, for "now") an expression names.
// End is the last representable microsecond of the day so it survives
// database rounding.
type Span struct {
	Start time.Time
	End   time.Time
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}
