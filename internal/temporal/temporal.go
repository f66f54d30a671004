// Package temporal holds the calendar-date and time-of-day primitives shared
// by the conflict detector and the grid layout engine.
//
// Wire values follow the REST contract: dates are "YYYY-MM-DD" strings, times
// are "HH:MM" 24-hour strings, and both empty string and null mean "absent".
// Parsing is lenient by contract: a malformed value reports !ok and the caller
// skips the comparison instead of failing the whole scan.
package temporal

import (
	"fmt"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	// AllDayLabel is the display label for items with no time-of-day.
	AllDayLabel = "All day"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	t time.Time
}

// ParseDate parses a "YYYY-MM-DD" string. ok is false for empty or
// malformed input.
func ParseDate(s string) (Date, bool) {
	if s == "" {
		return Date{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, false
	}
	return Date{t: t}, true
}

// MustDate parses s and panics on failure. Test helper.
func MustDate(s string) Date {
	d, ok := ParseDate(s)
	if !ok {
		panic(fmt.Sprintf("temporal: invalid date %q", s))
	}
	return d
}

func (d Date) String() string { return d.t.Format(dateLayout) }

// Day returns the day-of-month (1..31).
func (d Date) Day() int { return d.t.Day() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Within reports whether d falls inside [start, end], inclusive on both ends.
func (d Date) Within(start, end Date) bool {
	return !d.t.Before(start.t) && !d.t.After(end.t)
}

// Later returns the later of d and o.
func (d Date) Later(o Date) Date {
	if o.t.After(d.t) {
		return o
	}
	return d
}

// Earlier returns the earlier of d and o.
func (d Date) Earlier(o Date) Date {
	if o.t.Before(d.t) {
		return o
	}
	return d
}

// Span is an inclusive calendar-date range.
type Span struct {
	Start, End Date
}

// ParseSpan parses a start/end date pair. ok is false unless both parse and
// start <= end.
func ParseSpan(start, end string) (Span, bool) {
	s, ok := ParseDate(start)
	if !ok {
		return Span{}, false
	}
	e, ok := ParseDate(end)
	if !ok {
		return Span{}, false
	}
	if e.Before(s) {
		return Span{}, false
	}
	return Span{Start: s, End: e}, true
}

// Contains reports whether d falls inside the span, inclusive.
func (s Span) Contains(d Date) bool { return d.Within(s.Start, s.End) }

// Overlaps reports whether two inclusive date ranges share at least one day.
func (s Span) Overlaps(o Span) bool {
	return !s.Start.After(o.End) && !s.End.Before(o.Start)
}

// Clamp restricts the span to [start, end].
func (s Span) Clamp(start, end Date) Span {
	return Span{Start: s.Start.Later(start), End: s.End.Earlier(end)}
}

// MonthRange resolves a "YYYY-MM" string to the first and last day of that
// month. ok is false for malformed input.
func MonthRange(s string) (Date, Date, bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Date{}, Date{}, false
	}
	first := Date{t: t}
	last := Date{t: t.AddDate(0, 1, -1)}
	return first, last, true
}

// Clock is a time-of-day with minute precision.
type Clock struct {
	Hour, Minute int
}

// ParseClock parses an "HH:MM" 24-hour string. ok is false for empty or
// malformed input.
func ParseClock(s string) (Clock, bool) {
	if s == "" {
		return Clock{}, false
	}
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return Clock{}, false
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, true
}

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// Hours returns the clock as decimal hours (e.g. 09:30 -> 9.5).
func (c Clock) Hours() float64 { return float64(c.Hour) + float64(c.Minute)/60 }

func (c Clock) Before(o Clock) bool {
	return c.Hour < o.Hour || (c.Hour == o.Hour && c.Minute < o.Minute)
}

// Window is a half-open [Start, End) time-of-day interval within one day.
type Window struct {
	Start, End Clock
}

// ParseWindow parses a start/end time pair. ok is false when either side is
// absent or malformed; an item without a complete window is "all day".
func ParseWindow(start, end string) (Window, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return Window{}, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return Window{}, false
	}
	return Window{Start: s, End: e}, true
}

// Overlaps reports whether two half-open windows intersect. A window ending
// exactly when another starts does not overlap it.
func (w Window) Overlaps(o Window) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Label renders the window as "HH:MM - HH:MM".
func (w Window) Label() string {
	return w.Start.String() + " - " + w.End.String()
}

// WindowLabel renders a raw start/end time pair the way conflict warnings
// display it: the window label when both times parse, AllDayLabel otherwise.
func WindowLabel(start, end string) string {
	if w, ok := ParseWindow(start, end); ok {
		return w.Label()
	}
	return AllDayLabel
}
