// Package layout computes pixel geometry for the 24-hour day grid and the
// month view's spanning goal-timeline bars. Like the conflict detector it is
// pure: same inputs, same geometry, every time.
package layout

import (
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/temporal"
)

// Config holds the grid's pixel constants. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// HourHeight is the height of one hourly row in pixels.
	HourHeight float64
	// TopPadding is added to every block's top offset.
	TopPadding float64
	// BorderAdjustment is subtracted from every block's height so adjacent
	// blocks show a visible seam.
	BorderAdjustment float64
	// MinDurationHours is the visual floor: shorter or degenerate items are
	// drawn at this duration so they stay clickable.
	MinDurationHours float64
	// OffsetStep is the horizontal shift, in pixels, applied per overlapping
	// predecessor.
	OffsetStep float64
	// ZBase is the z-index assigned below the least-stacked block.
	ZBase int
	// HeaderHeight is the fixed height of an all-day timeline bar in the
	// month view.
	HeaderHeight float64
}

// DefaultConfig matches the reference UI: 56px hour rows, 4px cascade steps,
// a 30-minute visual floor.
func DefaultConfig() Config {
	return Config{
		HourHeight:       56,
		TopPadding:       2,
		BorderAdjustment: 2,
		MinDurationHours: 0.5,
		OffsetStep:       4,
		ZBase:            10,
		HeaderHeight:     20,
	}
}

// PositionedBlock is the geometry of one activity or meeting on a day column.
type PositionedBlock struct {
	Kind    string  `json:"kind"` // "activity" or "meeting"
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Top     float64 `json:"top"`
	Height  float64 `json:"height"`
	OffsetX float64 `json:"offsetX"`
	ZIndex  int     `json:"zIndex"`
	// Overlaps is the number of earlier same-kind items this block
	// intersects; it drives OffsetX and ZIndex.
	Overlaps int `json:"overlaps"`
	// AllDay marks items rendered with the midnight fallback block.
	AllDay bool `json:"allDay"`
}

// TimelineBlock is the geometry of one goal timeline bar in the month view.
type TimelineBlock struct {
	TimelineID string  `json:"timelineid"`
	GoalID     string  `json:"goalid"`
	Title      string  `json:"title"`
	StartDay   int     `json:"startDayIndex"` // 0-based day-of-month column
	SpanDays   int     `json:"spanDays"`
	Top        float64 `json:"top"`
	Height     float64 `json:"height"`
	AllDay     bool    `json:"allDay"`
	// PartialStart/PartialEnd mark bars truncated by the month boundary so
	// the UI can render continuation indicators.
	PartialStart bool `json:"partialStart"`
	PartialEnd   bool `json:"partialEnd"`
}

// span is a block's effective [start, start+duration) interval in decimal
// hours, after the all-day fallback and the minimum-duration floor.
type span struct {
	start, duration float64
}

func (s span) overlaps(o span) bool {
	return s.start < o.start+o.duration && o.start < s.start+s.duration
}

// itemSpan derives the effective interval for an item's raw time strings.
// Items without a complete window render as a one-hour block at midnight so
// all-day entries stay visible.
func (cfg Config) itemSpan(startTime, endTime string) (span, bool) {
	w, ok := temporal.ParseWindow(startTime, endTime)
	if !ok {
		return span{start: 0, duration: 1}, true
	}
	start := w.Start.Hours()
	dur := w.End.Hours() - start
	if dur < cfg.MinDurationHours {
		dur = cfg.MinDurationHours
	}
	return span{start: start, duration: dur}, false
}

// LayoutDay positions one day's activities and meetings on the hour grid.
// Stacking is computed independently per kind, in input order: each block is
// shifted right and raised above every earlier same-kind block it overlaps,
// producing the fanned cascade the UI renders. O(n^2) per kind by intent;
// daily item counts are small.
func LayoutDay(cfg Config, activities []model.Activity, meetings []model.Meeting) []PositionedBlock {
	out := make([]PositionedBlock, 0, len(activities)+len(meetings))

	var spans []span
	place := func(kind, id, title, startTime, endTime string) {
		sp, allDay := cfg.itemSpan(startTime, endTime)
		overlaps := 0
		for _, prev := range spans {
			if sp.overlaps(prev) {
				overlaps++
			}
		}
		spans = append(spans, sp)
		out = append(out, PositionedBlock{
			Kind:     kind,
			ID:       id,
			Title:    title,
			Top:      sp.start*cfg.HourHeight + cfg.TopPadding,
			Height:   sp.duration*cfg.HourHeight - cfg.BorderAdjustment,
			OffsetX:  float64(overlaps) * cfg.OffsetStep,
			ZIndex:   cfg.ZBase + overlaps + 1,
			Overlaps: overlaps,
			AllDay:   allDay,
		})
	}

	for _, a := range activities {
		place("activity", a.ActivityID, a.Title, a.StartTime, a.EndTime)
	}
	spans = spans[:0]
	for _, m := range meetings {
		place("meeting", m.MeetingID, m.Title, m.StartTime, m.EndTime)
	}
	return out
}

// LayoutMonthTimelines produces one bar per goal timeline intersecting
// [monthStart, monthEnd], clamped to the month. Day indices are taken from
// the clamped dates' day-of-month, so callers pass a single calendar month.
// Timelines with missing or malformed dates are skipped.
func LayoutMonthTimelines(cfg Config, goals []model.Goal, monthStart, monthEnd temporal.Date) []TimelineBlock {
	var out []TimelineBlock
	month := temporal.Span{Start: monthStart, End: monthEnd}

	for _, g := range goals {
		for _, tl := range g.Timelines {
			sp, ok := temporal.ParseSpan(tl.StartDate, tl.EndDate)
			if !ok || !sp.Overlaps(month) {
				continue
			}
			clamped := sp.Clamp(monthStart, monthEnd)

			block := TimelineBlock{
				TimelineID:   tl.TimelineID,
				GoalID:       g.GoalID,
				Title:        tl.Title,
				StartDay:     clamped.Start.Day() - 1,
				SpanDays:     clamped.End.Day() - clamped.Start.Day() + 1,
				PartialStart: sp.Start.Before(monthStart),
				PartialEnd:   sp.End.After(monthEnd),
			}
			if w, ok := temporal.ParseWindow(tl.StartTime, tl.EndTime); ok {
				start := w.Start.Hours()
				dur := w.End.Hours() - start
				if dur < cfg.MinDurationHours {
					dur = cfg.MinDurationHours
				}
				block.Top = start*cfg.HourHeight + cfg.TopPadding
				block.Height = dur*cfg.HourHeight - cfg.BorderAdjustment
			} else {
				block.Top = cfg.TopPadding
				block.Height = cfg.HeaderHeight
				block.AllDay = true
			}
			out = append(out, block)
		}
	}
	return out
}
