// Package conflict implements the overlap detector: given a candidate
// activity, goal timeline, or team meeting and a snapshot of a user's
// calendar, it reports every existing item the candidate would collide with.
//
// The detector is pure. It never mutates the snapshot and never fails: a
// record with an unparseable date or time is skipped for that comparison
// rather than aborting the scan.
package conflict

import (
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/temporal"
)

// Kind identifies the temporal shape of a candidate.
type Kind string

const (
	KindActivity Kind = "activity"
	KindTimeline Kind = "timeline"
	KindMeeting  Kind = "meeting"
)

// Candidate is the not-yet-saved item being checked before create or update.
// Activity and meeting candidates use Date; timeline candidates use
// StartDate/EndDate. Times are optional ("" means all day).
type Candidate struct {
	Kind      Kind   `json:"kind"`
	Date      string `json:"date,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// Conflict describes one existing item the candidate overlaps, with the
// display strings the warning dialog shows.
type Conflict struct {
	Type  string `json:"type"` // "activity", "goal" or "meeting"
	Title string `json:"title"`
	Time  string `json:"time"` // "HH:MM - HH:MM" or "All day"
	Date  string `json:"date,omitempty"`
}

// FindConflicts scans the snapshot for items overlapping the candidate.
//
// excludeID identifies the item being edited so it never conflicts with
// itself: for activity and meeting candidates it is the item's own id, for
// timeline candidates it is the parent goal's id (all timelines of that goal
// are skipped, matching how the editor resubmits a goal's whole timeline set).
//
// Policy notes: an all-day activity or meeting candidate performs no check
// at all, and two timelines conflict only when both carry a time-of-day
// window, whereas an all-day timeline does conflict with timed single-day
// items.
func FindConflicts(cand Candidate, snap model.Snapshot, excludeID string) []Conflict {
	switch cand.Kind {
	case KindActivity, KindMeeting:
		return findSingleDayConflicts(cand, snap, excludeID)
	case KindTimeline:
		return findTimelineConflicts(cand, snap, excludeID)
	}
	return nil
}

// findSingleDayConflicts handles activity and meeting candidates; the two
// shapes check the same three collections with the same rules, differing
// only in which item is "self".
func findSingleDayConflicts(cand Candidate, snap model.Snapshot, excludeID string) []Conflict {
	date, ok := temporal.ParseDate(cand.Date)
	if !ok {
		return nil
	}
	window, ok := temporal.ParseWindow(cand.StartTime, cand.EndTime)
	if !ok {
		// All-day candidates are not checked.
		return nil
	}

	var out []Conflict

	for _, a := range snap.Activities {
		if cand.Kind == KindActivity && a.ActivityID == excludeID {
			continue
		}
		if c, ok := singleDayHit("activity", a.Title, a.Date, a.StartTime, a.EndTime, date, window); ok {
			out = append(out, c)
		}
	}

	for _, g := range snap.Goals {
		for _, tl := range g.Timelines {
			if c, ok := timelineHit(g.Title, tl, date, window); ok {
				out = append(out, c)
			}
		}
	}

	for _, t := range snap.Teams {
		for _, m := range t.Meetings {
			if cand.Kind == KindMeeting && m.MeetingID == excludeID {
				continue
			}
			if c, ok := singleDayHit("meeting", m.Title, m.Date, m.StartTime, m.EndTime, date, window); ok {
				out = append(out, c)
			}
		}
	}

	return out
}

// singleDayHit tests a timed candidate against an existing single-day item.
// Both sides need a concrete window; disjoint dates never conflict.
func singleDayHit(typ, title, itemDate, itemStart, itemEnd string, date temporal.Date, window temporal.Window) (Conflict, bool) {
	d, ok := temporal.ParseDate(itemDate)
	if !ok || !d.Equal(date) {
		return Conflict{}, false
	}
	w, ok := temporal.ParseWindow(itemStart, itemEnd)
	if !ok || !window.Overlaps(w) {
		return Conflict{}, false
	}
	return Conflict{Type: typ, Title: title, Time: w.Label(), Date: itemDate}, true
}

// timelineHit tests a timed single-day candidate against a goal timeline.
// A timeline without a daily window blocks the whole day it covers.
func timelineHit(goalTitle string, tl model.Timeline, date temporal.Date, window temporal.Window) (Conflict, bool) {
	span, ok := temporal.ParseSpan(tl.StartDate, tl.EndDate)
	if !ok || !span.Contains(date) {
		return Conflict{}, false
	}
	w, ok := temporal.ParseWindow(tl.StartTime, tl.EndTime)
	if !ok {
		return Conflict{Type: "goal", Title: goalTitle, Time: temporal.AllDayLabel, Date: date.String()}, true
	}
	if !window.Overlaps(w) {
		return Conflict{}, false
	}
	return Conflict{Type: "goal", Title: goalTitle, Time: w.Label(), Date: date.String()}, true
}

// findTimelineConflicts handles a timeline candidate: a multi-day span with
// an optional daily window.
func findTimelineConflicts(cand Candidate, snap model.Snapshot, excludeGoalID string) []Conflict {
	span, ok := temporal.ParseSpan(cand.StartDate, cand.EndDate)
	if !ok {
		return nil
	}
	window, hasWindow := temporal.ParseWindow(cand.StartTime, cand.EndTime)

	var out []Conflict

	for _, a := range snap.Activities {
		d, ok := temporal.ParseDate(a.Date)
		if !ok || !span.Contains(d) {
			continue
		}
		w, itemHasWindow := temporal.ParseWindow(a.StartTime, a.EndTime)
		if hasWindow && itemHasWindow && !window.Overlaps(w) {
			continue
		}
		out = append(out, Conflict{
			Type:  "activity",
			Title: a.Title,
			Time:  temporal.WindowLabel(a.StartTime, a.EndTime),
			Date:  a.Date,
		})
	}

	for _, g := range snap.Goals {
		if g.GoalID == excludeGoalID {
			continue
		}
		for _, tl := range g.Timelines {
			other, ok := temporal.ParseSpan(tl.StartDate, tl.EndDate)
			if !ok || !span.Overlaps(other) {
				continue
			}
			w, itemHasWindow := temporal.ParseWindow(tl.StartTime, tl.EndTime)
			// Two timelines only conflict when both carry a daily window;
			// with times applied uniformly across each span, any shared day
			// serves as the reference day for the comparison.
			if !hasWindow || !itemHasWindow || !window.Overlaps(w) {
				continue
			}
			refDay := span.Start.Later(other.Start)
			out = append(out, Conflict{
				Type:  "goal",
				Title: g.Title,
				Time:  w.Label(),
				Date:  refDay.String(),
			})
		}
	}

	for _, t := range snap.Teams {
		for _, m := range t.Meetings {
			d, ok := temporal.ParseDate(m.Date)
			if !ok || !span.Contains(d) {
				continue
			}
			w, itemHasWindow := temporal.ParseWindow(m.StartTime, m.EndTime)
			if hasWindow && itemHasWindow && !window.Overlaps(w) {
				continue
			}
			out = append(out, Conflict{
				Type:  "meeting",
				Title: m.Title,
				Time:  temporal.WindowLabel(m.StartTime, m.EndTime),
				Date:  m.Date,
			})
		}
	}

	return out
}
