// Package ics renders a user's calendar snapshot as an iCalendar feed so
// external calendar clients can subscribe to PlanIt data.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/temporal"
)

const prodID = "-//PlanIt//planit-server//EN"

// Export serializes the snapshot into an iCalendar document. Activities and
// meetings become single VEVENTs; each goal timeline becomes one VEVENT per
// span (all-day spans use DATE values). Records with malformed dates are
// skipped, matching the scheduling core's lenient read contract.
func Export(snap model.Snapshot) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, a := range snap.Activities {
		addSingleDay(cal, "activity-"+a.ActivityID, a.Title, a.Description, a.Date, a.StartTime, a.EndTime)
	}
	for _, g := range snap.Goals {
		for _, tl := range g.Timelines {
			addTimeline(cal, g, tl)
		}
	}
	for _, t := range snap.Teams {
		for _, m := range t.Meetings {
			addSingleDay(cal, "meeting-"+m.MeetingID, m.Title, m.Description, m.Date, m.StartTime, m.EndTime)
		}
	}

	return cal.Serialize()
}

func addSingleDay(cal *ical.Calendar, uid, title, description, date, startTime, endTime string) {
	day, ok := temporal.ParseDate(date)
	if !ok {
		return
	}
	ev := cal.AddEvent(uid)
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetSummary(title)
	if description != "" {
		ev.SetDescription(description)
	}

	if w, ok := temporal.ParseWindow(startTime, endTime); ok {
		ev.SetStartAt(atClock(day, w.Start))
		ev.SetEndAt(atClock(day, w.End))
		return
	}
	// All-day: DATE-valued start, exclusive end on the next day.
	start := atClock(day, temporal.Clock{})
	ev.SetAllDayStartAt(start)
	ev.SetAllDayEndAt(start.AddDate(0, 0, 1))
}

func addTimeline(cal *ical.Calendar, g model.Goal, tl model.Timeline) {
	span, ok := temporal.ParseSpan(tl.StartDate, tl.EndDate)
	if !ok {
		return
	}
	uid := "timeline-" + tl.TimelineID
	summary := tl.Title
	if g.Title != "" {
		summary = fmt.Sprintf("%s: %s", g.Title, tl.Title)
	}

	ev := cal.AddEvent(uid)
	ev.SetDtStampTime(time.Now().UTC())
	ev.SetSummary(summary)
	if g.Category != "" {
		ev.SetProperty(ical.ComponentPropertyCategories, g.Category)
	}

	if w, ok := temporal.ParseWindow(tl.StartTime, tl.EndTime); ok {
		// The daily window applies uniformly across the span; export the
		// span's first day's occurrence and let the span show via DTEND date.
		ev.SetStartAt(atClock(span.Start, w.Start))
		ev.SetEndAt(atClock(span.End, w.End))
		return
	}
	start := atClock(span.Start, temporal.Clock{})
	end := atClock(span.End, temporal.Clock{}).AddDate(0, 0, 1)
	ev.SetAllDayStartAt(start)
	ev.SetAllDayEndAt(end)
}

func atClock(d temporal.Date, c temporal.Clock) time.Time {
	t, _ := time.Parse("2006-01-02", d.String())
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, time.UTC)
}
