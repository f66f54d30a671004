package ics

import (
	"strings"
	"testing"

	"github.com/planit-app/planit-server/internal/model"
)

func TestExportTimedActivity(t *testing.T) {
	out := Export(model.Snapshot{Activities: []model.Activity{
		{ActivityID: "a1", Title: "Dentist", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
	}})

	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("not a calendar document")
	}
	if !strings.Contains(out, "UID:activity-a1") {
		t.Error("missing activity UID")
	}
	if !strings.Contains(out, "SUMMARY:Dentist") {
		t.Error("missing summary")
	}
	if !strings.Contains(out, "DTSTART:20250310T090000Z") {
		t.Errorf("missing timed DTSTART:\n%s", out)
	}
}

func TestExportAllDayMeetingUsesDateValue(t *testing.T) {
	out := Export(model.Snapshot{Teams: []model.Team{{
		TeamID: "t1", Name: "Core",
		Meetings: []model.Meeting{{MeetingID: "m1", Title: "Offsite", Date: "2025-05-01"}},
	}}})

	if !strings.Contains(out, "DTSTART;VALUE=DATE:20250501") {
		t.Errorf("all-day meeting should use DATE value:\n%s", out)
	}
	if !strings.Contains(out, "DTEND;VALUE=DATE:20250502") {
		t.Errorf("all-day end should be the exclusive next day:\n%s", out)
	}
}

func TestExportTimelineSummaryIncludesGoal(t *testing.T) {
	out := Export(model.Snapshot{Goals: []model.Goal{{
		GoalID: "g1", Title: "Learn Go", Category: "education",
		Timelines: []model.Timeline{{TimelineID: "tl1", Title: "Basics", StartDate: "2025-03-01", EndDate: "2025-03-15"}},
	}}})

	if !strings.Contains(out, "SUMMARY:Learn Go: Basics") {
		t.Errorf("timeline summary should carry the goal title:\n%s", out)
	}
	if !strings.Contains(out, "CATEGORIES:education") {
		t.Errorf("missing goal category:\n%s", out)
	}
}

func TestExportSkipsMalformedRecords(t *testing.T) {
	out := Export(model.Snapshot{Activities: []model.Activity{
		{ActivityID: "bad", Title: "Corrupt", Date: "not-a-date"},
		{ActivityID: "ok", Title: "Fine", Date: "2025-03-10"},
	}})

	if strings.Contains(out, "Corrupt") {
		t.Error("malformed record was exported")
	}
	if !strings.Contains(out, "SUMMARY:Fine") {
		t.Error("well-formed record missing")
	}
}
