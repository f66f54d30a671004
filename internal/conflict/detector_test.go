package conflict

import (
	"reflect"
	"testing"

	"github.com/planit-app/planit-server/internal/model"
)

func snapshotWith(activities []model.Activity, goals []model.Goal, teams []model.Team) model.Snapshot {
	return model.Snapshot{Activities: activities, Goals: goals, Teams: teams}
}

func TestActivityCandidateOverlapsActivity(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "a1", Title: "Standup", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
	}, nil, nil)

	got := FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-10", StartTime: "09:30", EndTime: "10:30",
	}, snap, "")

	want := []Conflict{{Type: "activity", Title: "Standup", Time: "09:00 - 10:00", Date: "2025-03-10"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAllDayCandidatePerformsNoCheck(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "a1", Title: "Busy", Date: "2025-01-01", StartTime: "00:00", EndTime: "23:59"},
	}, nil, nil)

	for _, kind := range []Kind{KindActivity, KindMeeting} {
		got := FindConflicts(Candidate{Kind: kind, Date: "2025-01-01"}, snap, "")
		if len(got) != 0 {
			t.Errorf("%s candidate without times: got %d conflicts, want 0", kind, len(got))
		}
	}
}

func TestHalfOpenBoundaryDoesNotConflict(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "a1", Title: "Early", Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00"},
	}, nil, nil)

	got := FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-10", StartTime: "11:00", EndTime: "12:00",
	}, snap, "")
	if len(got) != 0 {
		t.Fatalf("back-to-back items reported as conflicting: %+v", got)
	}
}

func TestDisjointDatesNeverConflict(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "a1", Title: "Elsewhere", Date: "2025-03-11", StartTime: "09:00", EndTime: "17:00"},
	}, nil, nil)

	got := FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-10", StartTime: "09:00", EndTime: "17:00",
	}, snap, "")
	if len(got) != 0 {
		t.Fatalf("different days reported as conflicting: %+v", got)
	}
}

func TestActivityCandidateAgainstAllDayTimeline(t *testing.T) {
	snap := snapshotWith(nil, []model.Goal{{
		GoalID: "g1", Title: "Launch prep",
		Timelines: []model.Timeline{{TimelineID: "t1", StartDate: "2025-03-01", EndDate: "2025-03-31"}},
	}}, nil)

	got := FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-15", StartTime: "09:00", EndTime: "10:00",
	}, snap, "")

	want := []Conflict{{Type: "goal", Title: "Launch prep", Time: "All day", Date: "2025-03-15"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestActivityCandidateAgainstTimedTimeline(t *testing.T) {
	snap := snapshotWith(nil, []model.Goal{{
		GoalID: "g1", Title: "Focus block",
		Timelines: []model.Timeline{{
			TimelineID: "t1", StartDate: "2025-03-01", EndDate: "2025-03-31",
			StartTime: "14:00", EndTime: "16:00",
		}},
	}}, nil)

	// Morning activity does not touch the 14:00-16:00 daily window.
	got := FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-15", StartTime: "09:00", EndTime: "10:00",
	}, snap, "")
	if len(got) != 0 {
		t.Fatalf("outside the daily window: got %+v", got)
	}

	got = FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-15", StartTime: "15:00", EndTime: "17:00",
	}, snap, "")
	if len(got) != 1 || got[0].Time != "14:00 - 16:00" {
		t.Fatalf("inside the daily window: got %+v", got)
	}
}

func TestTimelineCandidateDateContainment(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "a1", Title: "Inside", Date: "2025-01-05"},
		{ActivityID: "a2", Title: "Outside", Date: "2025-01-15"},
	}, nil, nil)

	got := FindConflicts(Candidate{
		Kind: KindTimeline, StartDate: "2025-01-01", EndDate: "2025-01-10",
	}, snap, "")

	want := []Conflict{{Type: "activity", Title: "Inside", Time: "All day", Date: "2025-01-05"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTimelineCandidateReportsActivityOwnTimeLabel(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "a1", Title: "Review", Date: "2025-01-05", StartTime: "13:00", EndTime: "14:00"},
	}, nil, nil)

	// Candidate has no window: reported unconditionally, labeled with the
	// activity's own time range.
	got := FindConflicts(Candidate{
		Kind: KindTimeline, StartDate: "2025-01-01", EndDate: "2025-01-10",
	}, snap, "")
	if len(got) != 1 || got[0].Time != "13:00 - 14:00" {
		t.Fatalf("got %+v", got)
	}
}

func TestTimelineVsTimelineRequiresBothWindows(t *testing.T) {
	snap := snapshotWith(nil, []model.Goal{{
		GoalID: "g2", Title: "Other goal",
		Timelines: []model.Timeline{{TimelineID: "t2", StartDate: "2025-01-05", EndDate: "2025-01-20"}},
	}}, nil)

	// Overlapping date ranges, but neither side has a daily window.
	got := FindConflicts(Candidate{
		Kind: KindTimeline, StartDate: "2025-01-01", EndDate: "2025-01-10",
	}, snap, "")
	if len(got) != 0 {
		t.Fatalf("two all-day timelines reported conflicting: %+v", got)
	}

	// Candidate gains a window; the existing timeline still has none.
	got = FindConflicts(Candidate{
		Kind: KindTimeline, StartDate: "2025-01-01", EndDate: "2025-01-10",
		StartTime: "09:00", EndTime: "10:00",
	}, snap, "")
	if len(got) != 0 {
		t.Fatalf("one-sided window reported conflicting: %+v", got)
	}
}

func TestTimelineVsTimelineWithBothWindows(t *testing.T) {
	snap := snapshotWith(nil, []model.Goal{{
		GoalID: "g2", Title: "Other goal",
		Timelines: []model.Timeline{{
			TimelineID: "t2", StartDate: "2025-01-05", EndDate: "2025-01-20",
			StartTime: "09:00", EndTime: "11:00",
		}},
	}}, nil)

	got := FindConflicts(Candidate{
		Kind: KindTimeline, StartDate: "2025-01-01", EndDate: "2025-01-10",
		StartTime: "10:00", EndTime: "12:00",
	}, snap, "")

	want := []Conflict{{Type: "goal", Title: "Other goal", Time: "09:00 - 11:00", Date: "2025-01-05"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTimelineSelfExclusionByGoalID(t *testing.T) {
	snap := snapshotWith(nil, []model.Goal{{
		GoalID: "g1", Title: "Edited goal",
		Timelines: []model.Timeline{{
			TimelineID: "t1", StartDate: "2025-01-01", EndDate: "2025-01-10",
			StartTime: "09:00", EndTime: "10:00",
		}},
	}}, nil)

	// The edited span still overlaps the stored span; exclusion by parent
	// goal id must suppress the self-conflict.
	got := FindConflicts(Candidate{
		Kind: KindTimeline, StartDate: "2025-01-02", EndDate: "2025-01-12",
		StartTime: "09:00", EndTime: "10:00",
	}, snap, "g1")
	if len(got) != 0 {
		t.Fatalf("timeline conflicts with itself on edit: %+v", got)
	}
}

func TestMeetingCandidateSelfExclusion(t *testing.T) {
	snap := snapshotWith(nil, nil, []model.Team{{
		TeamID: "team1", Name: "Core",
		Meetings: []model.Meeting{
			{MeetingID: "m1", Title: "Sync", Date: "2025-02-01", StartTime: "10:00", EndTime: "11:00"},
			{MeetingID: "m2", Title: "Retro", Date: "2025-02-01", StartTime: "10:30", EndTime: "11:30"},
		},
	}})

	got := FindConflicts(Candidate{
		Kind: KindMeeting, Date: "2025-02-01", StartTime: "10:00", EndTime: "11:00",
	}, snap, "m1")
	if len(got) != 1 || got[0].Title != "Retro" {
		t.Fatalf("got %+v, want only the other meeting", got)
	}
}

func TestMalformedDatesAreSkipped(t *testing.T) {
	snap := snapshotWith([]model.Activity{
		{ActivityID: "bad", Title: "Corrupt", Date: "not-a-date", StartTime: "09:00", EndTime: "10:00"},
		{ActivityID: "ok", Title: "Fine", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
	}, []model.Goal{{
		GoalID: "g1", Title: "Corrupt goal",
		Timelines: []model.Timeline{{TimelineID: "t1", StartDate: "2025-03-01", EndDate: "garbage"}},
	}}, nil)

	got := FindConflicts(Candidate{
		Kind: KindActivity, Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00",
	}, snap, "")
	if len(got) != 1 || got[0].Title != "Fine" {
		t.Fatalf("got %+v, want only the well-formed record", got)
	}
}

func TestUnknownCandidateKind(t *testing.T) {
	got := FindConflicts(Candidate{Kind: "something-else", Date: "2025-01-01"}, model.Snapshot{}, "")
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}
