package layout

import (
	"reflect"
	"testing"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/temporal"
)

func TestLayoutDayGeometry(t *testing.T) {
	cfg := DefaultConfig()
	blocks := LayoutDay(cfg, []model.Activity{
		{ActivityID: "a1", Title: "Deep work", StartTime: "09:30", EndTime: "11:00"},
	}, nil)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks", len(blocks))
	}
	b := blocks[0]
	if b.Top != 9.5*cfg.HourHeight+cfg.TopPadding {
		t.Errorf("top = %v", b.Top)
	}
	if b.Height != 1.5*cfg.HourHeight-cfg.BorderAdjustment {
		t.Errorf("height = %v", b.Height)
	}
	if b.AllDay {
		t.Error("timed item marked all-day")
	}
}

func TestLayoutDayMinimumDurationFloor(t *testing.T) {
	cfg := DefaultConfig()
	blocks := LayoutDay(cfg, []model.Activity{
		{ActivityID: "a1", StartTime: "10:00", EndTime: "10:05"},
	}, nil)

	want := cfg.MinDurationHours*cfg.HourHeight - cfg.BorderAdjustment
	if blocks[0].Height != want {
		t.Fatalf("height = %v, want floor %v", blocks[0].Height, want)
	}
}

func TestLayoutDayAllDayFallback(t *testing.T) {
	cfg := DefaultConfig()
	blocks := LayoutDay(cfg, []model.Activity{{ActivityID: "a1"}}, nil)

	b := blocks[0]
	if !b.AllDay {
		t.Error("missing times should mark block all-day")
	}
	if b.Top != cfg.TopPadding {
		t.Errorf("top = %v, want midnight", b.Top)
	}
	if b.Height != 1*cfg.HourHeight-cfg.BorderAdjustment {
		t.Errorf("height = %v, want one hour", b.Height)
	}
}

func TestStackingMonotonicity(t *testing.T) {
	cfg := DefaultConfig()
	// Four mutually overlapping activities, in input order.
	acts := []model.Activity{
		{ActivityID: "a1", StartTime: "09:00", EndTime: "12:00"},
		{ActivityID: "a2", StartTime: "09:30", EndTime: "11:30"},
		{ActivityID: "a3", StartTime: "10:00", EndTime: "11:00"},
		{ActivityID: "a4", StartTime: "10:15", EndTime: "10:45"},
	}
	blocks := LayoutDay(cfg, acts, nil)

	for i, b := range blocks {
		if b.Overlaps != i {
			t.Errorf("block %d: overlaps = %d, want %d", i, b.Overlaps, i)
		}
		if b.OffsetX != float64(i)*cfg.OffsetStep {
			t.Errorf("block %d: offsetX = %v, want %v", i, b.OffsetX, float64(i)*cfg.OffsetStep)
		}
		if b.ZIndex != cfg.ZBase+i+1 {
			t.Errorf("block %d: zIndex = %d, want %d", i, b.ZIndex, cfg.ZBase+i+1)
		}
	}
}

func TestStackingIsPerKind(t *testing.T) {
	cfg := DefaultConfig()
	blocks := LayoutDay(cfg,
		[]model.Activity{{ActivityID: "a1", StartTime: "09:00", EndTime: "10:00"}},
		[]model.Meeting{{MeetingID: "m1", StartTime: "09:00", EndTime: "10:00"}},
	)

	// Same slot, different kinds: neither counts the other as an overlap.
	for _, b := range blocks {
		if b.Overlaps != 0 {
			t.Errorf("%s %s: overlaps = %d, want 0", b.Kind, b.ID, b.Overlaps)
		}
	}
}

func TestLayoutMonthTimelinesClamping(t *testing.T) {
	cfg := DefaultConfig()
	monthStart := temporal.MustDate("2025-03-01")
	monthEnd := temporal.MustDate("2025-03-31")

	goals := []model.Goal{{
		GoalID: "g1", Title: "Ship it",
		Timelines: []model.Timeline{
			{TimelineID: "t1", Title: "Phase 1", StartDate: "2025-02-20", EndDate: "2025-03-10"},
			{TimelineID: "t2", Title: "Phase 2", StartDate: "2025-03-05", EndDate: "2025-03-12", StartTime: "14:00", EndTime: "16:00"},
			{TimelineID: "t3", Title: "Elsewhere", StartDate: "2025-04-01", EndDate: "2025-04-10"},
			{TimelineID: "t4", Title: "Broken", StartDate: "oops", EndDate: "2025-03-09"},
		},
	}}

	blocks := LayoutMonthTimelines(cfg, goals, monthStart, monthEnd)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	p1 := blocks[0]
	if p1.StartDay != 0 || p1.SpanDays != 10 {
		t.Errorf("phase 1 clamp: startDay=%d spanDays=%d", p1.StartDay, p1.SpanDays)
	}
	if !p1.PartialStart || p1.PartialEnd {
		t.Errorf("phase 1 partial flags: start=%v end=%v", p1.PartialStart, p1.PartialEnd)
	}
	if !p1.AllDay || p1.Height != cfg.HeaderHeight {
		t.Errorf("phase 1 should render as header bar, got %+v", p1)
	}

	p2 := blocks[1]
	if p2.StartDay != 4 || p2.SpanDays != 8 {
		t.Errorf("phase 2: startDay=%d spanDays=%d", p2.StartDay, p2.SpanDays)
	}
	if p2.Top != 14*cfg.HourHeight+cfg.TopPadding {
		t.Errorf("phase 2 top = %v", p2.Top)
	}
}

func TestLayoutDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	goals := []model.Goal{{
		GoalID: "g1",
		Timelines: []model.Timeline{
			{TimelineID: "t1", StartDate: "2025-03-03", EndDate: "2025-03-20", StartTime: "08:45", EndTime: "09:15"},
		},
	}}
	monthStart := temporal.MustDate("2025-03-01")
	monthEnd := temporal.MustDate("2025-03-31")

	first := LayoutMonthTimelines(cfg, goals, monthStart, monthEnd)
	second := LayoutMonthTimelines(cfg, goals, monthStart, monthEnd)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("layout is not deterministic")
	}

	acts := []model.Activity{
		{ActivityID: "a1", StartTime: "09:00", EndTime: "10:00"},
		{ActivityID: "a2", StartTime: "09:30", EndTime: "10:30"},
	}
	if !reflect.DeepEqual(LayoutDay(cfg, acts, nil), LayoutDay(cfg, acts, nil)) {
		t.Fatal("day layout is not deterministic")
	}
}
