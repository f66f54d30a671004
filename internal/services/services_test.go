package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planit-app/planit-server/internal/conflict"
	"github.com/planit-app/planit-server/internal/layout"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/services"
	"github.com/planit-app/planit-server/internal/store"
	"github.com/planit-app/planit-server/internal/store/sqlite"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "planit.db"))
	require.NoError(t, err)
	return st
}

func seedUser(t *testing.T, st store.Store, userID string) {
	t.Helper()
	_, err := services.NewUserService(st).CreateUser(context.Background(),
		&model.User{UserID: userID, Email: userID + "@example.com"})
	require.NoError(t, err)
}

func TestActivityService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := services.NewActivityService(newTestStore(t))

	cases := []struct {
		name string
		a    model.Activity
	}{
		{"missing user", model.Activity{Title: "x", Date: "2025-03-10"}},
		{"missing title", model.Activity{UserID: "alice", Date: "2025-03-10"}},
		{"bad date", model.Activity{UserID: "alice", Title: "x", Date: "03/10/2025"}},
		{"one-sided window", model.Activity{UserID: "alice", Title: "x", Date: "2025-03-10", StartTime: "09:00"}},
		{"reversed window", model.Activity{UserID: "alice", Title: "x", Date: "2025-03-10", StartTime: "10:00", EndTime: "09:00"}},
		{"unknown urgency", model.Activity{UserID: "alice", Title: "x", Date: "2025-03-10", Urgency: "critical"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateActivity(ctx, &tc.a)
			assert.True(t, errors.Is(err, model.ErrValidation), "got %v", err)
		})
	}
}

func TestActivityService_DefaultsUrgency(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")

	out, err := services.NewActivityService(st).CreateActivity(ctx, &model.Activity{
		UserID: "alice", Title: "Walk", Date: "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, model.UrgencyMedium, out.Urgency)
}

func TestGoalService_TimelineRequiresParent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")
	svc := services.NewGoalService(st)

	_, err := svc.AddTimeline(ctx, "alice", "no-such-goal", &model.Timeline{
		Title: "Phase", StartDate: "2025-03-01", EndDate: "2025-03-15",
	})
	assert.True(t, errors.Is(err, model.ErrNotFound), "got %v", err)
}

func TestGoalService_ProgressBounds(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")
	svc := services.NewGoalService(st)

	g, err := svc.CreateGoal(ctx, &model.Goal{UserID: "alice", Title: "Ship"})
	require.NoError(t, err)

	assert.Error(t, svc.UpdateProgress(ctx, "alice", g.GoalID, -1))
	assert.Error(t, svc.UpdateProgress(ctx, "alice", g.GoalID, 101))
	assert.NoError(t, svc.UpdateProgress(ctx, "alice", g.GoalID, 100))
}

func TestGoalService_RejectsReversedTimelineSpan(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")

	_, err := services.NewGoalService(st).CreateGoal(ctx, &model.Goal{
		UserID: "alice", Title: "Ship",
		Timelines: []model.Timeline{{Title: "Phase", StartDate: "2025-03-15", EndDate: "2025-03-01"}},
	})
	assert.True(t, errors.Is(err, model.ErrValidation), "got %v", err)
}

func TestScheduleService_ConflictsAreAdvisory(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")
	acts := services.NewActivityService(st)
	sched := services.NewScheduleService(st, layout.DefaultConfig())

	_, err := acts.CreateActivity(ctx, &model.Activity{
		UserID: "alice", Title: "Gym", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	out, err := sched.CheckConflicts(ctx, "alice", conflict.Candidate{
		Kind: conflict.KindActivity, Date: "2025-03-10", StartTime: "09:30", EndTime: "10:30",
	}, "")
	require.NoError(t, err)
	require.Len(t, out, 1)

	// The overlapping write itself still succeeds.
	_, err = acts.CreateActivity(ctx, &model.Activity{
		UserID: "alice", Title: "Overlap anyway", Date: "2025-03-10", StartTime: "09:30", EndTime: "10:30",
	})
	assert.NoError(t, err)
}

func TestScheduleService_CheckConflictsReturnsEmptySliceNotNil(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")
	sched := services.NewScheduleService(st, layout.DefaultConfig())

	out, err := sched.CheckConflicts(ctx, "alice", conflict.Candidate{
		Kind: conflict.KindActivity, Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00",
	}, "")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestScheduleService_LayoutDayFiltersByDate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")
	acts := services.NewActivityService(st)
	sched := services.NewScheduleService(st, layout.DefaultConfig())

	for _, a := range []model.Activity{
		{UserID: "alice", Title: "Today", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
		{UserID: "alice", Title: "Tomorrow", Date: "2025-03-11", StartTime: "09:00", EndTime: "10:00"},
	} {
		_, err := acts.CreateActivity(ctx, &a)
		require.NoError(t, err)
	}

	blocks, err := sched.LayoutDay(ctx, "alice", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Today", blocks[0].Title)

	_, err = sched.LayoutDay(ctx, "alice", "bogus")
	assert.True(t, errors.Is(err, model.ErrValidation), "got %v", err)
}

func TestScheduleService_LayoutMonthRejectsBadMonth(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	seedUser(t, st, "alice")
	sched := services.NewScheduleService(st, layout.DefaultConfig())

	_, err := sched.LayoutMonth(ctx, "alice", "2025-3")
	assert.True(t, errors.Is(err, model.ErrValidation), "got %v", err)
}
