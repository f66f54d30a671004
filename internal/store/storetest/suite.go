package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Drivers provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()
	email := userID + "@example.test"

	// Users
	u := &model.User{UserID: userID, Email: email, TimeZone: "UTC"}
	if _, err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if got, err := s.Users().Get(ctx, userID); err != nil || got == nil || got.UserID != userID {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}

	// Activities
	a, err := s.Activities().Create(ctx, &model.Activity{
		UserID: userID, Title: "Dentist", Date: "2025-03-10",
		StartTime: "09:00", EndTime: "10:00", Urgency: model.UrgencyHigh,
	})
	if err != nil {
		t.Fatalf("CreateActivity: %v", err)
	}
	if a.ActivityID == "" {
		t.Fatal("CreateActivity: empty id")
	}
	if got, err := s.Activities().GetByID(ctx, userID, a.ActivityID); err != nil || got.Title != "Dentist" {
		t.Fatalf("GetActivity: got=%v err=%v", got, err)
	}
	a.Title = "Dentist (moved)"
	a.StartTime, a.EndTime = "11:00", "12:00"
	if upd, err := s.Activities().Update(ctx, a); err != nil || upd.StartTime != "11:00" {
		t.Fatalf("UpdateActivity: got=%v err=%v", upd, err)
	}
	// All-day activity: empty time strings round-trip as empty, not null.
	allDay, err := s.Activities().Create(ctx, &model.Activity{UserID: userID, Title: "Conference", Date: "2025-03-11"})
	if err != nil {
		t.Fatalf("CreateActivity all-day: %v", err)
	}
	if got, err := s.Activities().GetByID(ctx, userID, allDay.ActivityID); err != nil || got.StartTime != "" || got.EndTime != "" {
		t.Fatalf("all-day round-trip: got=%v err=%v", got, err)
	}
	if lst, err := s.Activities().List(ctx, userID); err != nil || len(lst) != 2 {
		t.Fatalf("ListActivities: n=%d err=%v", len(lst), err)
	}

	// Goals with nested timelines
	g, err := s.Goals().Create(ctx, &model.Goal{
		UserID: userID, Title: "Learn Go", Category: "education",
		Timelines: []model.Timeline{
			{Title: "Basics", StartDate: "2025-03-01", EndDate: "2025-03-15"},
			{Title: "Project", StartDate: "2025-03-16", EndDate: "2025-03-31", StartTime: "19:00", EndTime: "21:00"},
		},
	})
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if len(g.Timelines) != 2 || g.Timelines[0].TimelineID == "" {
		t.Fatalf("CreateGoal timelines: %+v", g.Timelines)
	}
	if got, err := s.Goals().GetByID(ctx, userID, g.GoalID); err != nil || len(got.Timelines) != 2 {
		t.Fatalf("GetGoal: got=%v err=%v", got, err)
	}
	if err := s.Goals().UpdateProgress(ctx, userID, g.GoalID, 40); err != nil {
		t.Fatalf("UpdateProgress: %v", err)
	}
	if got, _ := s.Goals().GetByID(ctx, userID, g.GoalID); got.Progress != 40 {
		t.Fatalf("progress not persisted: %d", got.Progress)
	}

	tl, err := s.Timelines().Create(ctx, &model.Timeline{
		GoalID: g.GoalID, Title: "Polish", StartDate: "2025-04-01", EndDate: "2025-04-07",
	})
	if err != nil {
		t.Fatalf("CreateTimeline: %v", err)
	}
	tl.EndDate = "2025-04-10"
	if _, err := s.Timelines().Update(ctx, tl); err != nil {
		t.Fatalf("UpdateTimeline: %v", err)
	}
	if tls, err := s.Timelines().ListByGoal(ctx, g.GoalID); err != nil || len(tls) != 3 {
		t.Fatalf("ListByGoal: n=%d err=%v", len(tls), err)
	}
	if err := s.Timelines().Delete(ctx, g.GoalID, tl.TimelineID); err != nil {
		t.Fatalf("DeleteTimeline: %v", err)
	}

	// Teams with nested meetings
	tm, err := s.Teams().Create(ctx, &model.Team{UserID: userID, Name: "Platform"})
	if err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	mtg, err := s.Meetings().Create(ctx, &model.Meeting{
		TeamID: tm.TeamID, Title: "Planning", Date: "2025-03-12", StartTime: "10:00", EndTime: "11:00",
	})
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	mtg.EndTime = "11:30"
	if _, err := s.Meetings().Update(ctx, mtg); err != nil {
		t.Fatalf("UpdateMeeting: %v", err)
	}
	if teams, err := s.Teams().List(ctx, userID); err != nil || len(teams) != 1 || len(teams[0].Meetings) != 1 {
		t.Fatalf("ListTeams: %+v err=%v", teams, err)
	}

	// Goal delete cascades to timelines.
	if err := s.Goals().Delete(ctx, userID, g.GoalID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if tls, err := s.Timelines().ListByGoal(ctx, g.GoalID); err != nil || len(tls) != 0 {
		t.Fatalf("goal delete did not cascade: n=%d err=%v", len(tls), err)
	}

	// Team delete cascades to meetings.
	if err := s.Teams().Delete(ctx, userID, tm.TeamID); err != nil {
		t.Fatalf("DeleteTeam: %v", err)
	}
	if ms, err := s.Meetings().ListByTeam(ctx, tm.TeamID); err != nil || len(ms) != 0 {
		t.Fatalf("team delete did not cascade: n=%d err=%v", len(ms), err)
	}

	// Not-found mapping
	if _, err := s.Activities().GetByID(ctx, userID, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetActivity missing: err=%v, want ErrNotFound", err)
	}
	if err := s.Activities().Delete(ctx, userID, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteActivity missing: err=%v, want ErrNotFound", err)
	}

	// Cleanup paths
	if err := s.Activities().Delete(ctx, userID, a.ActivityID); err != nil {
		t.Fatalf("DeleteActivity: %v", err)
	}
	if err := s.Users().Delete(ctx, userID); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
}
