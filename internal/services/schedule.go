package services

import (
	"context"
	"fmt"

	"github.com/planit-app/planit-server/internal/conflict"
	"github.com/planit-app/planit-server/internal/layout"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
	"github.com/planit-app/planit-server/internal/temporal"
)

// ScheduleService assembles a user's snapshot from the store and runs the
// pure scheduling core over it: conflict checks, grid layout, ICS export.
// The snapshot is rebuilt from the store on every call; the core keeps no
// incremental state.
type ScheduleService struct {
	store store.Store
	grid  layout.Config
}

func NewScheduleService(s store.Store, grid layout.Config) *ScheduleService {
	return &ScheduleService{store: s, grid: grid}
}

// Snapshot loads all of a user's activities, goals and teams in one pass.
func (s *ScheduleService) Snapshot(ctx context.Context, userID string) (model.Snapshot, error) {
	if userID == "" {
		return model.Snapshot{}, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	acts, err := s.store.Activities().List(ctx, userID)
	if err != nil {
		return model.Snapshot{}, err
	}
	goals, err := s.store.Goals().List(ctx, userID)
	if err != nil {
		return model.Snapshot{}, err
	}
	teams, err := s.store.Teams().List(ctx, userID)
	if err != nil {
		return model.Snapshot{}, err
	}
	return model.Snapshot{Activities: acts, Goals: goals, Teams: teams}, nil
}

// CheckConflicts runs the overlap detector for a candidate against the
// user's current snapshot. The result is advisory; writes are never blocked.
func (s *ScheduleService) CheckConflicts(ctx context.Context, userID string, cand conflict.Candidate, excludeID string) ([]conflict.Conflict, error) {
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := conflict.FindConflicts(cand, snap, excludeID)
	if out == nil {
		out = []conflict.Conflict{}
	}
	return out, nil
}

// LayoutDay positions one calendar day's activities and meetings on the
// hour grid.
func (s *ScheduleService) LayoutDay(ctx context.Context, userID, date string) ([]layout.PositionedBlock, error) {
	day, ok := temporal.ParseDate(date)
	if !ok {
		return nil, fmt.Errorf("%w: invalid date %q", model.ErrValidation, date)
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	var dayActivities []model.Activity
	for _, a := range snap.Activities {
		if d, ok := temporal.ParseDate(a.Date); ok && d.Equal(day) {
			dayActivities = append(dayActivities, a)
		}
	}
	var dayMeetings []model.Meeting
	for _, t := range snap.Teams {
		for _, m := range t.Meetings {
			if d, ok := temporal.ParseDate(m.Date); ok && d.Equal(day) {
				dayMeetings = append(dayMeetings, m)
			}
		}
	}
	return layout.LayoutDay(s.grid, dayActivities, dayMeetings), nil
}

// LayoutMonth produces the spanning goal-timeline bars for a "YYYY-MM" month.
func (s *ScheduleService) LayoutMonth(ctx context.Context, userID, month string) ([]layout.TimelineBlock, error) {
	first, last, ok := temporal.MonthRange(month)
	if !ok {
		return nil, fmt.Errorf("%w: invalid month %q", model.ErrValidation, month)
	}
	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	blocks := layout.LayoutMonthTimelines(s.grid, snap.Goals, first, last)
	if blocks == nil {
		blocks = []layout.TimelineBlock{}
	}
	return blocks, nil
}
