package services

import (
	"context"
	"fmt"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
	"github.com/planit-app/planit-server/internal/temporal"
)

type GoalService struct {
	store store.Store
}

func NewGoalService(s store.Store) *GoalService {
	return &GoalService{store: s}
}

func (s *GoalService) CreateGoal(ctx context.Context, g *model.Goal) (*model.Goal, error) {
	if g.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if g.Title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if g.Progress < 0 || g.Progress > 100 {
		return nil, fmt.Errorf("%w: progress must be in [0,100]", model.ErrValidation)
	}
	for i := range g.Timelines {
		if err := validateTimeline(&g.Timelines[i]); err != nil {
			return nil, err
		}
	}
	return s.store.Goals().Create(ctx, g)
}

func (s *GoalService) GetGoal(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	return s.store.Goals().GetByID(ctx, userID, goalID)
}

func (s *GoalService) ListGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	return s.store.Goals().List(ctx, userID)
}

func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, progress int) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("%w: progress must be in [0,100]", model.ErrValidation)
	}
	return s.store.Goals().UpdateProgress(ctx, userID, goalID, progress)
}

// DeleteGoal removes the goal and, through the store, all of its timelines.
func (s *GoalService) DeleteGoal(ctx context.Context, userID, goalID string) error {
	return s.store.Goals().Delete(ctx, userID, goalID)
}

func (s *GoalService) AddTimeline(ctx context.Context, userID, goalID string, tl *model.Timeline) (*model.Timeline, error) {
	// Timelines never exist without a parent goal.
	if _, err := s.store.Goals().GetByID(ctx, userID, goalID); err != nil {
		return nil, err
	}
	tl.GoalID = goalID
	if err := validateTimeline(tl); err != nil {
		return nil, err
	}
	return s.store.Timelines().Create(ctx, tl)
}

func (s *GoalService) UpdateTimeline(ctx context.Context, userID, goalID string, tl *model.Timeline) (*model.Timeline, error) {
	if _, err := s.store.Goals().GetByID(ctx, userID, goalID); err != nil {
		return nil, err
	}
	tl.GoalID = goalID
	if err := validateTimeline(tl); err != nil {
		return nil, err
	}
	return s.store.Timelines().Update(ctx, tl)
}

func (s *GoalService) DeleteTimeline(ctx context.Context, userID, goalID, timelineID string) error {
	if _, err := s.store.Goals().GetByID(ctx, userID, goalID); err != nil {
		return err
	}
	return s.store.Timelines().Delete(ctx, goalID, timelineID)
}

func validateTimeline(tl *model.Timeline) error {
	if tl.Title == "" {
		return fmt.Errorf("%w: timeline title is required", model.ErrValidation)
	}
	if _, ok := temporal.ParseDate(tl.StartDate); !ok {
		return fmt.Errorf("%w: invalid timeline start date %q", model.ErrValidation, tl.StartDate)
	}
	if _, ok := temporal.ParseDate(tl.EndDate); !ok {
		return fmt.Errorf("%w: invalid timeline end date %q", model.ErrValidation, tl.EndDate)
	}
	if _, ok := temporal.ParseSpan(tl.StartDate, tl.EndDate); !ok {
		return fmt.Errorf("%w: timeline start date must not be after end date", model.ErrValidation)
	}
	return validateOptionalWindow(tl.StartTime, tl.EndTime)
}
