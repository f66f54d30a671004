// Package services holds the orchestration layer between HTTP handlers and
// the store. Services validate input, mint ids, and call the pure scheduling
// core; they hold no state beyond their dependencies.
package services

import (
	"context"
	"fmt"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
	"github.com/planit-app/planit-server/internal/temporal"
)

type ActivityService struct {
	store store.Store
}

func NewActivityService(s store.Store) *ActivityService {
	return &ActivityService{store: s}
}

func (s *ActivityService) CreateActivity(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	if err := validateActivity(a); err != nil {
		return nil, err
	}
	if a.Urgency == "" {
		a.Urgency = model.UrgencyMedium
	}
	return s.store.Activities().Create(ctx, a)
}

func (s *ActivityService) GetActivity(ctx context.Context, userID, activityID string) (*model.Activity, error) {
	return s.store.Activities().GetByID(ctx, userID, activityID)
}

func (s *ActivityService) ListActivities(ctx context.Context, userID string) ([]model.Activity, error) {
	return s.store.Activities().List(ctx, userID)
}

func (s *ActivityService) UpdateActivity(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	if err := validateActivity(a); err != nil {
		return nil, err
	}
	return s.store.Activities().Update(ctx, a)
}

func (s *ActivityService) DeleteActivity(ctx context.Context, userID, activityID string) error {
	return s.store.Activities().Delete(ctx, userID, activityID)
}

func validateActivity(a *model.Activity) error {
	if a.UserID == "" {
		return fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if a.Title == "" {
		return fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if _, ok := temporal.ParseDate(a.Date); !ok {
		return fmt.Errorf("%w: invalid date %q", model.ErrValidation, a.Date)
	}
	if a.Urgency != "" && !a.Urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", model.ErrValidation, a.Urgency)
	}
	return validateOptionalWindow(a.StartTime, a.EndTime)
}

// validateOptionalWindow accepts an absent window (both empty) or a concrete
// one with start strictly before end. One-sided or reversed windows are
// validation errors at write time, even though the read-side core tolerates
// them by treating the item as all-day.
func validateOptionalWindow(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	if start == "" || end == "" {
		return fmt.Errorf("%w: startTime and endTime must be set together", model.ErrValidation)
	}
	w, ok := temporal.ParseWindow(start, end)
	if !ok {
		return fmt.Errorf("%w: invalid time range %q - %q", model.ErrValidation, start, end)
	}
	if !w.Start.Before(w.End) {
		return fmt.Errorf("%w: startTime must be before endTime", model.ErrValidation)
	}
	return nil
}
