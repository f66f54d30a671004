package services

import (
	"context"
	"fmt"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
	"github.com/planit-app/planit-server/internal/temporal"
)

type TeamService struct {
	store store.Store
}

func NewTeamService(s store.Store) *TeamService {
	return &TeamService{store: s}
}

func (s *TeamService) CreateTeam(ctx context.Context, t *model.Team) (*model.Team, error) {
	if t.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", model.ErrValidation)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("%w: team name is required", model.ErrValidation)
	}
	return s.store.Teams().Create(ctx, t)
}

func (s *TeamService) GetTeam(ctx context.Context, userID, teamID string) (*model.Team, error) {
	return s.store.Teams().GetByID(ctx, userID, teamID)
}

func (s *TeamService) ListTeams(ctx context.Context, userID string) ([]model.Team, error) {
	return s.store.Teams().List(ctx, userID)
}

// DeleteTeam removes the team and, through the store, all of its meetings.
func (s *TeamService) DeleteTeam(ctx context.Context, userID, teamID string) error {
	return s.store.Teams().Delete(ctx, userID, teamID)
}

func (s *TeamService) AddMeeting(ctx context.Context, userID, teamID string, m *model.Meeting) (*model.Meeting, error) {
	if _, err := s.store.Teams().GetByID(ctx, userID, teamID); err != nil {
		return nil, err
	}
	m.TeamID = teamID
	if err := validateMeeting(m); err != nil {
		return nil, err
	}
	return s.store.Meetings().Create(ctx, m)
}

func (s *TeamService) UpdateMeeting(ctx context.Context, userID, teamID string, m *model.Meeting) (*model.Meeting, error) {
	if _, err := s.store.Teams().GetByID(ctx, userID, teamID); err != nil {
		return nil, err
	}
	m.TeamID = teamID
	if err := validateMeeting(m); err != nil {
		return nil, err
	}
	return s.store.Meetings().Update(ctx, m)
}

func (s *TeamService) DeleteMeeting(ctx context.Context, userID, teamID, meetingID string) error {
	if _, err := s.store.Teams().GetByID(ctx, userID, teamID); err != nil {
		return err
	}
	return s.store.Meetings().Delete(ctx, teamID, meetingID)
}

func validateMeeting(m *model.Meeting) error {
	if m.Title == "" {
		return fmt.Errorf("%w: meeting title is required", model.ErrValidation)
	}
	if _, ok := temporal.ParseDate(m.Date); !ok {
		return fmt.Errorf("%w: invalid meeting date %q", model.ErrValidation, m.Date)
	}
	return validateOptionalWindow(m.StartTime, m.EndTime)
}
