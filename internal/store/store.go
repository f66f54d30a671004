package store

import (
	"context"

	"github.com/planit-app/planit-server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Users() Users
	Activities() Activities
	Goals() Goals
	Timelines() Timelines
	Teams() Teams
	Meetings() Meetings
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	Delete(ctx context.Context, userID string) error
}

type Activities interface {
	Create(ctx context.Context, a *model.Activity) (*model.Activity, error)
	GetByID(ctx context.Context, userID, activityID string) (*model.Activity, error)
	List(ctx context.Context, userID string) ([]model.Activity, error)
	Update(ctx context.Context, a *model.Activity) (*model.Activity, error)
	Delete(ctx context.Context, userID, activityID string) error
}

type Goals interface {
	Create(ctx context.Context, g *model.Goal) (*model.Goal, error)
	GetByID(ctx context.Context, userID, goalID string) (*model.Goal, error)
	// List returns goals with their timelines populated.
	List(ctx context.Context, userID string) ([]model.Goal, error)
	UpdateProgress(ctx context.Context, userID, goalID string, progress int) error
	// Delete cascades to the goal's timelines.
	Delete(ctx context.Context, userID, goalID string) error
}

type Timelines interface {
	Create(ctx context.Context, tl *model.Timeline) (*model.Timeline, error)
	ListByGoal(ctx context.Context, goalID string) ([]model.Timeline, error)
	Update(ctx context.Context, tl *model.Timeline) (*model.Timeline, error)
	Delete(ctx context.Context, goalID, timelineID string) error
}

type Teams interface {
	Create(ctx context.Context, t *model.Team) (*model.Team, error)
	GetByID(ctx context.Context, userID, teamID string) (*model.Team, error)
	// List returns teams with their meetings populated.
	List(ctx context.Context, userID string) ([]model.Team, error)
	// Delete cascades to the team's meetings.
	Delete(ctx context.Context, userID, teamID string) error
}

type Meetings interface {
	Create(ctx context.Context, m *model.Meeting) (*model.Meeting, error)
	ListByTeam(ctx context.Context, teamID string) ([]model.Meeting, error)
	Update(ctx context.Context, m *model.Meeting) (*model.Meeting, error)
	Delete(ctx context.Context, teamID, meetingID string) error
}
