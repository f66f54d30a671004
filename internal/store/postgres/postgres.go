// Package postgres implements store.Store on PostgreSQL via the pgx stdlib
// driver. Schema is owned by migrations; Bootstrap only verifies
// connectivity.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Users() store.Users           { return &users{db: s.db} }
func (s *pgStore) Activities() store.Activities { return &activities{db: s.db} }
func (s *pgStore) Goals() store.Goals           { return &goals{db: s.db} }
func (s *pgStore) Timelines() store.Timelines   { return &timelines{db: s.db} }
func (s *pgStore) Teams() store.Teams           { return &teams{db: s.db} }
func (s *pgStore) Meetings() store.Meetings     { return &meetings{db: s.db} }

// HealthPing implements health.Pinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Bootstrap performs a connectivity check to ensure Postgres is reachable.
// Ping-only; migrations own schema setup.
func Bootstrap(ctx context.Context, dsn string) error {
	if dsn == "" {
		return nil // No DSN configured, skip bootstrap
	}
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return db.PingContext(ctx)
}

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

// --- Users ---

type users struct{ db *sql.DB }

func (u *users) Create(ctx context.Context, m *model.User) (*model.User, error) {
	var created time.Time
	row := u.db.QueryRowContext(ctx, `
        INSERT INTO users (user_id, email, display_name, time_zone)
        VALUES ($1,$2,$3,$4)
        RETURNING creation_time
    `, m.UserID, m.Email, m.DisplayName, m.TimeZone)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *m
	out.CreationTime = created
	return &out, nil
}

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `
        SELECT user_id, email, display_name, time_zone, creation_time
        FROM users WHERE user_id=$1
    `, userID)
	if err := row.Scan(&out.UserID, &out.Email, &out.DisplayName, &out.TimeZone, &out.CreationTime); err != nil {
		return nil, mapNotFound(err)
	}
	return &out, nil
}

func (u *users) Delete(ctx context.Context, userID string) error {
	_, err := u.db.ExecContext(ctx, `DELETE FROM users WHERE user_id=$1`, userID)
	return err
}

// --- Activities ---

type activities struct{ db *sql.DB }

func (a *activities) Create(ctx context.Context, m *model.Activity) (*model.Activity, error) {
	id := m.ActivityID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := a.db.QueryRowContext(ctx, `
        INSERT INTO activities (activity_id, user_id, title, description, category, urgency, activity_date, start_time, end_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING creation_time
    `, id, m.UserID, m.Title, m.Description, m.Category, m.Urgency, m.Date, m.StartTime, m.EndTime)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *m
	out.ActivityID = id
	out.CreationTime = created
	return &out, nil
}

func (a *activities) GetByID(ctx context.Context, userID, activityID string) (*model.Activity, error) {
	row := a.db.QueryRowContext(ctx, `
        SELECT activity_id, user_id, title, description, category, urgency, activity_date, start_time, end_time, creation_time
        FROM activities WHERE user_id=$1 AND activity_id=$2
    `, userID, activityID)
	var m model.Activity
	if err := row.Scan(&m.ActivityID, &m.UserID, &m.Title, &m.Description, &m.Category, &m.Urgency, &m.Date, &m.StartTime, &m.EndTime, &m.CreationTime); err != nil {
		return nil, mapNotFound(err)
	}
	return &m, nil
}

func (a *activities) List(ctx context.Context, userID string) ([]model.Activity, error) {
	rows, err := a.db.QueryContext(ctx, `
        SELECT activity_id, user_id, title, description, category, urgency, activity_date, start_time, end_time, creation_time
        FROM activities WHERE user_id=$1 ORDER BY activity_date, start_time, activity_id
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Activity{}
	for rows.Next() {
		var m model.Activity
		if err := rows.Scan(&m.ActivityID, &m.UserID, &m.Title, &m.Description, &m.Category, &m.Urgency, &m.Date, &m.StartTime, &m.EndTime, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (a *activities) Update(ctx context.Context, m *model.Activity) (*model.Activity, error) {
	res, err := a.db.ExecContext(ctx, `
        UPDATE activities SET title=$1, description=$2, category=$3, urgency=$4, activity_date=$5, start_time=$6, end_time=$7
        WHERE user_id=$8 AND activity_id=$9
    `, m.Title, m.Description, m.Category, m.Urgency, m.Date, m.StartTime, m.EndTime, m.UserID, m.ActivityID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	return a.GetByID(ctx, m.UserID, m.ActivityID)
}

func (a *activities) Delete(ctx context.Context, userID, activityID string) error {
	res, err := a.db.ExecContext(ctx, `DELETE FROM activities WHERE user_id=$1 AND activity_id=$2`, userID, activityID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Goals ---

type goals struct{ db *sql.DB }

func (g *goals) Create(ctx context.Context, m *model.Goal) (*model.Goal, error) {
	id := m.GoalID
	if id == "" {
		id = uuid.New().String()
	}

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var created time.Time
	row := tx.QueryRowContext(ctx, `
        INSERT INTO goals (goal_id, user_id, title, description, category, progress)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING creation_time
    `, id, m.UserID, m.Title, m.Description, m.Category, m.Progress)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}

	out := *m
	out.GoalID = id
	out.CreationTime = created
	out.Timelines = make([]model.Timeline, 0, len(m.Timelines))
	for _, tl := range m.Timelines {
		tlID := tl.TimelineID
		if tlID == "" {
			tlID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx, `
            INSERT INTO timelines (timeline_id, goal_id, title, start_date, end_date, start_time, end_time)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
        `, tlID, id, tl.Title, tl.StartDate, tl.EndDate, tl.StartTime, tl.EndTime)
		if err != nil {
			return nil, err
		}
		tl.TimelineID = tlID
		tl.GoalID = id
		out.Timelines = append(out.Timelines, tl)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *goals) GetByID(ctx context.Context, userID, goalID string) (*model.Goal, error) {
	var out model.Goal
	row := g.db.QueryRowContext(ctx, `
        SELECT goal_id, user_id, title, description, category, progress, creation_time
        FROM goals WHERE user_id=$1 AND goal_id=$2
    `, userID, goalID)
	if err := row.Scan(&out.GoalID, &out.UserID, &out.Title, &out.Description, &out.Category, &out.Progress, &out.CreationTime); err != nil {
		return nil, mapNotFound(err)
	}
	tls, err := (&timelines{db: g.db}).ListByGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	out.Timelines = tls
	return &out, nil
}

func (g *goals) List(ctx context.Context, userID string) ([]model.Goal, error) {
	rows, err := g.db.QueryContext(ctx, `
        SELECT goal_id, user_id, title, description, category, progress, creation_time
        FROM goals WHERE user_id=$1 ORDER BY creation_time, goal_id
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Goal{}
	for rows.Next() {
		var m model.Goal
		if err := rows.Scan(&m.GoalID, &m.UserID, &m.Title, &m.Description, &m.Category, &m.Progress, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tlRepo := &timelines{db: g.db}
	for i := range out {
		tls, err := tlRepo.ListByGoal(ctx, out[i].GoalID)
		if err != nil {
			return nil, err
		}
		out[i].Timelines = tls
	}
	return out, nil
}

func (g *goals) UpdateProgress(ctx context.Context, userID, goalID string, progress int) error {
	res, err := g.db.ExecContext(ctx, `
        UPDATE goals SET progress=$1 WHERE user_id=$2 AND goal_id=$3
    `, progress, userID, goalID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (g *goals) Delete(ctx context.Context, userID, goalID string) error {
	// Explicit child delete so the cascade holds even if the deployed schema
	// lacks ON DELETE CASCADE.
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM timelines WHERE goal_id=$1`, goalID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM goals WHERE user_id=$1 AND goal_id=$2`, userID, goalID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return tx.Commit()
}

// --- Timelines ---

type timelines struct{ db *sql.DB }

func (t *timelines) Create(ctx context.Context, m *model.Timeline) (*model.Timeline, error) {
	id := m.TimelineID
	if id == "" {
		id = uuid.New().String()
	}
	_, err := t.db.ExecContext(ctx, `
        INSERT INTO timelines (timeline_id, goal_id, title, start_date, end_date, start_time, end_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, id, m.GoalID, m.Title, m.StartDate, m.EndDate, m.StartTime, m.EndTime)
	if err != nil {
		return nil, err
	}
	out := *m
	out.TimelineID = id
	return &out, nil
}

func (t *timelines) ListByGoal(ctx context.Context, goalID string) ([]model.Timeline, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT timeline_id, goal_id, title, start_date, end_date, start_time, end_time
        FROM timelines WHERE goal_id=$1 ORDER BY start_date, timeline_id
    `, goalID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Timeline{}
	for rows.Next() {
		var m model.Timeline
		if err := rows.Scan(&m.TimelineID, &m.GoalID, &m.Title, &m.StartDate, &m.EndDate, &m.StartTime, &m.EndTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (t *timelines) Update(ctx context.Context, m *model.Timeline) (*model.Timeline, error) {
	res, err := t.db.ExecContext(ctx, `
        UPDATE timelines SET title=$1, start_date=$2, end_date=$3, start_time=$4, end_time=$5
        WHERE goal_id=$6 AND timeline_id=$7
    `, m.Title, m.StartDate, m.EndDate, m.StartTime, m.EndTime, m.GoalID, m.TimelineID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	out := *m
	return &out, nil
}

func (t *timelines) Delete(ctx context.Context, goalID, timelineID string) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM timelines WHERE goal_id=$1 AND timeline_id=$2`, goalID, timelineID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Teams ---

type teams struct{ db *sql.DB }

func (t *teams) Create(ctx context.Context, m *model.Team) (*model.Team, error) {
	id := m.TeamID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := t.db.QueryRowContext(ctx, `
        INSERT INTO teams (team_id, user_id, name) VALUES ($1,$2,$3)
        RETURNING creation_time
    `, id, m.UserID, m.Name)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *m
	out.TeamID = id
	out.CreationTime = created
	if out.Meetings == nil {
		out.Meetings = []model.Meeting{}
	}
	return &out, nil
}

func (t *teams) GetByID(ctx context.Context, userID, teamID string) (*model.Team, error) {
	var out model.Team
	row := t.db.QueryRowContext(ctx, `
        SELECT team_id, user_id, name, creation_time FROM teams WHERE user_id=$1 AND team_id=$2
    `, userID, teamID)
	if err := row.Scan(&out.TeamID, &out.UserID, &out.Name, &out.CreationTime); err != nil {
		return nil, mapNotFound(err)
	}
	ms, err := (&meetings{db: t.db}).ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	out.Meetings = ms
	return &out, nil
}

func (t *teams) List(ctx context.Context, userID string) ([]model.Team, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT team_id, user_id, name, creation_time FROM teams WHERE user_id=$1 ORDER BY creation_time, team_id
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Team{}
	for rows.Next() {
		var m model.Team
		if err := rows.Scan(&m.TeamID, &m.UserID, &m.Name, &m.CreationTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	mRepo := &meetings{db: t.db}
	for i := range out {
		ms, err := mRepo.ListByTeam(ctx, out[i].TeamID)
		if err != nil {
			return nil, err
		}
		out[i].Meetings = ms
	}
	return out, nil
}

func (t *teams) Delete(ctx context.Context, userID, teamID string) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM meetings WHERE team_id=$1`, teamID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE user_id=$1 AND team_id=$2`, userID, teamID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return tx.Commit()
}

// --- Meetings ---

type meetings struct{ db *sql.DB }

func (mt *meetings) Create(ctx context.Context, m *model.Meeting) (*model.Meeting, error) {
	id := m.MeetingID
	if id == "" {
		id = uuid.New().String()
	}
	_, err := mt.db.ExecContext(ctx, `
        INSERT INTO meetings (meeting_id, team_id, title, description, meeting_date, start_time, end_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `, id, m.TeamID, m.Title, m.Description, m.Date, m.StartTime, m.EndTime)
	if err != nil {
		return nil, err
	}
	out := *m
	out.MeetingID = id
	return &out, nil
}

func (mt *meetings) ListByTeam(ctx context.Context, teamID string) ([]model.Meeting, error) {
	rows, err := mt.db.QueryContext(ctx, `
        SELECT meeting_id, team_id, title, description, meeting_date, start_time, end_time
        FROM meetings WHERE team_id=$1 ORDER BY meeting_date, start_time, meeting_id
    `, teamID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []model.Meeting{}
	for rows.Next() {
		var m model.Meeting
		if err := rows.Scan(&m.MeetingID, &m.TeamID, &m.Title, &m.Description, &m.Date, &m.StartTime, &m.EndTime); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (mt *meetings) Update(ctx context.Context, m *model.Meeting) (*model.Meeting, error) {
	res, err := mt.db.ExecContext(ctx, `
        UPDATE meetings SET title=$1, description=$2, meeting_date=$3, start_time=$4, end_time=$5
        WHERE team_id=$6 AND meeting_id=$7
    `, m.Title, m.Description, m.Date, m.StartTime, m.EndTime, m.TeamID, m.MeetingID)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, model.ErrNotFound
	}
	out := *m
	return &out, nil
}

func (mt *meetings) Delete(ctx context.Context, teamID, meetingID string) error {
	res, err := mt.db.ExecContext(ctx, `DELETE FROM meetings WHERE team_id=$1 AND meeting_id=$2`, teamID, meetingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}
