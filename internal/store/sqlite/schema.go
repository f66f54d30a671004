package sqlite

import (
	"context"
	"database/sql"
)

// schema is applied on open. Foreign keys cascade so deleting a goal removes
// its timelines and deleting a team removes its meetings.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    user_id        TEXT PRIMARY KEY,
    email          TEXT NOT NULL UNIQUE,
    display_name   TEXT,
    time_zone      TEXT NOT NULL DEFAULT 'UTC',
    creation_time  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS activities (
    activity_id    TEXT PRIMARY KEY,
    user_id        TEXT NOT NULL,
    title          TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    category       TEXT NOT NULL DEFAULT '',
    urgency        TEXT NOT NULL DEFAULT 'medium',
    activity_date  TEXT NOT NULL,
    start_time     TEXT NOT NULL DEFAULT '',
    end_time       TEXT NOT NULL DEFAULT '',
    creation_time  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_activities_user_date ON activities(user_id, activity_date);

CREATE TABLE IF NOT EXISTS goals (
    goal_id        TEXT PRIMARY KEY,
    user_id        TEXT NOT NULL,
    title          TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    category       TEXT NOT NULL DEFAULT '',
    progress       INTEGER NOT NULL DEFAULT 0,
    creation_time  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id);

CREATE TABLE IF NOT EXISTS timelines (
    timeline_id    TEXT PRIMARY KEY,
    goal_id        TEXT NOT NULL REFERENCES goals(goal_id) ON DELETE CASCADE,
    title          TEXT NOT NULL,
    start_date     TEXT NOT NULL,
    end_date       TEXT NOT NULL,
    start_time     TEXT NOT NULL DEFAULT '',
    end_time       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_timelines_goal ON timelines(goal_id);

CREATE TABLE IF NOT EXISTS teams (
    team_id        TEXT PRIMARY KEY,
    user_id        TEXT NOT NULL,
    name           TEXT NOT NULL,
    creation_time  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_teams_user ON teams(user_id);

CREATE TABLE IF NOT EXISTS meetings (
    meeting_id     TEXT PRIMARY KEY,
    team_id        TEXT NOT NULL REFERENCES teams(team_id) ON DELETE CASCADE,
    title          TEXT NOT NULL,
    description    TEXT NOT NULL DEFAULT '',
    meeting_date   TEXT NOT NULL,
    start_time     TEXT NOT NULL DEFAULT '',
    end_time       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_meetings_team ON meetings(team_id);
`

func applySchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
