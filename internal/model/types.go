package model

import "time"

// User represents an account in the system.
type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	DisplayName  *string   `json:"displayName,omitempty"`
	TimeZone     string    `json:"timeZone"`
	CreationTime time.Time `json:"creationTime"`
}

// Urgency classifies how pressing an activity is.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
	UrgencyUrgent Urgency = "urgent"
)

// Valid reports whether u is one of the known urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}

// Activity is a single-day user task with an optional time range.
// Date is "YYYY-MM-DD"; StartTime/EndTime are "HH:MM" or empty for all-day.
type Activity struct {
	ActivityID   string    `json:"activityid"`
	UserID       string    `json:"userid,omitempty"`
	Title        string    `json:"activitytitle"`
	Description  string    `json:"activitydescription,omitempty"`
	Category     string    `json:"activitycategory,omitempty"`
	Urgency      Urgency   `json:"activityurgency,omitempty"`
	Date         string    `json:"activitydate"`
	StartTime    string    `json:"activitystarttime"`
	EndTime      string    `json:"activityendtime"`
	CreationTime time.Time `json:"creationtime,omitempty"`
}

// Goal groups one or more dated timelines under a title and category.
type Goal struct {
	GoalID       string     `json:"goalid"`
	UserID       string     `json:"userid,omitempty"`
	Title        string     `json:"goaltitle"`
	Description  string     `json:"goaldescription,omitempty"`
	Category     string     `json:"goalcategory,omitempty"`
	Progress     int        `json:"goalprogress"`
	Timelines    []Timeline `json:"timelines"`
	CreationTime time.Time  `json:"creationtime,omitempty"`
}

// Timeline is a multi-day sub-phase of a goal. When StartTime/EndTime are
// set they apply identically to every day of the span.
type Timeline struct {
	TimelineID string `json:"timelineid"`
	GoalID     string `json:"goalid,omitempty"`
	Title      string `json:"timelinetitle"`
	StartDate  string `json:"timelinestartdate"`
	EndDate    string `json:"timelineenddate"`
	StartTime  string `json:"timelinestarttime"`
	EndTime    string `json:"timelineendtime"`
}

// Team owns meetings shared by its members.
type Team struct {
	TeamID       string    `json:"teamid"`
	UserID       string    `json:"userid,omitempty"`
	Name         string    `json:"teamname"`
	Meetings     []Meeting `json:"meetings"`
	CreationTime time.Time `json:"creationtime,omitempty"`
}

// Meeting is a single-day team event with an optional time range.
type Meeting struct {
	MeetingID   string `json:"teammeetingid"`
	TeamID      string `json:"teamid,omitempty"`
	Title       string `json:"meetingtitle"`
	Description string `json:"meetingdescription,omitempty"`
	Date        string `json:"meetingdate"`
	StartTime   string `json:"meetingstarttime"`
	EndTime     string `json:"meetingendtime"`
}

// Snapshot is the in-memory copy of one user's calendar data, assembled for
// a single conflict check or layout pass. The core only reads it.
type Snapshot struct {
	Activities []Activity `json:"activities"`
	Goals      []Goal     `json:"goals"`
	Teams      []Team     `json:"teams"`
}
