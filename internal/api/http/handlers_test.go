package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planit-app/planit-server/internal/layout"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "planit.db"))
	require.NoError(t, err)
	srv := httptest.NewServer(NewRouter(st, layout.DefaultConfig(), nil))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	if out != nil {
		defer func() { _ = resp.Body.Close() }()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func createTestUser(t *testing.T, srv *httptest.Server, userID string) {
	t.Helper()
	resp := doJSON(t, "POST", srv.URL+"/api/users",
		model.User{UserID: userID, Email: userID + "@example.com"}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUserLifecycle(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	var u model.User
	resp := doJSON(t, "GET", srv.URL+"/api/users/alice", nil, &u)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", u.UserID)
	assert.Equal(t, "UTC", u.TimeZone)

	resp = doJSON(t, "DELETE", srv.URL+"/api/users/alice", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, "GET", srv.URL+"/api/users/alice", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateUserRejectsBadID(t *testing.T) {
	srv := newTestServer(t)
	resp := doJSON(t, "POST", srv.URL+"/api/users",
		model.User{UserID: "Not Valid!", Email: "a@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActivityCRUD(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	var created model.Activity
	resp := doJSON(t, "POST", srv.URL+"/api/activities", model.Activity{
		UserID: "alice", Title: "Dentist", Date: "2025-03-10",
		StartTime: "09:00", EndTime: "10:00", Urgency: model.UrgencyHigh,
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, created.ActivityID)

	var got model.Activity
	resp = doJSON(t, "GET", srv.URL+"/api/activities/"+created.ActivityID+"?userId=alice", nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dentist", got.Title)

	got.Title = "Dentist (moved)"
	got.StartTime, got.EndTime = "11:00", "12:00"
	resp = doJSON(t, "PUT", srv.URL+"/api/activities/"+created.ActivityID, got, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "11:00", got.StartTime)

	var list struct {
		Activities []model.Activity `json:"activities"`
		Count      int              `json:"count"`
	}
	resp = doJSON(t, "GET", srv.URL+"/api/activities?userId=alice", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, list.Count)

	resp = doJSON(t, "DELETE", srv.URL+"/api/activities/"+created.ActivityID+"?userId=alice", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestCreateActivityRejectsOneSidedWindow(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	resp := doJSON(t, "POST", srv.URL+"/api/activities", model.Activity{
		UserID: "alice", Title: "Half a window", Date: "2025-03-10", StartTime: "09:00",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoalWithTimelines(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	var goal model.Goal
	resp := doJSON(t, "POST", srv.URL+"/api/goals", model.Goal{
		UserID: "alice", Title: "Learn Go", Category: "education",
		Timelines: []model.Timeline{
			{Title: "Basics", StartDate: "2025-03-01", EndDate: "2025-03-15"},
		},
	}, &goal)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, goal.Timelines, 1)

	var tl model.Timeline
	resp = doJSON(t, "POST", srv.URL+"/api/goals/"+goal.GoalID+"/timelines?userId=alice", model.Timeline{
		Title: "Concurrency", StartDate: "2025-03-16", EndDate: "2025-03-31",
		StartTime: "18:00", EndTime: "20:00",
	}, &tl)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, tl.TimelineID)

	resp = doJSON(t, "PATCH", srv.URL+"/api/goals/"+goal.GoalID+"/progress?userId=alice",
		map[string]int{"goalprogress": 40}, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var got model.Goal
	resp = doJSON(t, "GET", srv.URL+"/api/goals/"+goal.GoalID+"?userId=alice", nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 40, got.Progress)
	assert.Len(t, got.Timelines, 2)

	resp = doJSON(t, "DELETE", srv.URL+"/api/goals/"+goal.GoalID+"/timelines/"+tl.TimelineID+"?userId=alice", nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, "DELETE", srv.URL+"/api/goals/"+goal.GoalID+"?userId=alice", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestTeamMeetings(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	var team model.Team
	resp := doJSON(t, "POST", srv.URL+"/api/teams", model.Team{UserID: "alice", Name: "Core"}, &team)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var m model.Meeting
	resp = doJSON(t, "POST", srv.URL+"/api/teams/"+team.TeamID+"/meetings?userId=alice", model.Meeting{
		Title: "Standup", Date: "2025-03-10", StartTime: "09:30", EndTime: "09:45",
	}, &m)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	m.Title = "Standup (remote)"
	resp = doJSON(t, "PUT", srv.URL+"/api/teams/"+team.TeamID+"/meetings/"+m.MeetingID+"?userId=alice", m, &m)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Standup (remote)", m.Title)

	var list struct {
		Teams []model.Team `json:"teams"`
	}
	resp = doJSON(t, "GET", srv.URL+"/api/teams?userId=alice", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Teams, 1)
	assert.Len(t, list.Teams[0].Meetings, 1)

	resp = doJSON(t, "DELETE", srv.URL+"/api/teams/"+team.TeamID+"?userId=alice", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestConflictCheckEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	resp := doJSON(t, "POST", srv.URL+"/api/activities", model.Activity{
		UserID: "alice", Title: "Gym", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Conflicts    []map[string]string `json:"conflicts"`
		HasConflicts bool                `json:"hasConflicts"`
	}
	resp = doJSON(t, "POST", srv.URL+"/api/conflicts/check", map[string]interface{}{
		"userId": "alice",
		"candidate": map[string]string{
			"kind": "activity", "date": "2025-03-10",
			"startTime": "09:30", "endTime": "10:30",
		},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, out.HasConflicts)
	require.Len(t, out.Conflicts, 1)
	assert.Equal(t, "Gym", out.Conflicts[0]["title"])
	assert.Equal(t, "09:00 - 10:00", out.Conflicts[0]["time"])

	// Adjacent slots share a boundary instant and do not conflict.
	resp = doJSON(t, "POST", srv.URL+"/api/conflicts/check", map[string]interface{}{
		"userId": "alice",
		"candidate": map[string]string{
			"kind": "activity", "date": "2025-03-10",
			"startTime": "10:00", "endTime": "11:00",
		},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, out.HasConflicts)
	assert.Empty(t, out.Conflicts)
}

func TestLayoutDayEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	for _, a := range []model.Activity{
		{UserID: "alice", Title: "A", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00"},
		{UserID: "alice", Title: "B", Date: "2025-03-10", StartTime: "09:30", EndTime: "10:30"},
		{UserID: "alice", Title: "Elsewhere", Date: "2025-03-11", StartTime: "09:00", EndTime: "10:00"},
	} {
		resp := doJSON(t, "POST", srv.URL+"/api/activities", a, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var out struct {
		Date   string                   `json:"date"`
		Blocks []layout.PositionedBlock `json:"blocks"`
	}
	resp := doJSON(t, "GET", srv.URL+"/api/layout/day?userId=alice&date=2025-03-10", nil, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out.Blocks, 2)

	resp = doJSON(t, "GET", srv.URL+"/api/layout/day?userId=alice&date=not-a-date", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLayoutMonthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	var goal model.Goal
	resp := doJSON(t, "POST", srv.URL+"/api/goals", model.Goal{
		UserID: "alice", Title: "Ship",
		Timelines: []model.Timeline{
			{Title: "Phase", StartDate: "2025-02-20", EndDate: "2025-03-10"},
		},
	}, &goal)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Month     string                 `json:"month"`
		Timelines []layout.TimelineBlock `json:"timelines"`
	}
	resp = doJSON(t, "GET", srv.URL+"/api/layout/month?userId=alice&month=2025-03", nil, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, out.Timelines, 1)
	assert.True(t, out.Timelines[0].PartialStart)
	assert.Equal(t, 0, out.Timelines[0].StartDay)

	resp = doJSON(t, "GET", srv.URL+"/api/layout/month?userId=alice&month=2025-3", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalendarExportEndpoint(t *testing.T) {
	srv := newTestServer(t)
	createTestUser(t, srv, "alice")

	resp := doJSON(t, "POST", srv.URL+"/api/activities", model.Activity{
		UserID: "alice", Title: "Dentist", Date: "2025-03-10", StartTime: "09:00", EndTime: "10:00",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	httpResp, err := http.Get(srv.URL + "/api/calendar.ics?userId=alice")
	require.NoError(t, err)
	defer func() { _ = httpResp.Body.Close() }()
	require.Equal(t, http.StatusOK, httpResp.StatusCode)
	assert.Contains(t, httpResp.Header.Get("Content-Type"), "text/calendar")

	body, err := io.ReadAll(httpResp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")
	assert.Contains(t, string(body), "SUMMARY:Dentist")
}

func TestHealthEndpointDefaultsHealthy(t *testing.T) {
	srv := newTestServer(t)
	var out map[string]string
	resp := doJSON(t, "GET", srv.URL+"/api/health", nil, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", out["status"])
}
