// Package client is a typed Go client for the PlanIt REST API.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/planit-app/planit-server/internal/conflict"
	"github.com/planit-app/planit-server/internal/layout"
	"github.com/planit-app/planit-server/internal/model"
)

// Client wraps an HTTP client bound to one PlanIt server.
type Client struct {
	http *resty.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
	}
}

// apiError converts a non-2xx response into an error carrying the body.
func apiError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return fmt.Errorf("planit api: %s: %s", resp.Status(), resp.String())
}

func (c *Client) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	var out model.User
	resp, err := c.http.R().SetContext(ctx).SetBody(u).SetResult(&out).Post("/api/users")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	resp, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/api/users/" + userID)
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	resp, err := c.http.R().SetContext(ctx).Delete("/api/users/" + userID)
	if err != nil {
		return err
	}
	return apiError(resp)
}

func (c *Client) CreateActivity(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	var out model.Activity
	resp, err := c.http.R().SetContext(ctx).SetBody(a).SetResult(&out).Post("/api/activities")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListActivities(ctx context.Context, userID string) ([]model.Activity, error) {
	var out struct {
		Activities []model.Activity `json:"activities"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&out).
		Get("/api/activities")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return out.Activities, nil
}

func (c *Client) UpdateActivity(ctx context.Context, a *model.Activity) (*model.Activity, error) {
	var out model.Activity
	resp, err := c.http.R().SetContext(ctx).SetBody(a).SetResult(&out).
		Put("/api/activities/" + a.ActivityID)
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteActivity(ctx context.Context, userID, activityID string) error {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		Delete("/api/activities/" + activityID)
	if err != nil {
		return err
	}
	return apiError(resp)
}

func (c *Client) CreateGoal(ctx context.Context, g *model.Goal) (*model.Goal, error) {
	var out model.Goal
	resp, err := c.http.R().SetContext(ctx).SetBody(g).SetResult(&out).Post("/api/goals")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	var out struct {
		Goals []model.Goal `json:"goals"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&out).
		Get("/api/goals")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return out.Goals, nil
}

func (c *Client) UpdateGoalProgress(ctx context.Context, userID, goalID string, progress int) error {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetBody(map[string]int{"goalprogress": progress}).
		Patch("/api/goals/" + goalID + "/progress")
	if err != nil {
		return err
	}
	return apiError(resp)
}

func (c *Client) ListTeams(ctx context.Context, userID string) ([]model.Team, error) {
	var out struct {
		Teams []model.Team `json:"teams"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		SetResult(&out).
		Get("/api/teams")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

// ConflictReport is the server's answer to a conflict check.
type ConflictReport struct {
	Conflicts    []conflict.Conflict `json:"conflicts"`
	HasConflicts bool                `json:"hasConflicts"`
}

// CheckConflicts asks the server whether the candidate overlaps anything on
// the user's calendar. The report is advisory.
func (c *Client) CheckConflicts(ctx context.Context, userID string, cand conflict.Candidate, excludeID string) (*ConflictReport, error) {
	var out ConflictReport
	resp, err := c.http.R().SetContext(ctx).
		SetBody(map[string]interface{}{
			"userId":    userID,
			"candidate": cand,
			"excludeId": excludeID,
		}).
		SetResult(&out).
		Post("/api/conflicts/check")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// LayoutDay fetches positioned blocks for one "YYYY-MM-DD" day.
func (c *Client) LayoutDay(ctx context.Context, userID, date string) ([]layout.PositionedBlock, error) {
	var out struct {
		Blocks []layout.PositionedBlock `json:"blocks"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(map[string]string{"userId": userID, "date": date}).
		SetResult(&out).
		Get("/api/layout/day")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return out.Blocks, nil
}

// LayoutMonth fetches spanning timeline bars for one "YYYY-MM" month.
func (c *Client) LayoutMonth(ctx context.Context, userID, month string) ([]layout.TimelineBlock, error) {
	var out struct {
		Timelines []layout.TimelineBlock `json:"timelines"`
	}
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParams(map[string]string{"userId": userID, "month": month}).
		SetResult(&out).
		Get("/api/layout/month")
	if err != nil {
		return nil, err
	}
	if err := apiError(resp); err != nil {
		return nil, err
	}
	return out.Timelines, nil
}

// ExportCalendar downloads the user's calendar as ICS text.
func (c *Client) ExportCalendar(ctx context.Context, userID string) (string, error) {
	resp, err := c.http.R().SetContext(ctx).
		SetQueryParam("userId", userID).
		Get("/api/calendar.ics")
	if err != nil {
		return "", err
	}
	if err := apiError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}

// Health reports whether the server considers itself healthy.
func (c *Client) Health(ctx context.Context) (bool, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return false, err
	}
	return resp.IsSuccess(), nil
}
