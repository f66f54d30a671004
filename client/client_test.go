package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/planit-app/planit-server/internal/api/http"
	"github.com/planit-app/planit-server/internal/conflict"
	"github.com/planit-app/planit-server/internal/layout"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/store/sqlite"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "planit.db"))
	require.NoError(t, err)
	srv := httptest.NewServer(apihttp.NewRouter(st, layout.DefaultConfig(), nil))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClientRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.CreateUser(ctx, &model.User{UserID: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	u, err := c.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserID)

	_, err = c.CreateActivity(ctx, &model.Activity{
		UserID: "alice", Title: "Gym", Date: "2025-03-10",
		StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)

	acts, err := c.ListActivities(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, acts, 1)

	report, err := c.CheckConflicts(ctx, "alice", conflict.Candidate{
		Kind: conflict.KindActivity, Date: "2025-03-10",
		StartTime: "09:30", EndTime: "10:30",
	}, "")
	require.NoError(t, err)
	assert.True(t, report.HasConflicts)

	blocks, err := c.LayoutDay(ctx, "alice", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	ics, err := c.ExportCalendar(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, strings.Contains(ics, "BEGIN:VCALENDAR"))

	healthy, err := c.Health(ctx)
	require.NoError(t, err)
	assert.True(t, healthy)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.GetUser(ctx, "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
