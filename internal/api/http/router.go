package http

import (
	"github.com/gorilla/mux"

	"github.com/planit-app/planit-server/internal/api/recovery"
	"github.com/planit-app/planit-server/internal/layout"
	"github.com/planit-app/planit-server/internal/services"
	"github.com/planit-app/planit-server/internal/store"
)

// NewRouter wires the full route table over the given store. The health
// reporter may be nil, in which case /api/health always reports healthy
// (handy in tests).
func NewRouter(st store.Store, grid layout.Config, checker healthReporter) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	// Users
	users := NewUserHandler(services.NewUserService(st))
	root.HandleFunc("/api/users", users.CreateUser).Methods("POST")
	root.HandleFunc("/api/users/{userId}", users.GetUser).Methods("GET")
	root.HandleFunc("/api/users/{userId}", users.DeleteUser).Methods("DELETE")

	// Activities
	activities := NewActivityHandler(services.NewActivityService(st))
	root.HandleFunc("/api/activities", activities.ListActivities).Methods("GET")
	root.HandleFunc("/api/activities", activities.CreateActivity).Methods("POST")
	root.HandleFunc("/api/activities/{activityId}", activities.GetActivity).Methods("GET")
	root.HandleFunc("/api/activities/{activityId}", activities.UpdateActivity).Methods("PUT")
	root.HandleFunc("/api/activities/{activityId}", activities.DeleteActivity).Methods("DELETE")

	// Goals and their timelines
	goals := NewGoalHandler(services.NewGoalService(st))
	root.HandleFunc("/api/goals", goals.ListGoals).Methods("GET")
	root.HandleFunc("/api/goals", goals.CreateGoal).Methods("POST")
	root.HandleFunc("/api/goals/{goalId}", goals.GetGoal).Methods("GET")
	root.HandleFunc("/api/goals/{goalId}", goals.DeleteGoal).Methods("DELETE")
	root.HandleFunc("/api/goals/{goalId}/progress", goals.UpdateGoalProgress).Methods("PATCH")
	root.HandleFunc("/api/goals/{goalId}/timelines", goals.AddTimeline).Methods("POST")
	root.HandleFunc("/api/goals/{goalId}/timelines/{timelineId}", goals.UpdateTimeline).Methods("PUT")
	root.HandleFunc("/api/goals/{goalId}/timelines/{timelineId}", goals.DeleteTimeline).Methods("DELETE")

	// Teams and their meetings
	teams := NewTeamHandler(services.NewTeamService(st))
	root.HandleFunc("/api/teams", teams.ListTeams).Methods("GET")
	root.HandleFunc("/api/teams", teams.CreateTeam).Methods("POST")
	root.HandleFunc("/api/teams/{teamId}", teams.DeleteTeam).Methods("DELETE")
	root.HandleFunc("/api/teams/{teamId}/meetings", teams.AddMeeting).Methods("POST")
	root.HandleFunc("/api/teams/{teamId}/meetings/{meetingId}", teams.UpdateMeeting).Methods("PUT")
	root.HandleFunc("/api/teams/{teamId}/meetings/{meetingId}", teams.DeleteMeeting).Methods("DELETE")

	// Scheduling core
	schedule := NewScheduleHandler(services.NewScheduleService(st, grid))
	root.HandleFunc("/api/conflicts/check", schedule.CheckConflicts).Methods("POST")
	root.HandleFunc("/api/layout/day", schedule.LayoutDay).Methods("GET")
	root.HandleFunc("/api/layout/month", schedule.LayoutMonth).Methods("GET")
	root.HandleFunc("/api/calendar.ics", schedule.ExportCalendar).Methods("GET")

	// Health
	healthHandler := NewHealthHandler(checker)
	root.HandleFunc("/api/health", healthHandler.Health).Methods("GET")

	return root
}
