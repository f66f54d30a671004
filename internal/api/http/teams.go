package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/planit-app/planit-server/internal/api/respond"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/services"
)

type TeamHandler struct {
	svc *services.TeamService
}

func NewTeamHandler(svc *services.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// ListTeams GET /api/teams?userId=
func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respond.WriteBadRequest(w, "userId query parameter is required")
		return
	}
	teams, err := h.svc.ListTeams(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"teams": teams, "count": len(teams)})
}

// CreateTeam POST /api/teams
func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var t model.Team
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateTeam(r.Context(), &t)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// DeleteTeam DELETE /api/teams/{teamId}?userId=
// Deleting a team removes its meetings as well.
func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if err := h.svc.DeleteTeam(r.Context(), userID, mux.Vars(r)["teamId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddMeeting POST /api/teams/{teamId}/meetings?userId=
func (h *TeamHandler) AddMeeting(w http.ResponseWriter, r *http.Request) {
	var m model.Meeting
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.AddMeeting(r.Context(), userID, mux.Vars(r)["teamId"], &m)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateMeeting PUT /api/teams/{teamId}/meetings/{meetingId}?userId=
func (h *TeamHandler) UpdateMeeting(w http.ResponseWriter, r *http.Request) {
	var m model.Meeting
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	vars := mux.Vars(r)
	m.MeetingID = vars["meetingId"]
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.UpdateMeeting(r.Context(), userID, vars["teamId"], &m)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteMeeting DELETE /api/teams/{teamId}/meetings/{meetingId}?userId=
func (h *TeamHandler) DeleteMeeting(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := r.URL.Query().Get("userId")
	if err := h.svc.DeleteMeeting(r.Context(), userID, vars["teamId"], vars["meetingId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
