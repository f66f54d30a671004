package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/planit-app/planit-server/internal/api/respond"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

// ListGoals GET /api/goals?userId=
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respond.WriteBadRequest(w, "userId query parameter is required")
		return
	}
	goals, err := h.svc.ListGoals(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"goals": goals, "count": len(goals)})
}

// CreateGoal POST /api/goals
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var g model.Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateGoal(r.Context(), &g)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetGoal GET /api/goals/{goalId}?userId=
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.GetGoal(r.Context(), userID, mux.Vars(r)["goalId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateGoalProgress PATCH /api/goals/{goalId}/progress?userId=
func (h *GoalHandler) UpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Progress int `json:"goalprogress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	userID := r.URL.Query().Get("userId")
	if err := h.svc.UpdateProgress(r.Context(), userID, mux.Vars(r)["goalId"], req.Progress); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteGoal DELETE /api/goals/{goalId}?userId=
// Deleting a goal removes its timelines as well.
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if err := h.svc.DeleteGoal(r.Context(), userID, mux.Vars(r)["goalId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTimeline POST /api/goals/{goalId}/timelines?userId=
func (h *GoalHandler) AddTimeline(w http.ResponseWriter, r *http.Request) {
	var tl model.Timeline
	if err := json.NewDecoder(r.Body).Decode(&tl); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.AddTimeline(r.Context(), userID, mux.Vars(r)["goalId"], &tl)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// UpdateTimeline PUT /api/goals/{goalId}/timelines/{timelineId}?userId=
func (h *GoalHandler) UpdateTimeline(w http.ResponseWriter, r *http.Request) {
	var tl model.Timeline
	if err := json.NewDecoder(r.Body).Decode(&tl); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	vars := mux.Vars(r)
	tl.TimelineID = vars["timelineId"]
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.UpdateTimeline(r.Context(), userID, vars["goalId"], &tl)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteTimeline DELETE /api/goals/{goalId}/timelines/{timelineId}?userId=
func (h *GoalHandler) DeleteTimeline(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := r.URL.Query().Get("userId")
	if err := h.svc.DeleteTimeline(r.Context(), userID, vars["goalId"], vars["timelineId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
