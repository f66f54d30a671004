// Package http holds the HTTP transport: thin handlers that decode requests,
// call a service, and write results through the respond helpers.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/planit-app/planit-server/internal/api/respond"
	"github.com/planit-app/planit-server/internal/model"
	"github.com/planit-app/planit-server/internal/services"
)

type ActivityHandler struct {
	svc *services.ActivityService
}

func NewActivityHandler(svc *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ListActivities GET /api/activities?userId=
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respond.WriteBadRequest(w, "userId query parameter is required")
		return
	}
	acts, err := h.svc.ListActivities(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"activities": acts, "count": len(acts)})
}

// CreateActivity POST /api/activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var a model.Activity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	out, err := h.svc.CreateActivity(r.Context(), &a)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// GetActivity GET /api/activities/{activityId}?userId=
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	out, err := h.svc.GetActivity(r.Context(), userID, mux.Vars(r)["activityId"])
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// UpdateActivity PUT /api/activities/{activityId}
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	var a model.Activity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	a.ActivityID = mux.Vars(r)["activityId"]
	out, err := h.svc.UpdateActivity(r.Context(), &a)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, out)
}

// DeleteActivity DELETE /api/activities/{activityId}?userId=
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if err := h.svc.DeleteActivity(r.Context(), userID, mux.Vars(r)["activityId"]); err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
