package http

import (
	"encoding/json"
	"net/http"

	"github.com/planit-app/planit-server/internal/api/respond"
	"github.com/planit-app/planit-server/internal/conflict"
	"github.com/planit-app/planit-server/internal/ics"
	"github.com/planit-app/planit-server/internal/services"
)

// ScheduleHandler exposes the scheduling core: conflict checks, day and
// month layout, and ICS export. These endpoints are read-only over the
// user's stored calendar.
type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

type conflictCheckRequest struct {
	UserID    string             `json:"userId"`
	Candidate conflict.Candidate `json:"candidate"`
	ExcludeID string             `json:"excludeId,omitempty"`
}

// CheckConflicts POST /api/conflicts/check
//
// The response is advisory. Clients decide whether to proceed; the server
// never rejects a write because of an overlap.
func (h *ScheduleHandler) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	var req conflictCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if req.UserID == "" {
		respond.WriteBadRequest(w, "userId is required")
		return
	}
	conflicts, err := h.svc.CheckConflicts(r.Context(), req.UserID, req.Candidate, req.ExcludeID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"conflicts":    conflicts,
		"hasConflicts": len(conflicts) > 0,
	})
}

// LayoutDay GET /api/layout/day?userId=&date=YYYY-MM-DD
func (h *ScheduleHandler) LayoutDay(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, date := q.Get("userId"), q.Get("date")
	if userID == "" || date == "" {
		respond.WriteBadRequest(w, "userId and date query parameters are required")
		return
	}
	blocks, err := h.svc.LayoutDay(r.Context(), userID, date)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"date": date, "blocks": blocks})
}

// LayoutMonth GET /api/layout/month?userId=&month=YYYY-MM
func (h *ScheduleHandler) LayoutMonth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, month := q.Get("userId"), q.Get("month")
	if userID == "" || month == "" {
		respond.WriteBadRequest(w, "userId and month query parameters are required")
		return
	}
	blocks, err := h.svc.LayoutMonth(r.Context(), userID, month)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"month": month, "timelines": blocks})
}

// ExportCalendar GET /api/calendar.ics?userId=
func (h *ScheduleHandler) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respond.WriteBadRequest(w, "userId query parameter is required")
		return
	}
	snap, err := h.svc.Snapshot(r.Context(), userID)
	if err != nil {
		respond.WriteServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="planit.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ics.Export(snap)))
}
