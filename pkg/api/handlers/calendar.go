package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Eloura74/Backbone/pkg/calendar"
	"github.com/Eloura74/Backbone/pkg/utils"
)

// RegisterCalendar registers the calendar export route.
func (a *API) RegisterCalendar(r *mux.Router) {
	r.HandleFunc("/calendar/ics", a.calendarICS).Methods(http.MethodPost)
}

type icsRequest struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	// Start is RFC 3339; empty means tomorrow 09:00.
	Start       string `json:"start,omitempty"`
	DurationMin int    `json:"duration_min,omitempty"`
}

// calendarICS handles POST /calendar/ics: builds a downloadable ICS event,
// typically a follow-up meeting for a processed item.
func (a *API) calendarICS(w http.ResponseWriter, r *http.Request) {
	var req icsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Summary == "" {
		utils.JSONError(w, http.StatusBadRequest, "summary is required")
		return
	}
	var start time.Time
	if req.Start != "" {
		t, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, "start must be RFC 3339")
			return
		}
		start = t
	}
	payload := calendar.ICS(calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       start,
		DurationMin: req.DurationMin,
	})
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="event.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}
