// internal/handler/calendar_handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/heartielabs/heartie-backend/internal/schedule"
	"github.com/heartielabs/heartie-backend/internal/service"
)

type CalendarHandler struct {
	Service *service.ActivityService
}

func dateFromQuery(r *http.Request) (time.Time, bool) {
	q := r.URL.Query().Get("date")
	if q == "" {
		return time.Now(), true
	}
	t, err := schedule.ParseDayKey(q)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Week returns the Monday-start week containing ?date= with bucketed
// activities and campaign segments.
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	date, ok := dateFromQuery(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad date (YYYY-MM-DD)"})
		return
	}
	view, err := h.Service.Week(UserID(r.Context()), date, filtersFromQuery(r))
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Month returns the 42-cell grid containing ?date= with per-row campaign
// segments.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	date, ok := dateFromQuery(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad date (YYYY-MM-DD)"})
		return
	}
	view, err := h.Service.Month(UserID(r.Context()), date, filtersFromQuery(r))
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
