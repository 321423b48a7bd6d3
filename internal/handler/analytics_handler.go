// internal/handler/analytics_handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/heartielabs/heartie-backend/internal/schedule"
	"github.com/heartielabs/heartie-backend/internal/service"
)

type AnalyticsHandler struct {
	Service *service.AnalyticsService
}

// Summary returns period counts; ?from= and ?to= default to the current
// month.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, -1)

	if q := r.URL.Query().Get("from"); q != "" {
		t, err := schedule.ParseDayKey(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad from date (YYYY-MM-DD)"})
			return
		}
		from = t
	}
	if q := r.URL.Query().Get("to"); q != "" {
		t, err := schedule.ParseDayKey(q)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad to date (YYYY-MM-DD)"})
			return
		}
		to = t
	}

	summary, err := h.Service.GetSummary(UserID(r.Context()), from, to)
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
