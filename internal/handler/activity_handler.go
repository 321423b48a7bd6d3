// internal/handler/activity_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/schedule"
	"github.com/heartielabs/heartie-backend/internal/service"
)

type ActivityHandler struct {
	Service *service.ActivityService
}

// activityPayload is the create/update body. Date travels as a day key so
// clients never have to reason about time zones or time-of-day.
type activityPayload struct {
	Date          string `json:"date"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	FunnelStage   string `json:"funnel_stage"`
	Channel       string `json:"channel"`
	ActivityType  string `json:"activity_type"`
	ContentPillar string `json:"content_pillar"`
	Status        string `json:"status"`
	GoalID        *int   `json:"goal_id"`
}

func (p activityPayload) toModel() (model.Activity, error) {
	a := model.Activity{
		Title:         p.Title,
		Content:       p.Content,
		FunnelStage:   p.FunnelStage,
		Channel:       p.Channel,
		ActivityType:  p.ActivityType,
		ContentPillar: p.ContentPillar,
		Status:        p.Status,
		GoalID:        p.GoalID,
	}
	if p.Date != "" {
		date, err := schedule.ParseDayKey(p.Date)
		if err != nil {
			return a, err
		}
		a.Date = date
	}
	return a, nil
}

func filtersFromQuery(r *http.Request) schedule.Filters {
	q := r.URL.Query()
	return schedule.Filters{
		Stage:   q.Get("funnel_stage"),
		Channel: q.Get("channel"),
		Status:  q.Get("status"),
		Pillar:  q.Get("content_pillar"),
	}
}

// List returns the activities in ?from=..&to=.. (day keys, default: current
// week) after filtering, plus the dropdown options for the period.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := UserID(r.Context())

	var start, end time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := schedule.ParseDayKey(fromStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad from date (YYYY-MM-DD)"})
			return
		}
		start = from
	} else {
		start = schedule.WeekStart(time.Now())
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := schedule.ParseDayKey(toStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad to date (YYYY-MM-DD)"})
			return
		}
		end = to
	} else {
		end = start.AddDate(0, 0, 6)
	}

	activities, options, err := h.Service.ListRange(userID, start, end, filtersFromQuery(r))
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":    activities,
		"options": options,
	})
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body activityPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	input, err := body.toModel()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad date (YYYY-MM-DD)"})
		return
	}

	created, err := h.Service.CreateActivity(UserID(r.Context()), input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid activity id"})
		return
	}
	activity, err := h.Service.GetActivity(UserID(r.Context()), id)
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, activity)
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid activity id"})
		return
	}
	var body activityPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	input, err := body.toModel()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad date (YYYY-MM-DD)"})
		return
	}

	updated, err := h.Service.UpdateActivity(UserID(r.Context()), id, input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid activity id"})
		return
	}
	if err := h.Service.DeleteActivity(UserID(r.Context()), id); err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Move applies a drag-end. target_activity_id is optional: absent means the
// drop landed on a day column, present means it landed on another activity.
// No-op moves (bad day key, unknown ids, drop on self) return moved=false
// with a 200; they are not errors.
func (h *ActivityHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid activity id"})
		return
	}
	var body struct {
		TargetDay        string `json:"target_day"`
		TargetActivityID *int   `json:"target_activity_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	moved := h.Service.MoveActivity(UserID(r.Context()), id, body.TargetDay, body.TargetActivityID)
	writeJSON(w, http.StatusOK, map[string]interface{}{"moved": moved})
}

// Reorder permutes one day's list by index.
func (h *ActivityHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Day  string `json:"day"`
		From int    `json:"from"`
		To   int    `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	moved := h.Service.ReorderWithinDay(UserID(r.Context()), body.Day, body.From, body.To)
	writeJSON(w, http.StatusOK, map[string]interface{}{"moved": moved})
}
