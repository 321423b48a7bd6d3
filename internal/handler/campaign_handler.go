// internal/handler/campaign_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/schedule"
	"github.com/heartielabs/heartie-backend/internal/service"
)

type CampaignHandler struct {
	Service *service.CampaignService
}

type campaignPayload struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Color     string `json:"color"`
}

func (p campaignPayload) toModel() (model.Campaign, error) {
	c := model.Campaign{Name: p.Name, Color: p.Color}
	if p.StartDate != "" {
		start, err := schedule.ParseDayKey(p.StartDate)
		if err != nil {
			return c, err
		}
		c.StartDate = start
	}
	if p.EndDate != "" {
		end, err := schedule.ParseDayKey(p.EndDate)
		if err != nil {
			return c, err
		}
		c.EndDate = end
	}
	return c, nil
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	input, err := body.toModel()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad date (YYYY-MM-DD)"})
		return
	}

	created, err := h.Service.CreateCampaign(UserID(r.Context()), input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.Service.ListCampaigns(UserID(r.Context()))
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": campaigns})
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid campaign id"})
		return
	}
	campaign, err := h.Service.GetCampaign(UserID(r.Context()), id)
	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid campaign id"})
		return
	}
	var body campaignPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	input, err := body.toModel()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad date (YYYY-MM-DD)"})
		return
	}

	updated, err := h.Service.UpdateCampaign(UserID(r.Context()), id, input)
	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid campaign id"})
		return
	}
	if err := h.Service.DeleteCampaign(UserID(r.Context()), id); err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
