// internal/service/analytics_service.go
package service

import (
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/repository"
)

type AnalyticsService struct {
	ActivityRepo repository.ActivityRepositoryInterface
}

// Summary aggregates one user's activities over a period.
type Summary struct {
	From           time.Time      `json:"from"`
	To             time.Time      `json:"to"`
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	ByStage        map[string]int `json:"by_stage"`
	ByChannel      map[string]int `json:"by_channel"`
	CompletionRate float64        `json:"completion_rate"`
}

// GetSummary counts activities by status, funnel stage and channel. Every
// known status and stage appears in the maps even at zero so the dashboard
// can render a stable set of bars.
func (s *AnalyticsService) GetSummary(userID int, from, to time.Time) (*Summary, error) {
	byStatus, err := s.ActivityRepo.CountsByDimension(userID, "status", from, to)
	if err != nil {
		return nil, err
	}
	byStage, err := s.ActivityRepo.CountsByDimension(userID, "funnel_stage", from, to)
	if err != nil {
		return nil, err
	}
	byChannel, err := s.ActivityRepo.CountsByDimension(userID, "channel", from, to)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		From:      from,
		To:        to,
		ByStatus:  map[string]int{},
		ByStage:   map[string]int{},
		ByChannel: byChannel,
	}
	for _, st := range model.Statuses {
		summary.ByStatus[st] = byStatus[st]
		summary.Total += byStatus[st]
	}
	for _, stage := range model.FunnelStages {
		summary.ByStage[stage] = byStage[stage]
	}
	if summary.Total > 0 {
		summary.CompletionRate = float64(summary.ByStatus[model.StatusComplete]) / float64(summary.Total)
	}
	return summary, nil
}
