// internal/service/campaign_service.go
package service

import (
	"fmt"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
}

func (s *CampaignService) CreateCampaign(userID int, c model.Campaign) (*model.Campaign, error) {
	if err := validateCampaign(&c); err != nil {
		return nil, err
	}
	c.UserID = userID
	if err := s.CampaignRepo.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CampaignService) ListCampaigns(userID int) ([]model.Campaign, error) {
	return s.CampaignRepo.ListByUser(userID)
}

func (s *CampaignService) GetCampaign(userID, id int) (*model.Campaign, error) {
	c, err := s.CampaignRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, appErrors.NewCampaignNotFound(id)
	}
	return c, nil
}

func (s *CampaignService) UpdateCampaign(userID, id int, updated model.Campaign) (*model.Campaign, error) {
	current, err := s.GetCampaign(userID, id)
	if err != nil {
		return nil, err
	}
	if updated.Name != "" {
		current.Name = updated.Name
	}
	if !updated.StartDate.IsZero() {
		current.StartDate = updated.StartDate
	}
	if !updated.EndDate.IsZero() {
		current.EndDate = updated.EndDate
	}
	if updated.Color != "" {
		current.Color = updated.Color
	}
	if err := validateCampaign(current); err != nil {
		return nil, err
	}
	if err := s.CampaignRepo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *CampaignService) DeleteCampaign(userID, id int) error {
	return s.CampaignRepo.Delete(id, userID)
}

func validateCampaign(c *model.Campaign) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	c.StartDate = schedule.Midnight(c.StartDate)
	c.EndDate = schedule.Midnight(c.EndDate)
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("campaign end date must not precede its start date")
	}
	return nil
}
