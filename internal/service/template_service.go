// internal/service/template_service.go
package service

import (
	"fmt"
	"strings"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

type TemplateService struct {
	TemplateRepo repository.TemplateRepositoryInterface
	UserRepo     repository.UserRepositoryInterface
	Activities   *ActivityService
}

// RenderTemplate substitutes {key} placeholders in a template body. Missing
// values render as <unknown> rather than leaving the raw token behind.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		if v == "" {
			v = "<unknown>"
		}
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

func (s *TemplateService) ListTemplates(userID int) ([]model.Template, error) {
	return s.TemplateRepo.ListForUser(userID)
}

func (s *TemplateService) CreateTemplate(userID int, t model.Template) (*model.Template, error) {
	if t.Name == "" || strings.TrimSpace(t.Body) == "" {
		return nil, fmt.Errorf("name and body are required")
	}
	if !model.ValidFunnelStage(t.FunnelStage) {
		return nil, fmt.Errorf("invalid funnel stage: %s", t.FunnelStage)
	}
	if !model.ValidChannel(t.Channel) {
		return nil, fmt.Errorf("invalid channel: %s", t.Channel)
	}
	t.UserID = userID
	if err := s.TemplateRepo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TemplateService) DeleteTemplate(userID, id int) error {
	return s.TemplateRepo.Delete(id, userID)
}

// getVisible resolves a template the user may use: a built-in or one of
// their own.
func (s *TemplateService) getVisible(userID, id int) (*model.Template, error) {
	t, err := s.TemplateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t.UserID != 0 && t.UserID != userID {
		return nil, appErrors.NewTemplateNotFound(id)
	}
	return t, nil
}

// Preview renders the template body with the user's business name plus any
// caller-supplied values, without creating anything.
func (s *TemplateService) Preview(userID, templateID int, data map[string]string) (string, error) {
	t, err := s.getVisible(userID, templateID)
	if err != nil {
		return "", err
	}
	return RenderTemplate(t.Body, s.withUserData(userID, data)), nil
}

// Instantiate creates an activity from the template on the given day, in
// idea status, at the end of that day's list.
func (s *TemplateService) Instantiate(userID, templateID int, dayKey string, data map[string]string) (*model.Activity, error) {
	t, err := s.getVisible(userID, templateID)
	if err != nil {
		return nil, err
	}
	date, err := schedule.ParseDayKey(dayKey)
	if err != nil {
		return nil, fmt.Errorf("invalid day: %s", dayKey)
	}

	return s.Activities.CreateActivity(userID, model.Activity{
		Date:        date,
		Title:       t.Name,
		Content:     RenderTemplate(t.Body, s.withUserData(userID, data)),
		FunnelStage: t.FunnelStage,
		Channel:     t.Channel,
		Status:      model.StatusIdea,
	})
}

func (s *TemplateService) withUserData(userID int, data map[string]string) map[string]string {
	merged := map[string]string{}
	if user, err := s.UserRepo.GetByID(userID); err == nil {
		merged["business_name"] = user.BusinessName
	}
	for k, v := range data {
		merged[k] = v
	}
	return merged
}
