// internal/service/goal_service.go
package service

import (
	"fmt"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/repository"
)

type GoalService struct {
	GoalRepo repository.GoalRepositoryInterface
}

func (s *GoalService) CreateGoal(userID int, g model.Goal) (*model.Goal, error) {
	if g.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !model.ValidGoalHorizon(g.Horizon) {
		return nil, fmt.Errorf("invalid horizon: %s", g.Horizon)
	}
	if g.Period == "" {
		return nil, fmt.Errorf("period is required")
	}
	g.UserID = userID
	if err := s.GoalRepo.Create(&g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GoalService) ListGoals(userID int, horizon string) ([]model.Goal, error) {
	if horizon != "" && !model.ValidGoalHorizon(horizon) {
		return nil, fmt.Errorf("invalid horizon: %s", horizon)
	}
	return s.GoalRepo.ListByUser(userID, horizon)
}

func (s *GoalService) GetGoal(userID, id int) (*model.Goal, error) {
	g, err := s.GoalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, appErrors.NewGoalNotFound(id)
	}
	return g, nil
}

// UpdateGoal merges the changed fields. Marking Current >= Target flips the
// goal to completed; dropping back under reopens it.
func (s *GoalService) UpdateGoal(userID, id int, updated model.Goal) (*model.Goal, error) {
	current, err := s.GetGoal(userID, id)
	if err != nil {
		return nil, err
	}
	if updated.Title != "" {
		current.Title = updated.Title
	}
	current.Description = updated.Description
	if updated.Period != "" {
		current.Period = updated.Period
	}
	if updated.Target > 0 {
		current.Target = updated.Target
	}
	if updated.Current >= 0 {
		current.Current = updated.Current
	}
	if current.Target > 0 && current.Current >= current.Target {
		current.Status = model.GoalStatusCompleted
	} else {
		current.Status = model.GoalStatusActive
	}
	if err := s.GoalRepo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *GoalService) DeleteGoal(userID, id int) error {
	return s.GoalRepo.Delete(id, userID)
}
