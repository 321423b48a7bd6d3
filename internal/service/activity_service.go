// internal/service/activity_service.go
package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/queue"
	"github.com/heartielabs/heartie-backend/internal/repository"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

// ActivityService owns the per-user scheduling boards. Every view (week,
// month, list, funnel) reads through the same board, and every mutation goes
// through its methods, so all consumers observe the same ordering.
type ActivityService struct {
	ActivityRepo repository.ActivityRepositoryInterface
	CampaignRepo repository.CampaignRepositoryInterface
	Queue        queue.Queue
	Log          *slog.Logger

	mu     sync.Mutex
	boards map[int]*schedule.Board
}

func NewActivityService(activityRepo repository.ActivityRepositoryInterface, campaignRepo repository.CampaignRepositoryInterface, q queue.Queue, logger *slog.Logger) *ActivityService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityService{
		ActivityRepo: activityRepo,
		CampaignRepo: campaignRepo,
		Queue:        q,
		Log:          logger,
		boards:       make(map[int]*schedule.Board),
	}
}

// repoPersister adapts the activity repository to the board's persistence
// collaborator.
type repoPersister struct {
	repo   repository.ActivityRepositoryInterface
	userID int
}

func (p repoPersister) Load() ([]model.Activity, error) {
	return p.repo.ListByUser(p.userID)
}

func (p repoPersister) Save(changed []model.Activity) error {
	return p.repo.UpsertForUser(p.userID, changed)
}

// Delete tolerates rows that were never persisted, such as untouched seed
// activities.
func (p repoPersister) Delete(id int) error {
	if err := p.repo.Delete(id, p.userID); err != nil && !appErrors.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *ActivityService) boardFor(userID int) *schedule.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[userID]
	if !ok {
		b = schedule.NewBoard(repoPersister{repo: s.ActivityRepo, userID: userID}, userID, s.Log)
		s.boards[userID] = b
	}
	return b
}

// ListRange returns the user's activities in [start, end] after filtering,
// together with the filter options derived from the unfiltered period.
func (s *ActivityService) ListRange(userID int, start, end time.Time, f schedule.Filters) ([]model.Activity, schedule.Options, error) {
	period := s.boardFor(userID).ActivitiesInRange(start, end)
	return schedule.ApplyFilters(period, f), schedule.VisibleOptions(period), nil
}

func (s *ActivityService) GetActivity(userID, id int) (*model.Activity, error) {
	a, ok := s.boardFor(userID).Get(id)
	if !ok || a.UserID != userID {
		return nil, appErrors.NewActivityNotFound(id)
	}
	return &a, nil
}

// CreateActivity persists the activity and places it at the end of its day.
func (s *ActivityService) CreateActivity(userID int, a model.Activity) (*model.Activity, error) {
	if a.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !model.ValidFunnelStage(a.FunnelStage) {
		return nil, fmt.Errorf("invalid funnel stage: %s", a.FunnelStage)
	}
	if !model.ValidChannel(a.Channel) {
		return nil, fmt.Errorf("invalid channel: %s", a.Channel)
	}
	if a.Status == "" {
		a.Status = model.StatusIdea
	}
	if !model.ValidStatus(a.Status) {
		return nil, fmt.Errorf("invalid status: %s", a.Status)
	}

	a.UserID = userID
	a.Date = schedule.Midnight(a.Date)

	board := s.boardFor(userID)
	if err := s.ActivityRepo.Create(&a); err != nil {
		return nil, err
	}
	board.Upsert(a)
	created, _ := board.Get(a.ID)
	s.maybeScheduleReminder(created)
	return &created, nil
}

// UpdateActivity is a full replacement of the editable fields: the body is
// the complete detail-panel state, not a patch, so an omitted content or
// goal link is cleared. Identity, ordering and timestamps are kept; a date
// change moves the activity to the end of its new day, a zero date keeps
// the current one.
func (s *ActivityService) UpdateActivity(userID, id int, updated model.Activity) (*model.Activity, error) {
	board := s.boardFor(userID)
	current, ok := board.Get(id)
	if !ok || current.UserID != userID {
		return nil, appErrors.NewActivityNotFound(id)
	}
	if updated.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !model.ValidFunnelStage(updated.FunnelStage) {
		return nil, fmt.Errorf("invalid funnel stage: %s", updated.FunnelStage)
	}
	if !model.ValidChannel(updated.Channel) {
		return nil, fmt.Errorf("invalid channel: %s", updated.Channel)
	}
	if updated.Status == "" {
		updated.Status = current.Status
	}
	if !model.ValidStatus(updated.Status) {
		return nil, fmt.Errorf("invalid status: %s", updated.Status)
	}

	merged := current
	merged.Title = updated.Title
	merged.Content = updated.Content
	merged.FunnelStage = updated.FunnelStage
	merged.Channel = updated.Channel
	merged.ActivityType = updated.ActivityType
	merged.ContentPillar = updated.ContentPillar
	merged.Status = updated.Status
	merged.GoalID = updated.GoalID
	if !updated.Date.IsZero() {
		merged.Date = updated.Date
	}

	if !schedule.SameDay(merged.Date, current.Date) {
		board.Remove(id)
		merged.Date = schedule.Midnight(merged.Date)
		board.Upsert(merged)
	} else {
		merged.Date = current.Date
		merged.Position = current.Position
		board.Upsert(merged)
	}

	final, _ := board.Get(id)
	if current.Status != final.Status {
		s.maybeScheduleReminder(final)
	}
	return &final, nil
}

func (s *ActivityService) DeleteActivity(userID, id int) error {
	board := s.boardFor(userID)
	if a, ok := board.Get(id); !ok || a.UserID != userID {
		return appErrors.NewActivityNotFound(id)
	}
	board.Remove(id)
	return nil
}

// MoveActivity applies a drag-end. It reports false for every no-op case
// (unknown ids, malformed day key, drop on self) without touching storage.
func (s *ActivityService) MoveActivity(userID, activityID int, targetDayKey string, targetActivityID *int) bool {
	return s.boardFor(userID).MoveActivity(activityID, targetDayKey, targetActivityID)
}

// ReorderWithinDay permutes one day's list.
func (s *ActivityService) ReorderWithinDay(userID int, dayKey string, from, to int) bool {
	return s.boardFor(userID).ReorderWithinDay(dayKey, from, to)
}

// GetByID looks an activity up across users, reading through its owner's
// board so the reminder pipeline sees the same state the views do.
func (s *ActivityService) GetByID(id int) (*model.Activity, error) {
	stored, err := s.ActivityRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a, ok := s.boardFor(stored.UserID).Get(id); ok {
		return &a, nil
	}
	return stored, nil
}

// MarkRunning flips a scheduled activity to running through its owner's
// board, so the cached collection and storage stay in step.
func (s *ActivityService) MarkRunning(id int) error {
	stored, err := s.ActivityRepo.GetByID(id)
	if err != nil {
		return err
	}
	board := s.boardFor(stored.UserID)
	a, ok := board.Get(id)
	if !ok {
		return appErrors.NewActivityNotFound(id)
	}
	if a.Status == model.StatusRunning {
		return nil
	}
	a.Status = model.StatusRunning
	board.Upsert(a)
	return nil
}

// maybeScheduleReminder queues a reminder for activities sitting in
// scheduled. Publish failures are logged only; the mutation has already
// succeeded.
func (s *ActivityService) maybeScheduleReminder(a model.Activity) {
	if s.Queue == nil || a.Status != model.StatusScheduled {
		return
	}
	if err := s.Queue.Publish(queue.TopicActivityReminders, a.ID); err != nil {
		s.Log.Warn("failed to enqueue reminder", slog.Int("activity_id", a.ID), slog.String("err", err.Error()))
	}
}
