// internal/schedule/board.go
package schedule

import (
	"log/slog"
	"sync"
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
)

// Persister is the persistence collaborator behind a Board. Load is called
// once at construction; Save after every successful mutation with exactly
// the rows that mutation changed, so rows written by other actors (the
// reminder worker's status flips) are never overwritten by an unrelated
// gesture. Delete removes one row.
type Persister interface {
	Load() ([]model.Activity, error)
	Save(changed []model.Activity) error
	Delete(id int) error
}

// Board is the single source of truth for one user's activity collection.
// Week, month, list and funnel views all read through it, and every
// mutation goes through its explicit methods.
//
// Writes are write-through: a failed Save is logged and does not roll back
// the in-memory change, so a transient storage error never loses the user's
// gesture or crashes the request.
type Board struct {
	mu         sync.RWMutex
	persister  Persister
	activities []model.Activity
	log        *slog.Logger
}

// NewBoard loads the collection from the persister. When the load fails the
// board starts from the built-in seed dataset instead of an error; an empty
// result is kept as-is (the user may genuinely have deleted everything).
func NewBoard(p Persister, userID int, logger *slog.Logger) *Board {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Board{persister: p, log: logger}
	activities, err := p.Load()
	if err != nil {
		logger.Warn("board load failed, falling back to seed data", slog.Int("user_id", userID), slog.String("err", err.Error()))
		activities = SeedActivities(userID)
	}
	b.activities = activities
	return b
}

// All returns a copy of the full collection.
func (b *Board) All() []model.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]model.Activity, len(b.activities))
	copy(out, b.activities)
	return out
}

func (b *Board) ActivitiesForDay(t time.Time) []model.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ActivitiesForDay(b.activities, t)
}

func (b *Board) ActivitiesInRange(start, end time.Time) []model.Activity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ActivitiesInRange(b.activities, start, end)
}

// MoveActivity applies a drag-end and reports whether anything changed.
// No-ops (bad day key, unknown id, drop on self) do not touch the persister.
func (b *Board) MoveActivity(id int, targetDayKey string, targetID *int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := Move(b.activities, id, targetDayKey, targetID)
	if !res.Moved {
		return false
	}
	b.activities = res.Activities
	b.persist(res.Changed)
	return true
}

// ReorderWithinDay permutes one day's list and reports whether anything
// changed.
func (b *Board) ReorderWithinDay(dayKey string, from, to int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := ReorderWithinDay(b.activities, dayKey, from, to)
	if !res.Moved {
		return false
	}
	b.activities = res.Activities
	b.persist(res.Changed)
	return true
}

// Upsert adds the activity, or replaces it when the id already exists. New
// activities land at the end of their day.
func (b *Board) Upsert(a model.Activity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.activities {
		if existing.ID == a.ID {
			b.activities[i] = a
			b.persist([]model.Activity{a})
			return
		}
	}
	a.Position = len(ActivitiesForDay(b.activities, a.Date))
	b.activities = append(b.activities, a)
	b.persist([]model.Activity{a})
}

// Remove deletes the activity and closes the position gap in its day.
func (b *Board) Remove(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	found := false
	var day time.Time
	out := make([]model.Activity, 0, len(b.activities))
	for _, a := range b.activities {
		if a.ID == id {
			found = true
			day = a.Date
			continue
		}
		out = append(out, a)
	}
	if !found {
		return false
	}
	var renumbered []model.Activity
	for i, a := range ActivitiesForDay(out, day) {
		if a.Position == i {
			continue
		}
		for j := range out {
			if out[j].ID == a.ID {
				out[j].Position = i
				renumbered = append(renumbered, out[j])
			}
		}
	}
	b.activities = out
	if err := b.persister.Delete(id); err != nil {
		b.log.Warn("board delete failed", slog.Int("activity_id", id), slog.String("err", err.Error()))
	}
	if len(renumbered) > 0 {
		b.persist(renumbered)
	}
	return true
}

// Get returns the activity by id.
func (b *Board) Get(id int) (model.Activity, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return findActivity(b.activities, id)
}

// persist writes the changed rows through. Callers hold the write lock.
func (b *Board) persist(changed []model.Activity) {
	if err := b.persister.Save(changed); err != nil {
		b.log.Warn("board save failed", slog.String("err", err.Error()))
	}
}
