// internal/model/goal.go
package model

import "time"

const (
	GoalHorizonAnnual    = "annual"
	GoalHorizonQuarterly = "quarterly"
	GoalHorizonWeekly    = "weekly"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

var GoalHorizons = []string{GoalHorizonAnnual, GoalHorizonQuarterly, GoalHorizonWeekly}

// Goal tracks a target for a period. Period is a label like "2025",
// "2025-Q3" or "2025-W24" depending on the horizon. Activities may link to
// a weekly goal through Activity.GoalID; the link is opaque data here.
type Goal struct {
	ID          int        `db:"id" json:"id"`
	UserID      int        `db:"user_id" json:"user_id"`
	Horizon     string     `db:"horizon" json:"horizon"`
	Period      string     `db:"period" json:"period"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description,omitempty"`
	Target      int        `db:"target" json:"target"`
	Current     int        `db:"current" json:"current"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

func ValidGoalHorizon(s string) bool { return contains(GoalHorizons, s) }
