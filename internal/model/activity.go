// internal/model/activity.go
package model

import "time"

// Activity status progression. Transitions are not enforced: any status may
// be set to any other.
const (
	StatusIdea      = "idea"
	StatusDraft     = "draft"
	StatusReady     = "ready"
	StatusScheduled = "scheduled"
	StatusRunning   = "running"
	StatusComplete  = "complete"
)

// Funnel stages.
const (
	StageAwareness     = "awareness"
	StageConsideration = "consideration"
	StageConversion    = "conversion"
	StageRetention     = "retention"
)

var Statuses = []string{StatusIdea, StatusDraft, StatusReady, StatusScheduled, StatusRunning, StatusComplete}

var FunnelStages = []string{StageAwareness, StageConsideration, StageConversion, StageRetention}

var Channels = []string{"linkedin", "instagram", "facebook", "tiktok", "youtube", "email", "blog", "ads"}

// Activity is one planned piece of marketing content on the board.
// Position is the explicit ordinal of the activity within its calendar day;
// it is rewritten on every move or reorder and starts at 0.
type Activity struct {
	ID            int        `db:"id" json:"id"`
	UserID        int        `db:"user_id" json:"user_id"`
	Date          time.Time  `db:"date" json:"date"`
	Position      int        `db:"position" json:"position"`
	Title         string     `db:"title" json:"title"`
	Content       string     `db:"content" json:"content"`
	FunnelStage   string     `db:"funnel_stage" json:"funnel_stage"`
	Channel       string     `db:"channel" json:"channel"`
	ActivityType  string     `db:"activity_type" json:"activity_type,omitempty"`
	ContentPillar string     `db:"content_pillar" json:"content_pillar,omitempty"`
	Status        string     `db:"status" json:"status"`
	GoalID        *int       `db:"goal_id" json:"goal_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

func ValidStatus(s string) bool { return contains(Statuses, s) }

func ValidFunnelStage(s string) bool { return contains(FunnelStages, s) }

func ValidChannel(s string) bool { return contains(Channels, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
