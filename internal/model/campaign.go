// internal/model/campaign.go
package model

import "time"

// Campaign is a multi-day band drawn across the calendar. StartDate and
// EndDate are inclusive, at day granularity. Campaigns do not reference
// activities; overlap with a visible week row is computed on demand.
type Campaign struct {
	ID        int        `db:"id" json:"id"`
	UserID    int        `db:"user_id" json:"user_id"`
	Name      string     `db:"name" json:"name"`
	StartDate time.Time  `db:"start_date" json:"start_date"`
	EndDate   time.Time  `db:"end_date" json:"end_date"`
	Color     string     `db:"color" json:"color"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
