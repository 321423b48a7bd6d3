// internal/schedule/seed.go
package schedule

import (
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
)

// SeedActivities is the starter week shown when a board cannot be loaded.
// Dates are laid out relative to the current Monday so the demo content is
// always visible on first open. Seed ids are negative so they can never
// collide with rows assigned by the database sequence.
func SeedActivities(userID int) []model.Activity {
	monday := WeekStart(time.Now())
	now := time.Now()

	mk := func(id, dayOffset, position int, title, stage, channel, pillar, status string) model.Activity {
		return model.Activity{
			ID:            id,
			UserID:        userID,
			Date:          monday.AddDate(0, 0, dayOffset),
			Position:      position,
			Title:         title,
			FunnelStage:   stage,
			Channel:       channel,
			ContentPillar: pillar,
			Status:        status,
			CreatedAt:     now,
		}
	}

	return []model.Activity{
		mk(-1, 0, 0, "Intro post: meet the founder", model.StageAwareness, "linkedin", "behind the scenes", model.StatusIdea),
		mk(-2, 0, 1, "Welcome email for new subscribers", model.StageConsideration, "email", "education", model.StatusDraft),
		mk(-3, 1, 0, "Customer story reel", model.StageConsideration, "instagram", "social proof", model.StatusReady),
		mk(-4, 2, 0, "Limited offer announcement", model.StageConversion, "email", "promotion", model.StatusScheduled),
		mk(-5, 4, 0, "How-to blog: getting started", model.StageAwareness, "blog", "education", model.StatusDraft),
		mk(-6, 5, 0, "Thank-you post for loyal customers", model.StageRetention, "facebook", "social proof", model.StatusIdea),
	}
}

// SeedCampaigns pairs with SeedActivities for the demo calendar.
func SeedCampaigns(userID int) []model.Campaign {
	monday := WeekStart(time.Now())
	return []model.Campaign{
		{
			ID:        -1,
			UserID:    userID,
			Name:      "Spring launch",
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 13),
			Color:     "#7c9885",
			CreatedAt: time.Now(),
		},
	}
}
