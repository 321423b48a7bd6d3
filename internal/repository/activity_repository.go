package repository

import (
	"database/sql"
	"fmt"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
)

type ActivityRepositoryInterface interface {
	Create(a *model.Activity) error
	GetByID(id int) (*model.Activity, error)
	ListByUser(userID int) ([]model.Activity, error)
	UpsertForUser(userID int, activities []model.Activity) error
	Delete(id, userID int) error
	UpdateStatus(id int, status string) error
	CountsByDimension(userID int, dimension string, from, to time.Time) (map[string]int, error)
}

type ActivityRepository struct {
	DB *sql.DB
}

const activityColumns = `id, user_id, date, position, title, content, funnel_stage, channel,
	activity_type, content_pillar, status, goal_id, created_at, updated_at`

func (r *ActivityRepository) Create(a *model.Activity) error {
	a.CreatedAt = time.Now()
	if a.Status == "" {
		a.Status = model.StatusIdea
	}
	query := `
        INSERT INTO activities
            (user_id, date, position, title, content, funnel_stage, channel,
             activity_type, content_pillar, status, goal_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		a.UserID, a.Date, a.Position, a.Title, a.Content, a.FunnelStage, a.Channel,
		a.ActivityType, a.ContentPillar, a.Status, a.GoalID, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *ActivityRepository) GetByID(id int) (*model.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id=$1`
	var a model.Activity
	err := r.DB.QueryRow(query, id).Scan(
		&a.ID, &a.UserID, &a.Date, &a.Position, &a.Title, &a.Content, &a.FunnelStage,
		&a.Channel, &a.ActivityType, &a.ContentPillar, &a.Status, &a.GoalID,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewActivityNotFound(id)
		}
		return nil, err
	}
	return &a, nil
}

// ListByUser returns the user's full collection in board order.
func (r *ActivityRepository) ListByUser(userID int) ([]model.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE user_id=$1 ORDER BY date, position, id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []model.Activity{}
	for rows.Next() {
		var a model.Activity
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Date, &a.Position, &a.Title, &a.Content, &a.FunnelStage,
			&a.Channel, &a.ActivityType, &a.ContentPillar, &a.Status, &a.GoalID,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// UpsertForUser writes one batch of changed rows through in a transaction.
// Only the rows a mutation actually touched are sent here, so writes made
// elsewhere (the reminder worker's status flips) are never clobbered by an
// unrelated drag. This is the Save side of the board's persistence
// collaborator.
func (r *ActivityRepository) UpsertForUser(userID int, activities []model.Activity) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `
        INSERT INTO activities
            (id, user_id, date, position, title, content, funnel_stage, channel,
             activity_type, content_pillar, status, goal_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (id) DO UPDATE SET
            date=EXCLUDED.date, position=EXCLUDED.position, title=EXCLUDED.title,
            content=EXCLUDED.content, funnel_stage=EXCLUDED.funnel_stage,
            channel=EXCLUDED.channel, activity_type=EXCLUDED.activity_type,
            content_pillar=EXCLUDED.content_pillar, status=EXCLUDED.status,
            goal_id=EXCLUDED.goal_id, updated_at=NOW()
    `
	for _, a := range activities {
		if _, err := tx.Exec(upsert,
			a.ID, userID, a.Date, a.Position, a.Title, a.Content, a.FunnelStage,
			a.Channel, a.ActivityType, a.ContentPillar, a.Status, a.GoalID, a.CreatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ActivityRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM activities WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewActivityNotFound(id)
	}
	return nil
}

func (r *ActivityRepository) UpdateStatus(id int, status string) error {
	query := `UPDATE activities SET status=$1, updated_at=NOW() WHERE id=$2`
	_, err := r.DB.Exec(query, status, id)
	return err
}

// CountsByDimension groups the user's activities in [from, to] by one of
// status, funnel_stage or channel.
func (r *ActivityRepository) CountsByDimension(userID int, dimension string, from, to time.Time) (map[string]int, error) {
	var column string
	switch dimension {
	case "status":
		column = "status"
	case "funnel_stage":
		column = "funnel_stage"
	case "channel":
		column = "channel"
	default:
		return nil, fmt.Errorf("unknown analytics dimension %q", dimension)
	}

	query := `SELECT ` + column + `, COUNT(*) FROM activities
              WHERE user_id=$1 AND date >= $2 AND date <= $3
              GROUP BY ` + column
	rows, err := r.DB.Query(query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var value string
		var count int
		if err := rows.Scan(&value, &count); err != nil {
			return nil, err
		}
		counts[value] = count
	}
	return counts, rows.Err()
}

var _ ActivityRepositoryInterface = (*ActivityRepository)(nil)
