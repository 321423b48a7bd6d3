package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
)

type GoalRepositoryInterface interface {
	Create(g *model.Goal) error
	GetByID(id int) (*model.Goal, error)
	ListByUser(userID int, horizon string) ([]model.Goal, error)
	Update(g *model.Goal) error
	Delete(id, userID int) error
}

type GoalRepository struct {
	DB *sql.DB
}

const goalColumns = `id, user_id, horizon, period, title, description, target, current, status, created_at, updated_at`

func (r *GoalRepository) Create(g *model.Goal) error {
	g.CreatedAt = time.Now()
	if g.Status == "" {
		g.Status = model.GoalStatusActive
	}
	query := `
        INSERT INTO goals (user_id, horizon, period, title, description, target, current, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	return r.DB.QueryRow(query,
		g.UserID, g.Horizon, g.Period, g.Title, g.Description, g.Target, g.Current, g.Status, g.CreatedAt,
	).Scan(&g.ID)
}

func (r *GoalRepository) GetByID(id int) (*model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id=$1`
	var g model.Goal
	err := r.DB.QueryRow(query, id).Scan(
		&g.ID, &g.UserID, &g.Horizon, &g.Period, &g.Title, &g.Description,
		&g.Target, &g.Current, &g.Status, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewGoalNotFound(id)
		}
		return nil, err
	}
	return &g, nil
}

// ListByUser returns the user's goals, optionally narrowed to one horizon.
func (r *GoalRepository) ListByUser(userID int, horizon string) ([]model.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id=$1`
	args := []interface{}{userID}
	if horizon != "" {
		query += ` AND horizon=$2`
		args = append(args, horizon)
	}
	query += ` ORDER BY period, id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []model.Goal{}
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Horizon, &g.Period, &g.Title, &g.Description,
			&g.Target, &g.Current, &g.Status, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *GoalRepository) Update(g *model.Goal) error {
	query := `
        UPDATE goals
        SET title=$1, description=$2, target=$3, current=$4, status=$5, period=$6, updated_at=NOW()
        WHERE id=$7 AND user_id=$8
    `
	res, err := r.DB.Exec(query, g.Title, g.Description, g.Target, g.Current, g.Status, g.Period, g.ID, g.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewGoalNotFound(g.ID)
	}
	return nil
}

func (r *GoalRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM goals WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewGoalNotFound(id)
	}
	return nil
}

var _ GoalRepositoryInterface = (*GoalRepository)(nil)
