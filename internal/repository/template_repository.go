package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
)

type TemplateRepositoryInterface interface {
	Create(t *model.Template) error
	GetByID(id int) (*model.Template, error)
	ListForUser(userID int) ([]model.Template, error)
	Delete(id, userID int) error
}

type TemplateRepository struct {
	DB *sql.DB
}

func (r *TemplateRepository) Create(t *model.Template) error {
	t.CreatedAt = time.Now()
	query := `
        INSERT INTO templates (user_id, name, funnel_stage, channel, body, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	return r.DB.QueryRow(query, t.UserID, t.Name, t.FunnelStage, t.Channel, t.Body, t.CreatedAt).Scan(&t.ID)
}

func (r *TemplateRepository) GetByID(id int) (*model.Template, error) {
	query := `SELECT id, user_id, name, funnel_stage, channel, body, created_at FROM templates WHERE id=$1`
	var t model.Template
	err := r.DB.QueryRow(query, id).Scan(&t.ID, &t.UserID, &t.Name, &t.FunnelStage, &t.Channel, &t.Body, &t.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewTemplateNotFound(id)
		}
		return nil, err
	}
	return &t, nil
}

// ListForUser returns the built-in library (user_id 0) plus the user's own
// templates.
func (r *TemplateRepository) ListForUser(userID int) ([]model.Template, error) {
	query := `SELECT id, user_id, name, funnel_stage, channel, body, created_at
              FROM templates WHERE user_id=0 OR user_id=$1
              ORDER BY user_id, name`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := []model.Template{}
	for rows.Next() {
		var t model.Template
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.FunnelStage, &t.Channel, &t.Body, &t.CreatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

// Delete removes one of the user's own templates; built-ins cannot be
// deleted because user_id 0 never matches.
func (r *TemplateRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM templates WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewTemplateNotFound(id)
	}
	return nil
}

var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)
