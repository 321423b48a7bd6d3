package repository

import (
	"database/sql"
	"time"

	appErrors "github.com/heartielabs/heartie-backend/internal/errors"
	"github.com/heartielabs/heartie-backend/internal/model"
)

type CampaignRepositoryInterface interface {
	Create(c *model.Campaign) error
	GetByID(id int) (*model.Campaign, error)
	ListByUser(userID int) ([]model.Campaign, error)
	ListOverlapping(userID int, from, to time.Time) ([]model.Campaign, error)
	Update(c *model.Campaign) error
	Delete(id, userID int) error
}

type CampaignRepository struct {
	DB *sql.DB
}

const campaignColumns = `id, user_id, name, start_date, end_date, color, created_at, updated_at`

func (r *CampaignRepository) Create(c *model.Campaign) error {
	c.CreatedAt = time.Now()
	query := `
        INSERT INTO campaigns (user_id, name, start_date, end_date, color, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	return r.DB.QueryRow(query, c.UserID, c.Name, c.StartDate, c.EndDate, c.Color, c.CreatedAt).Scan(&c.ID)
}

func (r *CampaignRepository) GetByID(id int) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id=$1`
	var c model.Campaign
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.StartDate, &c.EndDate, &c.Color, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCampaignNotFound(id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByUser(userID int) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id=$1 ORDER BY start_date, id`
	return r.scanList(query, userID)
}

// ListOverlapping returns campaigns intersecting [from, to] inclusive.
func (r *CampaignRepository) ListOverlapping(userID int, from, to time.Time) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns
              WHERE user_id=$1 AND start_date <= $3 AND end_date >= $2
              ORDER BY start_date, id`
	return r.scanList(query, userID, from, to)
}

func (r *CampaignRepository) scanList(query string, args ...interface{}) ([]model.Campaign, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []model.Campaign{}
	for rows.Next() {
		var c model.Campaign
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.StartDate, &c.EndDate, &c.Color, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(c *model.Campaign) error {
	query := `
        UPDATE campaigns
        SET name=$1, start_date=$2, end_date=$3, color=$4, updated_at=NOW()
        WHERE id=$5 AND user_id=$6
    `
	res, err := r.DB.Exec(query, c.Name, c.StartDate, c.EndDate, c.Color, c.ID, c.UserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(c.ID)
	}
	return nil
}

func (r *CampaignRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewCampaignNotFound(id)
	}
	return nil
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
