// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// notFound is implemented by every *NotFound error so handlers can map the
// whole family to a 404 without listing each type.
type notFound interface{ NotFound() bool }

type ErrActivityNotFound struct {
	ActivityID int
}

func (e *ErrActivityNotFound) Error() string {
	return fmt.Sprintf("activity with ID %d not found", e.ActivityID)
}

func (e *ErrActivityNotFound) NotFound() bool { return true }

func NewActivityNotFound(id int) error { return &ErrActivityNotFound{ActivityID: id} }

type ErrCampaignNotFound struct {
	CampaignID int
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("campaign with ID %d not found", e.CampaignID)
}

func (e *ErrCampaignNotFound) NotFound() bool { return true }

func NewCampaignNotFound(id int) error { return &ErrCampaignNotFound{CampaignID: id} }

type ErrGoalNotFound struct {
	GoalID int
}

func (e *ErrGoalNotFound) Error() string {
	return fmt.Sprintf("goal with ID %d not found", e.GoalID)
}

func (e *ErrGoalNotFound) NotFound() bool { return true }

func NewGoalNotFound(id int) error { return &ErrGoalNotFound{GoalID: id} }

type ErrTemplateNotFound struct {
	TemplateID int
}

func (e *ErrTemplateNotFound) Error() string {
	return fmt.Sprintf("template with ID %d not found", e.TemplateID)
}

func (e *ErrTemplateNotFound) NotFound() bool { return true }

func NewTemplateNotFound(id int) error { return &ErrTemplateNotFound{TemplateID: id} }

type ErrUserNotFound struct {
	Email string
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user %s not found", e.Email)
}

func (e *ErrUserNotFound) NotFound() bool { return true }

func NewUserNotFound(email string) error { return &ErrUserNotFound{Email: email} }

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	var nf notFound
	return errors.As(err, &nf) && nf.NotFound()
}
