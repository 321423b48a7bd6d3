// internal/model/template.go
package model

import "time"

// Template is a reusable content blueprint. UserID 0 marks a built-in
// library entry visible to everyone. Body may contain {placeholder} tokens
// substituted at render time.
type Template struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	FunnelStage string    `db:"funnel_stage" json:"funnel_stage"`
	Channel     string    `db:"channel" json:"channel"`
	Body        string    `db:"body" json:"body"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
