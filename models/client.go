package models

import "github.com/google/uuid"

type Client struct {
	Base
	CoachID uuid.UUID `gorm:"type:uuid;index;not null" json:"coach_id"`
	Name    string    `gorm:"not null" json:"name"`
	Email   string    `json:"email"`
	Notes   string    `gorm:"type:text" json:"notes"`
}
