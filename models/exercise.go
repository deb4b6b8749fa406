package models

import "github.com/google/uuid"

type Exercise struct {
	Base
	CoachID     uuid.UUID `gorm:"type:uuid;index;not null" json:"coach_id"`
	Name        string    `gorm:"not null" json:"name"`
	MuscleGroup string    `gorm:"size:16;not null" json:"muscle_group"` // back|chest|arms
	Sets        int       `json:"sets"`
	Description string    `gorm:"type:text" json:"description"`
}
