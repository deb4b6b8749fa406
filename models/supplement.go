package models

import "github.com/google/uuid"

type Supplement struct {
	Base
	CoachID      uuid.UUID `gorm:"type:uuid;index;not null" json:"coach_id"`
	Name         string    `gorm:"not null" json:"name"`
	PillsPerDose int       `gorm:"default:1" json:"pills_per_dose"`
	WhenToTake   string    `gorm:"size:16;not null" json:"when_to_take"`
	Benefits     string    `gorm:"type:text" json:"benefits"`
	Dosage       string    `json:"dosage"`
	Note         string    `gorm:"type:text" json:"note"`
}
