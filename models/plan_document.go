package models

import "github.com/google/uuid"

const (
	PlanKindMeal     = "meal"
	PlanKindTraining = "training"
)

// PlanDocument is a rendered plan PDF stored in S3.
type PlanDocument struct {
	Base
	CoachID   uuid.UUID `gorm:"type:uuid;index;not null" json:"coach_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Kind      string    `gorm:"size:16;not null" json:"kind"`
	FileName  string    `json:"file_name"`
	ObjectKey string    `gorm:"not null" json:"-"`
	Pages     int       `json:"pages"`
	SizeBytes int64     `json:"size_bytes"`
}
