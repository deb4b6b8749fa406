package models

import (
	"time"

	"github.com/google/uuid"
)

type CoachDevice struct {
	ID          uint      `gorm:"primaryKey"`
	CoachID     uuid.UUID `gorm:"type:uuid;index"`
	Platform    string    `gorm:"size:16"` // "android" | "ios"
	TokenHash   string    `gorm:"size:64"`
	EndpointARN string    `gorm:"size:256"`
	Enabled     bool      `gorm:"default:true"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
