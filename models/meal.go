package models

import "github.com/google/uuid"

// Meal is a meal template in a coach's library.
type Meal struct {
	Base
	CoachID     uuid.UUID `gorm:"type:uuid;index;not null" json:"coach_id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"size:16;not null" json:"category"` // breakfast|lunch|dinner|snack
	Calories    int       `json:"calories"`
	ProteinG    float64   `json:"protein_g"`
	CarbsG      float64   `json:"carbs_g"`
	FatsG       float64   `json:"fats_g"`
	PortionSize string    `json:"portion_size"`
	Note        string    `gorm:"type:text" json:"note"`
	Vegan       bool      `json:"vegan"`
	GlutenFree  bool      `json:"gluten_free"`
	LactoseFree bool      `json:"lactose_free"`
	NutFree     bool      `json:"nut_free"`
}
