package services

import (
	"backend/composer"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=breakfast lunch dinner snack"`
	Calories    int     `json:"calories" binding:"min=0"`
	ProteinG    float64 `json:"protein_g" binding:"min=0"`
	CarbsG      float64 `json:"carbs_g" binding:"min=0"`
	FatsG       float64 `json:"fats_g" binding:"min=0"`
	PortionSize string  `json:"portion_size"`
	Note        string  `json:"note"`
	Vegan       bool    `json:"vegan"`
	GlutenFree  bool    `json:"gluten_free"`
	LactoseFree bool    `json:"lactose_free"`
	NutFree     bool    `json:"nut_free"`
}

func (in MealInput) apply(m *models.Meal) {
	m.Name = in.Name
	m.Category = in.Category
	m.Calories = in.Calories
	m.ProteinG = in.ProteinG
	m.CarbsG = in.CarbsG
	m.FatsG = in.FatsG
	m.PortionSize = in.PortionSize
	m.Note = in.Note
	m.Vegan = in.Vegan
	m.GlutenFree = in.GlutenFree
	m.LactoseFree = in.LactoseFree
	m.NutFree = in.NutFree
}

type MealService struct {
	store scopedStore[models.Meal]
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{store: scopedStore[models.Meal]{db: db}}
}

func (s *MealService) List(coachID uuid.UUID) ([]models.Meal, error) {
	return s.store.list(coachID)
}

func (s *MealService) Get(coachID, id uuid.UUID) (*models.Meal, error) {
	return s.store.get(coachID, id)
}

func (s *MealService) Create(coachID uuid.UUID, in MealInput) (*models.Meal, error) {
	m := &models.Meal{CoachID: coachID}
	in.apply(m)
	if err := s.store.create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MealService) Update(coachID, id uuid.UUID, in MealInput) (*models.Meal, error) {
	m, err := s.store.get(coachID, id)
	if err != nil {
		return nil, err
	}
	in.apply(m)
	if err := s.store.save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MealService) Delete(coachID, id uuid.UUID) error {
	return s.store.delete(coachID, id)
}

// Select returns the chosen meals in selection order.
func (s *MealService) Select(coachID uuid.UUID, ids []uuid.UUID) ([]models.Meal, error) {
	return s.store.selectIDs(coachID, ids, func(m models.Meal) uuid.UUID { return m.ID })
}

func mealRecord(m models.Meal) composer.MealRecord {
	return composer.MealRecord{
		ID:          idString(m.ID),
		Name:        m.Name,
		Category:    composer.MealCategory(m.Category),
		Calories:    m.Calories,
		ProteinG:    m.ProteinG,
		CarbsG:      m.CarbsG,
		FatsG:       m.FatsG,
		PortionSize: m.PortionSize,
		Note:        m.Note,
		Flags: composer.DietaryFlags{
			Vegan:       m.Vegan,
			GlutenFree:  m.GlutenFree,
			LactoseFree: m.LactoseFree,
			NutFree:     m.NutFree,
		},
	}
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
