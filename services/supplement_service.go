package services

import (
	"backend/composer"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupplementInput struct {
	Name         string `json:"name" binding:"required"`
	PillsPerDose int    `json:"pills_per_dose" binding:"required,min=1"`
	WhenToTake   string `json:"when_to_take" binding:"required,oneof=morning before_meal with_meal after_meal afternoon evening before_bed as_needed"`
	Benefits     string `json:"benefits"`
	Dosage       string `json:"dosage"`
	Note         string `json:"note"`
}

func (in SupplementInput) apply(m *models.Supplement) {
	m.Name = in.Name
	m.PillsPerDose = in.PillsPerDose
	m.WhenToTake = in.WhenToTake
	m.Benefits = in.Benefits
	m.Dosage = in.Dosage
	m.Note = in.Note
}

type SupplementService struct {
	store scopedStore[models.Supplement]
}

func NewSupplementService(db *gorm.DB) *SupplementService {
	return &SupplementService{store: scopedStore[models.Supplement]{db: db}}
}

func (s *SupplementService) List(coachID uuid.UUID) ([]models.Supplement, error) {
	return s.store.list(coachID)
}

func (s *SupplementService) Get(coachID, id uuid.UUID) (*models.Supplement, error) {
	return s.store.get(coachID, id)
}

func (s *SupplementService) Create(coachID uuid.UUID, in SupplementInput) (*models.Supplement, error) {
	m := &models.Supplement{CoachID: coachID}
	in.apply(m)
	if err := s.store.create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *SupplementService) Update(coachID, id uuid.UUID, in SupplementInput) (*models.Supplement, error) {
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

func (s *SupplementService) Delete(coachID, id uuid.UUID) error {
	return s.store.delete(coachID, id)
}

func (s *SupplementService) Select(coachID uuid.UUID, ids []uuid.UUID) ([]models.Supplement, error) {
	return s.store.selectIDs(coachID, ids, func(m models.Supplement) uuid.UUID { return m.ID })
}

func supplementRecord(m models.Supplement) composer.SupplementRecord {
	return composer.SupplementRecord{
		ID:           idString(m.ID),
		Name:         m.Name,
		PillsPerDose: m.PillsPerDose,
		WhenToTake:   composer.WhenToTake(m.WhenToTake),
		Benefits:     m.Benefits,
		Dosage:       m.Dosage,
		Note:         m.Note,
	}
}
