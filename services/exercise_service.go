package services

import (
	"backend/composer"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscle_group" binding:"required,oneof=back chest arms"`
	Sets        int    `json:"sets" binding:"required,min=1"`
	Description string `json:"description"`
}

func (in ExerciseInput) apply(m *models.Exercise) {
	m.Name = in.Name
	m.MuscleGroup = in.MuscleGroup
	m.Sets = in.Sets
	m.Description = in.Description
}

type ExerciseService struct {
	store scopedStore[models.Exercise]
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{store: scopedStore[models.Exercise]{db: db}}
}

func (s *ExerciseService) List(coachID uuid.UUID) ([]models.Exercise, error) {
	return s.store.list(coachID)
}

func (s *ExerciseService) Get(coachID, id uuid.UUID) (*models.Exercise, error) {
	return s.store.get(coachID, id)
}

func (s *ExerciseService) Create(coachID uuid.UUID, in ExerciseInput) (*models.Exercise, error) {
	m := &models.Exercise{CoachID: coachID}
	in.apply(m)
	if err := s.store.create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *ExerciseService) Update(coachID, id uuid.UUID, in ExerciseInput) (*models.Exercise, error) {
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

func (s *ExerciseService) Delete(coachID, id uuid.UUID) error {
	return s.store.delete(coachID, id)
}

func (s *ExerciseService) Select(coachID uuid.UUID, ids []uuid.UUID) ([]models.Exercise, error) {
	return s.store.selectIDs(coachID, ids, func(m models.Exercise) uuid.UUID { return m.ID })
}

func exerciseRecord(m models.Exercise) composer.ExerciseRecord {
	return composer.ExerciseRecord{
		ID:          idString(m.ID),
		Name:        m.Name,
		MuscleGroup: composer.MuscleGroup(m.MuscleGroup),
		Sets:        m.Sets,
		Description: m.Description,
	}
}
