package services

import (
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

type ClientService struct {
	store scopedStore[models.Client]
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{store: scopedStore[models.Client]{db: db}}
}

func (s *ClientService) List(coachID uuid.UUID) ([]models.Client, error) {
	return s.store.list(coachID)
}

func (s *ClientService) Get(coachID, id uuid.UUID) (*models.Client, error) {
	return s.store.get(coachID, id)
}

func (s *ClientService) Create(coachID uuid.UUID, in ClientInput) (*models.Client, error) {
	c := &models.Client{CoachID: coachID, Name: in.Name, Email: in.Email, Notes: in.Notes}
	if err := s.store.create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Update(coachID, id uuid.UUID, in ClientInput) (*models.Client, error) {
	c, err := s.store.get(coachID, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Email = in.Email
	c.Notes = in.Notes
	if err := s.store.save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ClientService) Delete(coachID, id uuid.UUID) error {
	return s.store.delete(coachID, id)
}
