package services

import (
	"errors"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(email, password, displayName string) (*models.Coach, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.Model(&models.Coach{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	coach := &models.Coach{Email: email, Password: hashed, DisplayName: displayName}
	if err := s.db.Create(coach).Error; err != nil {
		return nil, err
	}
	return coach, nil
}

// Login checks credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	var coach models.Coach
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&coach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !utils.CheckPasswordHash(password, coach.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(coach.ID.String(), coach.Email)
}

func (s *AuthService) Coach(email string) (*models.Coach, error) {
	var coach models.Coach
	if err := s.db.Where("email = ?", email).First(&coach).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &coach, nil
}
