package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"backend/composer"
	"backend/models"
	"backend/renderer"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BrandingInput struct {
	AccentColor      *string                   `json:"accent_color" binding:"omitempty,hexcolor"`
	LogoPosition     *string                   `json:"logo_position" binding:"omitempty,oneof=top-left top-center top-right"`
	CoachDisplayName *string                   `json:"coach_display_name"`
	CoverPage        *models.CustomPageContent `json:"cover_page"`
	CloserPage       *models.CustomPageContent `json:"closer_page"`
}

type BrandingService struct {
	db *gorm.DB
}

func NewBrandingService(db *gorm.DB) *BrandingService {
	return &BrandingService{db: db}
}

// Get returns the stored branding, or an unsaved empty row when the coach
// has never configured any.
func (s *BrandingService) Get(coachID uuid.UUID) (*models.Branding, error) {
	var b models.Branding
	err := s.db.Where("coach_id = ?", coachID).First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Branding{CoachID: coachID}, nil
		}
		return nil, err
	}
	return &b, nil
}

func (s *BrandingService) Update(coachID uuid.UUID, in BrandingInput) (*models.Branding, error) {
	b, err := s.Get(coachID)
	if err != nil {
		return nil, err
	}
	if in.AccentColor != nil {
		b.AccentColor = in.AccentColor
	}
	if in.LogoPosition != nil {
		b.LogoPosition = in.LogoPosition
	}
	if in.CoachDisplayName != nil {
		b.CoachDisplayName = in.CoachDisplayName
	}
	if in.CoverPage != nil {
		b.CoverPage = datatypes.NewJSONType(*in.CoverPage)
	}
	if in.CloserPage != nil {
		b.CloserPage = datatypes.NewJSONType(*in.CloserPage)
	}
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BrandingService) SetLogoURL(coachID uuid.UUID, url string) (*models.Branding, error) {
	b, err := s.Get(coachID)
	if err != nil {
		return nil, err
	}
	b.LogoURL = &url
	if err := s.db.Save(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// Raw converts the stored row into the composer's partial branding.
func (s *BrandingService) Raw(coachID uuid.UUID) (composer.RawBranding, error) {
	b, err := s.Get(coachID)
	if err != nil {
		return composer.RawBranding{}, err
	}
	return RawBranding(b), nil
}

func RawBranding(b *models.Branding) composer.RawBranding {
	return composer.RawBranding{
		AccentColor:      b.AccentColor,
		LogoURL:          b.LogoURL,
		LogoPosition:     b.LogoPosition,
		CoverPage:        rawPage(b.CoverPage.Data()),
		CloserPage:       rawPage(b.CloserPage.Data()),
		CoachDisplayName: b.CoachDisplayName,
	}
}

func rawPage(c models.CustomPageContent) *composer.RawCustomPage {
	return &composer.RawCustomPage{
		Heading:    c.Heading,
		BodyText:   c.BodyText,
		FooterText: c.FooterText,
		ShowLogo:   c.ShowLogo,
	}
}

type ImageModerator interface {
	ModerationLabels(ctx context.Context, img []byte) ([]string, error)
}

type PublicStorage interface {
	PutPublic(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// LogoService moderates and stores a coach's logo, then points the branding
// at it.
type LogoService struct {
	branding  *BrandingService
	storage   PublicStorage
	moderator ImageModerator
}

func NewLogoService(branding *BrandingService, storage PublicStorage, moderator ImageModerator) *LogoService {
	return &LogoService{branding: branding, storage: storage, moderator: moderator}
}

func (s *LogoService) Upload(ctx context.Context, coachID uuid.UUID, dataURI string) (*models.Branding, error) {
	data, contentType, ext, err := utils.DecodeDataURI(dataURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	// only formats the PDF renderer can embed
	if renderer.ImageType(contentType, "") == "" {
		return nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, contentType)
	}

	if s.moderator != nil {
		labels, err := s.moderator.ModerationLabels(ctx, data)
		if err != nil {
			return nil, err
		}
		if len(labels) > 0 {
			return nil, fmt.Errorf("%w: %v", ErrLogoRejected, labels)
		}
	}

	key := fmt.Sprintf("logos/%s-%d%s", coachID, time.Now().UnixNano(), ext)
	url, err := s.storage.PutPublic(ctx, key, contentType, data)
	if err != nil {
		return nil, err
	}
	return s.branding.SetLogoURL(coachID, url)
}
