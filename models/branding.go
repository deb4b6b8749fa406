package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomPageContent is the free text of a cover or closer page. An all-empty
// value means the page is not shown.
type CustomPageContent struct {
	Heading    *string `json:"heading,omitempty"`
	BodyText   *string `json:"body_text,omitempty"`
	FooterText *string `json:"footer_text,omitempty"`
	ShowLogo   *bool   `json:"show_logo,omitempty"`
}

// Branding holds a coach's presentation settings as entered; defaults are
// applied at composition time.
type Branding struct {
	Base
	CoachID          uuid.UUID                             `gorm:"type:uuid;uniqueIndex;not null" json:"coach_id"`
	AccentColor      *string                               `gorm:"size:16" json:"accent_color"`
	LogoURL          *string                               `json:"logo_url"`
	LogoPosition     *string                               `gorm:"size:16" json:"logo_position"`
	CoachDisplayName *string                               `json:"coach_display_name"`
	CoverPage        datatypes.JSONType[CustomPageContent] `json:"cover_page"`
	CloserPage       datatypes.JSONType[CustomPageContent] `json:"closer_page"`
}
