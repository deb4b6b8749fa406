package composer

import "strings"

const DefaultAccentColor = "#44B080"

type LogoPosition string

const (
	LogoTopLeft   LogoPosition = "top-left"
	LogoTopCenter LogoPosition = "top-center"
	LogoTopRight  LogoPosition = "top-right"
)

// RawCustomPage is a cover or closer page as stored per coach. Any field may
// be missing.
type RawCustomPage struct {
	Heading    *string `json:"heading,omitempty"`
	BodyText   *string `json:"body_text,omitempty"`
	FooterText *string `json:"footer_text,omitempty"`
	ShowLogo   *bool   `json:"show_logo,omitempty"`
}

// RawBranding is the partial branding configuration of a coach.
type RawBranding struct {
	AccentColor      *string        `json:"accent_color,omitempty"`
	LogoURL          *string        `json:"logo_url,omitempty"`
	LogoPosition     *string        `json:"logo_position,omitempty"`
	CoverPage        *RawCustomPage `json:"cover_page,omitempty"`
	CloserPage       *RawCustomPage `json:"closer_page,omitempty"`
	CoachDisplayName *string        `json:"coach_display_name,omitempty"`
}

type CustomPage struct {
	Heading    string `json:"heading"`
	BodyText   string `json:"body_text"`
	FooterText string `json:"footer_text"`
	ShowLogo   bool   `json:"show_logo"`
}

// Branding is a fully resolved branding configuration. CoverPage and
// CloserPage are nil when the coach has no content for them.
type Branding struct {
	AccentColor      string       `json:"accent_color"`
	LogoURL          string       `json:"logo_url,omitempty"`
	LogoPosition     LogoPosition `json:"logo_position"`
	CoverPage        *CustomPage  `json:"cover_page,omitempty"`
	CloserPage       *CustomPage  `json:"closer_page,omitempty"`
	CoachDisplayName string       `json:"coach_display_name,omitempty"`
}

// Resolve fills in defaults for a coach's stored branding.
func Resolve(raw RawBranding) Branding {
	b := Branding{
		AccentColor:      str(raw.AccentColor),
		LogoURL:          str(raw.LogoURL),
		LogoPosition:     LogoPosition(str(raw.LogoPosition)),
		CoverPage:        resolvePage(raw.CoverPage),
		CloserPage:       resolvePage(raw.CloserPage),
		CoachDisplayName: str(raw.CoachDisplayName),
	}
	if b.AccentColor == "" {
		b.AccentColor = DefaultAccentColor
	}
	switch b.LogoPosition {
	case LogoTopLeft, LogoTopCenter, LogoTopRight:
	default:
		b.LogoPosition = LogoTopLeft
	}
	return b
}

func resolvePage(raw *RawCustomPage) *CustomPage {
	if raw == nil {
		return nil
	}
	p := CustomPage{
		Heading:    text(raw.Heading),
		BodyText:   text(raw.BodyText),
		FooterText: text(raw.FooterText),
		ShowLogo:   true,
	}
	if p.Heading == "" && p.BodyText == "" && p.FooterText == "" {
		return nil
	}
	if raw.ShowLogo != nil {
		p.ShowLogo = *raw.ShowLogo
	}
	return &p
}

// text keeps free text as written; a blank value counts as empty.
func text(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return ""
	}
	return *s
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
