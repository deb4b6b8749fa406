package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrNothingToRender    = errors.New("nothing to render")
	ErrNoRecipient        = errors.New("no recipient email")
	ErrInvalidImage       = errors.New("invalid image")
	ErrLogoRejected       = errors.New("logo rejected by moderation")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
