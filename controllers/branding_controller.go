package controllers

import (
	"net/http"

	"backend/composer"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type LogoUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

type BrandingController struct {
	Branding *services.BrandingService
	Logos    *services.LogoService
}

func NewBrandingController(b *services.BrandingService, logos *services.LogoService) *BrandingController {
	return &BrandingController{Branding: b, Logos: logos}
}

// GET /branding returns the stored values next to the ones plans will use.
func (bc *BrandingController) Get(c *gin.Context) {
	b, err := bc.Branding.Get(coachID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"branding": b,
		"resolved": composer.Resolve(services.RawBranding(b)),
	})
}

func (bc *BrandingController) Update(c *gin.Context) {
	var in services.BrandingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := bc.Branding.Update(coachID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"branding": b,
		"resolved": composer.Resolve(services.RawBranding(b)),
	})
}

// POST /branding/logo
func (bc *BrandingController) UploadLogo(c *gin.Context) {
	if bc.Logos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "logo storage not configured"})
		return
	}
	var req LogoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	b, err := bc.Logos.Upload(c.Request.Context(), coachID(c), req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logo_url": b.LogoURL})
}
