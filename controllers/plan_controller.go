package controllers

import (
	"context"
	"net/http"

	"backend/composer"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Plans is the part of services.PlanService the HTTP layer needs.
type Plans interface {
	ComposeMealPlan(coachID uuid.UUID, req services.MealPlanRequest) (composer.Document, *models.Client, error)
	ComposeTrainingPlan(coachID uuid.UUID, req services.TrainingPlanRequest) (composer.Document, *models.Client, error)
	GenerateMealPlan(ctx context.Context, coachID uuid.UUID, req services.MealPlanRequest) (*models.PlanDocument, error)
	GenerateTrainingPlan(ctx context.Context, coachID uuid.UUID, req services.TrainingPlanRequest) (*models.PlanDocument, error)
	ListDocuments(coachID uuid.UUID, clientID *uuid.UUID) ([]models.PlanDocument, error)
	DocumentURL(ctx context.Context, coachID, id uuid.UUID, inline bool) (string, error)
	EmailDocument(ctx context.Context, coachID, id uuid.UUID, to string) error
	DeleteDocument(ctx context.Context, coachID, id uuid.UUID) error
}

type EmailPlanRequest struct {
	To string `json:"to" binding:"omitempty,email"`
}

type PlanController struct {
	Plans Plans
}

func NewPlanController(p Plans) *PlanController {
	return &PlanController{Plans: p}
}

// POST /plans/meal/preview
func (pc *PlanController) PreviewMeal(c *gin.Context) {
	var req services.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, _, err := pc.Plans.ComposeMealPlan(coachID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	previewJSON(c, doc)
}

// POST /plans/training/preview
func (pc *PlanController) PreviewTraining(c *gin.Context) {
	var req services.TrainingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, _, err := pc.Plans.ComposeTrainingPlan(coachID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	previewJSON(c, doc)
}

func previewJSON(c *gin.Context, doc composer.Document) {
	pages := doc.Pages
	if pages == nil {
		pages = []composer.Page{}
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages, "page_count": len(pages)})
}

// POST /plans/meal
func (pc *PlanController) GenerateMeal(c *gin.Context) {
	var req services.MealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := pc.Plans.GenerateMealPlan(c.Request.Context(), coachID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// POST /plans/training
func (pc *PlanController) GenerateTraining(c *gin.Context) {
	var req services.TrainingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := pc.Plans.GenerateTrainingPlan(c.Request.Context(), coachID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GET /plans?client_id=
func (pc *PlanController) List(c *gin.Context) {
	var clientID *uuid.UUID
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client_id"})
			return
		}
		clientID = &id
	}
	docs, err := pc.Plans.ListDocuments(coachID(c), clientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if docs == nil {
		docs = []models.PlanDocument{}
	}
	c.JSON(http.StatusOK, docs)
}

// GET /plans/:id/download
func (pc *PlanController) Download(c *gin.Context) {
	pc.link(c, false)
}

// GET /plans/:id/view
func (pc *PlanController) View(c *gin.Context) {
	pc.link(c, true)
}

func (pc *PlanController) link(c *gin.Context, inline bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	url, err := pc.Plans.DocumentURL(c.Request.Context(), coachID(c), id, inline)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// POST /plans/:id/email
func (pc *PlanController) Email(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req EmailPlanRequest
	// an empty body sends to the client's address
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := pc.Plans.EmailDocument(c.Request.Context(), coachID(c), id, req.To); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan sent"})
}

// DELETE /plans/:id
func (pc *PlanController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pc.Plans.DeleteDocument(c.Request.Context(), coachID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
