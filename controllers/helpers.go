package controllers

import (
	"errors"
	"log"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// coachID returns the tenant set by AuthMiddleware.
func coachID(c *gin.Context) uuid.UUID {
	v, _ := c.Get("coachID")
	id, _ := v.(uuid.UUID)
	return id
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidImage), errors.Is(err, services.ErrNoRecipient):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNothingToRender), errors.Is(err, services.ErrLogoRejected):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
