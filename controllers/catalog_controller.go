package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Catalog is the coach-scoped CRUD surface shared by clients, meals,
// supplements and exercises.
type Catalog[M any, In any] interface {
	List(coachID uuid.UUID) ([]M, error)
	Get(coachID, id uuid.UUID) (*M, error)
	Create(coachID uuid.UUID, in In) (*M, error)
	Update(coachID, id uuid.UUID, in In) (*M, error)
	Delete(coachID, id uuid.UUID) error
}

type CatalogController[M any, In any] struct {
	Svc Catalog[M, In]
}

func NewCatalogController[M any, In any](svc Catalog[M, In]) *CatalogController[M, In] {
	return &CatalogController[M, In]{Svc: svc}
}

// Mount registers the list/create routes on g and the item routes on
// g/:id.
func (cc *CatalogController[M, In]) Mount(g *gin.RouterGroup) {
	g.GET("", cc.List)
	g.POST("", cc.Create)
	g.GET("/:id", cc.Get)
	g.PUT("/:id", cc.Update)
	g.DELETE("/:id", cc.Delete)
}

func (cc *CatalogController[M, In]) List(c *gin.Context) {
	rows, err := cc.Svc.List(coachID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []M{}
	}
	c.JSON(http.StatusOK, rows)
}

func (cc *CatalogController[M, In]) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := cc.Svc.Get(coachID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (cc *CatalogController[M, In]) Create(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := cc.Svc.Create(coachID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (cc *CatalogController[M, In]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := cc.Svc.Update(coachID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (cc *CatalogController[M, In]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := cc.Svc.Delete(coachID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
