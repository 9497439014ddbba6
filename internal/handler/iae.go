package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/monicodev/orbidi-challenge/internal/models"
	"github.com/monicodev/orbidi-challenge/internal/service"

	"github.com/gin-gonic/gin"
)

// IAEHandler handles IAE typology administration requests.
type IAEHandler struct {
	service IAEService
}

// IAEService is the service surface the IAE handler consumes.
type IAEService interface {
	Upsert(ctx context.Context, code string, value int) (*models.IAECategory, error)
}

// NewIAEHandler creates a new IAE handler.
func NewIAEHandler(svc IAEService) *IAEHandler {
	return &IAEHandler{service: svc}
}

// UpsertIAERequest is the request body for typology upserts.
type UpsertIAERequest struct {
	IAECode        string `json:"iae_code" binding:"required" example:"E471.1"`
	ValorTipologia int    `json:"valor_tipologia" binding:"required,gte=1,lte=1000" example:"850"`
}

// Upsert handles POST /api/v1/iae requests.
//
//	@Summary		Upsert an IAE typology value
//	@Description	Adds or updates the typology value an IAE code contributes to the scoring metric. Cached rankings are not invalidated and expire naturally.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpsertIAERequest	true	"IAE code and typology value"
//	@Success		201		{object}	models.IAECategory
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/iae [post]
func (h *IAEHandler) Upsert(c *gin.Context) {
	var req UpsertIAERequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cat, err := h.service.Upsert(c.Request.Context(), req.IAECode, req.ValorTipologia)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, cat)
}
