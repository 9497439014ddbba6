package handler

import (
	"errors"
	"net/http"

	"github.com/monicodev/orbidi-challenge/internal/service"

	"github.com/gin-gonic/gin"
)

// CompetitorHandler handles competitor search requests.
type CompetitorHandler struct {
	service service.CompetitorProvider
}

// NewCompetitorHandler creates a new competitor handler.
func NewCompetitorHandler(svc service.CompetitorProvider) *CompetitorHandler {
	return &CompetitorHandler{service: svc}
}

// Competitors handles GET /api/v1/businesses/:id/competitors requests.
//
//	@Summary		List competitors of a business
//	@Description	Returns same-sector businesses within the radius of the origin point, ranked by conversion metric.
//	@Tags			businesses
//	@Produce		json
//	@Param			id		path		string	true	"Reference business id"
//	@Param			lat		query		number	true	"Latitude of the search origin"
//	@Param			lon		query		number	true	"Longitude of the search origin"
//	@Param			radius	query		integer	true	"Search radius in meters"
//	@Success		200		{object}	models.CompetitorList
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/businesses/{id}/competitors [get]
func (h *CompetitorHandler) Competitors(c *gin.Context) {
	businessID := c.Param("id")

	params, err := parseSearchParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.service.Competitors(c.Request.Context(), businessID, params.Lat, params.Lon, params.RadiusM)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "business not found"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, list)
}
