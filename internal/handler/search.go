package handler

import (
	"errors"
	"net/http"

	"github.com/monicodev/orbidi-challenge/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles radius search requests.
type SearchHandler struct {
	service service.SearchProvider
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(svc service.SearchProvider) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /api/v1/businesses/search requests.
//
//	@Summary		Search nearby businesses
//	@Description	Returns businesses within the radius, ranked by conversion metric. Results are cached for 5 minutes.
//	@Tags			businesses
//	@Produce		json
//	@Param			lat		query		number	true	"Latitude of the search origin"
//	@Param			lon		query		number	true	"Longitude of the search origin"
//	@Param			radius	query		integer	true	"Search radius in meters"
//	@Success		200		{object}	models.BusinessList
//	@Failure		400		{object}	map[string]string
//	@Failure		401		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Security		BearerAuth
//	@Router			/businesses/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	params, err := parseSearchParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.service.Search(c.Request.Context(), params.Lat, params.Lon, params.RadiusM)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, list)
}
