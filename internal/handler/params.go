package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// searchParams are the query parameters shared by the search and competitor
// endpoints.
type searchParams struct {
	Lat     float64
	Lon     float64
	RadiusM int
}

func parseSearchParams(c *gin.Context) (searchParams, error) {
	var p searchParams

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	radiusStr := c.Query("radius")

	if latStr == "" || lonStr == "" || radiusStr == "" {
		return p, fmt.Errorf("missing required query parameters 'lat', 'lon' and 'radius'")
	}

	var err error
	if p.Lat, err = strconv.ParseFloat(latStr, 64); err != nil {
		return p, fmt.Errorf("invalid latitude format")
	}
	if p.Lon, err = strconv.ParseFloat(lonStr, 64); err != nil {
		return p, fmt.Errorf("invalid longitude format")
	}
	if p.RadiusM, err = strconv.Atoi(radiusStr); err != nil {
		return p, fmt.Errorf("invalid radius format")
	}

	return p, nil
}
