package cache

import (
	"fmt"
	"strconv"
)

// Coordinates are rendered with a fixed number of decimals before key
// assembly so textual variants of the same value ("40.4167" vs "40.41670")
// collide on one key. Six decimals is ~0.1m of latitude.
const coordPrecision = 6

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', coordPrecision, 64)
}

// SearchKey builds the cache key for a radius search.
func SearchKey(lat, lon float64, radiusM int) string {
	return fmt.Sprintf("search:%s:%s:%d", formatCoord(lat), formatCoord(lon), radiusM)
}

// CompetitorsKey builds the cache key for a competitor search.
func CompetitorsKey(businessID string, lat, lon float64, radiusM int) string {
	return fmt.Sprintf("search:%s:%s:%s:%d", businessID, formatCoord(lat), formatCoord(lon), radiusM)
}
