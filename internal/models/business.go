package models

// Business represents a commercial venue stored in the businesses table.
type Business struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	IAECode                 string  `json:"iae_code"`
	Rentability             float64 `json:"rentability"`
	ProximityToUrbanCenterM float64 `json:"proximity_to_urban_center_m"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
}

// Coordinates is the lat/lon pair embedded in API responses.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ScoredBusiness is a Business annotated with its distance from the search
// point and its computed conversion metric. Built fresh per query, never
// persisted.
type ScoredBusiness struct {
	ID                      string      `json:"id"`
	Name                    string      `json:"name"`
	IAECode                 string      `json:"iae_code"`
	Rentability             float64     `json:"rentability"`
	ProximityToUrbanCenterM float64     `json:"proximity_to_urban_center_m"`
	DistanceFromSearchM     float64     `json:"distance_from_search_m"`
	Coordinates             Coordinates `json:"coordinates"`
	Metric                  float64     `json:"metric"`
}

// BusinessList is the response envelope for the radius search endpoint.
type BusinessList struct {
	Count      int              `json:"count"`
	Businesses []ScoredBusiness `json:"businesses"`
}

// CompetitorList is the response envelope for the competitor endpoint.
type CompetitorList struct {
	Count       int              `json:"count"`
	Competitors []ScoredBusiness `json:"competitors"`
}
