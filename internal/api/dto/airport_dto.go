package dto

import (
	"time"

	"github.com/spec-kit/flight-service/internal/domain"
)

// AirportRequest payload for create and update.
type AirportRequest struct {
	Name     string `json:"name"`
	CityName string `json:"city_name"`
}

// AirportResponse is the public view of an airport.
type AirportResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CityName  string    `json:"city_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAirportResponse maps a domain airport.
func NewAirportResponse(airport *domain.Airport) AirportResponse {
	return AirportResponse{
		ID:        airport.ID,
		Name:      airport.Name,
		CityName:  airport.CityName,
		CreatedAt: airport.CreatedAt,
		UpdatedAt: airport.UpdatedAt,
	}
}

// NewAirportResponses maps a slice of domain airports.
func NewAirportResponses(airports []domain.Airport) []AirportResponse {
	out := make([]AirportResponse, 0, len(airports))
	for i := range airports {
		out = append(out, NewAirportResponse(&airports[i]))
	}
	return out
}
