package dto

import (
	"time"

	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/service"
)

// FlightRequest payload for create and update.
type FlightRequest struct {
	FromAirportID string    `json:"from_airport_id"`
	ToAirportID   string    `json:"to_airport_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Price         float64   `json:"price"`
}

// ToInput converts the request to the service-level input.
func (r FlightRequest) ToInput() service.FlightInput {
	return service.FlightInput{
		FromAirportID: r.FromAirportID,
		ToAirportID:   r.ToAirportID,
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		Price:         r.Price,
	}
}

// FlightResponse is the public view of a flight.
type FlightResponse struct {
	ID            string    `json:"id"`
	FromAirportID string    `json:"from_airport_id"`
	ToAirportID   string    `json:"to_airport_id"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewFlightResponse maps a domain flight.
func NewFlightResponse(flight *domain.Flight) FlightResponse {
	return FlightResponse{
		ID:            flight.ID,
		FromAirportID: flight.FromAirportID,
		ToAirportID:   flight.ToAirportID,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Price:         flight.Price,
		CreatedAt:     flight.CreatedAt,
		UpdatedAt:     flight.UpdatedAt,
	}
}

// NewFlightResponses maps a slice of domain flights.
func NewFlightResponses(flights []domain.Flight) []FlightResponse {
	out := make([]FlightResponse, 0, len(flights))
	for i := range flights {
		out = append(out, NewFlightResponse(&flights[i]))
	}
	return out
}
