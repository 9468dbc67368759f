package domain

import "time"

// Flight is the domain model for a scheduled flight between two airports.
type Flight struct {
	ID            string
	FromAirportID string
	ToAirportID   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Price         float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
