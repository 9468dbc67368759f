package domain

import "time"

// Airport is the domain model for an airport served by the system.
type Airport struct {
	ID        string
	Name      string
	CityName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
