package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/repository"
)

var (
	// ErrFlightNotFound signals an unknown flight id.
	ErrFlightNotFound = errors.New("flight not found")
	// ErrUnknownAirport rejects flights referencing airports that do not exist.
	ErrUnknownAirport = errors.New("unknown airport")
	// ErrSameAirports rejects flights departing and arriving at one airport.
	ErrSameAirports = errors.New("departure and arrival airports must differ")
	// ErrArrivalBeforeDeparture rejects schedules with arrival earlier than departure.
	ErrArrivalBeforeDeparture = errors.New("arrival time cannot precede departure time")
	// ErrInvalidPrice rejects non-positive prices.
	ErrInvalidPrice = errors.New("price must be greater than zero")
)

// FlightService coordinates flight CRUD.
type FlightService struct {
	flights  repository.FlightRepository
	airports repository.AirportRepository
}

// NewFlightService builds the service.
func NewFlightService(flights repository.FlightRepository, airports repository.AirportRepository) *FlightService {
	return &FlightService{flights: flights, airports: airports}
}

// FlightInput describes create/update payloads.
type FlightInput struct {
	FromAirportID string
	ToAirportID   string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Price         float64
}

func (s *FlightService) validateInput(ctx context.Context, input FlightInput) error {
	if input.Price <= 0 {
		return ErrInvalidPrice
	}
	if input.ArrivalTime.Before(input.DepartureTime) {
		return ErrArrivalBeforeDeparture
	}
	if input.FromAirportID == input.ToAirportID {
		return ErrSameAirports
	}

	for _, airportID := range []string{input.FromAirportID, input.ToAirportID} {
		exists, err := s.airports.ExistsByID(ctx, airportID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUnknownAirport
		}
	}
	return nil
}

// Create stores a new flight and returns it.
func (s *FlightService) Create(ctx context.Context, input FlightInput) (*domain.Flight, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		ID:            uuid.NewString(),
		FromAirportID: input.FromAirportID,
		ToAirportID:   input.ToAirportID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Price:         input.Price,
	}
	if err := s.flights.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// GetByID loads one flight.
func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}

// List returns one page of flights ordered by departure time.
func (s *FlightService) List(ctx context.Context, req PageRequest) ([]domain.Flight, PageInfo, error) {
	req = req.Normalize()
	limit, offset := req.limitOffset()

	flights, total, err := s.flights.List(ctx, limit, offset)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return flights, pageInfo(req, total), nil
}

// Update replaces the mutable fields of a flight.
func (s *FlightService) Update(ctx context.Context, id string, input FlightInput) (*domain.Flight, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	flight, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	flight.FromAirportID = input.FromAirportID
	flight.ToAirportID = input.ToAirportID
	flight.DepartureTime = input.DepartureTime
	flight.ArrivalTime = input.ArrivalTime
	flight.Price = input.Price
	if err := s.flights.Update(ctx, flight); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFlightNotFound
		}
		return nil, err
	}
	return flight, nil
}

// Delete removes a flight.
func (s *FlightService) Delete(ctx context.Context, id string) error {
	if err := s.flights.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrFlightNotFound
		}
		return err
	}
	return nil
}
