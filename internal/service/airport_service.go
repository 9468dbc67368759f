package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/repository"
	apperrors "github.com/spec-kit/flight-service/pkg/util"
)

var (
	// ErrAirportNotFound signals an unknown airport id.
	ErrAirportNotFound = errors.New("airport not found")
	// ErrAirportAlreadyExists rejects a duplicate name/city pair.
	ErrAirportAlreadyExists = errors.New("airport already exists")
)

// AirportService coordinates airport CRUD.
type AirportService struct {
	airports repository.AirportRepository
}

// NewAirportService builds the service.
func NewAirportService(airports repository.AirportRepository) *AirportService {
	return &AirportService{airports: airports}
}

// AirportInput describes create/update payloads.
type AirportInput struct {
	Name     string
	CityName string
}

func (in AirportInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return apperrors.NewValidationError("airport name cannot be empty", nil)
	}
	if strings.TrimSpace(in.CityName) == "" {
		return apperrors.NewValidationError("city name cannot be empty", nil)
	}
	return nil
}

// Create stores a new airport and returns it.
func (s *AirportService) Create(ctx context.Context, input AirportInput) (*domain.Airport, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	exists, err := s.airports.ExistsByNameAndCity(ctx, input.Name, input.CityName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAirportAlreadyExists
	}

	airport := &domain.Airport{
		ID:       uuid.NewString(),
		Name:     input.Name,
		CityName: input.CityName,
	}
	if err := s.airports.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

// GetByID loads one airport.
func (s *AirportService) GetByID(ctx context.Context, id string) (*domain.Airport, error) {
	airport, err := s.airports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAirportNotFound
		}
		return nil, err
	}
	return airport, nil
}

// List returns one page of airports ordered by name.
func (s *AirportService) List(ctx context.Context, req PageRequest) ([]domain.Airport, PageInfo, error) {
	req = req.Normalize()
	limit, offset := req.limitOffset()

	airports, total, err := s.airports.List(ctx, limit, offset)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return airports, pageInfo(req, total), nil
}

// Update replaces the mutable fields of an airport.
func (s *AirportService) Update(ctx context.Context, id string, input AirportInput) (*domain.Airport, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	airport, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	airport.Name = input.Name
	airport.CityName = input.CityName
	if err := s.airports.Update(ctx, airport); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAirportNotFound
		}
		return nil, err
	}
	return airport, nil
}

// Delete removes an airport.
func (s *AirportService) Delete(ctx context.Context, id string) error {
	if err := s.airports.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAirportNotFound
		}
		return err
	}
	return nil
}
