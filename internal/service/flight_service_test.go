package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/flight-service/internal/domain"
)

func flightFixture(t *testing.T) (*FlightService, *domain.Airport, *domain.Airport) {
	t.Helper()

	airportRepo := newFakeAirportRepo()
	airportSvc := NewAirportService(airportRepo)
	ctx := context.Background()

	from, err := airportSvc.Create(ctx, AirportInput{Name: "Los Angeles International Airport", CityName: "Los Angeles"})
	require.NoError(t, err)
	to, err := airportSvc.Create(ctx, AirportInput{Name: "John F. Kennedy International Airport", CityName: "New York"})
	require.NoError(t, err)

	return NewFlightService(newFakeFlightRepo(), airportRepo), from, to
}

func validFlightInput(from, to *domain.Airport) FlightInput {
	departure := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	return FlightInput{
		FromAirportID: from.ID,
		ToAirportID:   to.ID,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(4 * time.Hour),
		Price:         250,
	}
}

func TestFlightCreateAndGet(t *testing.T) {
	svc, from, to := flightFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validFlightInput(from, to))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	loaded, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, from.ID, loaded.FromAirportID)
	assert.Equal(t, to.ID, loaded.ToAirportID)
}

func TestFlightCreateValidation(t *testing.T) {
	svc, from, to := flightFixture(t)
	ctx := context.Background()

	input := validFlightInput(from, to)
	input.Price = 0
	_, err := svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	input = validFlightInput(from, to)
	input.ArrivalTime = input.DepartureTime.Add(-time.Hour)
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrArrivalBeforeDeparture)

	input = validFlightInput(from, to)
	input.ToAirportID = input.FromAirportID
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrSameAirports)

	input = validFlightInput(from, to)
	input.ToAirportID = "missing"
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrUnknownAirport)
}

func TestFlightArrivalEqualDepartureAllowed(t *testing.T) {
	svc, from, to := flightFixture(t)

	input := validFlightInput(from, to)
	input.ArrivalTime = input.DepartureTime
	_, err := svc.Create(context.Background(), input)
	assert.NoError(t, err)
}

func TestFlightUpdate(t *testing.T) {
	svc, from, to := flightFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validFlightInput(from, to))
	require.NoError(t, err)

	input := validFlightInput(to, from)
	input.Price = 260
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, to.ID, updated.FromAirportID)
	assert.Equal(t, 260.0, updated.Price)

	_, err = svc.Update(ctx, "missing", validFlightInput(from, to))
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestFlightDelete(t *testing.T) {
	svc, from, to := flightFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validFlightInput(from, to))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrFlightNotFound)
}

func TestFlightListPagination(t *testing.T) {
	svc, from, to := flightFixture(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := svc.Create(ctx, validFlightInput(from, to))
		require.NoError(t, err)
	}

	flights, info, err := svc.List(ctx, PageRequest{Page: 1, Size: 5})
	require.NoError(t, err)
	assert.Len(t, flights, 5)
	assert.Equal(t, int64(7), info.TotalElements)
	assert.Equal(t, 2, info.TotalPages)
}
