package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// DataLoader seeds demo airports and flights at startup. Intended for
// development environments; controlled by SEED_DEMO_DATA.
type DataLoader struct {
	airports *AirportService
	flights  *FlightService
	logger   *zap.Logger
}

// NewDataLoader builds the loader.
func NewDataLoader(airports *AirportService, flights *FlightService, logger *zap.Logger) *DataLoader {
	return &DataLoader{airports: airports, flights: flights, logger: logger}
}

// LoadDemoData creates three sample airports and flights between them.
// Reruns are tolerated: airports that already exist are skipped.
func (l *DataLoader) LoadDemoData(ctx context.Context) error {
	inputs := []AirportInput{
		{Name: "Los Angeles International Airport", CityName: "Los Angeles"},
		{Name: "John F. Kennedy International Airport", CityName: "New York"},
		{Name: "Chicago O'Hare International Airport", CityName: "Chicago"},
	}

	airportIDs := make([]string, 0, len(inputs))
	for _, input := range inputs {
		airport, err := l.airports.Create(ctx, input)
		if err != nil {
			if errors.Is(err, ErrAirportAlreadyExists) {
				l.logger.Info("demo airport already present, skipping seed", zap.String("name", input.Name))
				return nil
			}
			return err
		}
		airportIDs = append(airportIDs, airport.ID)
	}

	departure1 := time.Now().AddDate(0, 0, 1).Truncate(time.Hour).Add(10 * time.Hour)
	departure2 := departure1.AddDate(0, 0, 1).Add(-time.Hour)
	departure3 := departure1.AddDate(0, 0, 2).Add(5*time.Hour + 30*time.Minute)

	flights := []FlightInput{
		{
			FromAirportID: airportIDs[0],
			ToAirportID:   airportIDs[1],
			DepartureTime: departure1,
			ArrivalTime:   departure1.Add(4 * time.Hour),
			Price:         250,
		},
		{
			FromAirportID: airportIDs[1],
			ToAirportID:   airportIDs[0],
			DepartureTime: departure2,
			ArrivalTime:   departure2.Add(4 * time.Hour),
			Price:         260,
		},
		{
			FromAirportID: airportIDs[1],
			ToAirportID:   airportIDs[2],
			DepartureTime: departure3,
			ArrivalTime:   departure3.Add(3 * time.Hour),
			Price:         180,
		},
	}

	for _, input := range flights {
		if _, err := l.flights.Create(ctx, input); err != nil {
			return err
		}
	}

	l.logger.Info("demo data loaded",
		zap.Int("airports", len(airportIDs)),
		zap.Int("flights", len(flights)),
	)
	return nil
}
