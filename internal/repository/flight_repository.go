package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/flight-service/internal/domain"
)

// FlightRepository defines persistence access for flights.
type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	Update(ctx context.Context, flight *domain.Flight) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	List(ctx context.Context, limit, offset int) ([]domain.Flight, int64, error)
}

type flightRepository struct {
	pool *pgxpool.Pool
}

// NewFlightRepository returns a Postgres-backed implementation.
func NewFlightRepository(pool *pgxpool.Pool) FlightRepository {
	return &flightRepository{pool: pool}
}

func (r *flightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	const query = `
        INSERT INTO flights (id, from_airport_id, to_airport_id, departure_time, arrival_time, price)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		flight.ID,
		flight.FromAirportID,
		flight.ToAirportID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.Price,
	).Scan(&flight.CreatedAt, &flight.UpdatedAt)
}

func (r *flightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	const query = `
        UPDATE flights
        SET from_airport_id=$1, to_airport_id=$2, departure_time=$3, arrival_time=$4, price=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		flight.FromAirportID,
		flight.ToAirportID,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.Price,
		flight.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM flights WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *flightRepository) GetByID(ctx context.Context, id string) (*domain.Flight, error) {
	const query = `
        SELECT id, from_airport_id, to_airport_id, departure_time, arrival_time, price, created_at, updated_at
        FROM flights WHERE id=$1`

	var flight domain.Flight
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&flight.ID,
		&flight.FromAirportID,
		&flight.ToAirportID,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.Price,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) List(ctx context.Context, limit, offset int) ([]domain.Flight, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM flights`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT id, from_airport_id, to_airport_id, departure_time, arrival_time, price, created_at, updated_at
        FROM flights
        ORDER BY departure_time
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0, limit)
	for rows.Next() {
		var flight domain.Flight
		if err := rows.Scan(
			&flight.ID,
			&flight.FromAirportID,
			&flight.ToAirportID,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.Price,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		flights = append(flights, flight)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return flights, total, nil
}
