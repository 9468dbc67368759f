package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/flight-service/internal/domain"
)

// AirportRepository defines persistence access for airports.
type AirportRepository interface {
	Create(ctx context.Context, airport *domain.Airport) error
	Update(ctx context.Context, airport *domain.Airport) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Airport, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByNameAndCity(ctx context.Context, name, cityName string) (bool, error)
	List(ctx context.Context, limit, offset int) ([]domain.Airport, int64, error)
}

type airportRepository struct {
	pool *pgxpool.Pool
}

// NewAirportRepository returns a Postgres-backed implementation.
func NewAirportRepository(pool *pgxpool.Pool) AirportRepository {
	return &airportRepository{pool: pool}
}

func (r *airportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	const query = `
        INSERT INTO airports (id, name, city_name)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		airport.ID,
		airport.Name,
		airport.CityName,
	).Scan(&airport.CreatedAt, &airport.UpdatedAt)
}

func (r *airportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	const query = `
        UPDATE airports SET name=$1, city_name=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, airport.Name, airport.CityName, airport.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *airportRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM airports WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *airportRepository) GetByID(ctx context.Context, id string) (*domain.Airport, error) {
	const query = `
        SELECT id, name, city_name, created_at, updated_at
        FROM airports WHERE id=$1`

	var airport domain.Airport
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&airport.ID,
		&airport.Name,
		&airport.CityName,
		&airport.CreatedAt,
		&airport.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *airportRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM airports WHERE id=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *airportRepository) ExistsByNameAndCity(ctx context.Context, name, cityName string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM airports WHERE name=$1 AND city_name=$2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, cityName).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *airportRepository) List(ctx context.Context, limit, offset int) ([]domain.Airport, int64, error) {
	const countQuery = `SELECT COUNT(*) FROM airports`

	var total int64
	if err := r.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT id, name, city_name, created_at, updated_at
        FROM airports
        ORDER BY name
        LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0, limit)
	for rows.Next() {
		var airport domain.Airport
		if err := rows.Scan(
			&airport.ID,
			&airport.Name,
			&airport.CityName,
			&airport.CreatedAt,
			&airport.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		airports = append(airports, airport)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return airports, total, nil
}
