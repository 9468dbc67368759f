package revocation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists revoked token ids in the invalid_tokens table.
// Inserts rely on the primary key for idempotency; RevokeMany runs in a
// single transaction so the set becomes visible all-or-nothing.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a Postgres-backed revocation store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// IsRevoked checks for the token id in the invalid_tokens table.
func (s *PostgresStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM invalid_tokens WHERE token_id=$1)`

	var revoked bool
	if err := s.pool.QueryRow(ctx, query, tokenID).Scan(&revoked); err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return revoked, nil
}

// Revoke inserts the token id, ignoring duplicates.
func (s *PostgresStore) Revoke(ctx context.Context, rev Revocation) error {
	const query = `
        INSERT INTO invalid_tokens (token_id, expires_at)
        VALUES ($1, $2)
        ON CONFLICT (token_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, rev.TokenID, rev.ExpiresAt); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// RevokeMany inserts all token ids inside one transaction.
func (s *PostgresStore) RevokeMany(ctx context.Context, revs []Revocation) error {
	if len(revs) == 0 {
		return nil
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		const query = `
            INSERT INTO invalid_tokens (token_id, expires_at)
            VALUES ($1, $2)
            ON CONFLICT (token_id) DO NOTHING`

		for _, rev := range revs {
			if _, err := tx.Exec(ctx, query, rev.TokenID, rev.ExpiresAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// PruneExpired deletes records whose tokens have passed their natural expiry.
// Such tokens are rejected by the verifier regardless, so removing them does
// not affect correctness. Maintenance only; never on the request path.
func (s *PostgresStore) PruneExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM invalid_tokens WHERE expires_at < NOW()`

	cmd, err := s.pool.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return cmd.RowsAffected(), nil
}
