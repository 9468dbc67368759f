package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/flight-service/internal/domain"
	"github.com/spec-kit/flight-service/internal/revocation"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	return err == nil, err
}

type fakeRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]struct{}
	err     error
}

func newFakeRevocationStore() *fakeRevocationStore {
	return &fakeRevocationStore{revoked: make(map[string]struct{})}
}

func (s *fakeRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	_, ok := s.revoked[tokenID]
	return ok, nil
}

func (s *fakeRevocationStore) Revoke(_ context.Context, rev revocation.Revocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.revoked[rev.TokenID] = struct{}{}
	return nil
}

func (s *fakeRevocationStore) RevokeMany(_ context.Context, revs []revocation.Revocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	for _, rev := range revs {
		s.revoked[rev.TokenID] = struct{}{}
	}
	return nil
}

func (s *fakeRevocationStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.revoked)
}

type fakeAirportRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Airport
}

func newFakeAirportRepo() *fakeAirportRepo {
	return &fakeAirportRepo{byID: make(map[string]*domain.Airport)}
}

func (r *fakeAirportRepo) Create(_ context.Context, airport *domain.Airport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *airport
	r.byID[airport.ID] = &clone
	return nil
}

func (r *fakeAirportRepo) Update(_ context.Context, airport *domain.Airport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[airport.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *airport
	r.byID[airport.ID] = &clone
	return nil
}

func (r *fakeAirportRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeAirportRepo) GetByID(_ context.Context, id string) (*domain.Airport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	airport, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *airport
	return &clone, nil
}

func (r *fakeAirportRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byID[id]
	return ok, nil
}

func (r *fakeAirportRepo) ExistsByNameAndCity(_ context.Context, name, cityName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, airport := range r.byID {
		if airport.Name == name && airport.CityName == cityName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAirportRepo) List(_ context.Context, limit, offset int) ([]domain.Airport, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.Airport, 0, len(r.byID))
	for _, airport := range r.byID {
		all = append(all, *airport)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type fakeFlightRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Flight
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{byID: make(map[string]*domain.Flight)}
}

func (r *fakeFlightRepo) Create(_ context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *flight
	r.byID[flight.ID] = &clone
	return nil
}

func (r *fakeFlightRepo) Update(_ context.Context, flight *domain.Flight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[flight.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *flight
	r.byID[flight.ID] = &clone
	return nil
}

func (r *fakeFlightRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeFlightRepo) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	flight, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *flight
	return &clone, nil
}

func (r *fakeFlightRepo) List(_ context.Context, limit, offset int) ([]domain.Flight, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]domain.Flight, 0, len(r.byID))
	for _, flight := range r.byID {
		all = append(all, *flight)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}
