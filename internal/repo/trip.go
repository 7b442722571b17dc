// Package repo holds the in-memory collections behind one session.
// Each resource has its own file with an interface and a slice-backed
// implementation seeded from literals. No business logic lives here.
package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/travel-planner/internal/domain"
)

// TripRepo defines the read operations for the sample trips.
// The service layer depends on this interface, not the in-memory
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// GetByID retrieves a single trip by id.
	// Returns domain.ErrNotFound if no trip with that id exists.
	GetByID(ctx context.Context, id int) (domain.Trip, error)

	// List returns all trips in seed order.
	List(ctx context.Context) ([]domain.Trip, error)
}

// memTripRepo is the slice-backed implementation of TripRepo.
type memTripRepo struct {
	mu    sync.RWMutex
	trips []domain.Trip
}

// NewTripRepo constructs a TripRepo holding a private copy of trips.
func NewTripRepo(trips []domain.Trip) TripRepo {
	return &memTripRepo{trips: slices.Clone(trips)}
}

// GetByID retrieves a trip by id.
func (r *memTripRepo) GetByID(_ context.Context, id int) (domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.trips, func(t domain.Trip) bool { return t.ID == id })
	if i < 0 {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.trips[i], nil
}

// List returns a copy of all trips so callers cannot mutate the collection.
func (r *memTripRepo) List(_ context.Context) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.trips), nil
}
