// Package service contains the business logic for the travel planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// Nothing here knows about the page; the controller turns results into markup.
package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// GetByID returns a single trip by id.
// Returns domain.ErrNotFound if no trip with that id exists.
func (s *TripService) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return t, nil
}

// List returns all trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Edit looks up the trip to edit. Editing has no behaviour yet, so on
// success it returns the trip together with domain.ErrNotImplemented.
// Returns domain.ErrNotFound if no trip with that id exists.
func (s *TripService) Edit(ctx context.Context, id int) (domain.Trip, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Edit: %w", err)
	}
	return t, fmt.Errorf("service.TripService.Edit: %w", domain.ErrNotImplemented)
}

// ReviewTarget returns the trip a review is about to be written for.
// Only completed trips can be reviewed; asking for an upcoming trip
// returns domain.ErrValidation.
func (s *TripService) ReviewTarget(ctx context.Context, id int) (domain.Trip, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.ReviewTarget: %w", err)
	}
	if !t.Completed() {
		return domain.Trip{}, fmt.Errorf("service.TripService.ReviewTarget: %w: trip %d has not happened yet", domain.ErrValidation, id)
	}
	return t, nil
}
