package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
type mockTripRepo struct {
	getByID func(ctx context.Context, id int) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func completedTrip() domain.Trip {
	return domain.Trip{ID: 1, Destination: "Paris, France", Dates: "Mar 15-22, 2024", Budget: 2500, Status: domain.TripCompleted, Rating: 5}
}

func upcomingTrip() domain.Trip {
	return domain.Trip{ID: 2, Destination: "Tokyo, Japan", Dates: "Jun 10-20, 2024", Budget: 3200, Status: domain.TripUpcoming}
}

// lookupRepo finds trips by id among the given fixtures.
func lookupRepo(trips ...domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id int) (domain.Trip, error) {
			for _, t := range trips {
				if t.ID == id {
					return t, nil
				}
			}
			return domain.Trip{}, domain.ErrNotFound
		},
		list: func(context.Context) ([]domain.Trip, error) { return trips, nil },
	}
}

// ---- tests -----------------------------------------------------------------

func TestTripService_GetByID_Found(t *testing.T) {
	svc := service.NewTripService(lookupRepo(completedTrip()))

	got, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, completedTrip(), got)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	svc := service.NewTripService(lookupRepo())

	_, err := svc.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List_NilBecomesEmpty(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		list: func(context.Context) ([]domain.Trip, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestTripService_List_RepoError(t *testing.T) {
	repoErr := errors.New("boom")
	svc := service.NewTripService(&mockTripRepo{
		list: func(context.Context) ([]domain.Trip, error) { return nil, repoErr },
	})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, repoErr)
}

func TestTripService_Edit_NotImplemented(t *testing.T) {
	svc := service.NewTripService(lookupRepo(upcomingTrip()))

	got, err := svc.Edit(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrNotImplemented)
	assert.Equal(t, "Tokyo, Japan", got.Destination, "the trip is returned so the caller can name it")
}

func TestTripService_Edit_NotFound(t *testing.T) {
	svc := service.NewTripService(lookupRepo())

	_, err := svc.Edit(context.Background(), 2)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrNotImplemented)
}

func TestTripService_ReviewTarget(t *testing.T) {
	svc := service.NewTripService(lookupRepo(completedTrip(), upcomingTrip()))
	ctx := context.Background()

	got, err := svc.ReviewTarget(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", got.Destination)

	_, err = svc.ReviewTarget(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ReviewTarget(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
