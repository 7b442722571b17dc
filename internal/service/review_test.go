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

// mockReviewRepo is a hand-written test double for repo.ReviewRepo.
// Each method is a function field; set only the ones your test needs.
type mockReviewRepo struct {
	prepend func(ctx context.Context, r domain.Review) (domain.Review, error)
	getByID func(ctx context.Context, id int) (domain.Review, error)
	list    func(ctx context.Context) ([]domain.Review, error)
}

func (m *mockReviewRepo) Prepend(ctx context.Context, r domain.Review) (domain.Review, error) {
	return m.prepend(ctx, r)
}
func (m *mockReviewRepo) GetByID(ctx context.Context, id int) (domain.Review, error) {
	return m.getByID(ctx, id)
}
func (m *mockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	return m.list(ctx)
}

// compile-time check: mockReviewRepo must satisfy repo.ReviewRepo.
var _ repo.ReviewRepo = (*mockReviewRepo)(nil)

func validReviewRequest() service.ReviewRequest {
	return service.ReviewRequest{Destination: "Goa", Text: "Sunny and calm.", Rating: 4}
}

func TestReviewService_Submit_PrependsStampedReview(t *testing.T) {
	var stored domain.Review
	r := &mockReviewRepo{
		prepend: func(_ context.Context, rv domain.Review) (domain.Review, error) {
			stored = rv
			rv.ID = 42
			return rv, nil
		},
	}
	svc := service.NewReviewService(r)

	got, err := svc.Submit(context.Background(), service.ReviewRequest{Destination: "  Goa ", Text: " Sunny and calm. ", Rating: 4})

	require.NoError(t, err)
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, domain.Review{Destination: "Goa", Rating: 4, Text: "Sunny and calm.", User: "You", Date: "Just now"}, stored)
}

func TestReviewService_Submit_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   service.ReviewRequest
		field string
		msg   string
	}{
		{"no rating", service.ReviewRequest{Destination: "Goa", Text: "ok", Rating: 0}, "rating", "rating is required"},
		{"blank destination", service.ReviewRequest{Destination: "  ", Text: "ok", Rating: 3}, "destination", "destination is required"},
		{"blank text", service.ReviewRequest{Destination: "Goa", Text: "\n", Rating: 3}, "review", "review text is required"},
		{"rating too high", service.ReviewRequest{Destination: "Goa", Text: "ok", Rating: 6}, "rating", "rating is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := &mockReviewRepo{
				prepend: func(_ context.Context, rv domain.Review) (domain.Review, error) {
					called = true
					return rv, nil
				},
			}
			svc := service.NewReviewService(r)

			_, err := svc.Submit(context.Background(), tt.req)

			require.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tt.msg)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field))
			assert.False(t, called, "no record may be created on validation failure")
		})
	}
}

func TestReviewService_Submit_NamesEveryUnmetRequirement(t *testing.T) {
	svc := service.NewReviewService(&mockReviewRepo{})

	_, err := svc.Submit(context.Background(), service.ReviewRequest{})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "destination is required; review text is required; rating is required")
}

func TestReviewService_Submit_RepoError(t *testing.T) {
	repoErr := errors.New("collection unavailable")
	svc := service.NewReviewService(&mockReviewRepo{
		prepend: func(context.Context, domain.Review) (domain.Review, error) { return domain.Review{}, repoErr },
	})

	_, err := svc.Submit(context.Background(), validReviewRequest())

	assert.ErrorIs(t, err, repoErr)
}

func TestReviewService_List_NilBecomesEmpty(t *testing.T) {
	svc := service.NewReviewService(&mockReviewRepo{
		list: func(context.Context) ([]domain.Review, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReviewService_GetByID_NotFound(t *testing.T) {
	svc := service.NewReviewService(&mockReviewRepo{
		getByID: func(context.Context, int) (domain.Review, error) { return domain.Review{}, domain.ErrNotFound },
	})

	_, err := svc.GetByID(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
