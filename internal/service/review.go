package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// reviewMessages name each unmet requirement of the review form.
var reviewMessages = map[string]string{
	"destination": "destination is required",
	"review":      "review text is required",
	"rating":      "rating is required",
}

// ReviewRequest is the input of the "write a review" form.
// Rating is the committed star value of the rating widget; 0 means none.
type ReviewRequest struct {
	Destination string `form:"destination" validate:"required"`
	Text        string `form:"review" validate:"required"`
	Rating      int    `form:"rating" validate:"min=1,max=5"`
}

// ReviewService implements business logic for Review operations.
type ReviewService struct {
	reviews repo.ReviewRepo
}

// NewReviewService constructs a ReviewService backed by the provided ReviewRepo.
func NewReviewService(r repo.ReviewRepo) *ReviewService {
	return &ReviewService{reviews: r}
}

// Submit validates req and prepends a new review written by the current user.
// Returns a *domain.ValidationError naming every unmet requirement; nothing
// is stored in that case.
func (s *ReviewService) Submit(ctx context.Context, req ReviewRequest) (domain.Review, error) {
	req.Destination = strings.TrimSpace(req.Destination)
	req.Text = strings.TrimSpace(req.Text)

	if err := validateForm(req, reviewMessages); err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Submit: %w", err)
	}

	created, err := s.reviews.Prepend(ctx, domain.Review{
		Destination: req.Destination,
		Rating:      req.Rating,
		Text:        req.Text,
		User:        domain.CurrentUser,
		Date:        domain.JustNow,
	})
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.Submit: %w", err)
	}
	return created, nil
}

// GetByID returns a single review by id.
func (s *ReviewService) GetByID(ctx context.Context, id int) (domain.Review, error) {
	r, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return domain.Review{}, fmt.Errorf("service.ReviewService.GetByID: %w", err)
	}
	return r, nil
}

// List returns all reviews, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReviewService.List: %w", err)
	}
	if reviews == nil {
		return []domain.Review{}, nil
	}
	return reviews, nil
}
