package repo

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pkordes/travel-planner/internal/domain"
)

// ReviewRepo defines the operations for the review collection.
type ReviewRepo interface {
	// Prepend stores review at the front of the collection and returns it
	// with a freshly assigned id. Any id on the input is ignored.
	Prepend(ctx context.Context, review domain.Review) (domain.Review, error)

	// GetByID retrieves a single review by id.
	// Returns domain.ErrNotFound if no review with that id exists.
	GetByID(ctx context.Context, id int) (domain.Review, error)

	// List returns all reviews, newest first.
	List(ctx context.Context) ([]domain.Review, error)
}

// memReviewRepo is the slice-backed implementation of ReviewRepo.
// nextID only ever grows, so ids stay unique for the life of the session.
type memReviewRepo struct {
	mu      sync.RWMutex
	reviews []domain.Review
	nextID  int
}

// NewReviewRepo constructs a ReviewRepo holding a private copy of reviews.
func NewReviewRepo(reviews []domain.Review) ReviewRepo {
	r := &memReviewRepo{reviews: slices.Clone(reviews), nextID: 1}
	for _, rv := range reviews {
		if rv.ID >= r.nextID {
			r.nextID = rv.ID + 1
		}
	}
	return r
}

// Prepend assigns the next id and inserts the review at index 0.
func (r *memReviewRepo) Prepend(_ context.Context, review domain.Review) (domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = r.nextID
	r.nextID++
	r.reviews = slices.Insert(r.reviews, 0, review)
	return review, nil
}

// GetByID retrieves a review by id.
func (r *memReviewRepo) GetByID(_ context.Context, id int) (domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.reviews, func(rv domain.Review) bool { return rv.ID == id })
	if i < 0 {
		return domain.Review{}, fmt.Errorf("repo.ReviewRepo.GetByID: %w", domain.ErrNotFound)
	}
	return r.reviews[i], nil
}

// List returns a copy of all reviews, newest first.
func (r *memReviewRepo) List(_ context.Context) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.reviews), nil
}
