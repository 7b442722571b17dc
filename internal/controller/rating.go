package controller

import (
	"context"

	"github.com/pkordes/travel-planner/internal/domain"
)

// HoverStar previews rating k by lighting stars 1..k. The committed rating
// is unchanged. Indices outside 1–5 are ignored.
func (c *Controller) HoverStar(ctx context.Context, k int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validStar(ctx, k) {
		return
	}
	c.updateStars(ctx, k)
}

// ClickStar commits rating k.
func (c *Controller) ClickStar(ctx context.Context, k int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.validStar(ctx, k) {
		return
	}
	c.state.CurrentRating = k
	c.updateStars(ctx, k)
}

// LeaveStars reverts any hover preview to the committed rating.
func (c *Controller) LeaveStars(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateStars(ctx, c.state.CurrentRating)
}

// ResetRating clears the committed rating and every highlight.
func (c *Controller) ResetRating(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetRating(ctx)
}

func (c *Controller) resetRating(ctx context.Context) {
	c.state.CurrentRating = 0
	c.updateStars(ctx, 0)
}

func (c *Controller) validStar(ctx context.Context, k int) bool {
	if k < domain.MinRating || k > domain.MaxRating {
		c.log.WarnContext(ctx, "star index out of range", "star", k)
		return false
	}
	return true
}

func (c *Controller) updateStars(ctx context.Context, n int) {
	if err := c.view.HighlightStars(n); err != nil {
		c.report(ctx, "highlight_stars", err)
	}
}
