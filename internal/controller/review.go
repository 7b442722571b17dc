package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
	"github.com/pkordes/travel-planner/internal/view"
)

// SubmitReview handles a submit of the review form. It needs a destination,
// review text and a committed rating; on failure it alerts with every unmet
// requirement and creates nothing. On success the review is prepended, the
// list re-rendered, the form and rating widget reset, and a confirmation
// banner shown until the banner TTL passes.
func (c *Controller) SubmitReview(ctx context.Context) (domain.Review, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dest, err := c.view.FieldValue(view.FormReview, view.FieldDestination)
	if err != nil {
		c.report(ctx, "submit_review", err)
		return domain.Review{}, err
	}
	text, err := c.view.FieldValue(view.FormReview, view.FieldReview)
	if err != nil {
		c.report(ctx, "submit_review", err)
		return domain.Review{}, err
	}

	created, err := c.reviews.Submit(ctx, service.ReviewRequest{
		Destination: dest,
		Text:        text,
		Rating:      c.state.CurrentRating,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.view.Alert(reviewAlert(err))
		} else {
			c.report(ctx, "submit_review", err)
		}
		return domain.Review{}, err
	}

	c.populateReviews(ctx)
	if err := c.view.ResetForm(view.FormReview); err != nil {
		c.report(ctx, "submit_review", err)
	}
	c.resetRating(ctx)
	c.showSuccess(ctx, msgReviewSubmitted)
	if err := c.view.ScrollTo(view.ReviewsList); err != nil {
		c.report(ctx, "submit_review", err)
	}

	c.log.InfoContext(ctx, "review submitted", "review_id", created.ID, "rating", created.Rating)
	return created, nil
}

// reviewAlert names the unmet requirements after the generic prompt.
func reviewAlert(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) == 0 {
		return msgReviewInvalid + "."
	}
	msgs := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("%s (%s).", msgReviewInvalid, strings.Join(msgs, ", "))
}

// showSuccess inserts a banner at the top of the reviews panel and schedules
// its removal.
func (c *Controller) showSuccess(ctx context.Context, message string) {
	id, err := c.view.ShowBanner(domain.PanelID(domain.PanelReviews), message)
	if err != nil {
		c.report(ctx, "show_success", err)
		return
	}
	task := c.after(c.bannerTTL, func() {
		delete(c.banners, id)
		c.view.RemoveBanner(id)
	})
	if task != nil {
		c.banners[id] = task
	}
}
