package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/render"
	"github.com/pkordes/travel-planner/internal/view"
)

// ViewTripDetails alerts a summary of the trip. Unknown ids are ignored.
func (c *Controller) ViewTripDetails(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	trip, err := c.trips.GetByID(ctx, id)
	if err != nil {
		c.report(ctx, "view_trip", err)
		return
	}
	c.view.Alert(render.TripDetails(trip))
}

// EditTrip has no editor behind it: it tells the user so. Unknown ids are
// ignored.
func (c *Controller) EditTrip(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	trip, err := c.trips.Edit(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotImplemented):
		c.view.Alert(render.EditNotice(trip))
	case err != nil:
		c.report(ctx, "edit_trip", err)
	}
}

// LeaveReview switches to the reviews panel with the review form pre-filled
// for a completed trip. Unknown or upcoming trips are ignored.
func (c *Controller) LeaveReview(ctx context.Context, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	trip, err := c.trips.ReviewTarget(ctx, id)
	if err != nil {
		c.report(ctx, "leave_review", err)
		return
	}
	if err := c.showPage(ctx, domain.PanelReviews); err != nil {
		return
	}
	c.setNav(ctx, domain.PanelReviews)

	if err := c.view.SetFieldValue(view.FormReview, view.FieldDestination, trip.Destination); err != nil {
		c.report(ctx, "leave_review", err)
	}
	if err := c.view.ScrollTo(view.WriteReview); err != nil {
		c.report(ctx, "leave_review", err)
	}
}

// SelectDestination handles a click on a destination card: it fills the
// plan form's destination, returns to the home panel if needed and focuses
// the origin field.
func (c *Controller) SelectDestination(ctx context.Context, destination string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	destination = strings.TrimSpace(destination)
	if destination == "" {
		c.log.DebugContext(ctx, "destination card without a name ignored")
		return
	}
	if err := c.view.SetFieldValue(view.FormTrip, view.FieldTo, destination); err != nil {
		c.report(ctx, "select_destination", err)
		return
	}
	if c.state.CurrentPage != domain.PanelHome {
		if err := c.showPage(ctx, domain.PanelHome); err == nil {
			c.setNav(ctx, domain.PanelHome)
		}
	}
	if err := c.view.Focus(view.FormTrip, view.FieldFrom); err != nil {
		c.report(ctx, "select_destination", err)
	}
}

// MarkHelpful records that the user found a review helpful and re-renders
// the list. Unknown ids are ignored.
func (c *Controller) MarkHelpful(ctx context.Context, reviewID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.reviews.GetByID(ctx, reviewID); err != nil {
		c.report(ctx, "mark_helpful", err)
		return
	}
	if c.state.Helpful[reviewID] {
		return
	}
	c.state.Helpful[reviewID] = true
	c.populateReviews(ctx)
}
