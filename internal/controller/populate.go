package controller

import (
	"context"

	"github.com/pkordes/travel-planner/internal/render"
	"github.com/pkordes/travel-planner/internal/view"
)

// populateTrips re-renders the trip list from the collection.
func (c *Controller) populateTrips(ctx context.Context) {
	trips, err := c.trips.List(ctx)
	if err != nil {
		c.report(ctx, "populate_trips", err)
		return
	}
	markup, err := render.Trips(trips)
	if err != nil {
		c.report(ctx, "populate_trips", err)
		return
	}
	if err := c.view.SetHTML(view.TripsList, markup); err != nil {
		c.report(ctx, "populate_trips", err)
		return
	}
	c.icons.CreateIcons()
}

// populateReviews re-renders the review list from the collection.
func (c *Controller) populateReviews(ctx context.Context) {
	reviews, err := c.reviews.List(ctx)
	if err != nil {
		c.report(ctx, "populate_reviews", err)
		return
	}
	markup, err := render.Reviews(reviews, c.state.Helpful)
	if err != nil {
		c.report(ctx, "populate_reviews", err)
		return
	}
	if err := c.view.SetHTML(view.ReviewsList, markup); err != nil {
		c.report(ctx, "populate_reviews", err)
		return
	}
	c.icons.CreateIcons()
}
