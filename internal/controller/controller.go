// Package controller is the view controller of the travel planner page.
// It owns the session state (current panel, committed rating, helpful
// marks), reacts to user events and drives a view.View.
//
// Every exported event method and every scheduled callback holds the
// controller's lock for its whole run, so events are handled one at a time
// exactly as a single-threaded UI event loop would.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/service"
	"github.com/pkordes/travel-planner/internal/view"
)

// TripServicer defines the trip operations the controller depends on.
type TripServicer interface {
	GetByID(ctx context.Context, id int) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Edit(ctx context.Context, id int) (domain.Trip, error)
	ReviewTarget(ctx context.Context, id int) (domain.Trip, error)
}

// ReviewServicer defines the review operations the controller depends on.
type ReviewServicer interface {
	Submit(ctx context.Context, req service.ReviewRequest) (domain.Review, error)
	GetByID(ctx context.Context, id int) (domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
}

// PlanGenerator builds a trip plan from a validated request.
type PlanGenerator interface {
	Generate(ctx context.Context, req service.PlanRequest) (domain.Plan, error)
}

// Default delays, matching the demo page.
const (
	DefaultPlanDelay = 1500 * time.Millisecond
	DefaultBannerTTL = 3 * time.Second
)

// User-facing messages.
const (
	msgPlanInvalid     = "Please fill in all required fields with valid values."
	msgReviewInvalid   = "Please fill in all fields and provide a rating"
	msgReviewSubmitted = "Review submitted successfully!"
)

// State is the session state owned by a Controller.
type State struct {
	// CurrentPage is the name of the visible panel.
	CurrentPage string
	// CurrentRating is the committed star value; 0 means none.
	CurrentRating int
	// Helpful holds the ids of reviews marked helpful.
	Helpful map[int]bool
	// Generating is true while a plan is waiting on its artificial delay.
	Generating bool
}

// Config carries the collaborators and timings of a Controller.
type Config struct {
	View      view.View
	Icons     view.IconRenderer
	Trips     TripServicer
	Reviews   ReviewServicer
	Plans     PlanGenerator
	Scheduler schedule.Scheduler
	Logger    *slog.Logger

	// PlanDelay is the artificial latency before a plan is shown.
	PlanDelay time.Duration
	// BannerTTL is how long a confirmation banner stays visible.
	BannerTTL time.Duration
}

// Controller is the view controller for one session.
type Controller struct {
	mu sync.Mutex

	view    view.View
	icons   view.IconRenderer
	trips   TripServicer
	reviews ReviewServicer
	plans   PlanGenerator
	sched   schedule.Scheduler
	log     *slog.Logger

	planDelay time.Duration
	bannerTTL time.Duration

	state State

	pendingPlan schedule.Task
	banners     map[int]schedule.Task
	closed      bool
}

// New constructs a Controller. Nil Icons, Scheduler and Logger fall back to
// a no-op renderer, schedule.Timer and slog.Default; zero delays fall back
// to the defaults.
func New(cfg Config) *Controller {
	c := &Controller{
		view:      cfg.View,
		icons:     cfg.Icons,
		trips:     cfg.Trips,
		reviews:   cfg.Reviews,
		plans:     cfg.Plans,
		sched:     cfg.Scheduler,
		log:       cfg.Logger,
		planDelay: cfg.PlanDelay,
		bannerTTL: cfg.BannerTTL,
		state:     State{CurrentPage: domain.PanelHome, Helpful: map[int]bool{}},
		banners:   map[int]schedule.Task{},
	}
	if c.icons == nil {
		c.icons = noIcons{}
	}
	if c.sched == nil {
		c.sched = schedule.Timer{}
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	if c.planDelay <= 0 {
		c.planDelay = DefaultPlanDelay
	}
	if c.bannerTTL <= 0 {
		c.bannerTTL = DefaultBannerTTL
	}
	return c
}

type noIcons struct{}

func (noIcons) CreateIcons() {}

// Init renders the sample data, clears the rating widget and shows the home
// panel. It fails with domain.ErrMissingElement when the view has no panels.
func (c *Controller) Init(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	panels := c.view.PanelIDs()
	c.log.DebugContext(ctx, "initializing controller", "panels", len(panels))
	if len(panels) == 0 {
		err := fmt.Errorf("controller.Init: %w: no panels", domain.ErrMissingElement)
		c.log.ErrorContext(ctx, "no panels found", "error", err)
		return err
	}

	c.populateTrips(ctx)
	c.populateReviews(ctx)
	c.updateStars(ctx, c.state.CurrentRating)
	if err := c.showPage(ctx, domain.PanelHome); err != nil {
		return err
	}
	c.setNav(ctx, domain.PanelHome)
	c.log.InfoContext(ctx, "controller initialized")
	return nil
}

// State returns a copy of the session state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Helpful = maps.Clone(c.state.Helpful)
	return s
}

// Inspect runs fn while no event handler or scheduled task is running, so
// fn observes the view in a consistent state.
func (c *Controller) Inspect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// Close cancels every pending scheduled task. Events after Close are still
// handled but schedule nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.pendingPlan != nil {
		c.pendingPlan.Cancel()
		c.pendingPlan = nil
	}
	for id, t := range c.banners {
		t.Cancel()
		delete(c.banners, id)
	}
}

// after schedules f under the controller lock. Callers must hold c.mu.
func (c *Controller) after(d time.Duration, f func()) schedule.Task {
	if c.closed {
		return nil
	}
	return c.sched.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		f()
	})
}

// report logs err at a level chosen by its category. Callers alert the user
// themselves when the failure is something they can fix.
func (c *Controller) report(ctx context.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingElement):
		c.log.ErrorContext(ctx, "element missing, action aborted", "op", op, "error", err)
	case errors.Is(err, domain.ErrNotFound):
		c.log.DebugContext(ctx, "lookup failed, action ignored", "op", op, "error", err)
	case errors.Is(err, domain.ErrValidation):
		c.log.DebugContext(ctx, "action rejected", "op", op, "error", err)
	default:
		c.log.ErrorContext(ctx, "action failed", "op", op, "error", err)
	}
}
