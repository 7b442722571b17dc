package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/travel-planner/internal/controller"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/service"
	"github.com/pkordes/travel-planner/internal/view"
)

// Factory builds and initializes the controller and document of a new
// session.
type Factory func(ctx context.Context) (*controller.Controller, *view.Document, error)

// FactoryConfig holds what every new session is built from.
type FactoryConfig struct {
	Seed      repo.Seed
	PlanDelay time.Duration
	BannerTTL time.Duration
	// Scheduler defaults to schedule.Timer.
	Scheduler schedule.Scheduler
	// Random defaults to math/rand/v2.
	Random service.Random
	Logger *slog.Logger
}

// NewFactory returns a Factory that gives each session its own copy of the
// seed collections, so one session's reviews never show up in another.
func NewFactory(cfg FactoryConfig) Factory {
	return func(ctx context.Context) (*controller.Controller, *view.Document, error) {
		doc := view.NewDocument(view.DefaultLayout())
		ctrl := controller.New(controller.Config{
			View:      doc,
			Icons:     doc,
			Trips:     service.NewTripService(repo.NewTripRepo(cfg.Seed.Trips)),
			Reviews:   service.NewReviewService(repo.NewReviewRepo(cfg.Seed.Reviews)),
			Plans:     service.NewPlanService(cfg.Random),
			Scheduler: cfg.Scheduler,
			Logger:    cfg.Logger,
			PlanDelay: cfg.PlanDelay,
			BannerTTL: cfg.BannerTTL,
		})
		if err := ctrl.Init(ctx); err != nil {
			return nil, nil, fmt.Errorf("session.Factory: %w", err)
		}
		return ctrl, doc, nil
	}
}
