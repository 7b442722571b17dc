package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/travel-planner/internal/middleware"
)

// RouterConfig carries what NewRouter wires together.
type RouterConfig struct {
	Sessions     SessionStore
	Logger       *slog.Logger
	CORSOrigins  []string
	MaxBodyBytes int64
}

// NewRouter returns the complete HTTP handler.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer →
// Compress → CORS → body limit. Session resolution only wraps the page and
// its events, so health checks never create sessions.
func NewRouter(cfg RouterConfig) *chi.Mux {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	s := NewServer(cfg.Sessions, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	}

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewSessionHandler(cfg.Sessions, log))

		r.Get("/", s.GetPage)
		r.Post("/nav/{page}", s.PostNav)
		r.Post("/plan", s.PostPlan)
		r.Post("/rating/leave", s.PostRatingLeave)
		r.Post("/rating/{action}/{star}", s.PostRating)
		r.Post("/reviews", s.PostReview)
		r.Post("/reviews/{id}/helpful", s.PostHelpful)
		r.Post("/trips/{id}/{action}", s.PostTripAction)
		r.Post("/destinations", s.PostDestination)
		r.Post("/session/reset", s.PostResetSession)
	})

	return r
}
