// Package handler implements the HTTP surface of the travel planner.
// GET / renders the current session's page; every user event is a POST
// that drives the session's controller and answers 303 See Other back to /
// (post/redirect/get). Methods are split into files by concern but all
// share the same Server struct so they can access its dependencies.
package handler

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/middleware"
)

// SessionStore defines the session operations the handlers depend on.
// Defining the interface here (in the consumer package) lets tests inject
// a store without the janitor loop.
type SessionStore interface {
	middleware.SessionStore
	Delete(id uuid.UUID)
}

// Server serves the page and its event endpoints.
type Server struct {
	sessions SessionStore
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(sessions SessionStore, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{sessions: sessions, log: log}
}
