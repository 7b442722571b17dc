// Package session keeps one view controller per browser session.
// Sessions live in memory only; they end when idle longer than the TTL,
// when reset, or when the process exits.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/controller"
	"github.com/pkordes/travel-planner/internal/view"
)

// Session is one browser's page state.
type Session struct {
	ID         uuid.UUID
	Controller *controller.Controller
	Document   *view.Document

	lastSeen time.Time
}

// Page snapshots the session's document while no event is being handled.
// One-shot effects (alerts, focus, scroll) are consumed by the call.
func (s *Session) Page() view.Page {
	var p view.Page
	s.Controller.Inspect(func() { p = s.Document.Snapshot() })
	return p
}

// Fill copies submitted form values into the document, as if the user had
// typed them, while no event is being handled.
func (s *Session) Fill(form string, values map[string]string) error {
	var err error
	s.Controller.Inspect(func() {
		for field, v := range values {
			if err = s.Document.SetFieldValue(form, field, v); err != nil {
				return
			}
		}
	})
	if err != nil {
		return fmt.Errorf("session.Session.Fill: %w", err)
	}
	return nil
}

// Store holds live sessions keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	factory  Factory
	ttl      time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewStore constructs a Store that builds sessions with factory and
// expires them after ttl without a request.
func NewStore(factory Factory, ttl time.Duration, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		sessions: map[uuid.UUID]*Session{},
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		log:      log,
	}
}

// SetClock replaces the store's time source. Tests use it to expire
// sessions without waiting.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Create builds a new session with a fresh random id.
func (s *Store) Create(ctx context.Context) (*Session, error) {
	ctrl, doc, err := s.factory(ctx)
	if err != nil {
		return nil, fmt.Errorf("session.Store.Create: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{ID: uuid.New(), Controller: ctrl, Document: doc, lastSeen: s.now()}
	s.sessions[sess.ID] = sess
	s.log.DebugContext(ctx, "session created", "session_id", sess.ID)
	return sess, nil
}

// Get returns the live session with id and marks it as seen.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		s.remove(sess)
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Delete ends the session with id, cancelling its pending tasks.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		s.remove(sess)
	}
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep ends every expired session and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, sess := range s.sessions {
		if s.expired(sess) {
			s.remove(sess)
			n++
		}
	}
	return n
}

// Run sweeps expired sessions every half TTL until ctx is done, then ends
// all remaining sessions. It always returns nil so it can run in an
// errgroup next to the HTTP server.
func (s *Store) Run(ctx context.Context) error {
	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.log.InfoContext(ctx, "expired sessions removed", "count", n, "live", s.Len())
			}
		}
	}
}

func (s *Store) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		s.remove(sess)
	}
}

// expired and remove require s.mu to be held.
func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.lastSeen) > s.ttl
}

func (s *Store) remove(sess *Session) {
	sess.Controller.Close()
	delete(s.sessions, sess.ID)
}
