package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/session"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "tp_session"

// SessionStore is the part of session.Store the middleware needs.
type SessionStore interface {
	Create(ctx context.Context) (*session.Session, error)
	Get(id uuid.UUID) (*session.Session, bool)
}

// NewSessionHandler returns a middleware that resolves the session named by
// the SessionCookie cookie and stores it in the request context. A missing,
// malformed or expired cookie starts a new session and sets a fresh cookie.
func NewSessionHandler(store SessionStore, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := lookupSession(r, store)
			if !ok {
				var err error
				sess, err = store.Create(r.Context())
				if err != nil {
					log.ErrorContext(r.Context(), "failed to create session", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				SetSessionCookie(w, r, sess.ID)
			}

			AddLogAttrs(r.Context(), "session_id", sess.ID.String())
			next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), sess)))
		})
	}
}

func lookupSession(r *http.Request, store SessionStore) (*session.Session, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return nil, false
	}
	return store.Get(id)
}

// SetSessionCookie points the browser at session id.
func SetSessionCookie(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie tells the browser to drop its session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
