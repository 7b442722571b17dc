package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/middleware"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/session"
	"github.com/pkordes/travel-planner/testutil"
)

// mockSessionStore is a test double for middleware.SessionStore.
type mockSessionStore struct {
	create func(ctx context.Context) (*session.Session, error)
	get    func(id uuid.UUID) (*session.Session, bool)
}

func (m *mockSessionStore) Create(ctx context.Context) (*session.Session, error) {
	return m.create(ctx)
}
func (m *mockSessionStore) Get(id uuid.UUID) (*session.Session, bool) {
	return m.get(id)
}

// compile-time checks: both stores satisfy middleware.SessionStore.
var (
	_ middleware.SessionStore = (*mockSessionStore)(nil)
	_ middleware.SessionStore = (*session.Store)(nil)
)

// sessionEcho writes the id of the session found in the request context.
var sessionEcho = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(sess.ID.String()))
})

func newRealStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(testutil.NewFactory(t, schedule.NewManual(), &bytes.Buffer{}), time.Hour, nil)
}

func TestSessionHandler_NoCookieCreatesSession(t *testing.T) {
	store := newRealStore(t)
	h := middleware.NewSessionHandler(store, testutil.NewLogger(&bytes.Buffer{}))(sessionEcho)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, rec.Body.String())
	assert.Equal(t, 1, store.Len())
}

func TestSessionHandler_ReusesExistingSession(t *testing.T) {
	store := newRealStore(t)
	sess, err := store.Create(context.Background())
	require.NoError(t, err)
	h := middleware.NewSessionHandler(store, testutil.NewLogger(&bytes.Buffer{}))(sessionEcho)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sess.ID.String()})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, sess.ID.String(), rec.Body.String())
	assert.Empty(t, rec.Result().Cookies(), "no new cookie for a live session")
	assert.Equal(t, 1, store.Len())
}

func TestSessionHandler_BadCookieStartsOver(t *testing.T) {
	for _, value := range []string{"not-a-uuid", uuid.NewString()} {
		store := newRealStore(t)
		h := middleware.NewSessionHandler(store, testutil.NewLogger(&bytes.Buffer{}))(sessionEcho)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: value})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Len(t, rec.Result().Cookies(), 1, value)
		assert.NotEqual(t, value, rec.Body.String())
	}
}

func TestSessionHandler_CreateFailure(t *testing.T) {
	store := &mockSessionStore{
		create: func(context.Context) (*session.Session, error) { return nil, errors.New("boom") },
		get:    func(uuid.UUID) (*session.Session, bool) { return nil, false },
	}
	var logs bytes.Buffer
	h := middleware.NewSessionHandler(store, testutil.NewLogger(&logs))(sessionEcho)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), "failed to create session")
}

func TestClearSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()

	middleware.ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
