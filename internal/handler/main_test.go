package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/handler"
	"github.com/pkordes/travel-planner/internal/middleware"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/session"
	"github.com/pkordes/travel-planner/testutil"
)

// client drives the router like a browser: it keeps the session cookie
// between requests and never follows redirects.
type client struct {
	t      *testing.T
	router http.Handler
	store  *session.Store
	clock  *schedule.Manual
	logs   *bytes.Buffer
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	c := &client{t: t, clock: schedule.NewManual(), logs: &bytes.Buffer{}}
	logger := testutil.NewLogger(c.logs)
	c.store = session.NewStore(testutil.NewFactory(t, c.clock, c.logs), time.Hour, logger)
	c.router = handler.NewRouter(handler.RouterConfig{
		Sessions:     c.store,
		Logger:       logger,
		CORSOrigins:  []string{"http://localhost:8080"},
		MaxBodyBytes: 1024,
	})
	return c
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name != middleware.SessionCookie {
			continue
		}
		if ck.MaxAge < 0 {
			c.cookie = nil
		} else {
			c.cookie = ck
		}
	}
	return rec
}

// page loads GET / and returns the body.
func (c *client) page() string {
	c.t.Helper()
	rec := c.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(c.t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

// post sends a form event and returns the response.
func (c *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// event posts and asserts the post/redirect/get answer.
func (c *client) event(path string, form url.Values) {
	c.t.Helper()
	rec := c.post(path, form)
	require.Equal(c.t, http.StatusSeeOther, rec.Code, "POST %s: %s", path, rec.Body.String())
	require.Equal(c.t, "/", rec.Header().Get("Location"))
}
