package session_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pkordes/travel-planner/internal/controller"
	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/session"
	"github.com/pkordes/travel-planner/internal/view"
	"github.com/pkordes/travel-planner/testutil"
)

const ttl = 30 * time.Minute

// fakeClock is a settable time source for Store.SetClock.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Add(d time.Duration) { c.t = c.t.Add(d) }

func newStore(t *testing.T) (*session.Store, *schedule.Manual, *fakeClock) {
	t.Helper()
	sched := schedule.NewManual()
	clock := &fakeClock{t: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}
	store := session.NewStore(testutil.NewFactory(t, sched, &bytes.Buffer{}), ttl, testutil.NewLogger(&bytes.Buffer{}))
	store.SetClock(clock.Now)
	return store, sched, clock
}

func TestStore_CreateAndGet(t *testing.T) {
	store, _, _ := newStore(t)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sess.ID)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get(uuid.New())
	assert.False(t, ok)
}

func TestStore_NewSessionShowsHome(t *testing.T) {
	store, _, _ := newStore(t)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	page := sess.Page()
	assert.Equal(t, domain.PanelHome, page.ActiveNav)
	assert.Equal(t, []string{"home-page"}, sess.Document.ActivePanels())
}

// TestStore_SessionsAreIsolated verifies a review written in one session
// does not appear in another.
func TestStore_SessionsAreIsolated(t *testing.T) {
	store, _, _ := newStore(t)
	ctx := context.Background()

	a, err := store.Create(ctx)
	require.NoError(t, err)
	b, err := store.Create(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	require.NoError(t, a.Document.SetFieldValue(view.FormReview, view.FieldDestination, "Goa"))
	require.NoError(t, a.Document.SetFieldValue(view.FormReview, view.FieldReview, "Only in session A"))
	a.Controller.ClickStar(ctx, 5)
	_, err = a.Controller.SubmitReview(ctx)
	require.NoError(t, err)

	assert.Contains(t, string(a.Page().HTML[view.ReviewsList]), "Only in session A")
	assert.NotContains(t, string(b.Page().HTML[view.ReviewsList]), "Only in session A")
}

func TestStore_ExpiresIdleSessions(t *testing.T) {
	store, _, clock := newStore(t)
	ctx := context.Background()

	idle, err := store.Create(ctx)
	require.NoError(t, err)
	clock.Add(ttl / 2)
	active, err := store.Create(ctx)
	require.NoError(t, err)

	clock.Add(ttl/2 + time.Second)
	assert.Equal(t, 1, store.Sweep())

	_, ok := store.Get(idle.ID)
	assert.False(t, ok)
	_, ok = store.Get(active.ID)
	assert.True(t, ok)
}

func TestStore_GetRefreshesLastSeen(t *testing.T) {
	store, _, clock := newStore(t)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	for range 3 {
		clock.Add(ttl - time.Minute)
		_, ok := store.Get(sess.ID)
		require.True(t, ok)
	}
	assert.Zero(t, store.Sweep())
}

func TestStore_GetExpired(t *testing.T) {
	store, _, clock := newStore(t)

	sess, err := store.Create(context.Background())
	require.NoError(t, err)
	clock.Add(ttl + time.Second)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStore_DeleteCancelsPendingTasks(t *testing.T) {
	store, sched, _ := newStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx)
	require.NoError(t, err)
	for field, v := range map[string]string{
		view.FieldFrom: "Mumbai", view.FieldTo: "Goa", view.FieldBudget: "9000", view.FieldTravelers: "2",
	} {
		require.NoError(t, sess.Document.SetFieldValue(view.FormTrip, field, v))
	}
	require.NoError(t, sess.Controller.SubmitPlan(ctx))
	require.Equal(t, 1, sched.Pending())

	store.Delete(sess.ID)

	assert.Zero(t, sched.Pending())
	assert.Zero(t, store.Len())
	store.Delete(sess.ID)
}

func TestStore_CreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	store := session.NewStore(func(context.Context) (*controller.Controller, *view.Document, error) {
		return nil, nil, boom
	}, ttl, nil)

	_, err := store.Create(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.Len())
}

func TestStore_RunClosesSessionsOnShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	store, _, _ := newStore(t)
	_, err := store.Create(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- store.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Zero(t, store.Len())
}

func TestSessionContext(t *testing.T) {
	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	sess := &session.Session{ID: uuid.New()}
	got, ok := session.FromContext(session.NewContext(context.Background(), sess))
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestSession_Fill(t *testing.T) {
	store, _, _ := newStore(t)
	sess, err := store.Create(context.Background())
	require.NoError(t, err)

	require.NoError(t, sess.Fill(view.FormTrip, map[string]string{view.FieldFrom: "Pune", view.FieldTo: "Leh"}))
	values := sess.Page().Forms[view.FormTrip].Values
	assert.Equal(t, "Pune", values[view.FieldFrom])
	assert.Equal(t, "Leh", values[view.FieldTo])

	err = sess.Fill(view.FormTrip, map[string]string{"email": "x"})
	assert.ErrorIs(t, err, domain.ErrMissingElement)
}
