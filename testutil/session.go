// Package testutil provides shared helpers for controller, session and
// handler tests. Sessions built here run on a manual clock and a fixed
// random source, so tests never wait on real timers and plans are
// reproducible.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkordes/travel-planner/internal/controller"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/schedule"
	"github.com/pkordes/travel-planner/internal/session"
	"github.com/pkordes/travel-planner/internal/view"
	"github.com/pkordes/travel-planner/seed"
)

// Test timings, short and distinct so tests can step between them.
const (
	PlanDelay = 1500 * time.Millisecond
	BannerTTL = 3 * time.Second
)

// FixedRandom is a service.Random that always returns its own value.
type FixedRandom float64

// Float64 implements service.Random.
func (f FixedRandom) Float64() float64 { return float64(f) }

// Harness bundles one initialized controller with the collaborators tests
// inspect.
type Harness struct {
	Controller *controller.Controller
	Doc        *view.Document
	Clock      *schedule.Manual
	Logs       *bytes.Buffer
}

// Seed returns the embedded sample data, failing the test if it is invalid.
func Seed(t *testing.T) repo.Seed {
	t.Helper()
	s, err := repo.LoadSeed(seed.Sample)
	if err != nil {
		t.Fatalf("testutil.Seed: %v", err)
	}
	return s
}

// NewLogger returns a debug-level JSON logger writing to buf.
func NewLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewFactory returns a session.Factory on clock with a hotel rating
// random value of 0.5, logging to buf.
func NewFactory(t *testing.T, clock *schedule.Manual, buf *bytes.Buffer) session.Factory {
	t.Helper()
	return session.NewFactory(session.FactoryConfig{
		Seed:      Seed(t),
		PlanDelay: PlanDelay,
		BannerTTL: BannerTTL,
		Scheduler: clock,
		Random:    FixedRandom(0.5),
		Logger:    NewLogger(buf),
	})
}

// NewHarness builds and initializes a controller over the sample data.
// The controller is closed when the test finishes.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{Clock: schedule.NewManual(), Logs: &bytes.Buffer{}}
	ctrl, doc, err := NewFactory(t, h.Clock, h.Logs)(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewHarness: %v", err)
	}
	h.Controller, h.Doc = ctrl, doc
	t.Cleanup(ctrl.Close)
	return h
}

// FillPlanForm sets the four trip form fields.
func (h *Harness) FillPlanForm(t *testing.T, from, to, budget, travelers string) {
	t.Helper()
	for field, v := range map[string]string{
		view.FieldFrom:      from,
		view.FieldTo:        to,
		view.FieldBudget:    budget,
		view.FieldTravelers: travelers,
	} {
		if err := h.Doc.SetFieldValue(view.FormTrip, field, v); err != nil {
			t.Fatalf("testutil.FillPlanForm: %v", err)
		}
	}
}

// FillReviewForm sets the review form's destination and text.
func (h *Harness) FillReviewForm(t *testing.T, destination, text string) {
	t.Helper()
	if err := h.Doc.SetFieldValue(view.FormReview, view.FieldDestination, destination); err != nil {
		t.Fatalf("testutil.FillReviewForm: %v", err)
	}
	if err := h.Doc.SetFieldValue(view.FormReview, view.FieldReview, text); err != nil {
		t.Fatalf("testutil.FillReviewForm: %v", err)
	}
}
