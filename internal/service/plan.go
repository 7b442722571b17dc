package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkordes/travel-planner/internal/domain"
)

// Random is the source of the hotel rating flavour value.
// *rand.Rand satisfies it; tests pass a fixed value.
type Random interface {
	Float64() float64
}

// globalRandom draws from math/rand/v2's shared source.
type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }

// Percentages applied to the budget or the daily budget.
const (
	accommodationPct = 40 // of daily budget, per night
	flightsPct       = 35 // of total budget
)

// activityTemplates are the fixed activities of every plan, priced as a
// percentage of the daily budget. "%s" is replaced by the destination.
var activityTemplates = []struct {
	name string
	pct  int
}{
	{"%s City Walking Tour", 25},
	{"Local Cultural Experience", 20},
	{"Food & Market Tour", 30},
	{"Adventure Activity", 35},
}

// amenities offered by every suggested hotel.
var amenities = []string{"Free WiFi", "Swimming Pool", "Complimentary Breakfast", "24/7 Concierge"}

// planMessages are the per-field messages shown next to invalid plan inputs.
var planMessages = map[string]string{
	"from":      "Departure city is required",
	"to":        "Destination is required",
	"budget":    "Please enter a valid budget amount",
	"travelers": "Please enter a valid number of travelers",
}

// PlanRequest is the validated input of the trip plan form.
type PlanRequest struct {
	From      string `form:"from" validate:"required"`
	To        string `form:"to" validate:"required"`
	// Capped at one trillion so budget*percent stays well inside int.
	Budget    int    `form:"budget" validate:"gt=0,lte=1000000000000"`
	Travelers int    `form:"travelers" validate:"gt=0"`
}

// NewPlanRequest builds a PlanRequest from raw form values.
// Text is trimmed; an unparsable budget becomes 0 and fails validation.
// An empty traveler count defaults to one traveler.
func NewPlanRequest(from, to, budget, travelers string) PlanRequest {
	req := PlanRequest{
		From: strings.TrimSpace(from),
		To:   strings.TrimSpace(to),
	}
	req.Budget, _ = strconv.Atoi(strings.TrimSpace(budget))

	travelers = strings.TrimSpace(travelers)
	if travelers == "" {
		req.Travelers = 1
	} else {
		req.Travelers, _ = strconv.Atoi(travelers)
	}
	return req
}

// Validate checks the request without generating anything.
// Returns a *domain.ValidationError (matching domain.ErrValidation) listing
// every invalid field.
func (r PlanRequest) Validate() error {
	return validateForm(r, planMessages)
}

// PlanService generates fixed-shape 7-day trip plans from a budget.
type PlanService struct {
	rand Random
}

// NewPlanService constructs a PlanService. A nil Random uses math/rand/v2.
func NewPlanService(r Random) *PlanService {
	if r == nil {
		r = globalRandom{}
	}
	return &PlanService{rand: r}
}

// Generate validates req and derives the plan. All amounts are floored to
// whole rupees using integer arithmetic, so each component is exactly the
// floor of its fraction. No partial plan is returned on error.
func (s *PlanService) Generate(_ context.Context, req PlanRequest) (domain.Plan, error) {
	if err := req.Validate(); err != nil {
		return domain.Plan{}, fmt.Errorf("service.PlanService.Generate: %w", err)
	}

	daily := req.Budget / domain.PlanDays

	plan := domain.Plan{
		From:        req.From,
		Destination: req.To,
		TotalBudget: req.Budget,
		DailyBudget: daily,
		Travelers:   req.Travelers,
		Accommodation: domain.Accommodation{
			Name:          "Premium Hotel in " + req.To,
			PricePerNight: daily * accommodationPct / 100,
			Rating:        s.hotelRating(),
			Amenities:     append([]string(nil), amenities...),
		},
		Flights: domain.Flights{
			Outbound:  req.From + " → " + req.To,
			Return:    req.To + " → " + req.From,
			TotalCost: req.Budget * flightsPct / 100,
		},
	}

	plan.Activities = make([]domain.Activity, 0, len(activityTemplates))
	for _, a := range activityTemplates {
		name := a.name
		if strings.Contains(name, "%s") {
			name = fmt.Sprintf(name, req.To)
		}
		plan.Activities = append(plan.Activities, domain.Activity{Name: name, Cost: daily * a.pct / 100})
	}

	plan.TotalEstimated = plan.Flights.TotalCost + plan.AccommodationTotal() + plan.ActivitiesTotal()
	return plan, nil
}

// hotelRating returns a display rating in [4.0, 5.0] with one decimal.
func (s *PlanService) hotelRating() string {
	r := s.rand.Float64()
	if r < 0 {
		r = 0
	}
	if r > 1 {
		r = 1
	}
	return strconv.FormatFloat(4+r, 'f', 1, 64)
}
