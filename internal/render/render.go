// Package render turns trips, reviews and plans into the HTML fragments the
// page shows. Every fragment comes from a fixed template, so rendering the
// same data twice yields byte-identical output.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/pkordes/travel-planner/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var funcs = template.FuncMap{
	"rupees":      Rupees,
	"stars":       stars,
	"statusClass": statusClass,
}

var fragments = template.Must(template.New("fragments").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl"))

// Budget message colours.
const (
	ColorWithin = "#047857"
	ColorOver   = "#dc2626"
)

// Rupees formats a whole-rupee amount ("₹2500").
func Rupees(n int) string {
	return "₹" + strconv.Itoa(n)
}

// stars returns a slice whose length is the number of star icons to draw.
func stars(n int) []struct{} {
	if n < 0 {
		n = 0
	}
	if n > domain.MaxRating {
		n = domain.MaxRating
	}
	return make([]struct{}, n)
}

func statusClass(s domain.TripStatus) string {
	if s == domain.TripCompleted {
		return "status-completed"
	}
	return "status-upcoming"
}

// Trips renders the trip cards: status badge, rating stars for rated trips,
// and the action buttons allowed for the trip's status.
func Trips(trips []domain.Trip) (template.HTML, error) {
	return execute("trips", trips)
}

// Reviews renders the review cards. helpful holds the ids of reviews the
// user has marked helpful this session; it may be nil.
func Reviews(reviews []domain.Review, helpful map[int]bool) (template.HTML, error) {
	return execute("reviews", struct {
		Reviews []domain.Review
		Helpful map[int]bool
	}{reviews, helpful})
}

// Flights renders the flight summary of a plan.
func Flights(p domain.Plan) (template.HTML, error) {
	return execute("flights", p)
}

// Hotel renders the accommodation card of a plan.
func Hotel(p domain.Plan) (template.HTML, error) {
	return execute("hotel", p)
}

// Activities renders the priced activity list of a plan.
func Activities(p domain.Plan) (template.HTML, error) {
	return execute("activities", p)
}

// BudgetMessage returns the verdict text under the plan total and its colour.
func BudgetMessage(p domain.Plan) (text, color string) {
	if p.WithinBudget() {
		return fmt.Sprintf("Great! Within your %s budget!", Rupees(p.TotalBudget)), ColorWithin
	}
	return "Slightly over budget. Consider adjusting your preferences.", ColorOver
}

// TripDetails is the alert text of the "View Details" action.
func TripDetails(t domain.Trip) string {
	return fmt.Sprintf("Viewing details for %s\nDates: %s\nBudget: %s\nStatus: %s",
		t.Destination, t.Dates, Rupees(t.Budget), t.Status)
}

// EditNotice is the alert text of the "Edit Trip" action, which has no
// editor behind it.
func EditNotice(t domain.Trip) string {
	return fmt.Sprintf("Edit functionality for %s would be implemented here.", t.Destination)
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render.%s: %w", name, err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}
