// Package view is the binding between the controller and whatever draws the
// page. The controller only talks to the View interface; Document is the
// in-memory implementation the web handler renders and tests inspect.
package view

import "html/template"

// Form and field names.
const (
	FormTrip   = "trip-form"
	FormReview = "review-form"

	FieldFrom        = "from"
	FieldTo          = "to"
	FieldBudget      = "budget"
	FieldTravelers   = "travelers"
	FieldDestination = "destination"
	FieldReview      = "review"
)

// Element ids of containers the controller writes into.
const (
	TripsList      = "trips-list"
	ReviewsList    = "reviews-list"
	TripPlan       = "trip-plan"
	FlightDetails  = "flight-details"
	HotelDetails   = "hotel-details"
	ActivitiesList = "activities-list"
	TotalCost      = "total-cost"
	BudgetMessage  = "budget-message"
	WriteReview    = "write-review"
)

// StarCount is the number of stars on the rating control.
const StarCount = 5

// View is the rendering surface the controller drives.
// Every method that addresses an element returns an error wrapping
// domain.ErrMissingElement when that element does not exist.
type View interface {
	// PanelIDs lists the element ids of all registered panels.
	PanelIDs() []string
	SetPanelActive(id string, active bool) error
	// SetNavActive marks the nav item targeting page as the only active one.
	SetNavActive(page string) error

	FieldValue(form, field string) (string, error)
	SetFieldValue(form, field, value string) error
	ResetForm(form string) error
	SetFieldError(form, field, message string) error
	ClearFieldErrors(form string) error
	Focus(form, field string) error
	// SetBusy toggles the loading state of the form's submit button.
	SetBusy(form string, busy bool) error

	// HighlightStars lights stars 1..n and clears the rest.
	HighlightStars(n int) error

	SetHTML(id string, markup template.HTML) error
	SetText(id, text string) error
	SetColor(id, color string) error
	SetHidden(id string, hidden bool) error
	ScrollTo(id string) error

	// Alert queues a blocking message for the user.
	Alert(message string)
	// ShowBanner inserts a transient message at the top of a panel and
	// returns its id for RemoveBanner.
	ShowBanner(panelID, message string) (int, error)
	RemoveBanner(id int)
}

// IconRenderer turns icon placeholders in freshly rendered markup into
// glyphs. It is called after every re-render; its result is not used.
type IconRenderer interface {
	CreateIcons()
}
