package domain

// Panel names for the mutually exclusive sections of the page.
// The view element for a panel is PanelID(name).
const (
	PanelHome    = "home"
	PanelAccount = "account"
	PanelTrips   = "trips"
	PanelReviews = "reviews"
	PanelMore    = "more"
)

// Panels lists every panel in navigation order.
var Panels = []string{PanelHome, PanelAccount, PanelTrips, PanelReviews, PanelMore}

// PanelID returns the element id of the panel called name ("trips" → "trips-page").
func PanelID(name string) string {
	return name + "-page"
}
