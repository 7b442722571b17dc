package domain

// PlanDays is the fixed length of every generated trip plan.
const PlanDays = 7

// Accommodation is the hotel suggestion inside a Plan.
// Rating is display text between "4.0" and "5.0"; it is flavour only and
// does not depend on the budget.
type Accommodation struct {
	Name          string
	PricePerNight int
	Rating        string
	Amenities     []string
}

// Flights holds the outbound and return legs of a Plan.
type Flights struct {
	Outbound  string
	Return    string
	TotalCost int
}

// Activity is a single priced experience in a Plan.
type Activity struct {
	Name string
	Cost int
}

// Plan is the generated 7-day itinerary for a budget.
// All amounts are whole rupees.
type Plan struct {
	From           string
	Destination    string
	TotalBudget    int
	DailyBudget    int
	Travelers      int
	Accommodation  Accommodation
	Flights        Flights
	Activities     []Activity
	TotalEstimated int
}

// AccommodationTotal is the nightly price over the whole plan.
func (p Plan) AccommodationTotal() int {
	return p.Accommodation.PricePerNight * PlanDays
}

// ActivitiesTotal is the sum of all activity costs.
func (p Plan) ActivitiesTotal() int {
	sum := 0
	for _, a := range p.Activities {
		sum += a.Cost
	}
	return sum
}

// WithinBudget reports whether the estimate fits the requested budget.
func (p Plan) WithinBudget() bool {
	return p.TotalEstimated <= p.TotalBudget
}
