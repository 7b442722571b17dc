// Package domain contains the core data types for the travel planner.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, render, controller, handler).
package domain

// TripStatus is the lifecycle state of a sample trip.
type TripStatus string

const (
	TripUpcoming  TripStatus = "upcoming"
	TripCompleted TripStatus = "completed"
)

// Trip is one entry in the "My Trips" panel.
// Rating is only meaningful for completed trips; zero means "not rated".
type Trip struct {
	ID          int        `yaml:"id"`
	Destination string     `yaml:"destination"`
	Dates       string     `yaml:"dates"`
	Budget      int        `yaml:"budget"`
	Status      TripStatus `yaml:"status"`
	Rating      int        `yaml:"rating,omitempty"`
	Flag        string     `yaml:"flag"`
}

// Completed reports whether the trip has already happened.
func (t Trip) Completed() bool {
	return t.Status == TripCompleted
}

// Rated reports whether the trip carries a 1–5 rating.
func (t Trip) Rated() bool {
	return t.Completed() && t.Rating >= MinRating && t.Rating <= MaxRating
}
