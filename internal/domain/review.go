package domain

// Star bounds for ratings on reviews, trips and the rating widget.
const (
	MinRating = 1
	MaxRating = 5
)

// Display values stamped on reviews written during the current session.
const (
	CurrentUser = "You"
	JustNow     = "Just now"
)

// Review is one entry in the reviews panel.
// Date is display text ("2 weeks ago"), not a timestamp.
type Review struct {
	ID          int    `yaml:"id"`
	Destination string `yaml:"destination"`
	Rating      int    `yaml:"rating"`
	Text        string `yaml:"review"`
	User        string `yaml:"user"`
	Date        string `yaml:"date"`
}
