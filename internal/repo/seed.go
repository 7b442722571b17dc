package repo

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pkordes/travel-planner/internal/domain"
)

// Seed is the decoded form of seed/sample.yaml.
type Seed struct {
	Trips   []domain.Trip   `yaml:"trips"`
	Reviews []domain.Review `yaml:"reviews"`
}

// LoadSeed decodes sample data and checks the invariants the rest of the
// application relies on: unique ids, known statuses, ratings in 1–5 and
// ratings only on completed trips.
func LoadSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("repo.LoadSeed: decode: %w", err)
	}

	tripIDs := make(map[int]bool, len(s.Trips))
	for _, t := range s.Trips {
		if tripIDs[t.ID] {
			return Seed{}, fmt.Errorf("repo.LoadSeed: duplicate trip id %d", t.ID)
		}
		tripIDs[t.ID] = true

		switch t.Status {
		case domain.TripUpcoming:
			if t.Rating != 0 {
				return Seed{}, fmt.Errorf("repo.LoadSeed: trip %d: upcoming trips cannot be rated", t.ID)
			}
		case domain.TripCompleted:
			if t.Rating != 0 && !validRating(t.Rating) {
				return Seed{}, fmt.Errorf("repo.LoadSeed: trip %d: rating %d out of range", t.ID, t.Rating)
			}
		default:
			return Seed{}, fmt.Errorf("repo.LoadSeed: trip %d: unknown status %q", t.ID, t.Status)
		}
		if t.Budget <= 0 {
			return Seed{}, fmt.Errorf("repo.LoadSeed: trip %d: budget must be positive", t.ID)
		}
	}

	reviewIDs := make(map[int]bool, len(s.Reviews))
	for _, r := range s.Reviews {
		if reviewIDs[r.ID] {
			return Seed{}, fmt.Errorf("repo.LoadSeed: duplicate review id %d", r.ID)
		}
		reviewIDs[r.ID] = true
		if !validRating(r.Rating) {
			return Seed{}, fmt.Errorf("repo.LoadSeed: review %d: rating %d out of range", r.ID, r.Rating)
		}
	}

	return s, nil
}

func validRating(n int) bool {
	return n >= domain.MinRating && n <= domain.MaxRating
}
