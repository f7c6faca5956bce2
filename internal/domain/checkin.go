package domain

import "time"

// CheckIn is one journal entry: where a plan started and where it led.
// Goal is empty when no positive state was reachable.
type CheckIn struct {
	ID        string
	Method    CheckInMethod
	Ratings   *Ratings
	Source    string
	Goal      string
	Steps     []string
	CreatedAt time.Time
}

// Reached reports whether the plan found a goal state.
func (c *CheckIn) Reached() bool {
	return c.Goal != ""
}

// Ratings are the four 0-10 self-assessment answers.
type Ratings struct {
	Stress    int
	Overwhelm int
	Anger     int
	Sadness   int
}

const (
	MinRating = 0
	MaxRating = 10
)

// Valid reports whether every rating lies in [MinRating, MaxRating].
func (r Ratings) Valid() bool {
	for _, v := range []int{r.Stress, r.Overwhelm, r.Anger, r.Sadness} {
		if v < MinRating || v > MaxRating {
			return false
		}
	}
	return true
}

// IntensityEstimate is the baseline given to a state inferred from ratings.
func (r Ratings) IntensityEstimate() float64 {
	return float64(r.Stress+r.Overwhelm) / 2.0
}
