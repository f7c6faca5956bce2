package testutil

import (
	"time"

	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/alexanderramin/emopath/internal/graph"
	"github.com/google/uuid"
)

// CheckInOption customises a fixture check-in.
type CheckInOption func(*domain.CheckIn)

func WithRatings(r domain.Ratings) CheckInOption {
	return func(c *domain.CheckIn) {
		c.Method = domain.MethodAssessment
		c.Ratings = &r
	}
}

func WithGoal(goal string, steps ...string) CheckInOption {
	return func(c *domain.CheckIn) {
		c.Goal = goal
		c.Steps = steps
	}
}

func WithCreatedAt(at time.Time) CheckInOption {
	return func(c *domain.CheckIn) {
		c.CreatedAt = at
	}
}

// NewTestCheckIn returns a named check-in from source with no goal.
func NewTestCheckIn(source string, opts ...CheckInOption) *domain.CheckIn {
	c := &domain.CheckIn{
		ID:        uuid.New().String(),
		Method:    domain.MethodNamed,
		Source:    source,
		Steps:     []string{source},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewSeededGraph returns a graph holding the built-in default map.
func NewSeededGraph() *graph.Graph {
	g := graph.New()
	graph.SeedDefaultsIfEmpty(g)
	return g
}
