package domain

// Names of the states the system treats specially.
const (
	Overwhelmed = "overwhelmed"
	Grounded    = "grounded"
)

// GoalStates lists the positive states a plan may finish in. The order is the
// search order used when picking the best goal, so earlier entries win ties.
var GoalStates = []string{"happy", "calm", "peaceful", "hopeful"}

// IsGoalState reports whether name is one of the positive goal states.
func IsGoalState(name string) bool {
	for _, g := range GoalStates {
		if g == name {
			return true
		}
	}
	return false
}

// TransitionForbidden reports whether a direct from→to transition is refused.
// Leaving an overwhelmed state must pass through an intermediate step before
// any goal state can be reached.
func TransitionForbidden(from, to string) bool {
	return from == Overwhelmed && IsGoalState(to)
}

// Placeholder scores for nodes created implicitly rather than seeded.
type Scores struct {
	Valence  float64
	Baseline float64
}

var (
	// EdgeSourceDefaults apply to a node first seen as the source of a transition.
	EdgeSourceDefaults = Scores{Valence: -0.5, Baseline: 5.0}
	// EdgeTargetDefaults apply to a node first seen as the target of a transition.
	EdgeTargetDefaults = Scores{Valence: 0.0, Baseline: 5.0}
	// TipDefaults apply to a node first seen through a tip.
	TipDefaults = Scores{Valence: -0.2, Baseline: 5.0}
	// EnteredDefaults apply to a state the user names directly.
	EnteredDefaults = Scores{Valence: -0.2, Baseline: 5.0}
	// GoalDefaults apply to a goal state missing from the map.
	GoalDefaults = Scores{Valence: 0.9, Baseline: 2.0}
	// LoadDefaults apply to NODE records whose numbers cannot be read.
	LoadDefaults = Scores{Valence: 0.0, Baseline: 5.0}
)

// Grounding route offered when a forbidden overwhelmed→goal link is requested.
const (
	GroundingAction     = "5 grounding breaths & plant feet"
	GroundingWeight     = 1.0
	GroundingGoalWeight = 1.5
	MaxTransitionWeight = 20
)
