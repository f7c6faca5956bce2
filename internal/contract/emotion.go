package contract

import (
	"time"

	"github.com/alexanderramin/emopath/internal/domain"
)

// Transition is an outgoing link as shown to a person.
type Transition struct {
	To         string
	Action     string
	Difficulty float64 // stored edge weight, the only number users enter
}

// EmotionSummary lists one state with its tips and outgoing transitions.
type EmotionSummary struct {
	Name        string
	Tips        []string
	Transitions []Transition
}

// ActionRequest edits or creates the action on a from→to transition.
// Difficulty is only used when the transition does not exist yet.
type ActionRequest struct {
	From       string
	To         string
	Action     string
	Difficulty int
	// RouteViaGrounding accepts the grounding detour when the direct link
	// is forbidden.
	RouteViaGrounding bool
}

type ActionResponse struct {
	Outcome domain.ActionOutcome
	From    string
	To      string
	Via     string // set when the edit was routed through an intermediate state
}

// StoreResult reports the outcome of a save or reload.
type StoreResult struct {
	Path   string
	Found  bool // reload only: false means no save existed and defaults were seeded
	States int
	Tips   int
	Links  int
}

// CheckInEntry is a journal row as shown to a person.
type CheckInEntry struct {
	ID        string
	Method    domain.CheckInMethod
	Ratings   *domain.Ratings
	Source    string
	Goal      string
	Steps     []string
	CreatedAt time.Time
}

type TransitionState string

const (
	TransitionNew       TransitionState = "new"
	TransitionExists    TransitionState = "exists"
	TransitionForbidden TransitionState = "forbidden"
)

// TransitionStatus tells an editor which questions to ask before an action
// edit: whether to offer the grounding detour, to edit the current action,
// or to ask for a difficulty.
type TransitionStatus struct {
	State      TransitionState
	Action     string
	Difficulty float64
}
