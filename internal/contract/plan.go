package contract

import (
	"time"

	"github.com/alexanderramin/emopath/internal/domain"
)

// PlanRequest asks for a route from a named state. Goals defaults to
// domain.GoalStates when empty.
type PlanRequest struct {
	Emotion string
	Goals   []string
}

func NewPlanRequest(emotion string) PlanRequest {
	return PlanRequest{Emotion: emotion}
}

// CheckInRequest asks for a route from the state inferred from ratings.
type CheckInRequest struct {
	Ratings domain.Ratings
	Goals   []string
}

// PlanStep is one state along a plan. Action is the suggested step toward
// the next state and is empty for the last step or when none was recorded.
type PlanStep struct {
	Emotion string
	Tips    []string
	Action  string
	Final   bool
}

// PlanResponse is a plan as shown to a person. It deliberately carries no
// costs or scores.
type PlanResponse struct {
	GeneratedAt time.Time
	Method      domain.CheckInMethod
	Inferred    string // state picked by the check-in, empty for named plans
	Ratings     *domain.Ratings
	Source      string
	Goal        string
	Found       bool
	Steps       []PlanStep
	CheckInID   string // journal id, empty when the journal is disabled
	// Warnings carry non-fatal problems, such as a failed checkpoint save.
	Warnings []string
}

type PlanErrorCode string

const (
	ErrInvalidEmotion    PlanErrorCode = "INVALID_EMOTION"
	ErrInvalidRating     PlanErrorCode = "INVALID_RATING"
	ErrInvalidTransition PlanErrorCode = "INVALID_TRANSITION"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
