package domain

// CheckInMethod records how the starting state of a plan was chosen.
type CheckInMethod string

const (
	MethodAssessment CheckInMethod = "assessment"
	MethodNamed      CheckInMethod = "named"
)

// ActionOutcome describes what an action edit did to the map.
type ActionOutcome string

const (
	ActionCreated ActionOutcome = "created"
	ActionUpdated ActionOutcome = "updated"
	ActionCleared ActionOutcome = "cleared"
	ActionBlocked ActionOutcome = "blocked"
	ActionRouted  ActionOutcome = "routed"
)
