package service

import (
	"context"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
)

// PlanService routes a person from how they feel now to a goal state.
type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	CheckIn(ctx context.Context, req contract.CheckInRequest) (*contract.PlanResponse, error)
}

// MapService reads and edits the emotional map.
type MapService interface {
	List(ctx context.Context) ([]contract.EmotionSummary, error)
	Inspect(ctx context.Context, from, to string) (*contract.TransitionStatus, error)
	AddTip(ctx context.Context, emotion, text string) error
	SetAction(ctx context.Context, req contract.ActionRequest) (*contract.ActionResponse, error)
}

// StoreService moves the map between memory and its save file.
type StoreService interface {
	Open(ctx context.Context) (*contract.StoreResult, error)
	Save(ctx context.Context) (*contract.StoreResult, error)
	Reload(ctx context.Context) (*contract.StoreResult, error)
	Path() string
}

// JournalService records and lists past plans.
type JournalService interface {
	Record(ctx context.Context, c *domain.CheckIn) error
	ListRecent(ctx context.Context, limit int) ([]contract.CheckInEntry, error)
}
