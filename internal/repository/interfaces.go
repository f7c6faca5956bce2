package repository

import (
	"context"

	"github.com/alexanderramin/emopath/internal/domain"
)

// CheckInRepo stores the plan journal.
type CheckInRepo interface {
	// Create inserts the entry and its steps. Run it inside a unit of work so
	// both land together.
	Create(ctx context.Context, c *domain.CheckIn) error
	GetByID(ctx context.Context, id string) (*domain.CheckIn, error)
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.CheckIn, error)
	Delete(ctx context.Context, id string) error
}
