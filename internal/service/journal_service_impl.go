package service

import (
	"context"
	"time"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/db"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/alexanderramin/emopath/internal/repository"
	"github.com/google/uuid"
)

type journalService struct {
	checkIns repository.CheckInRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewJournalService(checkIns repository.CheckInRepo, uow db.UnitOfWork, observers ...UseCaseObserver) JournalService {
	return &journalService{
		checkIns: checkIns,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Record stores c with its steps in one transaction, assigning an id and
// timestamp when missing.
func (s *journalService) Record(ctx context.Context, c *domain.CheckIn) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"method": string(c.Method), "reached": c.Reached()}
	defer func() { observeUseCase(ctx, s.observer, "record_check_in", startedAt, fields, err) }()

	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	fields["id"] = c.ID

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCheckInRepo(tx).Create(ctx, c)
	})
}

func (s *journalService) ListRecent(ctx context.Context, limit int) ([]contract.CheckInEntry, error) {
	list, err := s.checkIns.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]contract.CheckInEntry, 0, len(list))
	for _, c := range list {
		out = append(out, contract.CheckInEntry{
			ID:        c.ID,
			Method:    c.Method,
			Ratings:   c.Ratings,
			Source:    c.Source,
			Goal:      c.Goal,
			Steps:     c.Steps,
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}
