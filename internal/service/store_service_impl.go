package service

import (
	"context"
	"time"

	"github.com/alexanderramin/emopath/internal/contract"
)

type storeService struct {
	ws       *Workspace
	observer UseCaseObserver
}

func NewStoreService(ws *Workspace, observers ...UseCaseObserver) StoreService {
	return &storeService{ws: ws, observer: useCaseObserverOrNoop(observers)}
}

func (s *storeService) Path() string { return s.ws.Path() }

// Open loads the saved map at startup. Found is false when defaults were
// seeded because no save exists.
func (s *storeService) Open(ctx context.Context) (*contract.StoreResult, error) {
	return s.load(ctx, "open")
}

// Reload discards unsaved changes and loads the saved map again.
func (s *storeService) Reload(ctx context.Context) (*contract.StoreResult, error) {
	return s.load(ctx, "reload")
}

func (s *storeService) Save(ctx context.Context) (res *contract.StoreResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": s.ws.Path()}
	defer func() { observeUseCase(ctx, s.observer, "save", startedAt, fields, err) }()

	unsaved := s.ws.Unsaved()
	if err = s.ws.save(); err != nil {
		return nil, err
	}
	fields["unsaved_changes"] = unsaved
	return s.ws.result(true), nil
}

func (s *storeService) load(ctx context.Context, name string) (res *contract.StoreResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"path": s.ws.Path()}
	defer func() { observeUseCase(ctx, s.observer, name, startedAt, fields, err) }()

	found, rep, err := s.ws.load()
	if err != nil {
		return nil, err
	}
	fields["found"] = found
	fields["skipped_lines"] = rep.Skipped
	fields["refused_edges"] = rep.Refused
	return s.ws.result(found), nil
}
