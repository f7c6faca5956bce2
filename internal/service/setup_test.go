package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/emopath/internal/repository"
	"github.com/alexanderramin/emopath/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	ws      *Workspace
	plan    PlanService
	maps    MapService
	store   StoreService
	journal JournalService
	events  *recordingObserver
}

// setupServices wires every service over a freshly seeded workspace saved in
// a temp dir and an in-memory journal.
func setupServices(t *testing.T, checkpointEvery int) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}

	ws := NewWorkspace(filepath.Join(t.TempDir(), "emotion_data.txt"), checkpointEvery)
	journal := NewJournalService(repository.NewSQLiteCheckInRepo(database), testutil.NewTestUoW(database), obs)
	svc := &testServices{
		ws:      ws,
		plan:    NewPlanService(ws, journal, obs),
		maps:    NewMapService(ws, obs),
		store:   NewStoreService(ws, obs),
		journal: journal,
		events:  obs,
	}
	_, err := svc.store.Open(context.Background())
	require.NoError(t, err)
	obs.reset()
	return svc
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = nil
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.events))
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
