package service

import (
	"fmt"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/alexanderramin/emopath/internal/graph"
	"github.com/alexanderramin/emopath/internal/persist"
)

// Workspace owns the in-memory map shared by the plan, map, and store
// services together with the file it is saved to.
type Workspace struct {
	graph           *graph.Graph
	path            string
	checkpointEvery int
	changes         int
}

// NewWorkspace returns an empty workspace saved to path. After
// checkpointEvery map changes the map is saved; 0 disables checkpoints.
func NewWorkspace(path string, checkpointEvery int) *Workspace {
	return &Workspace{
		graph:           graph.New(),
		path:            path,
		checkpointEvery: checkpointEvery,
	}
}

func (w *Workspace) Path() string { return w.path }

// Unsaved reports how many changes were made since the last save.
func (w *Workspace) Unsaved() int { return w.changes }

// ensure adds name with scores s when missing and reports whether it did.
func (w *Workspace) ensure(name string, s domain.Scores) bool {
	if _, ok := w.graph.Find(name); ok {
		return false
	}
	w.graph.AddNode(name, s.Valence, s.Baseline)
	return true
}

// changed records one mutation and saves once the checkpoint interval is
// reached. It reports whether a checkpoint save ran.
func (w *Workspace) changed() (bool, error) {
	w.changes++
	if w.checkpointEvery <= 0 || w.changes < w.checkpointEvery {
		return false, nil
	}
	if err := w.save(); err != nil {
		return true, fmt.Errorf("checkpoint save: %w", err)
	}
	return true, nil
}

func (w *Workspace) save() error {
	if err := persist.Save(w.graph, w.path); err != nil {
		return err
	}
	w.changes = 0
	return nil
}

// load replaces the map with the saved file, seeding defaults when the file
// is missing or holds no states. On error the current map is left untouched.
func (w *Workspace) load() (bool, persist.DecodeReport, error) {
	g := graph.New()
	found, rep, err := persist.Load(g, w.path)
	if err != nil {
		return found, rep, err
	}
	graph.SeedDefaultsIfEmpty(g)
	w.graph = g
	w.changes = 0
	return found, rep, nil
}

func (w *Workspace) result(found bool) *contract.StoreResult {
	res := &contract.StoreResult{Path: w.path, Found: found, States: w.graph.Len()}
	for _, n := range w.graph.Nodes() {
		res.Tips += n.TipCount()
		for _, e := range n.Edges() {
			if !e.Mirror() {
				res.Links++
			}
		}
	}
	return res
}
