package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/emopath/internal/cli"
	"github.com/alexanderramin/emopath/internal/config"
	"github.com/alexanderramin/emopath/internal/db"
	"github.com/alexanderramin/emopath/internal/repository"
	"github.com/alexanderramin/emopath/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	ctx := context.Background()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	ws := service.NewWorkspace(cfg.DataFile, cfg.CheckpointEvery)
	store := service.NewStoreService(ws, observers...)

	// Journal is optional; the map works without it.
	var journal service.JournalService
	if cfg.JournalEnabled {
		database, err := db.OpenDB(cfg.JournalDB)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer database.Close()

		checkIns := repository.NewSQLiteCheckInRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)
		journal = service.NewJournalService(checkIns, uow, observers...)
	}

	opened, err := store.Open(ctx)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.DataFile, err)
	}

	app := &cli.App{
		Plans:       service.NewPlanService(ws, journal, observers...),
		Map:         service.NewMapService(ws, observers...),
		Store:       store,
		Journal:     journal,
		Opened:      opened,
		HistoryFile: cfg.HistoryFile,
	}

	// Detect interactive terminal for shell-only entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return err
	}

	// One-shot edits such as "tip add" are kept even without an explicit save.
	if ws.Unsaved() > 0 {
		if _, err := store.Save(ctx); err != nil {
			return fmt.Errorf("saving %s: %w", cfg.DataFile, err)
		}
	}
	return nil
}
