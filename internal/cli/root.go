package cli

import (
	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans service.PlanService
	Map   service.MapService
	Store service.StoreService
	// Journal is nil when the check-in journal is disabled.
	Journal service.JournalService

	// Opened is the result of loading the map at startup, shown by the shell.
	Opened *contract.StoreResult
	// HistoryFile is where shell input history is kept; empty disables it.
	HistoryFile string

	// IsInteractive reports whether stdin is a terminal. With no
	// subcommand the root command opens the shell when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "emopath" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "emopath",
		Short: "A calm helper that plans small steps toward a positive state",
		Long: `emopath suggests a simple, step-by-step plan from how you feel now
toward a nearby positive state, using tips and actions you add over time.

Run without arguments in a terminal to open the interactive shell.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newPlanCmd(app),
		newCheckInCmd(app),
		newListCmd(app),
		newGraphCmd(app),
		newTipCmd(app),
		newActionCmd(app),
		newSaveCmd(app),
		newReloadCmd(app),
		newHistoryCmd(app),
		newExplainCmd(),
		newShellCmd(app),
	)

	return root
}
