package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/emopath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSaveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the map now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Store.Save(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStoreResult("save", res))
			return nil
		},
	}
}

func newReloadCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reload",
		Short: "Reload saved data, discarding unsaved changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !promptYesNoIO(cmd.InOrStdin(), cmd.OutOrStdout(),
				"Reload will discard unsaved changes. Continue? [y/N]: ") {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
				return nil
			}
			res, err := app.Store.Reload(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStoreResult("reload", res))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation prompt")
	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Recent check-ins and where they led",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Journal == nil {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("The check-in journal is turned off."))
				return nil
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			entries, err := app.Journal.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(entries, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of check-ins to show")
	return cmd
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "How this helper chooses a plan",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExplanation())
		},
	}
}
