package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/emopath/internal/cli/formatter"
	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List emotions and tips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Map.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMapList(list))
			return nil
		},
	}
}

func newGraphCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "graph",
		Aliases: []string{"ascii"},
		Short:   "Show the ASCII graph view",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Map.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMapGraph(list))
			return nil
		},
	}
}

func newTipCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Manage personal tips",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <emotion> <text...>",
		Short: "Add a personal tip to an emotion",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if err := app.Map.AddTip(cmd.Context(), args[0], text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tip added to %s.\n", formatter.Bold(args[0]))
			return nil
		},
	})

	return cmd
}

func newActionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Add or edit actions on transitions",
	}

	cmd.AddCommand(newActionSetCmd(app), newActionShowCmd(app))
	return cmd
}

func newActionSetCmd(app *App) *cobra.Command {
	var action string
	var difficulty int
	var viaGrounding bool

	cmd := &cobra.Command{
		Use:   "set <from> <to>",
		Short: "Set the action for a transition, creating it if needed",
		Long: `Set the action suggested when moving from one emotion to another.

An existing transition keeps its difficulty; a blank --action removes the
action. A new transition is created with --difficulty (0 easiest, 20 hardest).
Direct transitions from overwhelmed to a positive state are blocked; pass
--via-grounding to link through grounded instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Map.SetAction(cmd.Context(), contract.ActionRequest{
				From:              args[0],
				To:                args[1],
				Action:            action,
				Difficulty:        difficulty,
				RouteViaGrounding: viaGrounding,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatActionResponse(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Action or procedure text (blank removes it)")
	cmd.Flags().IntVar(&difficulty, "difficulty", 1, "Difficulty of a new transition (0-20)")
	cmd.Flags().BoolVar(&viaGrounding, "via-grounding", false, "Route a blocked transition through grounded")
	return cmd
}

func newActionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <from> <to>",
		Short: "Show whether a transition exists and its action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Map.Inspect(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTransitionStatus(args[0], args[1], st))
			return nil
		},
	}
}
