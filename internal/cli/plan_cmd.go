package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/emopath/internal/cli/formatter"
	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPlanCmd(app *App) *cobra.Command {
	var goals []string

	cmd := &cobra.Command{
		Use:   "plan <emotion>",
		Short: "Quick plan from an emotion you name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest(args[0])
			req.Goals = goals
			resp, err := app.Plans.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&goals, "goal", nil, "Goal state to aim for (repeatable, default: all positive states)")
	return cmd
}

func newCheckInCmd(app *App) *cobra.Command {
	var ratings ratingsValue
	var goals []string

	cmd := &cobra.Command{
		Use:   "checkin [stress overwhelm anger sadness]",
		Short: "Rate how you feel (0-10 each) and get a plan",
		Long: `Rate four feelings from 0 (not at all) to 10 (extremely):
stress, overwhelm, anger, and sadness. The closest matching emotion is
picked for you and a plan is suggested from there.

Pass the ratings as four arguments or with --ratings s,o,a,sd.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if ratings.set && len(args) > 0 {
				return fmt.Errorf("pass ratings either as arguments or with --ratings, not both")
			}
			if !ratings.set && len(args) != 4 {
				return fmt.Errorf("expected 4 ratings (stress overwhelm anger sadness), got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ratings.set {
				if err := ratings.Set(strings.Join(args, ",")); err != nil {
					return err
				}
			}
			resp, err := app.Plans.CheckIn(cmd.Context(), contract.CheckInRequest{
				Ratings: ratings.r,
				Goals:   goals,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().Var(&ratings, "ratings", "Ratings as stress,overwhelm,anger,sadness (e.g. 8,9,3,6)")
	cmd.Flags().StringSliceVar(&goals, "goal", nil, "Goal state to aim for (repeatable, default: all positive states)")
	return cmd
}

var _ pflag.Value = (*ratingsValue)(nil)

// ratingsValue is a pflag.Value for "s,o,a,sd" rating lists.
type ratingsValue struct {
	r   domain.Ratings
	set bool
}

func (v *ratingsValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d,%d", v.r.Stress, v.r.Overwhelm, v.r.Anger, v.r.Sadness)
}

func (v *ratingsValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("expected 4 comma-separated ratings, got %d", len(parts))
	}
	vals := make([]int, len(parts))
	for i, p := range parts {
		n, err := parseRating(p)
		if err != nil {
			return err
		}
		vals[i] = n
	}
	v.r = domain.Ratings{Stress: vals[0], Overwhelm: vals[1], Anger: vals[2], Sadness: vals[3]}
	v.set = true
	return nil
}

func (v *ratingsValue) Type() string { return "ratings" }

// parseRating reads one 0-10 answer.
func parseRating(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid rating %q: must be a whole number", s)
	}
	if n < domain.MinRating || n > domain.MaxRating {
		return 0, fmt.Errorf("invalid rating %d: must be between %d and %d", n, domain.MinRating, domain.MaxRating)
	}
	return n, nil
}
