package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/emopath/internal/contract"
)

// NoActionHint is shown for a step whose transition has no recorded action.
const NoActionHint = "(none - you can add one with 'action')"

// FormatPlan renders a plan as numbered steps with tips and actions.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	if resp.Ratings != nil {
		b.WriteString(FormatRatings(*resp.Ratings))
		b.WriteString("\n")
	}
	if resp.Inferred != "" {
		fmt.Fprintf(&b, "We think you may be feeling: %s\n\n", StyleBold.Render(resp.Inferred))
	}

	if !resp.Found {
		b.WriteString(StyleYellow.Render("Sorry - no available path to a positive state."))
		b.WriteString("\n")
		b.WriteString(Dim("Try adding tips or transitions with 'tip' and 'action'."))
		b.WriteString("\n")
		writeWarnings(&b, resp.Warnings)
		return b.String()
	}

	b.WriteString(Header("Your step-by-step plan"))
	b.WriteString("\n")
	for i, step := range resp.Steps {
		fmt.Fprintf(&b, " Step %d: %s\n", i+1, EmotionStyle(step.Emotion, step.Final))
		if len(step.Tips) > 0 {
			b.WriteString("   Tips:\n")
			for _, tip := range step.Tips {
				fmt.Fprintf(&b, "     - %s\n", tip)
			}
		}
		switch {
		case step.Final:
			fmt.Fprintf(&b, "   %s %s - well done for taking steps.\n",
				StyleGreen.Render("Goal reached:"), step.Emotion)
		case step.Action != "":
			fmt.Fprintf(&b, "   Action: %s\n", step.Action)
		default:
			fmt.Fprintf(&b, "   Action: %s\n", Dim(NoActionHint))
		}
	}
	writeWarnings(&b, resp.Warnings)
	return b.String()
}

func writeWarnings(b *strings.Builder, warnings []string) {
	for _, w := range warnings {
		b.WriteString(Warn("warning: "+w) + "\n")
	}
}
