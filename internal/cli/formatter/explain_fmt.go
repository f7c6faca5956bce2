package formatter

import "strings"

// FormatExplanation renders the short description of how plans are chosen.
// It talks about difficulty and easier routes only, never about scores.
func FormatExplanation() string {
	lines := []string{
		"Emotions are like locations on a map.",
		"Each connection has a difficulty - some routes are easier.",
		"Your personal tips and actions make certain routes easier.",
		"The helper finds the smoothest step-by-step route from how you feel now\n    to a nearby positive state (like calm or happy) and suggests actions.",
		"Some jumps are blocked for safety and realism - e.g., if you're overwhelmed\n    you first move to a grounding step before aiming for calm or happy.",
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("  - " + l + "\n")
	}
	return RenderBox("How this helper chooses a plan", strings.TrimRight(b.String(), "\n"))
}
