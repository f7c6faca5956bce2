package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/emopath/internal/contract"
)

// FormatMapList renders the friendly listing: each state with its tip count
// and its links, marking links that carry an action.
func FormatMapList(list []contract.EmotionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current emotional map (%d emotions):\n", len(list))
	for _, s := range list {
		fmt.Fprintf(&b, " - %s", StyleBold.Render(s.Name))
		if len(s.Tips) > 0 {
			b.WriteString(Dim(fmt.Sprintf("  (tips: %d)", len(s.Tips))))
		}
		b.WriteString("\n")
		for _, tr := range s.Transitions {
			fmt.Fprintf(&b, "     -> %s", tr.To)
			if tr.Action != "" {
				b.WriteString(StyleGreen.Render("  (action)"))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatMapGraph renders the ASCII graph view with tips, actions, and the
// difficulty of every link.
func FormatMapGraph(list []contract.EmotionSummary) string {
	var b strings.Builder
	b.WriteString(Header("ASCII graph view"))
	b.WriteString("\n")
	for _, s := range list {
		fmt.Fprintf(&b, "\n[%s]\n", StyleBold.Render(s.Name))
		if len(s.Tips) > 0 {
			b.WriteString("  Tips:\n")
			for _, tip := range s.Tips {
				fmt.Fprintf(&b, "    - %s\n", tip)
			}
		}
		if len(s.Transitions) == 0 {
			b.WriteString(Dim("  (no connections)") + "\n")
			continue
		}
		for _, tr := range s.Transitions {
			fmt.Fprintf(&b, "   |-- %s", tr.To)
			if tr.Action != "" {
				fmt.Fprintf(&b, "  (action: %s)", tr.Action)
			}
			b.WriteString(Dim(fmt.Sprintf("  [weight: %.2f]", tr.Difficulty)) + "\n")
		}
	}
	return b.String()
}

// FormatTransitionStatus describes a from→to transition before an edit.
func FormatTransitionStatus(from, to string, st *contract.TransitionStatus) string {
	link := fmt.Sprintf("%s -> %s", from, to)
	switch st.State {
	case contract.TransitionForbidden:
		return StyleYellow.Render(link+" is blocked for safety.") + "\n" +
			Dim("It can be linked through grounded instead.")
	case contract.TransitionExists:
		diff := Dim(fmt.Sprintf("[difficulty: %.2f]", st.Difficulty))
		if st.Action == "" {
			return fmt.Sprintf("%s has no action yet. %s", link, diff)
		}
		return fmt.Sprintf("%s  (action: %s) %s", link, st.Action, diff)
	default:
		return link + " does not exist yet."
	}
}
