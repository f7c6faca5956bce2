package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
)

// FormatShellWelcome renders the banner shown when the shell starts.
func FormatShellWelcome(open *contract.StoreResult) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  emopath") + Dim("  - a calm, friendly path helper") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n\n")
	b.WriteString("  This tool suggests a simple, step-by-step plan from how you feel now\n")
	b.WriteString("  toward a more positive state. Your tips and actions are saved between runs.\n")
	if open != nil {
		b.WriteString(Dim("  Data file: "+open.Path) + "\n")
		if open.Found {
			b.WriteString(Dim("  Loaded your saved map.") + "\n")
		} else {
			b.WriteString(Dim("  No save found - starting with helpful defaults.") + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("checkin") + StyleDim.Render("        Multi-question check-in (recommended)") + "\n")
	b.WriteString("  " + StyleGreen.Render("plan <emotion>") + StyleDim.Render(" Quick plan from a named emotion") + "\n")
	b.WriteString("  " + StyleGreen.Render("help") + StyleDim.Render("           Show all commands") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Menu numbers 0-8 work too. Type 'explain' to see how plans are chosen.") + "\n")

	return b.String()
}

// helpCategory groups commands under a section header for the help display.
type helpCategory struct {
	title    string
	commands [][]string
}

func renderHelpCategory(cat helpCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, c := range cat.commands {
		b.WriteString(fmt.Sprintf("  %-28s %s\n", StyleGreen.Render(c[0]), StyleDim.Render(c[1])))
	}
	return b.String()
}

// FormatShellHelp renders the command reference with the menu numbers.
func FormatShellHelp() string {
	categories := []helpCategory{
		{
			title: "Plans",
			commands: [][]string{
				{"1  checkin [s o a sd]", "Rate stress, overwhelm, anger, sadness (0-10)"},
				{"2  plan <emotion>", "Quick plan from an emotion you name"},
				{"   history", "Recent check-ins and where they led"},
			},
		},
		{
			title: "Your map",
			commands: [][]string{
				{"3  list", "List emotions and tips"},
				{"4  tip [emotion] [text]", "Add a personal tip to an emotion"},
				{"5  action [from] [to]", "Add or edit the action for a transition"},
				{"8  graph", "Show the ASCII graph view"},
			},
		},
		{
			title: "Saving",
			commands: [][]string{
				{"6  save", "Save now"},
				{"7  reload", "Reload saved data (discard unsaved changes)"},
			},
		},
		{
			title: "Utilities",
			commands: [][]string{
				{"   explain", "How this helper chooses a plan"},
				{"   help", "Show this command reference"},
				{"   clear", "Clear the screen"},
				{"0  exit / quit", "Exit (auto-saves)"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderHelpCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Commands without arguments open a short wizard. Esc cancels."))

	return RenderBox("Commands", b.String())
}

// FormatStoreResult renders the outcome of a save or reload.
func FormatStoreResult(verb string, res *contract.StoreResult) string {
	summary := Dim(fmt.Sprintf("(%d emotions, %d tips, %d links)", res.States, res.Tips, res.Links))
	switch {
	case verb == "reload" && !res.Found:
		return "No save found; reset to defaults. " + summary
	case verb == "reload":
		return fmt.Sprintf("Reloaded from %s. %s", res.Path, summary)
	default:
		return fmt.Sprintf("Saved to %s. %s", res.Path, summary)
	}
}

// FormatActionResponse describes what an action edit changed.
func FormatActionResponse(resp *contract.ActionResponse) string {
	switch resp.Outcome {
	case domain.ActionBlocked:
		return StyleYellow.Render("Direct transitions from 'overwhelmed' to positive states are blocked for safety.") +
			"\n" + Dim("No direct change made.")
	case domain.ActionRouted:
		return fmt.Sprintf("Linked %s -> %s -> %s. You can add actions on these transitions now.",
			resp.From, resp.Via, resp.To)
	case domain.ActionCreated:
		return fmt.Sprintf("Transition %s -> %s created.", resp.From, resp.To)
	case domain.ActionCleared:
		return fmt.Sprintf("Action removed from %s -> %s.", resp.From, resp.To)
	default:
		return fmt.Sprintf("Action updated for %s -> %s.", resp.From, resp.To)
	}
}
