package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/emopath/internal/cli/formatter"
	"github.com/alexanderramin/emopath/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu with wizards and history",
		Long: `Start the interactive helper. Menu numbers 0-8 and command names both
work; commands without arguments open a short wizard. The map is saved
automatically when you leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(app)
		},
	}
}

func runShell(app *App) error {
	_, err := tea.NewProgram(newShellModel(app)).Run()
	return err
}

// shellError renders err for shell output. Validation errors show only
// their message.
func shellError(err error) string {
	msg := err.Error()
	var pe *contract.PlanError
	if errors.As(err, &pe) {
		msg = pe.Message
	}
	return formatter.StyleRed.Render(fmt.Sprintf("Error: %s", msg))
}

func splitShellArgs(input string) ([]string, error) {
	var parts []string
	var cur []rune

	inSingle := false
	inDouble := false
	escaped := false
	tokenStarted := false

	flush := func() {
		parts = append(parts, string(cur))
		cur = cur[:0]
		tokenStarted = false
	}

	for _, r := range input {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case inSingle:
			if r == '\'' {
				inSingle = false
			} else {
				cur = append(cur, r)
			}
		case inDouble:
			switch r {
			case '"':
				inDouble = false
			case '\\':
				escaped = true
			default:
				cur = append(cur, r)
			}
		case r == '\\':
			escaped = true
			tokenStarted = true
		case r == '\'':
			inSingle = true
			tokenStarted = true
		case r == '"':
			inDouble = true
			tokenStarted = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if tokenStarted {
				flush()
			}
		default:
			cur = append(cur, r)
			tokenStarted = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("unterminated escape sequence")
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quoted string")
	}
	if tokenStarted {
		flush()
	}

	return parts, nil
}

func hasAnyArg(args []string, wanted ...string) bool {
	for _, arg := range args {
		for _, w := range wanted {
			if arg == w {
				return true
			}
		}
	}
	return false
}
