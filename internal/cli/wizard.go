package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/emopath/internal/cli/formatter"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// emopathHuhTheme returns a custom huh theme using the formatter palette.
func emopathHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardValues holds the answers of the current wizard. The shell model is
// copied on every update, so forms bind to this shared struct.
type wizardValues struct {
	stress, overwhelm, anger, sadness string

	emotion string
	tip     string

	from, to   string
	action     string
	difficulty string
	route      bool
}

func themedForm(fields ...huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(emopathHuhTheme()).WithShowHelp(false)
}

func ratingInput(title string, result *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description("0 = not at all, 10 = extremely").
		Placeholder("0-10").
		Value(result).
		Validate(validateRating)
}

// wizardCheckIn asks the four check-in questions.
func wizardCheckIn(w *wizardValues) *huh.Form {
	return themedForm(
		ratingInput("How stressed do you feel?", &w.stress),
		ratingInput("How overwhelmed do you feel?", &w.overwhelm),
		ratingInput("How angry do you feel?", &w.anger),
		ratingInput("How sad do you feel?", &w.sadness),
	)
}

// wizardTip asks for an emotion and the tip to attach to it.
func wizardTip(w *wizardValues) *huh.Form {
	return themedForm(
		emotionInput("Emotion to add a tip to", &w.emotion),
		huh.NewInput().
			Title("Tip").
			Placeholder("e.g. call a friend").
			Value(&w.tip).
			Validate(requireText("tip")),
	)
}

// wizardTransition asks for the two ends of a transition.
func wizardTransition(w *wizardValues) *huh.Form {
	return themedForm(
		emotionInput("From emotion", &w.from),
		emotionInput("To emotion", &w.to),
	)
}

// wizardNewTransition asks for the difficulty and action of a new link.
func wizardNewTransition(w *wizardValues) *huh.Form {
	if w.difficulty == "" {
		w.difficulty = "1"
	}
	return themedForm(
		huh.NewInput().
			Title(fmt.Sprintf("Difficulty (0 easiest - %d hardest)", domain.MaxTransitionWeight)).
			Value(&w.difficulty).
			Validate(validateDifficulty),
		huh.NewInput().
			Title("Action or procedure (blank for none)").
			Value(&w.action),
	)
}

func emotionInput(title string, result *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("e.g. anxious").
		Value(result).
		Validate(validateEmotionName)
}

// wizardInputText creates a huh form for a single line of text.
func wizardInputText(title, placeholder string, required bool, result *string) *huh.Form {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(result)

	if required {
		input = input.Validate(requireText(title))
	}

	return themedForm(input)
}

func wizardConfirm(title string, result *bool) *huh.Form {
	return themedForm(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(result),
	)
}

func requireText(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// validateRating accepts a whole number from 0 to 10.
func validateRating(s string) error {
	_, err := parseRating(s)
	if err != nil {
		return fmt.Errorf("enter a number from %d to %d", domain.MinRating, domain.MaxRating)
	}
	return nil
}

// validateDifficulty accepts a whole number from 0 to MaxTransitionWeight.
func validateDifficulty(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 || v > domain.MaxTransitionWeight {
		return fmt.Errorf("enter a number from 0 to %d", domain.MaxTransitionWeight)
	}
	return nil
}

// validateEmotionName accepts a single word without quotes.
func validateEmotionName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("emotion is required")
	}
	if strings.ContainsAny(s, " \t\"") {
		return fmt.Errorf("use a single word without quotes")
	}
	return nil
}
