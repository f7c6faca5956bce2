package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/emopath/internal/cli/formatter"
	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// shellMode tracks which interaction mode the shell is in.
type shellMode int

const (
	modePrompt  shellMode = iota // Normal command input.
	modeWizard                   // huh form is active.
	modeConfirm                  // Awaiting y/n before discarding changes.
)

// menuAliases maps the numbered menu entries onto shell commands.
var menuAliases = map[string]string{
	"0": "exit",
	"1": "checkin",
	"2": "plan",
	"3": "list",
	"4": "tip",
	"5": "action",
	"6": "save",
	"7": "reload",
	"8": "graph",
}

type pendingConfirmation struct {
	description string
	run         func(m *shellModel) string
}

// shellModel is the bubbletea Model for the interactive shell REPL.
type shellModel struct {
	// bubbletea components
	input textinput.Model
	form  *huh.Form // active wizard form (nil when not in wizard mode)
	width int

	app *App
	ctx context.Context

	// mode management
	mode       shellMode
	wizardDone func(m *shellModel) tea.Cmd // called when wizard form completes
	wiz        *wizardValues

	pendingConfirm *pendingConfirmation

	history *lineHistory

	// lifecycle
	quitting bool
	farewell string
}

// newShellModel creates a new bubbletea shell model.
func newShellModel(app *App) shellModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.ShowSuggestions = true
	ti.CharLimit = 500
	// Use Tab for suggestion acceptance, reserve Up/Down for history.
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))

	return shellModel{
		input:   ti,
		app:     app,
		ctx:     context.Background(),
		history: newLineHistory(app.HistoryFile),
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m shellModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.Println(formatter.FormatShellWelcome(m.app.Opened)),
	)
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(m.promptPrefix()) - 1
		if m.form != nil {
			m.form = m.form.WithWidth(msg.Width)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			cmd := m.exit()
			return m, cmd
		}

		switch m.mode {
		case modeWizard:
			return m.updateWizard(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updatePrompt(msg)
		}
	}

	// When in wizard mode, forward non-key messages to the huh form
	// (e.g. init messages, focus transitions) so it can function properly.
	if m.mode == modeWizard && m.form != nil {
		return m.updateWizard(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) View() string {
	if m.quitting {
		return m.farewell
	}

	if m.mode == modeWizard && m.form != nil {
		return m.form.View()
	}

	return m.promptPrefix() + m.input.View()
}

func (m *shellModel) promptPrefix() string {
	if m.mode == modeConfirm {
		return formatter.StyleYellow.Render("confirm (y/n)") + " " + formatter.Dim("❯") + " "
	}
	return formatter.StylePurple.Render("emopath") + " " + formatter.Dim("❯") + " "
}

// ── prompt mode ──────────────────────────────────────────────────────────────

func (m shellModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.input.SetSuggestions(nil)
		if input == "" {
			return m, nil
		}
		m.history.add(input)
		output, cmd := m.executeCommand(input)
		var cmds []tea.Cmd
		if output != "" {
			cmds = append(cmds, tea.Println(output))
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Sequence(cmds...)

	case tea.KeyUp:
		if line, ok := m.history.prev(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		m.input.SetValue(m.history.next())
		m.input.CursorEnd()
		return m, nil

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.updateSuggestions()
		return m, cmd
	}
}

// ── wizard mode ──────────────────────────────────────────────────────────────

// startWizard switches to wizard mode with the given form and completion callback.
func (m *shellModel) startWizard(form *huh.Form, done func(m *shellModel) tea.Cmd) tea.Cmd {
	m.mode = modeWizard
	m.form = form
	m.wizardDone = done
	if m.width > 0 {
		m.form = m.form.WithWidth(m.width)
	}
	return m.form.Init()
}

func (m shellModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape cancels the wizard.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		m.wiz = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.mode = modePrompt
		done := m.wizardDone
		m.form = nil
		m.wizardDone = nil
		if done != nil {
			doneCmd := done(&m)
			return m, tea.Batch(cmd, doneCmd)
		}
		return m, cmd
	case huh.StateAborted:
		m.mode = modePrompt
		m.form = nil
		m.wizardDone = nil
		m.wiz = nil
		return m, tea.Println(formatter.Dim("Cancelled."))
	}

	return m, cmd
}

// ── confirm mode ─────────────────────────────────────────────────────────────

func (m *shellModel) confirm(description string, run func(m *shellModel) string) string {
	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{description: description, run: run}
	return fmt.Sprintf("%s %s\n%s",
		formatter.StyleYellow.Render("Confirm:"),
		description,
		formatter.Dim("Enter y to confirm, anything else to cancel."))
}

func (m shellModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		pending := m.pendingConfirm
		m.pendingConfirm = nil
		m.mode = modePrompt

		switch strings.ToLower(input) {
		case "y", "yes":
			out := pending.run(&m)
			return m, tea.Println(out)
		default:
			return m, tea.Println(formatter.Dim("Cancelled."))
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// ── suggestions ──────────────────────────────────────────────────────────────

func (m *shellModel) updateSuggestions() {
	text := m.input.Value()
	if text == "" {
		m.input.SetSuggestions(nil)
		return
	}

	parts := strings.Fields(text)
	trailingSpace := strings.HasSuffix(text, " ")

	// First word: suggest commands.
	if len(parts) <= 1 && !trailingSpace {
		m.input.SetSuggestions(filterSuggestions(allCommandNames(), parts[0]))
		return
	}

	// Later words of commands that take emotions: suggest names, keeping
	// the typed prefix so the suggestion completes the whole line.
	switch strings.ToLower(parts[0]) {
	case "plan", "tip", "action", "2", "4", "5":
		current := ""
		if !trailingSpace {
			current = parts[len(parts)-1]
		}
		head := strings.TrimSuffix(text, current)
		var full []string
		for _, name := range filterSuggestions(m.emotionNames(), current) {
			full = append(full, head+name)
		}
		m.input.SetSuggestions(full)
		return
	}

	m.input.SetSuggestions(nil)
}

func (m *shellModel) emotionNames() []string {
	list, err := m.app.Map.List(m.ctx)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	return names
}

// allCommandNames returns all top-level shell command names.
func allCommandNames() []string {
	return []string{
		"checkin", "plan", "list", "tip", "action",
		"save", "reload", "graph", "history",
		"explain", "clear", "help", "exit", "quit",
	}
}

// filterSuggestions returns items from pool that start with prefix (case-insensitive).
func filterSuggestions(pool []string, prefix string) []string {
	if prefix == "" {
		return pool
	}
	lp := strings.ToLower(prefix)
	var result []string
	for _, s := range pool {
		if strings.HasPrefix(strings.ToLower(s), lp) {
			result = append(result, s)
		}
	}
	return result
}

// ── command dispatch ─────────────────────────────────────────────────────────

func (m *shellModel) executeCommand(input string) (string, tea.Cmd) {
	parts, err := splitShellArgs(input)
	if err != nil {
		return shellError(err), nil
	}
	if len(parts) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(parts[0])
	if alias, ok := menuAliases[cmd]; ok {
		cmd = alias
		parts[0] = alias
	}
	args := parts[1:]

	switch cmd {
	case "checkin", "check-in":
		if len(args) == 0 {
			m.wiz = &wizardValues{}
			return formatter.Dim("Rate each feeling from 0 to 10."),
				m.startWizard(wizardCheckIn(m.wiz), (*shellModel).finishCheckIn)
		}
		return m.execCobraCapture(append([]string{"checkin"}, args...)), nil
	case "plan":
		if len(args) == 0 {
			m.wiz = &wizardValues{}
			return "", m.startWizard(themedForm(emotionInput("How are you feeling?", &m.wiz.emotion)), (*shellModel).finishPlan)
		}
		return m.execCobraCapture(parts), nil
	case "tip":
		if len(args) > 0 && args[0] == "add" {
			return m.execCobraCapture(parts), nil
		}
		if len(args) >= 2 {
			return m.execCobraCapture(append([]string{"tip", "add"}, args...)), nil
		}
		m.wiz = &wizardValues{}
		if len(args) == 1 {
			m.wiz.emotion = args[0]
		}
		return "", m.startWizard(wizardTip(m.wiz), (*shellModel).finishTip)
	case "action":
		if len(args) > 0 && (args[0] == "set" || args[0] == "show") {
			return m.execCobraCapture(parts), nil
		}
		if len(args) == 2 {
			return m.editAction(args[0], args[1])
		}
		m.wiz = &wizardValues{}
		if len(args) == 1 {
			m.wiz.from = args[0]
		}
		return "", m.startWizard(wizardTransition(m.wiz), func(m *shellModel) tea.Cmd {
			out, cmd := m.editAction(strings.TrimSpace(m.wiz.from), strings.TrimSpace(m.wiz.to))
			return tea.Sequence(tea.Println(out), cmd)
		})
	case "reload":
		if hasAnyArg(args, "--yes", "-y") {
			return m.execCobraCapture(parts), nil
		}
		return m.confirm("Reload saved data and discard unsaved changes?", func(m *shellModel) string {
			return m.execCobraCapture([]string{"reload", "--yes"})
		}), nil
	case "clear":
		return "\033[H\033[2J", nil
	case "help":
		return formatter.FormatShellHelp(), nil
	case "exit", "quit":
		return "", m.exit()
	case "shell":
		return formatter.StyleYellow.Render("Already in shell mode."), nil
	default:
		return m.execCobraCapture(parts), nil
	}
}

// exit saves the map and quits. The farewell is rendered as the final view.
func (m *shellModel) exit() tea.Cmd {
	var b strings.Builder
	res, err := m.app.Store.Save(m.ctx)
	if err != nil {
		b.WriteString(shellError(fmt.Errorf("auto-save failed: %w", err)))
	} else {
		b.WriteString(formatter.Dim(fmt.Sprintf("Auto-saved to %s.", res.Path)))
	}
	b.WriteString("\n" + formatter.StyleGreen.Render("Goodbye - take care!") + "\n")

	m.farewell = b.String()
	m.quitting = true
	return tea.Quit
}

// ── wizard completions ───────────────────────────────────────────────────────

func (m *shellModel) finishCheckIn() tea.Cmd {
	w := m.wiz
	m.wiz = nil
	var vals [4]int
	for i, s := range []string{w.stress, w.overwhelm, w.anger, w.sadness} {
		n, err := parseRating(s)
		if err != nil {
			return tea.Println(shellError(err))
		}
		vals[i] = n
	}
	resp, err := m.app.Plans.CheckIn(m.ctx, contract.CheckInRequest{
		Ratings: domain.Ratings{Stress: vals[0], Overwhelm: vals[1], Anger: vals[2], Sadness: vals[3]},
	})
	if err != nil {
		return tea.Println(shellError(err))
	}
	return tea.Println(formatter.FormatPlan(resp))
}

func (m *shellModel) finishPlan() tea.Cmd {
	emotion := strings.TrimSpace(m.wiz.emotion)
	m.wiz = nil
	resp, err := m.app.Plans.Plan(m.ctx, contract.NewPlanRequest(emotion))
	if err != nil {
		return tea.Println(shellError(err))
	}
	return tea.Println(formatter.FormatPlan(resp))
}

func (m *shellModel) finishTip() tea.Cmd {
	emotion := strings.TrimSpace(m.wiz.emotion)
	tip := m.wiz.tip
	m.wiz = nil
	if err := m.app.Map.AddTip(m.ctx, emotion, tip); err != nil {
		return tea.Println(shellError(err))
	}
	return tea.Println(fmt.Sprintf("Tip added to %s.", formatter.Bold(emotion)))
}

// editAction inspects from→to and asks the follow-up question that fits:
// take the grounding detour, replace the current action, or describe a new
// transition.
func (m *shellModel) editAction(from, to string) (string, tea.Cmd) {
	st, err := m.app.Map.Inspect(m.ctx, from, to)
	if err != nil {
		return shellError(err), nil
	}
	status := formatter.FormatTransitionStatus(from, to, st)
	w := &wizardValues{from: from, to: to}
	m.wiz = w

	switch st.State {
	case contract.TransitionForbidden:
		form := wizardConfirm(fmt.Sprintf("Route through %s instead?", domain.Grounded), &w.route)
		return status, m.startWizard(form, func(m *shellModel) tea.Cmd {
			return m.applyAction(contract.ActionRequest{From: from, To: to, RouteViaGrounding: w.route})
		})
	case contract.TransitionExists:
		w.action = st.Action
		form := wizardInputText("New action (blank to remove)", "", false, &w.action)
		return status, m.startWizard(form, func(m *shellModel) tea.Cmd {
			return m.applyAction(contract.ActionRequest{From: from, To: to, Action: w.action})
		})
	default:
		return status, m.startWizard(wizardNewTransition(w), func(m *shellModel) tea.Cmd {
			difficulty, err := strconv.Atoi(strings.TrimSpace(w.difficulty))
			if err != nil {
				return tea.Println(shellError(fmt.Errorf("invalid difficulty %q", w.difficulty)))
			}
			return m.applyAction(contract.ActionRequest{From: from, To: to, Action: w.action, Difficulty: difficulty})
		})
	}
}

func (m *shellModel) applyAction(req contract.ActionRequest) tea.Cmd {
	m.wiz = nil
	resp, err := m.app.Map.SetAction(m.ctx, req)
	if err != nil {
		return tea.Println(shellError(err))
	}
	return tea.Println(formatter.FormatActionResponse(resp))
}

// ── cobra pass-through ───────────────────────────────────────────────────────

// execCobraCapture runs a command through the Cobra tree and captures output.
func (m *shellModel) execCobraCapture(args []string) string {
	var buf strings.Builder
	root := NewRootCmd(m.app)
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true
	if err := root.ExecuteContext(m.ctx); err != nil {
		buf.WriteString(shellError(err))
		if strings.Contains(err.Error(), "unknown command") {
			buf.WriteString("\n" + formatter.Dim("Type 'help' to see the menu."))
		}
	}
	return strings.TrimRight(buf.String(), "\n")
}
