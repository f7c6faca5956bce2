package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/emopath/internal/repository"
	"github.com/alexanderramin/emopath/internal/service"
	"github.com/alexanderramin/emopath/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires a full App over a seeded map in a temp dir and an in-memory
// journal.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	dir := t.TempDir()

	ws := service.NewWorkspace(filepath.Join(dir, "emotion_data.txt"), 0)
	journal := service.NewJournalService(repository.NewSQLiteCheckInRepo(database), testutil.NewTestUoW(database))
	store := service.NewStoreService(ws)
	opened, err := store.Open(context.Background())
	require.NoError(t, err)

	return &App{
		Plans:       service.NewPlanService(ws, journal),
		Map:         service.NewMapService(ws),
		Store:       store,
		Journal:     journal,
		Opened:      opened,
		HistoryFile: filepath.Join(dir, "shell_history"),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	out, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "checkin")
}

func TestPlanCmd_Overwhelmed(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "overwhelmed")
	require.NoError(t, err)
	assert.Contains(t, out, "Step 1: overwhelmed")
	assert.Contains(t, out, "Action: 5 grounding breaths & plant feet")
	assert.Contains(t, out, "Step 2: grounded")
	assert.Contains(t, out, "Step 3: calm")
	assert.Contains(t, out, "calm - well done for taking steps.")
}

func TestPlanCmd_GoalFlag(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "sad", "--goal", "calm")
	require.NoError(t, err)
	assert.Contains(t, out, "Action: sit with feelings and breathe")
	assert.NotContains(t, out, "hopeful")
}

func TestPlanCmd_UnknownEmotionHasNoPath(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "plan", "bored")
	require.NoError(t, err)
	assert.Contains(t, out, "no available path to a positive state")
}

func TestPlanCmd_RequiresEmotion(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "plan")
	assert.Error(t, err)
}

func TestCheckInCmd_PositionalRatings(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "checkin", "8", "9", "3", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "We think you may be feeling: overwhelmed")
	assert.Contains(t, out, " 9/10")
	assert.Contains(t, out, "Step 2: grounded")
}

func TestCheckInCmd_RatingsFlag(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "checkin", "--ratings", "2,1,1,9")
	require.NoError(t, err)
	assert.Contains(t, out, "We think you may be feeling: sad")
	assert.Contains(t, out, "Action: write 3 small wins")
}

func TestCheckInCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"too few", []string{"checkin", "1", "2"}, "expected 4 ratings"},
		{"both forms", []string{"checkin", "--ratings", "1,2,3,4", "5"}, "not both"},
		{"out of range", []string{"checkin", "11", "0", "0", "0"}, "between 0 and 10"},
		{"not a number", []string{"checkin", "--ratings", "1,x,3,4"}, "whole number"},
		{"short list", []string{"checkin", "--ratings", "1,2,3"}, "expected 4 comma-separated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestListAndGraphCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Current emotional map (11 emotions):")
	assert.Contains(t, out, "-> grounded  (action)")
	assert.NotContains(t, out, "-0.95")

	out, err = executeCmd(t, app, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "[overwhelmed]")
	assert.Contains(t, out, "|-- grounded  (action: 5 grounding breaths & plant feet)")
	assert.Contains(t, out, "[weight: 1.00]")
	assert.NotContains(t, out, "8.50", "baselines stay hidden")

	alias, err := executeCmd(t, app, "ascii")
	require.NoError(t, err)
	assert.Equal(t, out, alias)
}

func TestTipAddCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "tip", "add", "lonely", "join", "a", "class")
	require.NoError(t, err)
	assert.Contains(t, out, "Tip added to lonely.")

	out, err = executeCmd(t, app, "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "- join a class")

	_, err = executeCmd(t, app, "tip", "add", "lonely")
	assert.Error(t, err)
}

func TestActionSetCmd_Blocked(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "action", "set", "overwhelmed", "happy", "--action", "jump")
	require.NoError(t, err)
	assert.Contains(t, out, "blocked for safety")
	assert.Contains(t, out, "No direct change made.")
}

func TestActionSetCmd_ViaGrounding(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "action", "set", "overwhelmed", "happy", "--via-grounding")
	require.NoError(t, err)
	assert.Contains(t, out, "Linked overwhelmed -> grounded -> happy.")

	out, err = executeCmd(t, app, "action", "show", "grounded", "happy")
	require.NoError(t, err)
	assert.Contains(t, out, "grounded -> happy has no action yet.")
	assert.Contains(t, out, "[difficulty: 1.50]")
}

func TestActionSetCmd_CreateUpdateClear(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "action", "set", "lonely", "calm", "--difficulty", "3", "--action", "text a friend")
	require.NoError(t, err)
	assert.Contains(t, out, "Transition lonely -> calm created.")

	out, err = executeCmd(t, app, "action", "set", "lonely", "calm", "--action", "call a friend")
	require.NoError(t, err)
	assert.Contains(t, out, "Action updated for lonely -> calm.")

	out, err = executeCmd(t, app, "action", "show", "lonely", "calm")
	require.NoError(t, err)
	assert.Contains(t, out, "(action: call a friend)")
	assert.Contains(t, out, "[difficulty: 3.00]")

	out, err = executeCmd(t, app, "action", "set", "lonely", "calm")
	require.NoError(t, err)
	assert.Contains(t, out, "Action removed from lonely -> calm.")
}

func TestActionSetCmd_DifficultyOutOfRange(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "action", "set", "lonely", "calm", "--difficulty", "25")
	assert.Error(t, err)
}

func TestSaveAndReloadCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "save")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved to ")
	_, err = os.Stat(app.Store.Path())
	require.NoError(t, err)

	_, err = executeCmd(t, app, "tip", "add", "calm", "unsaved")
	require.NoError(t, err)

	out, err = executeCmdWithInput(t, app, "n\n", "reload")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")

	out, err = executeCmdWithInput(t, app, "y\n", "reload")
	require.NoError(t, err)
	assert.Contains(t, out, "Reloaded from ")

	out, err = executeCmd(t, app, "graph")
	require.NoError(t, err)
	assert.NotContains(t, out, "unsaved")
}

func TestReloadCmd_YesWithoutSaveReseeds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "reload", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "No save found; reset to defaults.")
	assert.Contains(t, out, "(11 emotions, 15 tips, 14 links)")
}

func TestHistoryCmd(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No check-ins recorded yet.")

	_, err = executeCmd(t, app, "checkin", "8", "9", "3", "6")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "bored")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "overwhelmed -> grounded -> calm")
	assert.Contains(t, out, "no path")

	_, err = executeCmd(t, app, "history", "--limit", "0")
	assert.Error(t, err)
}

func TestHistoryCmd_JournalOff(t *testing.T) {
	app := testApp(t)
	app.Journal = nil

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "journal is turned off")
}

func TestExplainCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "explain")
	require.NoError(t, err)
	assert.Contains(t, out, "HOW THIS HELPER CHOOSES A PLAN")
}

func TestRatingsValue(t *testing.T) {
	var v ratingsValue
	assert.Equal(t, "", v.String())
	assert.Equal(t, "ratings", v.Type())

	require.NoError(t, v.Set("1, 2,3 ,10"))
	assert.Equal(t, "1,2,3,10", v.String())
	assert.Equal(t, 10, v.r.Sadness)

	assert.Error(t, v.Set("1,2,3,-1"))
}
