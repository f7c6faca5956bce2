package formatter

import (
	"testing"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatShellWelcome(t *testing.T) {
	out := FormatShellWelcome(&contract.StoreResult{Path: "emotion_data.txt"})
	assert.Contains(t, out, "emopath")
	assert.Contains(t, out, "Data file: emotion_data.txt")
	assert.Contains(t, out, "starting with helpful defaults")

	out = FormatShellWelcome(&contract.StoreResult{Path: "x", Found: true})
	assert.Contains(t, out, "Loaded your saved map.")
}

func TestFormatShellHelp_ListsMenu(t *testing.T) {
	out := FormatShellHelp()
	for _, want := range []string{"checkin", "plan <emotion>", "list", "tip", "action", "save", "reload", "graph", "history", "exit"} {
		assert.Contains(t, out, want)
	}
}

func TestFormatStoreResult(t *testing.T) {
	res := &contract.StoreResult{Path: "m.txt", Found: true, States: 11, Tips: 15, Links: 14}
	assert.Contains(t, FormatStoreResult("save", res), "Saved to m.txt.")
	assert.Contains(t, FormatStoreResult("save", res), "(11 emotions, 15 tips, 14 links)")
	assert.Contains(t, FormatStoreResult("reload", res), "Reloaded from m.txt.")

	res.Found = false
	assert.Contains(t, FormatStoreResult("reload", res), "No save found; reset to defaults.")
}

func TestFormatActionResponse(t *testing.T) {
	tests := []struct {
		outcome domain.ActionOutcome
		want    string
	}{
		{domain.ActionBlocked, "blocked for safety"},
		{domain.ActionRouted, "Linked overwhelmed -> grounded -> happy."},
		{domain.ActionCreated, "created"},
		{domain.ActionUpdated, "Action updated"},
		{domain.ActionCleared, "Action removed"},
	}
	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			resp := &contract.ActionResponse{Outcome: tt.outcome, From: "overwhelmed", To: "happy", Via: "grounded"}
			assert.Contains(t, FormatActionResponse(resp), tt.want)
		})
	}
}

func TestFormatExplanation(t *testing.T) {
	out := FormatExplanation()
	assert.Contains(t, out, "HOW THIS HELPER CHOOSES A PLAN")
	assert.Contains(t, out, "grounding step")
	assert.NotContains(t, out, "valence")
}
