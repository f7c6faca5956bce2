package formatter

import (
	"testing"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/stretchr/testify/assert"
)

func sampleMap() []contract.EmotionSummary {
	return []contract.EmotionSummary{
		{
			Name: "sad",
			Tips: []string{"write 3 things", "call a friend"},
			Transitions: []contract.Transition{
				{To: "hopeful", Action: "write 3 small wins", Difficulty: 2},
				{To: "anxious", Difficulty: 1.7},
			},
		},
		{Name: "island"},
	}
}

func TestFormatMapList(t *testing.T) {
	out := FormatMapList(sampleMap())

	assert.Contains(t, out, "Current emotional map (2 emotions):")
	assert.Contains(t, out, "sad")
	assert.Contains(t, out, "(tips: 2)")
	assert.Contains(t, out, "-> hopeful  (action)")
	assert.Contains(t, out, "-> anxious\n")
	assert.NotContains(t, out, "2.00", "listing hides difficulties")
}

func TestFormatMapGraph(t *testing.T) {
	out := FormatMapGraph(sampleMap())

	assert.Contains(t, out, "[sad]")
	assert.Contains(t, out, "  Tips:\n    - write 3 things")
	assert.Contains(t, out, "|-- hopeful  (action: write 3 small wins)")
	assert.Contains(t, out, "[weight: 2.00]")
	assert.Contains(t, out, "[weight: 1.70]")
	assert.Contains(t, out, "[island]")
	assert.Contains(t, out, "(no connections)")
}

func TestFormatTransitionStatus(t *testing.T) {
	tests := []struct {
		name string
		st   contract.TransitionStatus
		want string
	}{
		{"forbidden", contract.TransitionStatus{State: contract.TransitionForbidden}, "blocked for safety"},
		{"exists without action", contract.TransitionStatus{State: contract.TransitionExists, Difficulty: 1.5}, "has no action yet. [difficulty: 1.50]"},
		{"exists with action", contract.TransitionStatus{State: contract.TransitionExists, Action: "walk", Difficulty: 2}, "(action: walk)"},
		{"new", contract.TransitionStatus{State: contract.TransitionNew}, "does not exist yet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, FormatTransitionStatus("a", "b", &tt.st), tt.want)
		})
	}
}
