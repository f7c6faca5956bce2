package service

import (
	"errors"
	"testing"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "trims", input: "  calm\t", want: "calm"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "inner space", input: "very sad", wantErr: true},
		{name: "quote", input: `sad"`, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := normalizeName(tc.input, contract.ErrInvalidTransition)
			if tc.wantErr {
				var pe *contract.PlanError
				require.True(t, errors.As(err, &pe))
				assert.Equal(t, contract.ErrInvalidTransition, pe.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlanSteps_ActionsFollowPath(t *testing.T) {
	g := graph.New()
	g.AddTip("sad", "breathe")
	g.AddEdge("sad", "grounded", 1, "plant feet")
	g.AddEdge("grounded", "calm", 1, "")

	p, ok := g.ShortestPathByName("sad", "calm")
	require.True(t, ok)

	steps := planSteps(g, p)
	require.Len(t, steps, 3)
	assert.Equal(t, contract.PlanStep{Emotion: "sad", Tips: []string{"breathe"}, Action: "plant feet"}, steps[0])
	assert.Equal(t, "", steps[1].Action)
	assert.False(t, steps[1].Final)
	assert.True(t, steps[2].Final)
	assert.Equal(t, "calm", steps[2].Emotion)
}

func TestSummarize_IncludesBothDirections(t *testing.T) {
	g := graph.New()
	g.AddEdge("lonely", "calm", 2.5, "text a friend")
	n, _ := g.Find("calm")

	s := summarize(n)
	assert.Equal(t, "calm", s.Name)
	require.Len(t, s.Transitions, 1)
	assert.Equal(t, "lonely", s.Transitions[0].To)
	assert.InDelta(t, 2.5, s.Transitions[0].Difficulty, 1e-9)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b", cleanText(" a\nb \r\n"))
	assert.Equal(t, "tab  sep", cleanText("tab\t\u0007sep"))
	assert.Equal(t, "", cleanText("\n\t"))
	assert.Equal(t, `keep "quotes"`, cleanText(`keep "quotes"`))
}
