package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionForbidden(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{Overwhelmed, "happy", true},
		{Overwhelmed, "calm", true},
		{Overwhelmed, "peaceful", true},
		{Overwhelmed, "hopeful", true},
		{Overwhelmed, Grounded, false},
		{Grounded, "calm", false},
		{"sad", "happy", false},
		{"happy", Overwhelmed, false},
		{"Overwhelmed", "happy", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TransitionForbidden(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestIsGoalState(t *testing.T) {
	for _, g := range GoalStates {
		assert.True(t, IsGoalState(g), g)
	}
	assert.False(t, IsGoalState(Grounded))
	assert.False(t, IsGoalState(""))
}
