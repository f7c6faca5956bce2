package graph

import (
	"testing"

	"github.com/alexanderramin/emopath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath_SingleEdgeNoBias(t *testing.T) {
	g := New()
	g.AddNode("a", 0, 5)
	g.AddNode("b", 1.0, 5) // valence 1 neutralises the valence bias
	g.AddEdge("a", "b", 3.0, "")

	p, ok := g.ShortestPathByName("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 3.0, p.Cost, 1e-9)
	assert.Equal(t, []string{"a", "b"}, p.Names())
}

func TestShortestPath_WeightModifiers(t *testing.T) {
	tests := []struct {
		name      string
		valence   float64
		tip       bool
		procedure string
		want      float64
	}{
		{name: "neutral", valence: 1.0, want: 3.0},
		{name: "tip on target", valence: 1.0, tip: true, want: 3.0 * 0.85},
		{name: "procedure", valence: 1.0, procedure: "act", want: 3.0 * 0.80},
		{name: "valence zero", valence: 0.0, want: 3.0 * 0.95},
		{name: "all combined", valence: -1.0, tip: true, procedure: "act", want: 3.0 * 0.85 * 0.80 * 0.90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			g.AddNode("a", 0, 5)
			g.AddNode("b", tc.valence, 5)
			if tc.tip {
				g.AddTip("b", "breathe")
			}
			g.AddEdge("a", "b", 3.0, tc.procedure)

			p, ok := g.ShortestPathByName("a", "b")
			require.True(t, ok)
			assert.InDelta(t, tc.want, p.Cost, 1e-9)
		})
	}
}

func TestShortestPath_NegativeFactorClampedToZero(t *testing.T) {
	g := New()
	g.AddNode("a", 0, 5)
	g.AddNode("b", -40, 5)
	g.AddEdge("a", "b", 2.0, "")

	p, ok := g.ShortestPathByName("a", "b")
	require.True(t, ok)
	assert.Zero(t, p.Cost)
}

func TestShortestPath_SameNode(t *testing.T) {
	g := New()
	SeedDefaultsIfEmpty(g)

	p, ok := g.ShortestPathByName("sad", "sad")
	require.True(t, ok)
	assert.Zero(t, p.Cost)
	assert.Equal(t, []string{"sad"}, p.Names())
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", 1, "")
	g.AddNode("island", 0, 5)

	_, ok := g.ShortestPathByName("a", "island")
	assert.False(t, ok)

	_, ok = g.ShortestPathByName("a", "nowhere")
	assert.False(t, ok, "missing destination")
}

func TestShortestPath_ForeignNode(t *testing.T) {
	g := New()
	a := g.AddNode("a", 0, 5)
	other := New().AddNode("a", 0, 5)

	_, ok := g.ShortestPath(a, other)
	assert.False(t, ok)
}

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	g := New()
	for _, n := range []string{"a", "b", "c"} {
		g.AddNode(n, 1.0, 5)
	}
	g.AddEdge("a", "c", 5.0, "")
	g.AddEdge("a", "b", 1.0, "")
	g.AddEdge("b", "c", 1.0, "")

	p, ok := g.ShortestPathByName("a", "c")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, p.Names())
	assert.InDelta(t, 2.0, p.Cost, 1e-9)
}

func TestShortestPath_MirrorEdgesAreTraversable(t *testing.T) {
	g := New()
	g.AddNode("a", 1.0, 5)
	g.AddNode("b", 1.0, 5)
	g.AddEdge("b", "a", 2.0, "forward only")

	p, ok := g.ShortestPathByName("a", "b")
	require.True(t, ok)
	assert.InDelta(t, 2.0, p.Cost, 1e-9, "mirror carries no procedure discount")
}

func TestBestPath_PicksCheapestGoal(t *testing.T) {
	g := New()
	for _, n := range []string{"s", "g1", "g2"} {
		g.AddNode(n, 1.0, 5)
	}
	g.AddEdge("s", "g1", 4.0, "")
	g.AddEdge("s", "g2", 2.0, "")

	p, ok := g.BestPath("s", []string{"g1", "g2"})
	require.True(t, ok)
	assert.Equal(t, "g2", p.Destination().Name())
}

func TestBestPath_TieGoesToFirstGoal(t *testing.T) {
	g := New()
	for _, n := range []string{"s", "g1", "g2"} {
		g.AddNode(n, 1.0, 5)
	}
	g.AddEdge("s", "g2", 2.0, "")
	g.AddEdge("s", "g1", 2.0, "")

	p, ok := g.BestPath("s", []string{"g1", "g2"})
	require.True(t, ok)
	assert.Equal(t, "g1", p.Destination().Name())

	p, ok = g.BestPath("s", []string{"g2", "g1"})
	require.True(t, ok)
	assert.Equal(t, "g2", p.Destination().Name())
}

func TestBestPath_NoGoalReachable(t *testing.T) {
	g := New()
	g.AddNode("s", 0, 5)
	g.AddNode("calm", 0.6, 3)

	_, ok := g.BestPath("s", []string{"calm", "missing"})
	assert.False(t, ok)
}

func TestBestPath_SeededOverwhelmedRoutesThroughGrounded(t *testing.T) {
	g := New()
	SeedDefaultsIfEmpty(g)

	p, ok := g.BestPath(domain.Overwhelmed, domain.GoalStates)
	require.True(t, ok)

	names := p.Names()
	assert.Equal(t, []string{"overwhelmed", "grounded", "calm"}, names)
	assert.Greater(t, len(names), 2, "never a direct two-step jump")
	assert.InDelta(t, 1.0*0.85*0.8*0.945+1.5*0.85*0.8*0.98, p.Cost, 1e-9)
}

func TestBestPath_EveryGoalAvoidsDirectJump(t *testing.T) {
	g := New()
	SeedDefaultsIfEmpty(g)

	for _, goal := range domain.GoalStates {
		p, ok := g.ShortestPathByName(domain.Overwhelmed, goal)
		require.True(t, ok, goal)
		require.GreaterOrEqual(t, len(p.Nodes), 3, goal)
		assert.Equal(t, domain.Grounded, p.Nodes[1].Name(), goal)
	}
}
