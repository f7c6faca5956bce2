// Package graph holds the emotional map: named states, the coping tips
// attached to them, and the weighted transitions between them.
//
// Valence and baseline are internal scores. They bias path selection and are
// persisted, but nothing outside the core should surface them to a person.
package graph

import (
	"unicode/utf8"

	"github.com/alexanderramin/emopath/internal/domain"
)

// MaxNameLen is the longest state name kept, in bytes.
const MaxNameLen = 47

// Node is one emotional state.
type Node struct {
	name     string
	valence  float64
	baseline float64
	tips     []string
	edges    []*Edge
	index    int
}

// Edge is a directed transition owned by its source node. Every insertion
// creates a forward edge and its mirror; only the forward half normally
// carries a procedure.
type Edge struct {
	To        *Node
	Weight    float64
	Procedure string

	from   *Node
	mirror bool
	twin   *Edge
}

// From returns the node owning the edge.
func (e *Edge) From() *Node { return e.from }

// Mirror reports whether the edge is the reverse half of an insertion.
func (e *Edge) Mirror() bool { return e.mirror }

// HasProcedure reports whether a suggested action is attached.
func (e *Edge) HasProcedure() bool { return e.Procedure != "" }

// Name returns the state name.
func (n *Node) Name() string { return n.name }

// Valence returns the hidden valence score.
func (n *Node) Valence() float64 { return n.valence }

// Baseline returns the hidden baseline-intensity score.
func (n *Node) Baseline() float64 { return n.baseline }

// SetScores overwrites both hidden scores.
func (n *Node) SetScores(valence, baseline float64) {
	n.valence = valence
	n.baseline = baseline
}

// Tips returns a copy of the node's tips in insertion order.
func (n *Node) Tips() []string {
	out := make([]string, len(n.tips))
	copy(out, n.tips)
	return out
}

// TipCount returns the number of tips attached.
func (n *Node) TipCount() int { return len(n.tips) }

// Edges returns the node's outgoing edges in insertion order. The slice is a
// copy; the edges themselves are shared with the graph.
func (n *Node) Edges() []*Edge {
	out := make([]*Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// Index returns the node's position in store order.
func (n *Node) Index() int { return n.index }

// Graph owns every node, tip and edge in one emotional map. It is not safe
// for concurrent use.
type Graph struct {
	nodes  []*Node
	byName map[string]*Node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{byName: make(map[string]*Node)}
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Nodes returns all nodes in store order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Names returns all node names in store order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.name
	}
	return out
}

// Find returns the node with exactly the given name.
func (g *Graph) Find(name string) (*Node, bool) {
	n, ok := g.byName[clampName(name)]
	return n, ok
}

// AddNode returns the node named name, creating it with the given scores if
// it does not exist. Scores of an existing node are left unchanged.
func (g *Graph) AddNode(name string, valence, baseline float64) *Node {
	name = clampName(name)
	if n, ok := g.byName[name]; ok {
		return n
	}
	n := &Node{
		name:     name,
		valence:  valence,
		baseline: baseline,
		index:    len(g.nodes),
	}
	g.nodes = append(g.nodes, n)
	g.byName[name] = n
	return n
}

func (g *Graph) ensure(name string, s domain.Scores) *Node {
	return g.AddNode(name, s.Valence, s.Baseline)
}

// AddEdge inserts from→to with the given weight and procedure plus the mirror
// to→from without a procedure. Negative weights are stored as zero. It
// returns false, creating nothing, when the admission policy refuses the
// transition.
func (g *Graph) AddEdge(from, to string, weight float64, procedure string) bool {
	from, to = clampName(from), clampName(to)
	if domain.TransitionForbidden(from, to) {
		return false
	}
	if weight < 0 {
		weight = 0
	}

	u := g.ensure(from, domain.EdgeSourceDefaults)
	v := g.ensure(to, domain.EdgeTargetDefaults)

	fwd := &Edge{To: v, Weight: weight, Procedure: procedure, from: u}
	rev := &Edge{To: u, Weight: weight, from: v, mirror: true}
	fwd.twin, rev.twin = rev, fwd

	u.edges = append(u.edges, fwd)
	v.edges = append(v.edges, rev)
	return true
}

// AddTip appends a tip to emotion, creating the node if needed.
func (g *Graph) AddTip(emotion, text string) *Node {
	n := g.ensure(emotion, domain.TipDefaults)
	n.tips = append(n.tips, text)
	return n
}

// EdgeBetween returns the first from→to edge.
func (g *Graph) EdgeBetween(from, to string) (*Edge, bool) {
	u, ok := g.Find(from)
	if !ok {
		return nil, false
	}
	for _, e := range u.edges {
		if e.To.name == clampName(to) {
			return e, true
		}
	}
	return nil, false
}

// SetProcedure replaces the action on the first from→to edge; an empty text
// clears it. It returns false if no such edge exists.
//
// Only the forward half of a pair carries an action. Setting one on a mirror
// edge flips the pair so that half becomes the forward one, and the old
// forward action is dropped.
func (g *Graph) SetProcedure(from, to, text string) bool {
	e, ok := g.EdgeBetween(from, to)
	if !ok {
		return false
	}
	e.Procedure = text
	if text != "" && e.mirror && e.twin != nil {
		e.mirror = false
		e.twin.mirror = true
		e.twin.Procedure = ""
	}
	return true
}

// clampName truncates name to MaxNameLen bytes without splitting a rune.
func clampName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	cut := MaxNameLen
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}
