package graph

import "math"

// Step-cost modifiers applied while relaxing an edge. They only shape which
// route wins and are never reported.
const (
	tipDiscount       = 0.85
	procedureDiscount = 0.80
	valenceBias       = 0.05
)

// Path is a route through the graph, source first and destination last.
type Path struct {
	Cost  float64
	Nodes []*Node
}

// Names returns the node names along the path.
func (p Path) Names() []string {
	out := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n.name
	}
	return out
}

// Destination returns the last node of the path, or nil for an empty path.
func (p Path) Destination() *Node {
	if len(p.Nodes) == 0 {
		return nil
	}
	return p.Nodes[len(p.Nodes)-1]
}

// stepCost is the effective cost of taking e.
func stepCost(e *Edge) float64 {
	w := e.Weight
	if len(e.To.tips) > 0 {
		w *= tipDiscount
	}
	if e.Procedure != "" {
		w *= procedureDiscount
	}
	w *= 1 - (1-e.To.valence)*valenceBias
	// Extreme hand-edited valences could push the factor below zero.
	if w < 0 {
		return 0
	}
	return w
}

// ShortestPath finds the cheapest route from src to dst. The second result is
// false when dst cannot be reached or either node belongs to another graph.
func (g *Graph) ShortestPath(src, dst *Node) (Path, bool) {
	if !g.owns(src) || !g.owns(dst) {
		return Path{}, false
	}
	if src == dst {
		return Path{Cost: 0, Nodes: []*Node{src}}, true
	}

	n := len(g.nodes)
	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src.index] = 0

	for range n {
		u := -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !visited[i] && dist[i] < best {
				best = dist[i]
				u = i
			}
		}
		if u == -1 {
			break
		}
		visited[u] = true
		if u == dst.index {
			break
		}
		for _, e := range g.nodes[u].edges {
			v := e.To.index
			if visited[v] {
				continue
			}
			if alt := dist[u] + stepCost(e); alt < dist[v] {
				dist[v] = alt
				prev[v] = u
			}
		}
	}

	if math.IsInf(dist[dst.index], 1) {
		return Path{}, false
	}

	var rev []*Node
	for cur := dst.index; cur != -1; cur = prev[cur] {
		rev = append(rev, g.nodes[cur])
	}
	nodes := make([]*Node, len(rev))
	for i, nd := range rev {
		nodes[len(rev)-1-i] = nd
	}
	return Path{Cost: dist[dst.index], Nodes: nodes}, true
}

// ShortestPathByName resolves both names and runs ShortestPath.
func (g *Graph) ShortestPathByName(src, dst string) (Path, bool) {
	s, ok := g.Find(src)
	if !ok {
		return Path{}, false
	}
	d, ok := g.Find(dst)
	if !ok {
		return Path{}, false
	}
	return g.ShortestPath(s, d)
}

// BestPath tries every goal in order and returns the cheapest route. Ties go
// to the earlier goal. Goals missing from the graph are skipped.
func (g *Graph) BestPath(src string, goals []string) (Path, bool) {
	var best Path
	found := false
	for _, goal := range goals {
		p, ok := g.ShortestPathByName(src, goal)
		if !ok {
			continue
		}
		if !found || p.Cost < best.Cost {
			best = p
			found = true
		}
	}
	return best, found
}

func (g *Graph) owns(n *Node) bool {
	return n != nil && n.index < len(g.nodes) && g.nodes[n.index] == n
}
