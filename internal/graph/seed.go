package graph

type seedNode struct {
	name     string
	valence  float64
	baseline float64
}

type seedTip struct {
	emotion string
	text    string
}

type seedEdge struct {
	from, to  string
	weight    float64
	procedure string
}

var defaultNodes = []seedNode{
	{"overwhelmed", -0.95, 8.5},
	{"anxious", -0.7, 7.0},
	{"frustrated", -0.6, 6.0},
	{"angry", -0.7, 6.5},
	{"sad", -0.8, 6.0},
	{"lonely", -0.5, 5.0},
	{"grounded", -0.1, 3.0},
	{"calm", 0.6, 3.0},
	{"hopeful", 0.7, 2.5},
	{"happy", 1.0, 1.5},
	{"peaceful", 0.9, 1.5},
}

var defaultTips = []seedTip{
	{"overwhelmed", "Put your phone away and take 3 big slow breaths."},
	{"overwhelmed", "Try: press your feet firmly into the ground for 30 seconds."},
	{"anxious", "5 slow breaths (inhale 4s, hold 2s, exhale 6s)."},
	{"anxious", "Name 5 things you can see right now."},
	{"frustrated", "Step away for 2 minutes and stretch."},
	{"frustrated", "Count backwards from 20 slowly."},
	{"angry", "Take a 60-second walk or do physical movement."},
	{"sad", "Write 3 small things that went okay today."},
	{"sad", "Call or message someone you trust - say 'I need a small favor'."},
	{"lonely", "Try a brief message to a friend or online community."},
	{"grounded", "Place an object in your hand and describe it slowly."},
	{"calm", "Listen to a favorite 3-minute song."},
	{"hopeful", "List one small goal for the next 24 hours."},
	{"happy", "Celebrate: do one small reward for yourself."},
	{"peaceful", "Try a 2-minute body scan relaxation."},
}

// There is deliberately no overwhelmed→goal edge; AddEdge would refuse it.
var defaultEdges = []seedEdge{
	{"overwhelmed", "grounded", 1.0, "5 grounding breaths & plant feet"},
	{"grounded", "calm", 1.5, "2-minute breathing"},
	{"calm", "happy", 1.5, "play a mood-lifting song"},
	{"calm", "peaceful", 1.0, "gentle stretching"},
	{"anxious", "grounded", 1.2, "5 slow breaths"},
	{"anxious", "frustrated", 1.8, ""},
	{"frustrated", "calm", 1.5, "count to 10 and stretch"},
	{"frustrated", "angry", 2.0, "step away and breathe"},
	{"angry", "grounded", 2.0, "walk for 2 minutes"},
	{"sad", "hopeful", 2.0, "write 3 small wins"},
	{"lonely", "hopeful", 2.5, "reach out to one person"},
	{"anxious", "sad", 1.7, ""},
	{"sad", "calm", 2.5, "sit with feelings and breathe"},
	{"hopeful", "happy", 1.0, ""},
}

// SeedDefaultsIfEmpty fills an empty graph with the built-in map of eleven
// states. It reports whether anything was added.
func SeedDefaultsIfEmpty(g *Graph) bool {
	if g.Len() > 0 {
		return false
	}
	for _, n := range defaultNodes {
		g.AddNode(n.name, n.valence, n.baseline)
	}
	for _, t := range defaultTips {
		g.AddTip(t.emotion, t.text)
	}
	for _, e := range defaultEdges {
		g.AddEdge(e.from, e.to, e.weight, e.procedure)
	}
	return true
}
