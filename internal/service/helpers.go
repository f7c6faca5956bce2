package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/graph"
)

// normalizeName trims name and rejects names the save format cannot hold.
func normalizeName(name string, code contract.PlanErrorCode) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &contract.PlanError{Code: code, Message: "no emotion entered"}
	}
	if strings.ContainsFunc(name, unicode.IsSpace) || strings.ContainsRune(name, '"') {
		return "", &contract.PlanError{
			Code:    code,
			Message: fmt.Sprintf("%q: use a single word without quotes", name),
		}
	}
	return name, nil
}

// cleanText folds control characters such as line breaks into spaces and
// trims the result, keeping free text on one save-file line.
func cleanText(text string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text))
}

// normalizeGoals applies normalizeName to every caller-supplied goal.
func normalizeGoals(goals []string) ([]string, error) {
	if len(goals) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(goals))
	for _, goal := range goals {
		name, err := normalizeName(goal, contract.ErrInvalidEmotion)
		if err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, nil
}

// planSteps renders path as steps. Each step's action comes from the first
// edge toward the next state.
func planSteps(g *graph.Graph, p graph.Path) []contract.PlanStep {
	steps := make([]contract.PlanStep, 0, len(p.Nodes))
	for i, n := range p.Nodes {
		step := contract.PlanStep{Emotion: n.Name(), Tips: n.Tips()}
		if i == len(p.Nodes)-1 {
			step.Final = true
		} else if e, ok := g.EdgeBetween(n.Name(), p.Nodes[i+1].Name()); ok {
			step.Action = e.Procedure
		}
		steps = append(steps, step)
	}
	return steps
}

func summarize(n *graph.Node) contract.EmotionSummary {
	s := contract.EmotionSummary{Name: n.Name(), Tips: n.Tips()}
	for _, e := range n.Edges() {
		s.Transitions = append(s.Transitions, contract.Transition{
			To:         e.To.Name(),
			Action:     e.Procedure,
			Difficulty: e.Weight,
		})
	}
	return s
}
