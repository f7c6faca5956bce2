package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
)

type mapService struct {
	ws       *Workspace
	observer UseCaseObserver
}

func NewMapService(ws *Workspace, observers ...UseCaseObserver) MapService {
	return &mapService{ws: ws, observer: useCaseObserverOrNoop(observers)}
}

func (s *mapService) List(ctx context.Context) ([]contract.EmotionSummary, error) {
	nodes := s.ws.graph.Nodes()
	out := make([]contract.EmotionSummary, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, summarize(n))
	}
	return out, nil
}

func (s *mapService) Inspect(ctx context.Context, from, to string) (*contract.TransitionStatus, error) {
	from, to, err := transitionNames(from, to)
	if err != nil {
		return nil, err
	}
	if domain.TransitionForbidden(from, to) {
		return &contract.TransitionStatus{State: contract.TransitionForbidden}, nil
	}
	if e, ok := s.ws.graph.EdgeBetween(from, to); ok {
		return &contract.TransitionStatus{
			State:      contract.TransitionExists,
			Action:     e.Procedure,
			Difficulty: e.Weight,
		}, nil
	}
	return &contract.TransitionStatus{State: contract.TransitionNew}, nil
}

func (s *mapService) AddTip(ctx context.Context, emotion, text string) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "add_tip", startedAt, fields, err) }()

	emotion, err = normalizeName(emotion, contract.ErrInvalidEmotion)
	if err != nil {
		return err
	}
	text = cleanText(text)
	if text == "" {
		err = &contract.PlanError{Code: contract.ErrInvalidEmotion, Message: "no tip entered"}
		return err
	}
	fields["emotion"] = emotion

	s.ws.graph.AddTip(emotion, text)
	_, err = s.ws.changed()
	return err
}

func (s *mapService) SetAction(ctx context.Context, req contract.ActionRequest) (resp *contract.ActionResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "set_action", startedAt, fields, err) }()

	from, to, err := transitionNames(req.From, req.To)
	if err != nil {
		return nil, err
	}
	fields["from"], fields["to"] = from, to
	action := cleanText(req.Action)
	g := s.ws.graph
	resp = &contract.ActionResponse{From: from, To: to}

	switch {
	case domain.TransitionForbidden(from, to):
		if !req.RouteViaGrounding {
			resp.Outcome = domain.ActionBlocked
			fields["outcome"] = string(resp.Outcome)
			return resp, nil
		}
		if _, ok := g.EdgeBetween(domain.Overwhelmed, domain.Grounded); !ok {
			g.AddEdge(domain.Overwhelmed, domain.Grounded, domain.GroundingWeight, domain.GroundingAction)
		}
		if _, ok := g.EdgeBetween(domain.Grounded, to); !ok {
			g.AddEdge(domain.Grounded, to, domain.GroundingGoalWeight, "")
		}
		resp.Outcome = domain.ActionRouted
		resp.Via = domain.Grounded

	default:
		if _, ok := g.EdgeBetween(from, to); ok {
			g.SetProcedure(from, to, action)
			resp.Outcome = domain.ActionUpdated
			if action == "" {
				resp.Outcome = domain.ActionCleared
			}
			break
		}
		if req.Difficulty < 0 || req.Difficulty > domain.MaxTransitionWeight {
			err = &contract.PlanError{
				Code:    contract.ErrInvalidTransition,
				Message: fmt.Sprintf("difficulty must be between 0 and %d", domain.MaxTransitionWeight),
			}
			return nil, err
		}
		s.ws.ensure(from, domain.EnteredDefaults)
		s.ws.ensure(to, domain.EnteredDefaults)
		g.AddEdge(from, to, float64(req.Difficulty), action)
		resp.Outcome = domain.ActionCreated
	}

	fields["outcome"] = string(resp.Outcome)
	if _, err = s.ws.changed(); err != nil {
		return nil, err
	}
	return resp, nil
}

func transitionNames(from, to string) (string, string, error) {
	from, err := normalizeName(from, contract.ErrInvalidTransition)
	if err != nil {
		return "", "", err
	}
	to, err = normalizeName(to, contract.ErrInvalidTransition)
	if err != nil {
		return "", "", err
	}
	return from, to, nil
}
