package service

import (
	"context"
	"time"

	"github.com/alexanderramin/emopath/internal/assess"
	"github.com/alexanderramin/emopath/internal/contract"
	"github.com/alexanderramin/emopath/internal/domain"
)

type planService struct {
	ws       *Workspace
	journal  JournalService
	observer UseCaseObserver
}

// NewPlanService plans over ws. A nil journal skips recording.
func NewPlanService(ws *Workspace, journal JournalService, observers ...UseCaseObserver) PlanService {
	return &planService{
		ws:       ws,
		journal:  journal,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"method": string(domain.MethodNamed)}
	defer func() { observeUseCase(ctx, s.observer, "plan", startedAt, fields, err) }()

	var source string
	source, err = normalizeName(req.Emotion, contract.ErrInvalidEmotion)
	if err != nil {
		return nil, err
	}
	var goals []string
	if goals, err = normalizeGoals(req.Goals); err != nil {
		return nil, err
	}
	created := s.ws.ensure(source, domain.EnteredDefaults)

	return s.route(ctx, &domain.CheckIn{Method: domain.MethodNamed, Source: source}, goals, created, fields), nil
}

func (s *planService) CheckIn(ctx context.Context, req contract.CheckInRequest) (resp *contract.PlanResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"method": string(domain.MethodAssessment)}
	defer func() { observeUseCase(ctx, s.observer, "check_in", startedAt, fields, err) }()

	if !req.Ratings.Valid() {
		err = &contract.PlanError{Code: contract.ErrInvalidRating, Message: "ratings must be between 0 and 10"}
		return nil, err
	}
	var goals []string
	if goals, err = normalizeGoals(req.Goals); err != nil {
		return nil, err
	}
	inferred := assess.ClassifyRatings(req.Ratings)
	created := s.ws.ensure(inferred, domain.Scores{
		Valence:  domain.EnteredDefaults.Valence,
		Baseline: req.Ratings.IntensityEstimate(),
	})

	ratings := req.Ratings
	c := &domain.CheckIn{Method: domain.MethodAssessment, Ratings: &ratings, Source: inferred}
	resp = s.route(ctx, c, goals, created, fields)
	resp.Inferred = inferred
	resp.Ratings = &ratings
	return resp, nil
}

// route finds the best goal from c.Source, fills c with the outcome, and
// journals it. Checkpoint and journal failures become warnings.
func (s *planService) route(ctx context.Context, c *domain.CheckIn, goals []string, created bool, fields map[string]any) *contract.PlanResponse {
	if len(goals) == 0 {
		goals = domain.GoalStates
	}
	for _, goal := range goals {
		if s.ws.ensure(goal, domain.GoalDefaults) {
			created = true
		}
	}

	resp := &contract.PlanResponse{
		GeneratedAt: time.Now().UTC(),
		Method:      c.Method,
		Source:      c.Source,
	}
	g := s.ws.graph
	if p, ok := g.BestPath(c.Source, goals); ok {
		resp.Found = true
		resp.Goal = p.Destination().Name()
		resp.Steps = planSteps(g, p)
		c.Goal = resp.Goal
		c.Steps = p.Names()
	} else {
		c.Steps = []string{c.Source}
	}
	fields["source"] = c.Source
	fields["goal"] = resp.Goal
	fields["steps"] = len(c.Steps)

	if created {
		if _, err := s.ws.changed(); err != nil {
			resp.Warnings = append(resp.Warnings, err.Error())
		}
	}
	if s.journal != nil {
		if err := s.journal.Record(ctx, c); err != nil {
			resp.Warnings = append(resp.Warnings, err.Error())
		} else {
			resp.CheckInID = c.ID
		}
	}
	return resp
}
