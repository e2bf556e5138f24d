package service

import (
	"context"
	"strings"
	"time"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/cache"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/engine"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/logger"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/repository"
)

// DecisionService runs the comparison pipeline: validate, score, derive
// trade-offs, build the narrative, persist. Each stage feeds the next.
type DecisionService struct {
	scorer    *engine.ScoringEngine
	generator *engine.TradeOffGenerator
	analyzer  *engine.Analyzer
	repo      repository.ComparisonRepo
	stats     cache.StatsCache
	log       *logger.Logger
}

// NewDecisionService creates a decision service sharing one scoring
// config across all pipeline stages.
func NewDecisionService(cfg engine.ScoringConfig, repo repository.ComparisonRepo,
	stats cache.StatsCache, log *logger.Logger) *DecisionService {
	return &DecisionService{
		scorer:    engine.NewScoringEngine(cfg),
		generator: engine.NewTradeOffGenerator(cfg),
		analyzer:  engine.NewAnalyzer(cfg, engine.DefaultTemplates()),
		repo:      repo,
		stats:     stats,
		log:       log,
	}
}

// Compare validates the request, runs the pipeline, persists the
// request/result pair, and returns the result with its assigned id.
// A persistence failure fails the whole request.
func (s *DecisionService) Compare(ctx context.Context, req *model.ComparisonRequest) (*model.ComparisonResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	scores, err := s.scorer.Score(req.Options, req.Constraints)
	if err != nil {
		return nil, err
	}

	tradeoffs, err := s.generator.Generate(req.Options, scores)
	if err != nil {
		return nil, err
	}

	analysis := s.analyzer.Analyze(req.Options, req.Constraints, scores, tradeoffs, req.UseCase)

	result := &model.ComparisonResult{
		Scores:    scores,
		TradeOffs: tradeoffs,
		Analysis:  analysis,
		Timestamp: time.Now().UTC(),
	}

	id, err := s.repo.Store(ctx, req, result)
	if err != nil {
		return nil, err
	}
	result.ComparisonID = id

	// Aggregates changed; dropping the cache is best effort.
	if err := s.stats.Invalidate(ctx); err != nil {
		s.log.Warn("stats cache invalidation failed", "error", err)
	}

	s.log.Info("comparison stored",
		"id", id,
		"options", len(req.Options),
		"tradeoffs", len(tradeoffs))
	return result, nil
}

// Get retrieves one stored comparison; nil, nil when absent.
func (s *DecisionService) Get(ctx context.Context, id string) (*model.ComparisonRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func validateRequest(req *model.ComparisonRequest) error {
	if len(req.Options) < 2 {
		return &engine.ValidationError{Reason: "at least 2 options are required for comparison"}
	}
	if strings.TrimSpace(req.UseCase) == "" {
		return &engine.ValidationError{Reason: "use case description is required"}
	}
	return nil
}
