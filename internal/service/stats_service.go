package service

import (
	"context"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/cache"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/logger"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/repository"
)

// StatsService serves the retrieval and aggregate queries over stored
// comparisons, with read-through caching for the hot lists.
type StatsService struct {
	repo  repository.ComparisonRepo
	stats cache.StatsCache
	log   *logger.Logger
}

// NewStatsService creates a stats service.
func NewStatsService(repo repository.ComparisonRepo, stats cache.StatsCache, log *logger.Logger) *StatsService {
	return &StatsService{repo: repo, stats: stats, log: log}
}

// Recent lists the newest comparisons, newest first.
func (s *StatsService) Recent(ctx context.Context, limit int) ([]model.ComparisonSummary, error) {
	cached, err := s.stats.GetRecent(ctx, limit)
	if err != nil {
		s.log.Warn("recent cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	summaries, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.stats.SetRecent(ctx, limit, summaries); err != nil {
		s.log.Warn("recent cache write failed", "error", err)
	}
	return summaries, nil
}

// Search matches comparisons whose use case or option names contain the
// query, case-insensitively.
func (s *StatsService) Search(ctx context.Context, query string, limit int) ([]model.ComparisonSummary, error) {
	return s.repo.SearchByText(ctx, query, limit)
}

// PopularOptions returns the most-compared options across all stored
// runs.
func (s *StatsService) PopularOptions(ctx context.Context, limit int) ([]model.PopularOption, error) {
	cached, err := s.stats.GetPopular(ctx, limit)
	if err != nil {
		s.log.Warn("popular cache read failed", "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	popular, err := s.repo.PopularOptions(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.stats.SetPopular(ctx, limit, popular); err != nil {
		s.log.Warn("popular cache write failed", "error", err)
	}
	return popular, nil
}
