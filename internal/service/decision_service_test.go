package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/engine"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/logger"
	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

type fakeRepo struct {
	storeCalls  int
	storeErr    error
	records     map[string]*model.ComparisonRecord
	recent      []model.ComparisonSummary
	popular     []model.PopularOption
	searchCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[string]*model.ComparisonRecord{}}
}

func (f *fakeRepo) Init(ctx context.Context) error { return nil }

func (f *fakeRepo) Store(ctx context.Context, req *model.ComparisonRequest, result *model.ComparisonResult) (string, error) {
	f.storeCalls++
	if f.storeErr != nil {
		return "", f.storeErr
	}
	id := "cmp-1"
	f.records[id] = &model.ComparisonRecord{ID: id, UseCase: req.UseCase, Request: *req, Result: *result}
	return id, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*model.ComparisonRecord, error) {
	return f.records[id], nil
}

func (f *fakeRepo) ListRecent(ctx context.Context, limit int) ([]model.ComparisonSummary, error) {
	return f.recent, nil
}

func (f *fakeRepo) SearchByText(ctx context.Context, query string, limit int) ([]model.ComparisonSummary, error) {
	f.searchCalls++
	return f.recent, nil
}

func (f *fakeRepo) PopularOptions(ctx context.Context, limit int) ([]model.PopularOption, error) {
	return f.popular, nil
}

type fakeStats struct {
	recent      []model.ComparisonSummary
	popular     []model.PopularOption
	invalidated int
	setRecent   int
	setPopular  int
}

func (f *fakeStats) GetRecent(ctx context.Context, limit int) ([]model.ComparisonSummary, error) {
	return f.recent, nil
}

func (f *fakeStats) SetRecent(ctx context.Context, limit int, s []model.ComparisonSummary) error {
	f.setRecent++
	return nil
}

func (f *fakeStats) GetPopular(ctx context.Context, limit int) ([]model.PopularOption, error) {
	return f.popular, nil
}

func (f *fakeStats) SetPopular(ctx context.Context, limit int, p []model.PopularOption) error {
	f.setPopular++
	return nil
}

func (f *fakeStats) Invalidate(ctx context.Context) error {
	f.invalidated++
	return nil
}

func validRequest() *model.ComparisonRequest {
	return &model.ComparisonRequest{
		Options: []model.TechOption{
			{Name: "managed", Description: "managed service", Cost: 7, Latency: 3, Scalability: 9,
				Compliance: model.ComplianceSOC2, Cloud: model.CloudAWS, TeamSkillRequired: model.SkillBeginner},
			{Name: "selfhosted", Description: "self hosted", Cost: 3, Latency: 5, Scalability: 6,
				Compliance: model.ComplianceBasic, Cloud: model.CloudMulti, TeamSkillRequired: model.SkillAdvanced},
		},
		Constraints: model.Constraints{
			Budget: 5, MaxLatency: 5, RequiredScale: 5,
			Compliance: model.ComplianceBasic, TeamSkill: model.SkillIntermediate,
		},
		UseCase: "event ingestion pipeline",
	}
}

func newTestService(repo *fakeRepo, stats *fakeStats) *DecisionService {
	return NewDecisionService(engine.DefaultScoringConfig(), repo, stats, logger.NewNop())
}

func TestCompare_RejectsTooFewOptions(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeStats{})

	req := validRequest()
	req.Options = req.Options[:1]

	_, err := svc.Compare(context.Background(), req)
	require.Error(t, err)

	var verr *engine.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.storeCalls, "store must not be called on validation failure")
}

func TestCompare_RejectsBlankUseCase(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeStats{})

	req := validRequest()
	req.UseCase = "   \t"

	_, err := svc.Compare(context.Background(), req)
	require.Error(t, err)

	var verr *engine.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, repo.storeCalls)
}

func TestCompare_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	stats := &fakeStats{}
	svc := newTestService(repo, stats)

	result, err := svc.Compare(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "cmp-1", result.ComparisonID)
	require.Len(t, result.Scores, 2)
	assert.GreaterOrEqual(t, result.Scores[0].WeightedScore, result.Scores[1].WeightedScore)
	assert.GreaterOrEqual(t, len(result.Analysis.Recommendations), 2)
	assert.False(t, result.Timestamp.IsZero())
	assert.Equal(t, 1, stats.invalidated)

	// The stored run is retrievable.
	record, err := svc.Get(context.Background(), "cmp-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "event ingestion pipeline", record.UseCase)
}

func TestCompare_StoreFailureFailsRequest(t *testing.T) {
	repo := newFakeRepo()
	repo.storeErr = errors.New("write timeout")
	svc := newTestService(repo, &fakeStats{})

	_, err := svc.Compare(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, "write timeout")
}

func TestStatsService_RecentReadThrough(t *testing.T) {
	repo := newFakeRepo()
	repo.recent = []model.ComparisonSummary{{ID: "cmp-1", UseCase: "x", OptionCount: 2}}
	stats := &fakeStats{}
	svc := NewStatsService(repo, stats, logger.NewNop())

	// Miss: served from the repo and written back.
	got, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, stats.setRecent)

	// Hit: served from the cache.
	stats.recent = got
	repo.recent = nil
	got, err = svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, stats.setRecent)
}

func TestStatsService_PopularReadThrough(t *testing.T) {
	repo := newFakeRepo()
	repo.popular = []model.PopularOption{{Name: "managed", UsageCount: 3, AverageScore: 8.1}}
	stats := &fakeStats{}
	svc := NewStatsService(repo, stats, logger.NewNop())

	got, err := svc.PopularOptions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "managed", got[0].Name)
	assert.Equal(t, 1, stats.setPopular)
}

func TestStatsService_SearchPassesThrough(t *testing.T) {
	repo := newFakeRepo()
	svc := NewStatsService(repo, &fakeStats{}, logger.NewNop())

	_, err := svc.Search(context.Background(), "redis", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.searchCalls)
}
