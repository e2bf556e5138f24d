package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(DefaultScoringConfig(), DefaultTemplates())
}

func TestAnalyze_AlwaysAtLeastTwoRecommendations(t *testing.T) {
	a := newTestAnalyzer()

	// Balanced constraints and a neutral use case hit no concern branch.
	c := baseConstraints()
	c.Budget = 8
	c.MaxLatency = 8
	c.TeamSkill = model.SkillExpert

	opts := []model.TechOption{option("a"), option("b")}
	scores := []model.OptionScore{flatScore("a", 8), flatScore("b", 7.5)}

	analysis := a.Analyze(opts, c, scores, nil, "internal tooling refresh")
	assert.GreaterOrEqual(t, len(analysis.Recommendations), 2)
}

func TestAnalyze_ScenarioKeys(t *testing.T) {
	a := newTestAnalyzer()

	opts := []model.TechOption{option("a"), option("b")}
	scores := []model.OptionScore{flatScore("a", 8), flatScore("b", 6)}

	analysis := a.Analyze(opts, baseConstraints(), scores, nil, "api platform")

	for _, key := range []string{
		ScenarioTightBudget, ScenarioHighPerf, ScenarioQuickDeploy,
		ScenarioEnterprise, ScenarioStartupMVP,
	} {
		assert.Contains(t, analysis.BestForScenarios, key)
		assert.NotEmpty(t, analysis.BestForScenarios[key])
	}
	assert.Len(t, analysis.BestForScenarios, 5)
}

func TestAnalyze_RiskThresholds(t *testing.T) {
	a := newTestAnalyzer()

	risky := flatScore("risky", 9)
	risky.CostScore = 3.9
	risky.ComplianceScore = 5.9
	risky.SkillScore = 4.9
	safe := flatScore("safe", 9)

	analysis := a.Analyze(
		[]model.TechOption{option("risky"), option("safe")},
		baseConstraints(),
		[]model.OptionScore{safe, risky},
		nil,
		"payments backend")

	joined := strings.Join(analysis.RiskFactors, "\n")
	assert.Contains(t, joined, "risky: High cost risk")
	assert.Contains(t, joined, "risky: Compliance risk")
	assert.Contains(t, joined, "risky: Team capability risk")
	assert.NotContains(t, joined, "safe:")
}

func TestAnalyze_HighImpactTradeOffBecomesRisk(t *testing.T) {
	a := newTestAnalyzer()

	scores := []model.OptionScore{flatScore("a", 8), flatScore("b", 7)}
	tradeoffs := []model.TradeOff{
		{OptionA: "a", OptionB: "b", Dimension: "latency", Winner: "a", Impact: model.ImpactHigh},
		{OptionA: "a", OptionB: "b", Dimension: "cost", Winner: "b", Impact: model.ImpactLow},
	}

	analysis := a.Analyze(
		[]model.TechOption{option("a"), option("b")},
		baseConstraints(), scores, tradeoffs, "search service")

	joined := strings.Join(analysis.RiskFactors, "\n")
	assert.Contains(t, joined, "Choosing a over alternatives sacrifices latency performance")
	assert.NotContains(t, joined, "sacrifices cost")
}

func TestAnalyze_ContextDetection(t *testing.T) {
	a := newTestAnalyzer()
	opts := []model.TechOption{option("a"), option("b")}
	scores := []model.OptionScore{flatScore("a", 8), flatScore("b", 6)}

	t.Run("tight budget drives cost concern", func(t *testing.T) {
		c := baseConstraints()
		c.Budget = 2
		analysis := a.Analyze(opts, c, scores, nil, "data pipeline")
		assert.Contains(t, analysis.Summary, "cost as the primary concern")
		assert.Contains(t, strings.Join(analysis.Recommendations, "\n"), "For cost optimization")
	})

	t.Run("strict latency drives performance concern", func(t *testing.T) {
		c := baseConstraints()
		c.Budget = 8
		c.MaxLatency = 2
		c.TeamSkill = model.SkillExpert
		analysis := a.Analyze(opts, c, scores, nil, "trading platform")
		assert.Contains(t, analysis.Summary, "Performance requirements drive this decision")
	})

	t.Run("regulated compliance drives compliance concern", func(t *testing.T) {
		c := baseConstraints()
		c.Budget = 8
		c.MaxLatency = 8
		c.Compliance = model.ComplianceHIPAA
		c.TeamSkill = model.SkillExpert
		analysis := a.Analyze(opts, c, scores, nil, "patient records")
		assert.Contains(t, analysis.Summary, "Regulatory compliance is the decisive factor")
	})
}

func TestAnalyze_EnterpriseRecommendationForLowRiskUseCase(t *testing.T) {
	a := newTestAnalyzer()

	plain := option("plain")
	enterprise := option("bigcorp")
	enterprise.Description = "Enterprise-grade managed service"

	c := baseConstraints()
	c.Budget = 8
	c.MaxLatency = 8
	c.TeamSkill = model.SkillExpert

	scores := []model.OptionScore{flatScore("bigcorp", 8), flatScore("plain", 7)}

	analysis := a.Analyze([]model.TechOption{plain, enterprise}, c, scores, nil,
		"critical production workload")
	assert.Contains(t, strings.Join(analysis.Recommendations, "\n"),
		"For low-risk deployment: bigcorp")
}

func TestAnalyze_Insights(t *testing.T) {
	a := newTestAnalyzer()
	opts := []model.TechOption{option("a"), option("b")}

	t.Run("close field", func(t *testing.T) {
		scores := []model.OptionScore{
			{OptionName: "a", WeightedScore: 8.0},
			{OptionName: "b", WeightedScore: 7.5},
		}
		analysis := a.Analyze(opts, baseConstraints(), scores, nil, "cms")
		assert.Contains(t, strings.Join(analysis.KeyInsights, "\n"), "very close in overall scoring")
	})

	t.Run("clear winner", func(t *testing.T) {
		scores := []model.OptionScore{
			{OptionName: "a", WeightedScore: 9.0},
			{OptionName: "b", WeightedScore: 3.0},
		}
		analysis := a.Analyze(opts, baseConstraints(), scores, nil, "cms")
		assert.Contains(t, strings.Join(analysis.KeyInsights, "\n"), "Clear winner: a")
	})

	t.Run("compliance spread", func(t *testing.T) {
		sa := flatScore("a", 8)
		sb := flatScore("b", 8)
		sb.ComplianceScore = 2
		analysis := a.Analyze(opts, baseConstraints(), []model.OptionScore{sa, sb}, nil, "cms")
		assert.Contains(t, strings.Join(analysis.KeyInsights, "\n"),
			"Significant compliance differences")
	})
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := newTestAnalyzer()
	opts := []model.TechOption{option("a"), option("b")}
	scores := []model.OptionScore{flatScore("a", 8), flatScore("b", 5)}

	first := a.Analyze(opts, baseConstraints(), scores, nil, "startup mvp")
	second := a.Analyze(opts, baseConstraints(), scores, nil, "startup mvp")
	require.Equal(t, first, second)
}
