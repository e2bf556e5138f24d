package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

func flatScore(name string, base float64) model.OptionScore {
	return model.OptionScore{
		OptionName:       name,
		CostScore:        base,
		LatencyScore:     base,
		ScalabilityScore: base,
		ComplianceScore:  base,
		CloudScore:       base,
		SkillScore:       base,
	}
}

func TestGenerate_NoTradeOffWithinGap(t *testing.T) {
	gen := NewTradeOffGenerator(DefaultScoringConfig())

	opts := []model.TechOption{option("a"), option("b")}
	a := flatScore("a", 7)
	b := flatScore("b", 7)
	b.CostScore = 6 // gap of exactly 1.0, not material

	tradeoffs, err := gen.Generate(opts, []model.OptionScore{a, b})
	require.NoError(t, err)
	assert.Empty(t, tradeoffs)
}

func TestGenerate_ImpactTiers(t *testing.T) {
	tests := []struct {
		name   string
		gap    float64
		impact model.Impact
	}{
		{"just over threshold", 1.5, model.ImpactLow},
		{"medium boundary", 2.0, model.ImpactMedium},
		{"below high boundary", 3.9, model.ImpactMedium},
		{"high boundary", 4.0, model.ImpactHigh},
		{"wide gap", 5.0, model.ImpactHigh},
	}

	gen := NewTradeOffGenerator(DefaultScoringConfig())
	opts := []model.TechOption{option("a"), option("b")}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := flatScore("a", 8)
			b := flatScore("b", 8)
			b.CostScore = 8 - tt.gap

			tradeoffs, err := gen.Generate(opts, []model.OptionScore{a, b})
			require.NoError(t, err)
			require.Len(t, tradeoffs, 1)

			to := tradeoffs[0]
			assert.Equal(t, "cost", to.Dimension)
			assert.Equal(t, "a", to.Winner)
			assert.Equal(t, tt.impact, to.Impact)
			assert.Contains(t, to.Explanation, "a is more cost-effective than b")
		})
	}
}

func TestGenerate_SymmetricAcrossPairOrder(t *testing.T) {
	gen := NewTradeOffGenerator(DefaultScoringConfig())

	a := flatScore("a", 9)
	b := flatScore("b", 9)
	b.LatencyScore = 4.5

	forward, err := gen.Generate(
		[]model.TechOption{option("a"), option("b")},
		[]model.OptionScore{a, b})
	require.NoError(t, err)

	reverse, err := gen.Generate(
		[]model.TechOption{option("b"), option("a")},
		[]model.OptionScore{b, a})
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, reverse, 1)
	assert.Equal(t, forward[0].Winner, reverse[0].Winner)
	assert.Equal(t, forward[0].Impact, reverse[0].Impact)
	assert.Equal(t, forward[0].Dimension, reverse[0].Dimension)
}

func TestGenerate_PairAndDimensionOrder(t *testing.T) {
	gen := NewTradeOffGenerator(DefaultScoringConfig())

	// c dominates a and b on every dimension; a and b are identical.
	opts := []model.TechOption{option("a"), option("b"), option("c")}
	scores := []model.OptionScore{flatScore("a", 3), flatScore("b", 3), flatScore("c", 9)}

	tradeoffs, err := gen.Generate(opts, scores)
	require.NoError(t, err)
	require.Len(t, tradeoffs, 12) // pairs (a,c) and (b,c), six dimensions each

	// Pair (0,1) yields nothing, then all of (0,2) before all of (1,2).
	for i, to := range tradeoffs {
		assert.Equal(t, "c", to.Winner)
		assert.Equal(t, Dimensions[i%6], to.Dimension)
		if i < 6 {
			assert.Equal(t, "a", to.OptionA)
		} else {
			assert.Equal(t, "b", to.OptionA)
		}
	}
}

func TestGenerate_MissingScoreIsLookupError(t *testing.T) {
	gen := NewTradeOffGenerator(DefaultScoringConfig())

	opts := []model.TechOption{option("a"), option("b")}
	_, err := gen.Generate(opts, []model.OptionScore{flatScore("a", 5)})
	require.Error(t, err)

	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "b", lerr.OptionName)
}

func TestGenerate_SingleDimensionGapOnly(t *testing.T) {
	gen := NewTradeOffGenerator(DefaultScoringConfig())

	// Options differ only in cost score, by exactly 5.0.
	a := flatScore("cheap", 9)
	b := flatScore("pricey", 9)
	b.CostScore = 4
	b.CloudScore = 8.5 // within the materiality gap

	tradeoffs, err := gen.Generate(
		[]model.TechOption{option("cheap"), option("pricey")},
		[]model.OptionScore{a, b})
	require.NoError(t, err)

	require.Len(t, tradeoffs, 1)
	assert.Equal(t, "cost", tradeoffs[0].Dimension)
	assert.Equal(t, "cheap", tradeoffs[0].Winner)
	assert.Equal(t, model.ImpactHigh, tradeoffs[0].Impact)
}
