package engine

import (
	"fmt"
	"math"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

// Dimensions lists the six scoring axes in their fixed comparison order.
var Dimensions = []string{"cost", "latency", "scalability", "compliance", "cloud", "skill"}

// explanations is the per-dimension trade-off sentence, formatted with
// (winner, loser).
var explanations = map[string]string{
	"cost":        "%s is more cost-effective than %s",
	"latency":     "%s offers better latency performance than %s",
	"scalability": "%s scales better than %s",
	"compliance":  "%s better meets compliance requirements than %s",
	"cloud":       "%s better aligns with cloud preferences than %s",
	"skill":       "%s better matches team skill level than %s",
}

// TradeOffGenerator derives pairwise per-dimension trade-offs from a
// scored option set.
type TradeOffGenerator struct {
	cfg ScoringConfig
}

// NewTradeOffGenerator creates a trade-off generator with the given
// config.
func NewTradeOffGenerator(cfg ScoringConfig) *TradeOffGenerator {
	return &TradeOffGenerator{cfg: cfg}
}

// Generate compares every unordered pair of options, in input order,
// across all six dimensions. A trade-off is emitted only when the
// absolute score gap exceeds the materiality threshold; otherwise the
// options are considered equivalent on that axis. Fails with LookupError
// if an option has no matching score entry.
func (g *TradeOffGenerator) Generate(options []model.TechOption, scores []model.OptionScore) ([]model.TradeOff, error) {
	byName := make(map[string]model.OptionScore, len(scores))
	for _, s := range scores {
		byName[s.OptionName] = s
	}

	tradeoffs := []model.TradeOff{}
	for i := 0; i < len(options); i++ {
		for j := i + 1; j < len(options); j++ {
			a, b := options[i], options[j]

			scoreA, ok := byName[a.Name]
			if !ok {
				return nil, &LookupError{OptionName: a.Name}
			}
			scoreB, ok := byName[b.Name]
			if !ok {
				return nil, &LookupError{OptionName: b.Name}
			}

			tradeoffs = append(tradeoffs, g.comparePair(a.Name, b.Name, scoreA, scoreB)...)
		}
	}
	return tradeoffs, nil
}

func (g *TradeOffGenerator) comparePair(nameA, nameB string, a, b model.OptionScore) []model.TradeOff {
	var out []model.TradeOff
	for _, dim := range Dimensions {
		va := DimensionScore(a, dim)
		vb := DimensionScore(b, dim)

		gap := math.Abs(va - vb)
		if gap <= g.cfg.Thresholds.TradeOffGap {
			continue
		}

		winner, loser := nameA, nameB
		if vb > va {
			winner, loser = nameB, nameA
		}

		out = append(out, model.TradeOff{
			OptionA:     nameA,
			OptionB:     nameB,
			Dimension:   dim,
			Winner:      winner,
			Explanation: fmt.Sprintf(explanations[dim], winner, loser),
			Impact:      g.impact(gap),
		})
	}
	return out
}

func (g *TradeOffGenerator) impact(gap float64) model.Impact {
	switch {
	case gap >= g.cfg.Thresholds.HighImpact:
		return model.ImpactHigh
	case gap >= g.cfg.Thresholds.MediumImpact:
		return model.ImpactMedium
	default:
		return model.ImpactLow
	}
}

// DimensionScore selects the named dimension's score from a score
// vector.
func DimensionScore(s model.OptionScore, dimension string) float64 {
	switch dimension {
	case "cost":
		return s.CostScore
	case "latency":
		return s.LatencyScore
	case "scalability":
		return s.ScalabilityScore
	case "compliance":
		return s.ComplianceScore
	case "cloud":
		return s.CloudScore
	case "skill":
		return s.SkillScore
	default:
		return 0
	}
}
