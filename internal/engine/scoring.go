package engine

import (
	"math"
	"sort"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

// complianceRanks orders compliance levels for gap scoring. HIPAA and
// PCI are treated as equally strict.
var complianceRanks = map[model.ComplianceLevel]int{
	model.ComplianceNone:  0,
	model.ComplianceBasic: 1,
	model.ComplianceSOC2:  2,
	model.ComplianceHIPAA: 3,
	model.CompliancePCI:   3,
	model.ComplianceGDPR:  4,
}

var skillRanks = map[model.SkillLevel]int{
	model.SkillBeginner:     1,
	model.SkillIntermediate: 2,
	model.SkillAdvanced:     3,
	model.SkillExpert:       4,
}

// ScoringEngine converts (option, constraints) pairs into per-dimension
// score vectors plus a weighted aggregate. Stateless apart from its
// config; safe for concurrent use.
type ScoringEngine struct {
	cfg ScoringConfig
}

// NewScoringEngine creates a scoring engine with the given config.
func NewScoringEngine(cfg ScoringConfig) *ScoringEngine {
	return &ScoringEngine{cfg: cfg}
}

// Score scores every option against the constraints and returns the
// results sorted descending by weighted score. The sort is stable, so
// ties keep input order. Fails with ValidationError on an empty option
// list.
func (e *ScoringEngine) Score(options []model.TechOption, constraints model.Constraints) ([]model.OptionScore, error) {
	if len(options) == 0 {
		return nil, &ValidationError{Reason: "at least one option is required for scoring"}
	}

	scores := make([]model.OptionScore, 0, len(options))
	for _, opt := range options {
		scores = append(scores, e.scoreOption(opt, constraints))
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].WeightedScore > scores[j].WeightedScore
	})
	return scores, nil
}

func (e *ScoringEngine) scoreOption(opt model.TechOption, c model.Constraints) model.OptionScore {
	costScore := scoreCost(opt.Cost, c.Budget)
	latencyScore := scoreLatency(opt.Latency, c.MaxLatency)
	scalabilityScore := scoreScalability(opt.Scalability, c.RequiredScale)
	complianceScore := scoreCompliance(opt.Compliance, c.Compliance)
	cloudScore := scoreCloud(opt.Cloud, c.PreferredCloud)
	skillScore := scoreSkill(opt.TeamSkillRequired, c.TeamSkill)

	w := e.cfg.Weights
	weighted := costScore*w.Cost +
		latencyScore*w.Latency +
		scalabilityScore*w.Scalability +
		complianceScore*w.Compliance +
		cloudScore*w.Cloud +
		skillScore*w.Skill

	total := (costScore + latencyScore + scalabilityScore +
		complianceScore + cloudScore + skillScore) / 6

	return model.OptionScore{
		OptionName:       opt.Name,
		TotalScore:       round2(total),
		CostScore:        round2(costScore),
		LatencyScore:     round2(latencyScore),
		ScalabilityScore: round2(scalabilityScore),
		ComplianceScore:  round2(complianceScore),
		CloudScore:       round2(cloudScore),
		SkillScore:       round2(skillScore),
		WeightedScore:    round2(weighted),
	}
}

// scoreCost rewards options within budget tolerance; costs above it are
// penalized proportionally to the overshoot.
func scoreCost(optionCost, budget float64) float64 {
	if budget >= optionCost {
		return 10.0
	}
	penalty := (optionCost - budget) / budget
	return math.Max(0, 10-penalty*5)
}

func scoreLatency(optionLatency, maxLatency float64) float64 {
	if optionLatency <= maxLatency {
		return 10.0
	}
	penalty := (optionLatency - maxLatency) / maxLatency
	return math.Max(0, 10-penalty*5)
}

// scoreScalability bases at 8 when the floor is met, with up to 2 bonus
// points for headroom; missing the floor is penalized steeply.
func scoreScalability(optionScalability, requiredScale float64) float64 {
	if optionScalability >= requiredScale {
		bonus := math.Min(2, (optionScalability-requiredScale)/requiredScale)
		return math.Min(10, 8+bonus)
	}
	penalty := (requiredScale - optionScalability) / requiredScale
	return math.Max(0, 8-penalty*8)
}

func scoreCompliance(optionLevel, requiredLevel model.ComplianceLevel) float64 {
	o := complianceRanks[optionLevel]
	r := complianceRanks[requiredLevel]
	if o >= r {
		return 10.0
	}
	return math.Max(0, 10-float64(r-o)*3)
}

func scoreCloud(optionCloud, preferredCloud model.CloudProvider) float64 {
	if preferredCloud == "" {
		return 8.0 // neutral without a preference
	}
	switch {
	case optionCloud == preferredCloud:
		return 10.0
	case optionCloud == model.CloudMulti:
		return 9.0
	default:
		return 6.0
	}
}

// scoreSkill penalizes the gap between what the option demands and what
// the team has; an over-qualified team is a perfect match.
func scoreSkill(required, team model.SkillLevel) float64 {
	r := skillRanks[required]
	t := skillRanks[team]
	if r == 0 {
		r = 1
	}
	if t == 0 {
		t = 1
	}
	if t >= r {
		return 10.0
	}
	return math.Max(0, 10-float64(r-t)*3)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
