package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Adityaaz10/decision-intelligence-platform/internal/model"
)

// Fixed scenario keys of the best-for mapping.
const (
	ScenarioTightBudget = "tight_budget"
	ScenarioHighPerf    = "high_performance"
	ScenarioQuickDeploy = "quick_deployment"
	ScenarioEnterprise  = "enterprise_deployment"
	ScenarioStartupMVP  = "startup_mvp"
)

// decisionContext captures what the constraints and use-case text say
// about the buyer's priorities.
type decisionContext struct {
	primaryConcern string // "cost", "performance", "compliance", "team_capability", "balanced"
	riskTolerance  string // "low", "medium", "high"
}

// Analyzer produces the templated narrative over already-computed scores
// and trade-offs. Pure text construction, no side effects.
type Analyzer struct {
	cfg  ScoringConfig
	tmpl Templates
}

// NewAnalyzer creates an analyzer with the given config and phrase
// table.
func NewAnalyzer(cfg ScoringConfig, tmpl Templates) *Analyzer {
	return &Analyzer{cfg: cfg, tmpl: tmpl}
}

// Analyze builds the narrative record: summary, insights, at least two
// recommendations, threshold-triggered risks, and the five fixed
// best-for scenarios. Assumes scores is sorted descending by weighted
// score and non-empty.
func (a *Analyzer) Analyze(options []model.TechOption, constraints model.Constraints,
	scores []model.OptionScore, tradeoffs []model.TradeOff, useCase string) model.Analysis {

	ctx := a.analyzeContext(constraints, useCase)

	return model.Analysis{
		Summary:          a.summary(options, scores, ctx),
		KeyInsights:      a.insights(scores, tradeoffs),
		Recommendations:  a.recommendations(options, scores, ctx),
		RiskFactors:      a.risks(scores, tradeoffs),
		BestForScenarios: a.scenarios(scores),
	}
}

func (a *Analyzer) analyzeContext(c model.Constraints, useCase string) decisionContext {
	ctx := decisionContext{primaryConcern: "balanced", riskTolerance: "medium"}

	switch {
	case c.Budget <= 3:
		ctx.primaryConcern = "cost"
	case c.MaxLatency <= 3:
		ctx.primaryConcern = "performance"
	case c.Compliance == model.ComplianceHIPAA || c.Compliance == model.CompliancePCI || c.Compliance == model.ComplianceGDPR:
		ctx.primaryConcern = "compliance"
	case c.TeamSkill == model.SkillBeginner || c.TeamSkill == model.SkillIntermediate:
		ctx.primaryConcern = "team_capability"
	}

	lower := strings.ToLower(useCase)
	if containsAny(lower, "startup", "mvp", "prototype") {
		ctx.riskTolerance = "high"
	} else if containsAny(lower, "enterprise", "production", "critical") {
		ctx.riskTolerance = "low"
	}
	return ctx
}

func (a *Analyzer) insights(scores []model.OptionScore, tradeoffs []model.TradeOff) []string {
	insights := []string{}

	gap := scores[0].WeightedScore - scores[len(scores)-1].WeightedScore
	if gap < 1.0 {
		insights = append(insights, a.tmpl.InsightCloseField)
	} else if gap > 4.0 {
		insights = append(insights, fmt.Sprintf(a.tmpl.InsightClearWinner, scores[0].OptionName))
	}

	if dims := highImpactDimensions(tradeoffs); len(dims) > 0 {
		insights = append(insights, fmt.Sprintf(a.tmpl.InsightCriticalDims, strings.Join(dims, ", ")))
	}

	// Leaders on cost and on raw performance (latency+scalability) are
	// different option sets: nobody wins both.
	costLeaders := leaders(scores, 2, func(s model.OptionScore) float64 { return s.CostScore })
	perfLeaders := leaders(scores, 2, perfScore)
	if !sameNames(costLeaders, perfLeaders) {
		insights = append(insights, a.tmpl.InsightCostVsPerf)
	}

	minC, maxC := scores[0].ComplianceScore, scores[0].ComplianceScore
	for _, s := range scores[1:] {
		if s.ComplianceScore < minC {
			minC = s.ComplianceScore
		}
		if s.ComplianceScore > maxC {
			maxC = s.ComplianceScore
		}
	}
	if maxC-minC > 3 {
		insights = append(insights, a.tmpl.InsightComplianceSpread)
	}

	return insights
}

func (a *Analyzer) recommendations(options []model.TechOption, scores []model.OptionScore, ctx decisionContext) []string {
	recs := []string{}

	switch ctx.primaryConcern {
	case "cost":
		costLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.CostScore })[0]
		recs = append(recs, fmt.Sprintf(a.tmpl.RecCostLeader, costLeader.OptionName))
		if len(scores) > 1 {
			balanced := scores[0]
			if balanced.OptionName == costLeader.OptionName {
				balanced = scores[1]
			}
			recs = append(recs, fmt.Sprintf(a.tmpl.RecBalanced, balanced.OptionName))
		}

	case "performance":
		perfLeader := leaders(scores, 1, perfScore)[0]
		recs = append(recs, fmt.Sprintf(a.tmpl.RecPerfLeader, perfLeader.OptionName))
		costLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.CostScore })[0]
		if costLeader.OptionName != perfLeader.OptionName {
			recs = append(recs, fmt.Sprintf(a.tmpl.RecPerfBudget, costLeader.OptionName))
		}

	case "compliance":
		leader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.ComplianceScore })[0]
		recs = append(recs, fmt.Sprintf(a.tmpl.RecCompliance, leader.OptionName))
	}

	if ctx.riskTolerance == "low" {
		if name := enterpriseOption(options, scores); name != "" {
			recs = append(recs, fmt.Sprintf(a.tmpl.RecLowRisk, name))
		}
	}

	// Never return a lone recommendation: always offer alternatives
	// framed by different priorities.
	if len(recs) == 0 {
		recs = append(recs, fmt.Sprintf(a.tmpl.RecOverall, scores[0].OptionName))
	}
	costLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.CostScore })[0]
	latencyLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.LatencyScore })[0]
	recs = append(recs, fmt.Sprintf(a.tmpl.RecByPriorities,
		scores[0].OptionName, costLeader.OptionName, latencyLeader.OptionName))

	return recs
}

func (a *Analyzer) risks(scores []model.OptionScore, tradeoffs []model.TradeOff) []string {
	risks := []string{}
	t := a.cfg.Thresholds

	for _, s := range scores {
		if s.CostScore < t.ScoreRisk {
			risks = append(risks, fmt.Sprintf(a.tmpl.RiskCost, s.OptionName))
		}
		if s.LatencyScore < t.ScoreRisk {
			risks = append(risks, fmt.Sprintf(a.tmpl.RiskLatency, s.OptionName))
		}
		if s.ScalabilityScore < t.ScoreRisk {
			risks = append(risks, fmt.Sprintf(a.tmpl.RiskScalability, s.OptionName))
		}
		if s.ComplianceScore < t.ComplianceRisk {
			risks = append(risks, fmt.Sprintf(a.tmpl.RiskCompliance, s.OptionName))
		}
		if s.SkillScore < t.SkillRisk {
			risks = append(risks, fmt.Sprintf(a.tmpl.RiskSkill, s.OptionName))
		}
	}

	for _, to := range tradeoffs {
		if to.Impact == model.ImpactHigh {
			risks = append(risks, fmt.Sprintf(a.tmpl.RiskTradeOff, to.Winner, to.Dimension))
		}
	}
	return risks
}

func (a *Analyzer) scenarios(scores []model.OptionScore) map[string]string {
	costLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.CostScore })[0]
	perfLeader := leaders(scores, 1, perfScore)[0]
	skillLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.SkillScore })[0]
	complianceLeader := leaders(scores, 1, func(s model.OptionScore) float64 { return s.ComplianceScore })[0]
	balancedLeader := scores[0]

	return map[string]string{
		ScenarioTightBudget: fmt.Sprintf(a.tmpl.ScenarioTightBudget, costLeader.OptionName),
		ScenarioHighPerf:    fmt.Sprintf(a.tmpl.ScenarioHighPerf, perfLeader.OptionName),
		ScenarioQuickDeploy: fmt.Sprintf(a.tmpl.ScenarioQuickDeploy, skillLeader.OptionName),
		ScenarioEnterprise:  fmt.Sprintf(a.tmpl.ScenarioEnterprise, complianceLeader.OptionName),
		ScenarioStartupMVP:  fmt.Sprintf(a.tmpl.ScenarioStartupMVP, balancedLeader.OptionName),
	}
}

func (a *Analyzer) summary(options []model.TechOption, scores []model.OptionScore, ctx decisionContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, a.tmpl.SummaryIntro, len(options))

	switch ctx.primaryConcern {
	case "cost":
		b.WriteString(a.tmpl.SummaryCost)
	case "performance":
		b.WriteString(a.tmpl.SummaryPerf)
	case "compliance":
		b.WriteString(a.tmpl.SummaryCompliance)
	}

	fmt.Fprintf(&b, a.tmpl.SummaryLeader, scores[0].OptionName, scores[0].WeightedScore)
	b.WriteString(a.tmpl.SummaryOutro)
	return b.String()
}

// perfScore is the combined raw-performance metric used for leader
// picks.
func perfScore(s model.OptionScore) float64 {
	return (s.LatencyScore + s.ScalabilityScore) / 2
}

// leaders returns the top n scores by the given metric, ties keeping
// ranking order.
func leaders(scores []model.OptionScore, n int, metric func(model.OptionScore) float64) []model.OptionScore {
	sorted := make([]model.OptionScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric(sorted[i]) > metric(sorted[j])
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

func highImpactDimensions(tradeoffs []model.TradeOff) []string {
	seen := map[string]bool{}
	var dims []string
	for _, to := range tradeoffs {
		if to.Impact == model.ImpactHigh && !seen[to.Dimension] {
			seen[to.Dimension] = true
			dims = append(dims, to.Dimension)
		}
	}
	return dims
}

func sameNames(a, b []model.OptionScore) bool {
	if len(a) != len(b) {
		return false
	}
	names := map[string]bool{}
	for _, s := range a {
		names[s.OptionName] = true
	}
	for _, s := range b {
		if !names[s.OptionName] {
			return false
		}
	}
	return true
}

// enterpriseOption picks the highest-ranked option that describes
// itself as an enterprise offering.
func enterpriseOption(options []model.TechOption, scores []model.OptionScore) string {
	described := map[string]bool{}
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Description), "enterprise") {
			described[opt.Name] = true
		}
	}
	for _, s := range scores {
		if described[s.OptionName] {
			return s.OptionName
		}
	}
	return ""
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
