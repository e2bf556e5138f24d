package model

import "time"

// ComparisonRequest is one submitted comparison: the candidate options,
// the constraint profile to score them against, and a use-case description.
type ComparisonRequest struct {
	Options     []TechOption `json:"options" bson:"options"`
	Constraints Constraints  `json:"constraints" bson:"constraints"`
	UseCase     string       `json:"use_case" bson:"use_case"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
}

// OptionScore holds the derived scores for one option. Every dimension
// score is in [0,10]; WeightedScore is the fixed-weight combination and
// TotalScore the unweighted mean, both rounded to 2 decimals.
type OptionScore struct {
	OptionName       string  `json:"option_name" bson:"option_name"`
	TotalScore       float64 `json:"total_score" bson:"total_score"`
	CostScore        float64 `json:"cost_score" bson:"cost_score"`
	LatencyScore     float64 `json:"latency_score" bson:"latency_score"`
	ScalabilityScore float64 `json:"scalability_score" bson:"scalability_score"`
	ComplianceScore  float64 `json:"compliance_score" bson:"compliance_score"`
	CloudScore       float64 `json:"cloud_score" bson:"cloud_score"`
	SkillScore       float64 `json:"skill_score" bson:"skill_score"`
	WeightedScore    float64 `json:"weighted_score" bson:"weighted_score"`
}

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// TradeOff is a materially significant per-dimension difference between
// two options, with a declared winner and an impact tier.
type TradeOff struct {
	OptionA     string `json:"option_a" bson:"option_a"`
	OptionB     string `json:"option_b" bson:"option_b"`
	Dimension   string `json:"dimension" bson:"dimension"`
	Winner      string `json:"winner" bson:"winner"`
	Explanation string `json:"explanation" bson:"explanation"`
	Impact      Impact `json:"impact" bson:"impact"`
}

// Analysis is the templated narrative built over scores and trade-offs.
// Recommendations always carries at least two entries; BestForScenarios
// maps the five fixed scenario keys to one-line picks.
type Analysis struct {
	Summary          string            `json:"summary" bson:"summary"`
	KeyInsights      []string          `json:"key_insights" bson:"key_insights"`
	Recommendations  []string          `json:"recommendations" bson:"recommendations"`
	RiskFactors      []string          `json:"risk_factors" bson:"risk_factors"`
	BestForScenarios map[string]string `json:"best_for_scenarios" bson:"best_for_scenarios"`
}

// ComparisonResult is the full output of one comparison. Scores are
// sorted descending by weighted score; ComparisonID is assigned after
// the result has been persisted.
type ComparisonResult struct {
	ComparisonID string        `json:"comparison_id,omitempty" bson:"comparison_id,omitempty"`
	Scores       []OptionScore `json:"scores" bson:"scores"`
	TradeOffs    []TradeOff    `json:"tradeoffs" bson:"tradeoffs"`
	Analysis     Analysis      `json:"analysis" bson:"analysis"`
	Timestamp    time.Time     `json:"timestamp" bson:"timestamp"`
}

// ComparisonRecord is a stored request/result pair.
type ComparisonRecord struct {
	ID        string            `json:"id" bson:"_id"`
	UseCase   string            `json:"use_case" bson:"use_case"`
	Request   ComparisonRequest `json:"request" bson:"request"`
	Result    ComparisonResult  `json:"result" bson:"result"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}

// ComparisonSummary is the listing shape for recent/search queries.
type ComparisonSummary struct {
	ID          string    `json:"id" bson:"_id"`
	UseCase     string    `json:"use_case" bson:"use_case"`
	OptionCount int       `json:"option_count" bson:"option_count"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// PopularOption is one row of the usage aggregate across all stored
// comparisons.
type PopularOption struct {
	Name         string  `json:"name" bson:"_id"`
	UsageCount   int     `json:"usage_count" bson:"usage_count"`
	AverageScore float64 `json:"average_score" bson:"average_score"`
}
