package engine

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights defines the relative importance of each scoring dimension in
// the weighted aggregate. Weights must sum to 1.0.
type Weights struct {
	Cost        float64 `yaml:"cost" json:"cost"`
	Latency     float64 `yaml:"latency" json:"latency"`
	Scalability float64 `yaml:"scalability" json:"scalability"`
	Compliance  float64 `yaml:"compliance" json:"compliance"`
	Cloud       float64 `yaml:"cloud" json:"cloud"`
	Skill       float64 `yaml:"skill" json:"skill"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Cost + w.Latency + w.Scalability + w.Compliance + w.Cloud + w.Skill
}

// Thresholds collects the tuning constants used outside the per-dimension
// formulas: the materiality gap for emitting a trade-off, the impact tier
// cutoffs, and the per-dimension risk-flag floors.
type Thresholds struct {
	TradeOffGap    float64 `yaml:"tradeoff_gap" json:"tradeoff_gap"`
	HighImpact     float64 `yaml:"high_impact" json:"high_impact"`
	MediumImpact   float64 `yaml:"medium_impact" json:"medium_impact"`
	ScoreRisk      float64 `yaml:"score_risk" json:"score_risk"`
	ComplianceRisk float64 `yaml:"compliance_risk" json:"compliance_risk"`
	SkillRisk      float64 `yaml:"skill_risk" json:"skill_risk"`
}

// ScoringConfig is the full tuning surface of the decision model.
type ScoringConfig struct {
	Weights    Weights    `yaml:"weights" json:"weights"`
	Thresholds Thresholds `yaml:"thresholds" json:"thresholds"`
}

// DefaultScoringConfig returns the stock weight distribution and
// thresholds.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: Weights{
			Cost:        0.25,
			Latency:     0.20,
			Scalability: 0.20,
			Compliance:  0.15,
			Cloud:       0.10,
			Skill:       0.10,
		},
		Thresholds: Thresholds{
			TradeOffGap:    1.0,
			HighImpact:     4.0,
			MediumImpact:   2.0,
			ScoreRisk:      4.0,
			ComplianceRisk: 6.0,
			SkillRisk:      5.0,
		},
	}
}

// Validate checks that the weights form a convex combination and the
// threshold ordering is coherent.
func (c ScoringConfig) Validate() error {
	if math.Abs(c.Weights.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", c.Weights.Sum())
	}
	for _, v := range []float64{c.Weights.Cost, c.Weights.Latency, c.Weights.Scalability,
		c.Weights.Compliance, c.Weights.Cloud, c.Weights.Skill} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	if c.Thresholds.HighImpact <= c.Thresholds.MediumImpact {
		return fmt.Errorf("high impact cutoff %.2f must exceed medium cutoff %.2f",
			c.Thresholds.HighImpact, c.Thresholds.MediumImpact)
	}
	if c.Thresholds.MediumImpact <= c.Thresholds.TradeOffGap {
		return fmt.Errorf("medium impact cutoff %.2f must exceed trade-off gap %.2f",
			c.Thresholds.MediumImpact, c.Thresholds.TradeOffGap)
	}
	return nil
}

// LoadScoringConfig reads a ScoringConfig from a YAML file. Fields left
// unset fall back to the defaults.
func LoadScoringConfig(path string) (ScoringConfig, error) {
	cfg := DefaultScoringConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scoring config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("scoring config %s: %w", path, err)
	}
	return cfg, nil
}
