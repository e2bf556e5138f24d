package model

type CloudProvider string

const (
	CloudAWS   CloudProvider = "aws"
	CloudAzure CloudProvider = "azure"
	CloudGCP   CloudProvider = "gcp"
	CloudMulti CloudProvider = "multi"
)

type ComplianceLevel string

const (
	ComplianceNone  ComplianceLevel = "none"
	ComplianceBasic ComplianceLevel = "basic"
	ComplianceHIPAA ComplianceLevel = "hipaa"
	ComplianceSOC2  ComplianceLevel = "soc2"
	CompliancePCI   ComplianceLevel = "pci"
	ComplianceGDPR  ComplianceLevel = "gdpr"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillExpert       SkillLevel = "expert"
)

// TechOption is one candidate technology in a comparison. All numeric
// attributes are on a 1-10 scale; cost and latency are lower-is-better,
// scalability is higher-is-better.
type TechOption struct {
	Name              string          `json:"name" bson:"name"`
	Description       string          `json:"description" bson:"description"`
	Cost              float64         `json:"cost" bson:"cost"`
	Latency           float64         `json:"latency" bson:"latency"`
	Scalability       float64         `json:"scalability" bson:"scalability"`
	Compliance        ComplianceLevel `json:"compliance" bson:"compliance"`
	Cloud             CloudProvider   `json:"cloud" bson:"cloud"`
	TeamSkillRequired SkillLevel      `json:"team_skill_required" bson:"team_skill_required"`
	Pros              []string        `json:"pros" bson:"pros"`
	Cons              []string        `json:"cons" bson:"cons"`
}

// Constraints is the buyer's requirement profile for one comparison.
// Budget is tolerance (1=very tight, 10=unlimited); MaxLatency is a
// ceiling (1=must be fastest); RequiredScale is a floor. An empty
// PreferredCloud means no preference.
type Constraints struct {
	Budget         float64         `json:"budget" bson:"budget"`
	MaxLatency     float64         `json:"max_latency" bson:"max_latency"`
	RequiredScale  float64         `json:"required_scale" bson:"required_scale"`
	Compliance     ComplianceLevel `json:"compliance" bson:"compliance"`
	PreferredCloud CloudProvider   `json:"preferred_cloud,omitempty" bson:"preferred_cloud,omitempty"`
	TeamSkill      SkillLevel      `json:"team_skill" bson:"team_skill"`
}
