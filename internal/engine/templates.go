package engine

// Templates is the fixed phrase table the analyzer builds its narrative
// from. It is injected as an immutable value so the wording can be
// swapped (or localized) without touching the analysis rules.
type Templates struct {
	SummaryIntro      string // option count
	SummaryCost       string
	SummaryPerf       string
	SummaryCompliance string
	SummaryLeader     string // leader name, weighted score
	SummaryOutro      string

	InsightCloseField       string
	InsightClearWinner      string // leader name
	InsightCriticalDims     string // joined dimension list
	InsightCostVsPerf       string
	InsightComplianceSpread string

	RecCostLeader   string // option name
	RecBalanced     string // option name
	RecPerfLeader   string // option name
	RecPerfBudget   string // option name
	RecCompliance   string // option name
	RecLowRisk      string // option name
	RecOverall      string // option name
	RecByPriorities string // balance, cost, performance leaders

	RiskCost        string // option name
	RiskLatency     string // option name
	RiskScalability string // option name
	RiskCompliance  string // option name
	RiskSkill       string // option name
	RiskTradeOff    string // winner name, dimension

	ScenarioTightBudget string // option name
	ScenarioHighPerf    string // option name
	ScenarioQuickDeploy string // option name
	ScenarioEnterprise  string // option name
	ScenarioStartupMVP  string // option name
}

// DefaultTemplates returns the stock English phrase table.
func DefaultTemplates() Templates {
	return Templates{
		SummaryIntro:      "Analyzed %d technical options for your use case. ",
		SummaryCost:       "With cost as the primary concern, the analysis reveals significant trade-offs between price and capabilities. ",
		SummaryPerf:       "Performance requirements drive this decision, with clear winners in latency and scalability. ",
		SummaryCompliance: "Regulatory compliance is the decisive factor, limiting viable options. ",
		SummaryLeader:     "%s leads in overall scoring (weighted score: %v), ",
		SummaryOutro: "but each option has distinct advantages depending on your specific priorities and constraints. " +
			"The decision should align with your risk tolerance and long-term technical strategy.",

		InsightCloseField:       "All options are very close in overall scoring - decision factors beyond metrics may be important",
		InsightClearWinner:      "Clear winner: %s significantly outperforms other options",
		InsightCriticalDims:     "Critical trade-offs exist in: %s",
		InsightCostVsPerf:       "Classic cost vs performance trade-off - no option excels at both",
		InsightComplianceSpread: "Significant compliance differences between options - regulatory requirements are decisive",

		RecCostLeader:   "For cost optimization: Choose %s - best cost efficiency",
		RecBalanced:     "For balanced approach: Consider %s - good cost with better features",
		RecPerfLeader:   "For maximum performance: Choose %s - superior speed and scale",
		RecPerfBudget:   "For performance on budget: Consider %s - acceptable performance, lower cost",
		RecCompliance:   "For regulatory compliance: Choose %s - meets all requirements",
		RecLowRisk:      "For low-risk deployment: %s - proven enterprise solution",
		RecOverall:      "For overall balance: Choose %s - strongest combined scoring",
		RecByPriorities: "Choice depends on priorities: %s for overall balance, %s for cost, %s for performance",

		RiskCost:        "%s: High cost risk - may exceed budget",
		RiskLatency:     "%s: Performance risk - may not meet latency requirements",
		RiskScalability: "%s: Scalability risk - may not handle growth",
		RiskCompliance:  "%s: Compliance risk - may not meet regulatory requirements",
		RiskSkill:       "%s: Team capability risk - may require additional training",
		RiskTradeOff:    "Choosing %s over alternatives sacrifices %s performance",

		ScenarioTightBudget: "%s - most cost-effective option",
		ScenarioHighPerf:    "%s - best performance characteristics",
		ScenarioQuickDeploy: "%s - matches current team skills",
		ScenarioEnterprise:  "%s - strongest compliance and governance",
		ScenarioStartupMVP:  "%s - best overall balance for rapid iteration",
	}
}
