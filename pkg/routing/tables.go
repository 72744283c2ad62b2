package routing

// Intent categories for the keyword classifier
const (
	IntentValuation      = "VALUATION"
	IntentFinancialModel = "FINANCIAL_MODEL"
	IntentPitchNarrative = "PITCH_NARRATIVE"
	IntentMarketResearch = "MARKET_RESEARCH"
	IntentVentureDesign  = "VENTURE_DESIGN"
	IntentGeneral        = "GENERAL"
)

// intentKeywords scores message text against intent categories. Phrases
// weigh more than single words because a phrase hit is rarely accidental.
var intentKeywords = map[string]map[string]float64{
	IntentValuation: {
		"valuation":            2.0,
		"pre-money":            2.0,
		"post-money":           2.0,
		"discounted cash flow": 2.0,
		"dcf":                  1.5,
		"company worth":        2.0,
		"worth":                1.0,
		"comparable":           1.0,
		"exit multiple":        2.0,
	},
	IntentFinancialModel: {
		"financial model": 2.0,
		"unit economics":  2.0,
		"revenue model":   2.0,
		"burn rate":       2.0,
		"cash flow":       1.5,
		"projection":      1.5,
		"forecast":        1.5,
		"runway":          1.5,
		"scenario":        1.0,
		"budget":          1.0,
	},
	IntentPitchNarrative: {
		"pitch deck":        2.5,
		"investor deck":     2.5,
		"executive summary": 2.0,
		"one-pager":         2.0,
		"pitch":             1.5,
		"deck":              1.5,
		"slide":             1.0,
		"narrative":         1.0,
		"story":             1.0,
	},
	IntentMarketResearch: {
		"market size":      2.5,
		"market research":  2.5,
		"customer segment": 2.0,
		"competitor":       1.5,
		"competition":      1.5,
		"benchmark":        1.5,
		"industry":         1.0,
		"tam":              1.5,
		"sam":              1.0,
		"som":              1.0,
	},
	IntentVentureDesign: {
		"business model":     2.5,
		"value proposition":  2.5,
		"problem statement":  2.0,
		"product market fit": 2.0,
		"lean canvas":        2.0,
		"positioning":        1.5,
		"ideation":           1.5,
		"mvp":                1.5,
		"idea":               1.0,
	},
}

// intentAgents maps the winning intent to the primary agent.
var intentAgents = map[string]string{
	IntentValuation:      AgentValuation,
	IntentFinancialModel: AgentFinancialModeling,
	IntentPitchNarrative: AgentPitchNarrative,
	IntentMarketResearch: AgentMarketResearch,
	IntentVentureDesign:  AgentVentureDesign,
	IntentGeneral:        AgentGeneralAdvisor,
}

// intentProfiles picks a model profile per intent: reasoning-heavy for
// numeric work, writing-polish for narrative work, fast for everything else.
var intentProfiles = map[string]string{
	IntentValuation:      ProfileReasoning,
	IntentFinancialModel: ProfileReasoning,
	IntentPitchNarrative: ProfileWriting,
	IntentMarketResearch: ProfileReasoning,
	IntentVentureDesign:  ProfileReasoning,
	IntentGeneral:        ProfileFast,
}

// stageOverrides forces an agent for an (intent, stage) pair regardless of
// the classifier mapping. Valuation cannot run at ideation (no metrics
// exist yet) and at pre-seed projections come before formal valuation.
// Keep this table minimal: only pairs confirmed by the product roster.
var stageOverrides = map[string]map[Stage]string{
	IntentValuation: {
		StageIdeation: AgentVentureDesign,
		StagePreSeed:  AgentFinancialModeling,
	},
}
