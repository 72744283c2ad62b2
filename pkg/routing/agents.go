package routing

import "strings"

// Agent describes one advisory agent in the roster.
type Agent struct {
	Id               string
	Name             string
	Aliases          []string
	Tools            []string
	DefaultProfile   string
	ProducesArtifact bool
}

// Agent ids
const (
	AgentVentureDesign     = "venture_design"
	AgentFinancialModeling = "financial_modeling"
	AgentValuation         = "valuation"
	AgentPitchNarrative    = "pitch_narrative"
	AgentMarketResearch    = "market_research"
	AgentGeneralAdvisor    = "general_advisor"
)

// Model profile tags
const (
	ProfileReasoning = "reasoning-heavy"
	ProfileWriting   = "writing-polish"
	ProfileFast      = "fast-response"
)

// Registry resolves agent ids and aliases. Built once at startup and
// passed to the engine; lookups are read-only, safe for concurrent use.
type Registry struct {
	byId    map[string]Agent
	byAlias map[string]string
}

func NewRegistry(agents []Agent) *Registry {
	r := &Registry{
		byId:    make(map[string]Agent, len(agents)),
		byAlias: make(map[string]string),
	}
	for _, a := range agents {
		r.byId[a.Id] = a
		for _, alias := range a.Aliases {
			r.byAlias[strings.ToLower(alias)] = a.Id
		}
	}
	return r
}

func (r *Registry) Get(id string) (Agent, bool) {
	a, ok := r.byId[id]
	return a, ok
}

// ResolveAlias maps a short alias token (lowercased) to an agent id.
func (r *Registry) ResolveAlias(alias string) (string, bool) {
	id, ok := r.byAlias[strings.ToLower(alias)]
	return id, ok
}

// DefaultAgents is the production advisory roster.
func DefaultAgents() []Agent {
	return []Agent{
		{
			Id:               AgentVentureDesign,
			Name:             "Venture Design Advisor",
			Aliases:          []string{"design", "vd"},
			Tools:            []string{"business_model_canvas", "knowledge_graph_read"},
			DefaultProfile:   ProfileReasoning,
			ProducesArtifact: true,
		},
		{
			Id:               AgentFinancialModeling,
			Name:             "Financial Modeling Advisor",
			Aliases:          []string{"fin", "model"},
			Tools:            []string{"scenario_engine", "projection_builder", "knowledge_graph_read"},
			DefaultProfile:   ProfileReasoning,
			ProducesArtifact: true,
		},
		{
			Id:               AgentValuation,
			Name:             "Valuation Advisor",
			Aliases:          []string{"val"},
			Tools:            []string{"valuation_engine", "benchmark_lookup", "knowledge_graph_read"},
			DefaultProfile:   ProfileReasoning,
			ProducesArtifact: true,
		},
		{
			Id:               AgentPitchNarrative,
			Name:             "Pitch & Narrative Advisor",
			Aliases:          []string{"pitch", "deck"},
			Tools:            []string{"deck_outliner", "knowledge_graph_read"},
			DefaultProfile:   ProfileWriting,
			ProducesArtifact: true,
		},
		{
			Id:               AgentMarketResearch,
			Name:             "Market Research Advisor",
			Aliases:          []string{"market", "research"},
			Tools:            []string{"benchmark_lookup", "knowledge_graph_read"},
			DefaultProfile:   ProfileReasoning,
			ProducesArtifact: false,
		},
		{
			Id:               AgentGeneralAdvisor,
			Name:             "General Advisor",
			Aliases:          []string{"advisor", "general"},
			Tools:            []string{"knowledge_graph_read"},
			DefaultProfile:   ProfileFast,
			ProducesArtifact: false,
		},
	}
}
