package routing

import (
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(NewRegistry(DefaultAgents()))
}

func TestRouteCascadePriority(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name           string
		req            Request
		wantAgentId    string
		wantConfidence float64
	}{
		{
			name: "explicit override wins over mention",
			req: Request{
				Message:         "@pitch outline my deck",
				OverrideAgentId: AgentValuation,
			},
			wantAgentId:    AgentValuation,
			wantConfidence: 1.0,
		},
		{
			name: "unknown override falls through to mention",
			req: Request{
				Message:         "@pitch outline my deck",
				OverrideAgentId: "nonexistent_agent",
			},
			wantAgentId:    AgentPitchNarrative,
			wantConfidence: 1.0,
		},
		{
			name: "mention wins over artifact continuation",
			req: Request{
				Message:               "@market what is the tam here?",
				ActiveArtifactAgentId: AgentFinancialModeling,
			},
			wantAgentId:    AgentMarketResearch,
			wantConfidence: 1.0,
		},
		{
			name: "artifact continuation wins over classifier",
			req: Request{
				Message:               "bump the growth assumption to 20%",
				ActiveArtifactAgentId: AgentFinancialModeling,
			},
			wantAgentId:    AgentFinancialModeling,
			wantConfidence: 0.95,
		},
		{
			name: "classifier picks valuation at a late stage",
			req: Request{
				Message: "what is my company worth?",
				Stage:   StageSeriesA,
			},
			wantAgentId: AgentValuation,
		},
		{
			name: "no keywords routes to general advisor",
			req: Request{
				Message: "good morning!",
				Stage:   StageSeed,
			},
			wantAgentId:    AgentGeneralAdvisor,
			wantConfidence: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := e.Route(tt.req)

			if plan == nil {
				t.Fatal("Route returned nil plan")
			}
			if plan.AgentId != tt.wantAgentId {
				t.Errorf("AgentId = %q, want %q", plan.AgentId, tt.wantAgentId)
			}
			if tt.wantConfidence != 0 && plan.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", plan.Confidence, tt.wantConfidence)
			}
			if plan.FallbackAgentId != AgentGeneralAdvisor {
				t.Errorf("FallbackAgentId = %q, want %q", plan.FallbackAgentId, AgentGeneralAdvisor)
			}
		})
	}
}

func TestRouteUnresolvableMentionNeverSelectedLiterally(t *testing.T) {
	e := newTestEngine()

	plan := e.Route(Request{Message: "@bogus what is our valuation?"})

	if plan.AgentId == "bogus" {
		t.Fatal("unresolvable mention was selected as an agent")
	}
	// The stripped prompt still classifies normally.
	if plan.AgentId != AgentValuation {
		t.Errorf("AgentId = %q, want %q", plan.AgentId, AgentValuation)
	}
}

func TestRouteStageOverrides(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name        string
		stage       Stage
		wantAgentId string
	}{
		{"valuation at ideation routes to venture design", StageIdeation, AgentVentureDesign},
		{"valuation at pre-seed routes to financial modeling", StagePreSeed, AgentFinancialModeling},
		{"valuation at seed routes to valuation", StageSeed, AgentValuation},
		{"valuation at growth routes to valuation", StageGrowth, AgentValuation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := e.Route(Request{
				Message: "estimate the pre-money valuation",
				Stage:   tt.stage,
			})
			if plan.AgentId != tt.wantAgentId {
				t.Errorf("AgentId = %q, want %q", plan.AgentId, tt.wantAgentId)
			}
		})
	}
}

func TestRouteNeverFails(t *testing.T) {
	e := newTestEngine()

	inputs := []Request{
		{},
		{Message: ""},
		{Message: "@"},
		{Message: "@@@@"},
		{Message: "随便说点什么, valuation 以外的话"},
		{Message: "valuation", Stage: Stage("made_up_stage")},
		{OverrideAgentId: "ghost", ActiveArtifactAgentId: "phantom"},
	}

	for _, req := range inputs {
		plan := e.Route(req)
		if plan == nil {
			t.Fatalf("Route(%+v) returned nil", req)
		}
		if plan.AgentId == "" {
			t.Errorf("Route(%+v) returned empty AgentId", req)
		}
		if plan.Confidence < 0 || plan.Confidence > 1 {
			t.Errorf("Route(%+v) confidence %v out of [0,1]", req, plan.Confidence)
		}
	}
}

func TestRoutePlanToolsAreCopied(t *testing.T) {
	e := newTestEngine()

	first := e.Route(Request{OverrideAgentId: AgentValuation})
	if len(first.Tools) == 0 {
		t.Fatal("expected tools on valuation plan")
	}
	first.Tools[0] = "mutated"

	second := e.Route(Request{OverrideAgentId: AgentValuation})
	if second.Tools[0] == "mutated" {
		t.Error("plan tools share backing array with the roster")
	}
}

func TestRouteLatencyBudget(t *testing.T) {
	e := newTestEngine()

	messages := []string{
		"what is my company worth at series a?",
		"@fin rebuild the scenario model",
		"how big is the market for this?",
		"polish the pitch narrative for investors",
		"hello there",
	}

	var totalMs float64
	for i := 0; i < 100; i++ {
		for _, m := range messages {
			plan := e.Route(Request{Message: m, Stage: StageSeed})
			totalMs += plan.ElapsedMs
		}
	}

	// 500 sequential routing calls must finish well under 20s total,
	// routing is pure in-memory table work.
	if totalMs >= 20000 {
		t.Errorf("500 routing calls took %.1fms total", totalMs)
	}
}
