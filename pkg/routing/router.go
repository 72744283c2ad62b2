package routing

import (
	"fmt"
	"time"
)

// Request carries everything the cascade may consult for one chat turn.
type Request struct {
	Message               string
	Stage                 Stage
	OverrideAgentId       string // explicit agent choice from the caller
	ActiveArtifactAgentId string // agent owning the artifact under discussion
}

// Plan is the routing decision for one chat turn. Produced fresh per call
// and never persisted by the engine.
type Plan struct {
	AgentId          string
	ModelProfile     string
	Tools            []string
	ProducesArtifact bool
	FallbackAgentId  string
	Confidence       float64
	Reasoning        string
	ElapsedMs        float64
}

// Engine selects the responding agent through a five-tier cascade:
// explicit override, explicit mention, artifact continuation, stage
// override, then keyword classification. The first matching tier wins.
// Purely computational, no I/O, stateless across calls; a single instance
// serves arbitrarily many concurrent requests.
type Engine struct {
	registry *Registry
}

func NewEngine(registry *Registry) *Engine {
	return &Engine{
		registry: registry,
	}
}

// Route never fails: unroutable input falls through every tier to the
// general advisor with low confidence. ElapsedMs covers only the engine's
// own processing time.
func (e *Engine) Route(req Request) *Plan {
	start := time.Now()
	plan := e.route(req)
	plan.ElapsedMs = float64(time.Since(start).Nanoseconds()) / 1e6
	return plan
}

func (e *Engine) route(req Request) *Plan {
	// Tier 1: explicit override. An unknown id is treated as no override.
	if req.OverrideAgentId != "" {
		if agent, ok := e.registry.Get(req.OverrideAgentId); ok {
			return e.planFor(agent, agent.DefaultProfile, 1.0, "explicit override")
		}
	}

	// Tier 2: explicit mention. An unresolvable alias token is not a
	// match; it must never be selected literally.
	parsed := ParseMention(req.Message)
	if parsed.Mention != "" {
		if id, ok := e.registry.ResolveAlias(parsed.Mention); ok {
			agent, _ := e.registry.Get(id)
			return e.planFor(agent, agent.DefaultProfile, 1.0, fmt.Sprintf("explicit mention @%s", parsed.Mention))
		}
	}

	// Tier 3: artifact continuation.
	if req.ActiveArtifactAgentId != "" {
		if agent, ok := e.registry.Get(req.ActiveArtifactAgentId); ok {
			return e.planFor(agent, agent.DefaultProfile, 0.95, "artifact continuation")
		}
	}

	// Tiers 4 and 5 both start from the classification. The mention-free
	// prompt is classified so a stray unresolvable token does not skew it.
	cls := classify(parsed.CleanPrompt)

	// Tier 4: stage override.
	if byStage, ok := stageOverrides[cls.Intent]; ok {
		if agentId, ok := byStage[req.Stage]; ok {
			if agent, ok := e.registry.Get(agentId); ok {
				reasoning := fmt.Sprintf("stage override: %s intent at stage %s routes to %s", cls.Intent, req.Stage, agent.Id)
				return e.planFor(agent, intentProfiles[cls.Intent], cls.Confidence, reasoning)
			}
		}
	}

	// Tier 5: classifier fallback.
	agent, ok := e.registry.Get(intentAgents[cls.Intent])
	if !ok {
		// Roster misconfiguration. Still no error: route to the general
		// advisor at rock-bottom confidence.
		agent, _ = e.registry.Get(AgentGeneralAdvisor)
		cls.Confidence = 0.1
	}
	return e.planFor(agent, intentProfiles[cls.Intent], cls.Confidence, cls.Reasoning)
}

func (e *Engine) planFor(agent Agent, profile string, confidence float64, reasoning string) *Plan {
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	tools := make([]string, len(agent.Tools))
	copy(tools, agent.Tools)
	return &Plan{
		AgentId:          agent.Id,
		ModelProfile:     profile,
		Tools:            tools,
		ProducesArtifact: agent.ProducesArtifact,
		FallbackAgentId:  AgentGeneralAdvisor,
		Confidence:       confidence,
		Reasoning:        reasoning,
	}
}
