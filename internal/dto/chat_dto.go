package dto

import (
	"time"

	"github.com/google/uuid"

	"venture-advisory-be/pkg/evidence"
	"venture-advisory-be/pkg/retrieval"
)

type CreateSessionRequest struct {
	VentureId uuid.UUID `json:"venture_id" validate:"required"`
	Title     string    `json:"title"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	VentureId uuid.UUID  `json:"venture_id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id         uuid.UUID     `json:"id"`
	Role       string        `json:"role"`
	Chat       string        `json:"chat"`
	AgentId    string        `json:"agent_id,omitempty"`
	Confidence float64       `json:"confidence,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	Citations  []CitationDTO `json:"citations,omitempty"`
}

type CitationDTO struct {
	PassageId  uuid.UUID `json:"passage_id"`
	DocumentId uuid.UUID `json:"document_id"`
	Score      float64   `json:"score"`
}

type SendChatRequest struct {
	ChatSessionId   uuid.UUID `json:"chat_session_id" validate:"required"`
	Chat            string    `json:"chat" validate:"required"`
	OverrideAgentId string    `json:"override_agent_id,omitempty"`
}

// RoutingPlanDTO mirrors the routing engine's decision on the wire so the
// frontend can show which agent answers and why.
type RoutingPlanDTO struct {
	AgentId          string   `json:"agent_id"`
	ModelProfile     string   `json:"model_profile"`
	Tools            []string `json:"tools"`
	ProducesArtifact bool     `json:"produces_artifact"`
	FallbackAgentId  string   `json:"fallback_agent_id"`
	Confidence       float64  `json:"confidence"`
	Reasoning        string   `json:"reasoning"`
	ElapsedMs        float64  `json:"elapsed_ms"`
}

type PassageDTO struct {
	PassageId       uuid.UUID `json:"passage_id"`
	DocumentId      uuid.UUID `json:"document_id"`
	Content         string    `json:"content"`
	Similarity      float64   `json:"similarity"`
	FreshnessWeight float64   `json:"freshness_weight"`
	FinalScore      float64   `json:"final_score"`
}

type EvidenceDTO struct {
	Passages  []PassageDTO         `json:"passages"`
	Entities  []KnowledgeEntityDTO `json:"entities"`
	Citations []CitationDTO        `json:"citations"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID      `json:"chat_session_id"`
	MessageId     uuid.UUID      `json:"message_id"`
	Plan          RoutingPlanDTO `json:"plan"`
	Evidence      EvidenceDTO    `json:"evidence"`
	CreatedAt     time.Time      `json:"created_at"`
}

func PassagesToDTO(passages []retrieval.ScoredPassage) []PassageDTO {
	out := make([]PassageDTO, len(passages))
	for i, p := range passages {
		out[i] = PassageDTO{
			PassageId:       p.PassageId,
			DocumentId:      p.DocumentId,
			Content:         p.Content,
			Similarity:      p.Similarity,
			FreshnessWeight: p.FreshnessWeight,
			FinalScore:      p.FinalScore,
		}
	}
	return out
}

func CitationsToDTO(citations []evidence.Citation) []CitationDTO {
	out := make([]CitationDTO, len(citations))
	for i, c := range citations {
		out[i] = CitationDTO{
			PassageId:  c.PassageId,
			DocumentId: c.DocumentId,
			Score:      c.Score,
		}
	}
	return out
}
