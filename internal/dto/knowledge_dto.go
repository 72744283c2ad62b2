package dto

import (
	"time"

	"github.com/google/uuid"

	"venture-advisory-be/internal/entity"
)

type KnowledgeEntityDTO struct {
	Id            uuid.UUID              `json:"id"`
	EntityType    string                 `json:"entity_type"`
	Attributes    map[string]interface{} `json:"attributes"`
	Confidence    float64                `json:"confidence"`
	Status        string                 `json:"status"`
	EvidenceCount int                    `json:"evidence_count"`
	CreatedAt     time.Time              `json:"created_at"`
}

type KnowledgeSnapshotResponse struct {
	VentureId   uuid.UUID            `json:"venture_id"`
	EntityCount int                  `json:"entity_count"`
	Entities    []KnowledgeEntityDTO `json:"entities"`
	Cached      bool                 `json:"cached"`
	FetchedAt   time.Time            `json:"fetched_at"`
}

func KnowledgeEntitiesToDTO(entities []*entity.KnowledgeEntity) []KnowledgeEntityDTO {
	out := make([]KnowledgeEntityDTO, len(entities))
	for i, e := range entities {
		out[i] = KnowledgeEntityDTO{
			Id:            e.Id,
			EntityType:    e.EntityType,
			Attributes:    e.Attributes,
			Confidence:    e.Confidence,
			Status:        e.Status,
			EvidenceCount: e.EvidenceCount,
			CreatedAt:     e.CreatedAt,
		}
	}
	return out
}
