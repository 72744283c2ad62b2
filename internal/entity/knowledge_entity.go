package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntity is a structured fact in the venture knowledge graph.
// Owned and mutated by the knowledge extraction pipeline; the retrieval
// core only reads these.
type KnowledgeEntity struct {
	Id            uuid.UUID
	VentureId     uuid.UUID
	EntityType    string
	Attributes    map[string]interface{}
	Confidence    float64
	Status        string
	EvidenceCount int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
