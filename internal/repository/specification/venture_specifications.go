package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByVentureID scopes a query to a single venture. Every retrieval query
// must carry this; the stores are shared across all ventures.
type ByVentureID struct {
	VentureID uuid.UUID
}

func (s ByVentureID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("venture_id = ?", s.VentureID)
}

// ByEntityTypes filters knowledge entities by type
type ByEntityTypes struct {
	Types []string
}

func (s ByEntityTypes) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Types) == 0 {
		return db
	}
	return db.Where("entity_type IN ?", s.Types)
}

// ByStatus filters by record status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
