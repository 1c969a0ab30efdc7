package models

import (
	"time"

	"github.com/google/uuid"
)

// CostCategory is a canonical taxonomy entry. Names are matched
// case-insensitively by the resolver; no two active categories may have
// names differing only by case.
type CostCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"index" json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sortOrder"`
	IsActive    bool      `gorm:"index" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
