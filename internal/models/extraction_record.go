package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExtractionRecord holds the raw payload the external document analyzer
// produced for one source document. The import pipeline only reads these;
// the analyzer (or its webhook) writes them.
type ExtractionRecord struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID  uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_extraction_doc" json:"projectId"`
	DocumentID uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_extraction_doc" json:"documentId"`
	Payload    datatypes.JSON `json:"payload"`
	CreatedAt  time.Time      `json:"createdAt"`
}
