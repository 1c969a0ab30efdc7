package models

import (
	"time"

	"github.com/google/uuid"
)

// Document kinds. Only RECEIPT documents are eligible for the receipt
// import path.
const (
	DocumentKindReceipt  = "RECEIPT"
	DocumentKindInvoice  = "INVOICE"
	DocumentKindContract = "CONTRACT"
	DocumentKindOther    = "OTHER"
)

// Analysis status lifecycle: PENDING -> ANALYZED (needs human review) or
// PENDING -> IMPORTED (committed unattended) or ANALYZED -> IMPORTED
// (curation completed). IMPORTED is terminal.
const (
	AnalysisPending  = "PENDING"
	AnalysisAnalyzed = "ANALYZED"
	AnalysisImported = "IMPORTED"
)

type SourceDocument struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID      uuid.UUID  `gorm:"type:uuid;index" json:"projectId"`
	Filename       string     `json:"filename"`
	Kind           string     `gorm:"index" json:"kind"`
	AnalysisStatus string     `gorm:"index" json:"analysisStatus"`
	AnalyzedAt     *time.Time `json:"analyzedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
}
