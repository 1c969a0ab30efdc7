package models

import (
	"time"

	"github.com/google/uuid"
)

type Cost struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:uuid;index" json:"projectId"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index" json:"categoryId"`
	Description string    `json:"description"`
	Amount      float64   `gorm:"index" json:"amount"`
	Quantity    *float64  `json:"quantity"`
	UnitPrice   *float64  `json:"unitPrice"`
	CostDate    time.Time `json:"costDate"`
	// MachineImported marks entries created by the import pipeline rather
	// than direct human entry. Never updated after creation.
	MachineImported bool      `json:"machineImported"`
	CreatedAt       time.Time `json:"createdAt"`
}
