package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name             string    `gorm:"index" json:"name"`
	ClientName       string    `json:"clientName"`
	ActualRevenue    *float64  `json:"actualRevenue"`
	EstimatedRevenue *float64  `json:"estimatedRevenue"`
	CreatedAt        time.Time `json:"createdAt"`
}
