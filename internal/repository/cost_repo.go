package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/models"
)

type CostRepository struct {
	db *gorm.DB
}

func NewCostRepository(db *gorm.DB) *CostRepository {
	return &CostRepository{db: db}
}

func (r *CostRepository) Create(cost *models.Cost) error {
	return r.db.Create(cost).Error
}

// ListByProject returns a project's cost entries, newest first.
func (r *CostRepository) ListByProject(projectID uuid.UUID) ([]models.Cost, error) {
	var costs []models.Cost
	err := r.db.Where("project_id = ?", projectID).
		Order("cost_date DESC").
		Find(&costs).Error
	return costs, err
}
