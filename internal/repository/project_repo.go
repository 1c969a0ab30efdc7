package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Expose DB if needed
func (r *ProjectRepository) DB() *gorm.DB {
	return r.db
}

func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(p *models.Project) error {
	return r.db.Create(p).Error
}

// SetActualRevenue overwrites the project's actual revenue. The invoice
// import path is the only writer of this column.
func (r *ProjectRepository) SetActualRevenue(id uuid.UUID, amount float64) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", id).
		Update("actual_revenue", amount).
		Error
}
