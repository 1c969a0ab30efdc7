package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/models"
)

type CostCategoryRepository struct {
	db *gorm.DB
}

func NewCostCategoryRepository(db *gorm.DB) *CostCategoryRepository {
	return &CostCategoryRepository{db: db}
}

func (r *CostCategoryRepository) GetByID(id uuid.UUID) (*models.CostCategory, error) {
	var cat models.CostCategory
	if err := r.db.First(&cat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetActive returns all active categories ordered by sort order.
func (r *CostCategoryRepository) GetActive() ([]models.CostCategory, error) {
	var cats []models.CostCategory
	err := r.db.Where("is_active = ?", true).Order("sort_order ASC").Find(&cats).Error
	return cats, err
}

// MaxSortOrder returns the highest sort order across all categories,
// 0 when the table is empty.
func (r *CostCategoryRepository) MaxSortOrder() (int, error) {
	var max int
	err := r.db.Model(&models.CostCategory{}).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&max).Error
	return max, err
}

func (r *CostCategoryRepository) Create(cat *models.CostCategory) error {
	return r.db.Create(cat).Error
}
