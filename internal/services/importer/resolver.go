package importer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/models"
	"project-finance-backend/internal/repository"
)

const (
	createdCategoryNote = "Created automatically during receipt import"
	fallbackCategory    = "Other"
	fallbackNote        = "Uncategorized imported costs"
)

// categoryResolver maps a free-text category suggestion (or an explicit
// category id) to a canonical CostCategory, creating one when nothing
// matches. The cache lives for one import batch, so repeated suggestions
// that differ only by case resolve to a single category.
//
// Name matching happens in application logic: the store gives us no
// case-insensitive equality query, so the resolver loads the active set and
// compares folded names itself.
type categoryResolver struct {
	categories *repository.CostCategoryRepository
	cache      map[string]uuid.UUID
	created    []models.CostCategory
}

func newCategoryResolver(categories *repository.CostCategoryRepository) *categoryResolver {
	return &categoryResolver{
		categories: categories,
		cache:      make(map[string]uuid.UUID),
	}
}

func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Resolve returns the category id for one cost item. An explicit id is
// authoritative: it is validated against the store (existing and active)
// every time, never against the batch cache, and skips name resolution
// entirely.
func (r *categoryResolver) Resolve(explicitID, suggested string) (uuid.UUID, error) {
	if explicitID != "" {
		id, err := uuid.Parse(explicitID)
		if err != nil {
			return uuid.Nil, errInvalidCategory(explicitID)
		}
		cat, err := r.categories.GetByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, errInvalidCategory(explicitID)
		}
		if err != nil {
			return uuid.Nil, err
		}
		if !cat.IsActive {
			return uuid.Nil, errInvalidCategory(explicitID)
		}
		return cat.ID, nil
	}

	normalized := normalizeCategoryName(suggested)
	if normalized == "" {
		return uuid.Nil, ErrMissingCategory
	}

	if id, ok := r.cache[normalized]; ok {
		return id, nil
	}

	active, err := r.categories.GetActive()
	if err != nil {
		return uuid.Nil, err
	}
	for _, cat := range active {
		if normalizeCategoryName(cat.Name) == normalized {
			r.cache[normalized] = cat.ID
			return cat.ID, nil
		}
	}

	return r.create(strings.TrimSpace(suggested), createdCategoryNote)
}

// ResolveFallback returns the well-known "Other" category, creating it on
// first use. The automatic receipt path uses it for items that carry
// neither an explicit id nor a suggestion.
func (r *categoryResolver) ResolveFallback() (uuid.UUID, error) {
	normalized := normalizeCategoryName(fallbackCategory)
	if id, ok := r.cache[normalized]; ok {
		return id, nil
	}

	active, err := r.categories.GetActive()
	if err != nil {
		return uuid.Nil, err
	}
	for _, cat := range active {
		if normalizeCategoryName(cat.Name) == normalized {
			r.cache[normalized] = cat.ID
			return cat.ID, nil
		}
	}

	return r.create(fallbackCategory, fallbackNote)
}

func (r *categoryResolver) create(name, description string) (uuid.UUID, error) {
	max, err := r.categories.MaxSortOrder()
	if err != nil {
		return uuid.Nil, err
	}

	cat := models.CostCategory{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		SortOrder:   max + 1,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := r.categories.Create(&cat); err != nil {
		return uuid.Nil, err
	}

	r.cache[normalizeCategoryName(name)] = cat.ID
	r.created = append(r.created, cat)
	return cat.ID, nil
}

// Created lists the categories this batch added, for the response payload.
func (r *categoryResolver) Created() []models.CostCategory {
	return r.created
}
