// Package testutil provides shared test helpers: an in-memory database
// with migrations applied and seed helpers for the ledger models.
package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"project-finance-backend/internal/models"
)

// NewDB opens a fresh in-memory SQLite database and migrates the full
// schema. Each test gets its own database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A single in-memory SQLite database lives on a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Project{},
		&models.SourceDocument{},
		&models.Cost{},
		&models.CostCategory{},
		&models.ExtractionRecord{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

// SeedProject inserts a project with the given actual revenue (nil for
// unset) and returns it.
func SeedProject(t *testing.T, db *gorm.DB, actualRevenue *float64) *models.Project {
	t.Helper()

	project := &models.Project{
		ID:            uuid.New(),
		Name:          "Spring Campaign",
		ClientName:    "Acme GmbH",
		ActualRevenue: actualRevenue,
		CreatedAt:     time.Now(),
	}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return project
}

// SeedDocument inserts a source document in the given kind and status.
func SeedDocument(t *testing.T, db *gorm.DB, projectID uuid.UUID, kind, status string) *models.SourceDocument {
	t.Helper()

	doc := &models.SourceDocument{
		ID:             uuid.New(),
		ProjectID:      projectID,
		Filename:       "scan-0001.pdf",
		Kind:           kind,
		AnalysisStatus: status,
		CreatedAt:      time.Now(),
	}
	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to seed document: %v", err)
	}
	return doc
}

// SeedCategory inserts a cost category.
func SeedCategory(t *testing.T, db *gorm.DB, name string, sortOrder int, active bool) *models.CostCategory {
	t.Helper()

	cat := &models.CostCategory{
		ID:        uuid.New(),
		Name:      name,
		SortOrder: sortOrder,
		IsActive:  active,
		CreatedAt: time.Now(),
	}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return cat
}
