package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"project-finance-backend/internal/extraction"
	handler "project-finance-backend/internal/handlers"
	"project-finance-backend/internal/repository"
	importer "project-finance-backend/internal/services/importer"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	projectRepo := repository.NewProjectRepository(db)
	documentRepo := repository.NewSourceDocumentRepository(db)
	costRepo := repository.NewCostRepository(db)
	categoryRepo := repository.NewCostCategoryRepository(db)
	resultStore := extraction.NewDBStore(db)

	importService := importer.NewImportService(db, projectRepo, documentRepo, resultStore)

	importHandler := handler.NewImportHandler(importService)
	projectHandler := handler.NewProjectHandler(projectRepo, documentRepo, costRepo, categoryRepo, resultStore)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Project + ledger routes
	projects := api.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("/:projectId", projectHandler.GetProject)
	projects.GET("/:projectId/costs", projectHandler.ListProjectCosts)
	projects.POST("/:projectId/documents", projectHandler.RegisterDocument)

	// Import pipeline routes
	projects.POST("/:projectId/import", importHandler.CuratedImport)
	projects.POST("/:projectId/documents/:documentId/extraction", projectHandler.SubmitExtraction)
	projects.POST("/:projectId/documents/:documentId/auto-import", importHandler.AutoImport)

	// Taxonomy routes
	api.GET("/categories", projectHandler.ListCategories)
}
