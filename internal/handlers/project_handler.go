package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"project-finance-backend/internal/extraction"
	"project-finance-backend/internal/models"
	"project-finance-backend/internal/repository"
)

type ProjectHandler struct {
	projects   *repository.ProjectRepository
	documents  *repository.SourceDocumentRepository
	costs      *repository.CostRepository
	categories *repository.CostCategoryRepository
	results    *extraction.DBStore
}

func NewProjectHandler(
	projects *repository.ProjectRepository,
	documents *repository.SourceDocumentRepository,
	costs *repository.CostRepository,
	categories *repository.CostCategoryRepository,
	results *extraction.DBStore,
) *ProjectHandler {
	return &ProjectHandler{
		projects:   projects,
		documents:  documents,
		costs:      costs,
		categories: categories,
		results:    results,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload struct {
		Name             string   `json:"name"`
		ClientName       string   `json:"clientName"`
		EstimatedRevenue *float64 `json:"estimatedRevenue"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if payload.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project name required"})
		return
	}

	project := &models.Project{
		ID:               uuid.New(),
		Name:             payload.Name,
		ClientName:       payload.ClientName,
		EstimatedRevenue: payload.EstimatedRevenue,
		CreatedAt:        time.Now(),
	}
	if err := h.projects.Create(project); err != nil {
		log.Println("create project failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	project, err := h.projects.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *ProjectHandler) ListProjectCosts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	costs, err := h.costs.ListByProject(id)
	if err != nil {
		log.Println("list costs failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list costs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"costs": costs})
}

// RegisterDocument records metadata for an uploaded financial document.
// File storage itself lives elsewhere; this row is what the import pipeline
// tracks status against.
func (h *ProjectHandler) RegisterDocument(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var payload struct {
		Filename string `json:"filename"`
		Kind     string `json:"kind"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	switch payload.Kind {
	case models.DocumentKindReceipt, models.DocumentKindInvoice,
		models.DocumentKindContract, models.DocumentKindOther:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document kind"})
		return
	}

	doc := &models.SourceDocument{
		ID:             uuid.New(),
		ProjectID:      projectID,
		Filename:       payload.Filename,
		Kind:           payload.Kind,
		AnalysisStatus: models.AnalysisPending,
		CreatedAt:      time.Now(),
	}
	if err := h.documents.Create(doc); err != nil {
		log.Println("register document failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// SubmitExtraction is the collaborator-facing endpoint the external
// analyzer posts its result to. The payload is validated here (type tag and
// confidence grade) and stored raw.
func (h *ProjectHandler) SubmitExtraction(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}
	documentID, err := uuid.Parse(c.Param("documentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read payload"})
		return
	}
	if _, err := extraction.Decode(raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.results.Save(projectID, documentID, raw); err != nil {
		log.Println("save extraction result failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store extraction result"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stored": true})
}

func (h *ProjectHandler) ListCategories(c *gin.Context) {
	cats, err := h.categories.GetActive()
	if err != nil {
		log.Println("list categories failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}
