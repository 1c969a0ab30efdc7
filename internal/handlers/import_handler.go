package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	importer "project-finance-backend/internal/services/importer"
)

type ImportHandler struct {
	service *importer.ImportService
}

func NewImportHandler(s *importer.ImportService) *ImportHandler {
	return &ImportHandler{service: s}
}

// CuratedImport handles the human-reviewed import of extracted receipt
// items. Authorization happens upstream; by the time a request lands here
// the caller is editor-or-above.
func (h *ImportHandler) CuratedImport(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("projectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
		return
	}

	var req importer.CuratedImportRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if req.ProjectID != uuid.Nil && req.ProjectID != projectID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID mismatch"})
		return
	}
	req.ProjectID = projectID

	resp, err := h.service.CuratedImport(req)
	if err != nil {
		h.writeImportError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ImportHandler) writeImportError(c *gin.Context, err error) {
	var itemErr *importer.ItemError
	if errors.As(err, &itemErr) {
		var vErr *importer.ValidationError
		if errors.As(itemErr.Err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Msg, "item": itemErr.Index})
			return
		}
		log.Println("curated import: item failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed", "item": itemErr.Index})
		return
	}

	if errors.Is(err, importer.ErrAlreadyImported) {
		c.JSON(http.StatusConflict, gin.H{"error": importer.ErrAlreadyImported.Msg})
		return
	}

	var notFound *importer.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Msg})
		return
	}

	var validation *importer.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg})
		return
	}

	log.Println("curated import: unexpected failure:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
}

// AutoImport is the trigger endpoint the analysis pipeline hits after an
// extraction result lands. The result is always 200: the action field says
// what happened.
func (h *ImportHandler) AutoImport(c *gin.Context) {
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

	result := h.service.AutoImport(projectID, documentID)
	c.JSON(http.StatusOK, result)
}
