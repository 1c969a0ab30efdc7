package importer

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/models"
	"project-finance-backend/internal/repository"
)

type CuratedItem struct {
	Description       string   `json:"description"`
	Amount            float64  `json:"amount"`
	Quantity          *float64 `json:"quantity"`
	UnitPrice         *float64 `json:"unitPrice"`
	CategoryID        string   `json:"categoryId"`
	SuggestedCategory string   `json:"suggestedCategory"`
	Include           bool     `json:"include"`
}

type CuratedExtractionRef struct {
	DocumentID  uuid.UUID  `json:"documentId"`
	ReceiptDate *time.Time `json:"receiptDate"`
}

type CuratedImportRequest struct {
	ProjectID  uuid.UUID            `json:"projectId"`
	Extraction CuratedExtractionRef `json:"extraction"`
	Items      []CuratedItem        `json:"items"`
}

type CuratedImportResponse struct {
	Success           bool                   `json:"success"`
	CostsCreated      int                    `json:"costsCreated"`
	Costs             []models.Cost          `json:"costs"`
	CategoriesCreated []models.CostCategory  `json:"categoriesCreated"`
	Document          *models.SourceDocument `json:"document"`
}

// CuratedImport commits the line items a human selected from a receipt
// extraction. Validation failures leave the ledger untouched; once
// processing starts, the costs, any new categories, and the document status
// transition commit or roll back together.
func (s *ImportService) CuratedImport(req CuratedImportRequest) (*CuratedImportResponse, error) {
	if _, err := s.projects.GetByID(req.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: "Project not found"}
		}
		return nil, err
	}

	doc, err := s.documents.GetByID(req.Extraction.DocumentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Msg: "Document not found"}
		}
		return nil, err
	}
	if doc.ProjectID != req.ProjectID {
		return nil, &NotFoundError{Msg: "Document not found"}
	}
	if doc.Kind != models.DocumentKindReceipt {
		return nil, &ValidationError{Msg: "Document is not a receipt"}
	}
	if doc.AnalysisStatus == models.AnalysisImported {
		return nil, ErrAlreadyImported
	}

	included := 0
	for _, item := range req.Items {
		if item.Include {
			included++
		}
	}
	if included == 0 {
		return nil, ErrNoItemsSelected
	}

	costDate := time.Now()
	if req.Extraction.ReceiptDate != nil {
		costDate = *req.Extraction.ReceiptDate
	}

	var created []models.Cost
	var newCategories []models.CostCategory

	err = s.db.Transaction(func(tx *gorm.DB) error {
		documents := repository.NewSourceDocumentRepository(tx)
		ok, err := documents.MarkImported(req.Extraction.DocumentID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyImported
		}

		resolver := newCategoryResolver(repository.NewCostCategoryRepository(tx))
		costs := repository.NewCostRepository(tx)

		for i, item := range req.Items {
			if !item.Include {
				continue
			}

			categoryID, err := resolver.Resolve(item.CategoryID, item.SuggestedCategory)
			if err != nil {
				return &ItemError{Index: i, Err: err}
			}

			cost := models.Cost{
				ID:              uuid.New(),
				ProjectID:       req.ProjectID,
				CategoryID:      categoryID,
				Description:     item.Description,
				Amount:          item.Amount,
				Quantity:        item.Quantity,
				UnitPrice:       item.UnitPrice,
				CostDate:        costDate,
				MachineImported: true,
				CreatedAt:       time.Now(),
			}
			if err := costs.Create(&cost); err != nil {
				return &ItemError{Index: i, Err: err}
			}
			created = append(created, cost)
		}

		newCategories = resolver.Created()
		return nil
	})
	if err != nil {
		return nil, err
	}

	doc, err = s.documents.GetByID(req.Extraction.DocumentID)
	if err != nil {
		return nil, err
	}

	if newCategories == nil {
		newCategories = []models.CostCategory{}
	}
	return &CuratedImportResponse{
		Success:           true,
		CostsCreated:      len(created),
		Costs:             created,
		CategoriesCreated: newCategories,
		Document:          doc,
	}, nil
}
