package importer

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/extraction"
	"project-finance-backend/internal/models"
	"project-finance-backend/internal/repository"
)

// AutoImportResult actions.
const (
	ActionImported    = "imported"
	ActionNeedsReview = "needs_review"
	ActionSkipped     = "skipped"
	ActionError       = "error"
)

type AutoImportResult struct {
	Action       string   `json:"action"`
	Confidence   string   `json:"confidence,omitempty"`
	Type         string   `json:"type,omitempty"`
	Message      string   `json:"message,omitempty"`
	CostsCreated int      `json:"costsCreated,omitempty"`
	TotalAmount  float64  `json:"totalAmount,omitempty"`
	RevenueSet   *float64 `json:"revenueSet,omitempty"`
}

type ImportService struct {
	db        *gorm.DB
	projects  *repository.ProjectRepository
	documents *repository.SourceDocumentRepository
	results   extraction.Store
}

func NewImportService(
	db *gorm.DB,
	projects *repository.ProjectRepository,
	documents *repository.SourceDocumentRepository,
	results extraction.Store,
) *ImportService {
	return &ImportService{
		db:        db,
		projects:  projects,
		documents: documents,
		results:   results,
	}
}

func (s *ImportService) DB() *gorm.DB {
	return s.db
}

// AutoImport is the entry point the background trigger calls once the
// analyzer has produced a result. HIGH-confidence extractions are committed
// unattended; everything else is flagged for human review. Failures never
// escape this boundary: the trigger is not expected to retry, so errors are
// logged and reported generically.
func (s *ImportService) AutoImport(projectID, documentID uuid.UUID) AutoImportResult {
	res, err := s.results.Get(projectID, documentID)
	if err != nil {
		log.Println("auto import: failed to load extraction result:", err)
		return AutoImportResult{Action: ActionError, Message: "Failed to load extraction result"}
	}
	if res == nil {
		return AutoImportResult{Action: ActionSkipped, Message: "No extraction result available"}
	}

	out := AutoImportResult{Confidence: res.Confidence, Type: res.Type}

	if res.Confidence != extraction.ConfidenceHigh {
		if _, err := s.documents.MarkAnalyzed(documentID); err != nil {
			log.Println("auto import: failed to flag document for review:", err)
			out.Action = ActionError
			out.Message = "Import failed"
			return out
		}
		out.Action = ActionNeedsReview
		out.Message = "Confidence below threshold, document flagged for review"
		return out
	}

	switch res.Type {
	case extraction.TypeInvoice:
		revenue, err := s.importInvoice(projectID, documentID, res.Invoice)
		if err != nil {
			return s.autoImportError(out, err)
		}
		out.Action = ActionImported
		out.RevenueSet = &revenue
	case extraction.TypeReceipt:
		costs, total, err := s.importReceipt(projectID, documentID, res)
		if err != nil {
			return s.autoImportError(out, err)
		}
		out.Action = ActionImported
		out.CostsCreated = len(costs)
		out.TotalAmount = total
	default:
		out.Action = ActionError
		out.Message = "Unrecognized extraction type"
	}
	return out
}

func (s *ImportService) autoImportError(out AutoImportResult, err error) AutoImportResult {
	if errors.Is(err, ErrAlreadyImported) {
		out.Action = ActionSkipped
		out.Message = ErrAlreadyImported.Msg
		return out
	}
	log.Println("auto import: failed:", err)
	out.Action = ActionError
	out.Message = "Import failed"
	return out
}

// importInvoice overwrites the project's actual revenue with the extracted
// total. Revenue is replaced, never summed: one invoice is the source of
// truth for the project's realized figure.
func (s *ImportService) importInvoice(projectID, documentID uuid.UUID, inv *extraction.InvoiceData) (float64, error) {
	if inv == nil || inv.Total == nil {
		return 0, ErrNoInvoiceTotal
	}
	total := *inv.Total

	err := s.db.Transaction(func(tx *gorm.DB) error {
		documents := repository.NewSourceDocumentRepository(tx)
		ok, err := documents.MarkImported(documentID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyImported
		}
		return repository.NewProjectRepository(tx).SetActualRevenue(projectID, total)
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// importReceipt turns every extracted receipt item into a Cost entry. The
// whole batch, including any categories the resolver creates and the status
// transition, commits or rolls back as one transaction.
func (s *ImportService) importReceipt(projectID, documentID uuid.UUID, res *extraction.Result) ([]models.Cost, float64, error) {
	if res.Receipt == nil || len(res.Receipt.Items) == 0 {
		return nil, 0, ErrNoReceiptItems
	}

	costDate := time.Now()
	if res.ReceiptDate != nil {
		costDate = *res.ReceiptDate
	}

	var created []models.Cost
	var total float64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		documents := repository.NewSourceDocumentRepository(tx)
		ok, err := documents.MarkImported(documentID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyImported
		}

		resolver := newCategoryResolver(repository.NewCostCategoryRepository(tx))
		costs := repository.NewCostRepository(tx)

		for i, item := range res.Receipt.Items {
			var categoryID uuid.UUID
			if normalizeCategoryName(item.SuggestedCategory) == "" {
				categoryID, err = resolver.ResolveFallback()
			} else {
				categoryID, err = resolver.Resolve("", item.SuggestedCategory)
			}
			if err != nil {
				return &ItemError{Index: i, Err: err}
			}

			cost := models.Cost{
				ID:              uuid.New(),
				ProjectID:       projectID,
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
			total += cost.Amount
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return created, total, nil
}
