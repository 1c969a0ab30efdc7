package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project-finance-backend/internal/models"
)

type SourceDocumentRepository struct {
	db *gorm.DB
}

func NewSourceDocumentRepository(db *gorm.DB) *SourceDocumentRepository {
	return &SourceDocumentRepository{db: db}
}

func (r *SourceDocumentRepository) GetByID(id uuid.UUID) (*models.SourceDocument, error) {
	var doc models.SourceDocument
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *SourceDocumentRepository) Create(doc *models.SourceDocument) error {
	return r.db.Create(doc).Error
}

// MarkAnalyzed transitions PENDING -> ANALYZED. The conditional update
// makes the transition a compare-and-set: false means the document was
// already past PENDING and nothing changed.
func (r *SourceDocumentRepository) MarkAnalyzed(id uuid.UUID) (bool, error) {
	res := r.db.Model(&models.SourceDocument{}).
		Where("id = ? AND analysis_status = ?", id, models.AnalysisPending).
		Updates(map[string]interface{}{
			"analysis_status": models.AnalysisAnalyzed,
			"analyzed_at":     time.Now(),
		})
	return res.RowsAffected == 1, res.Error
}

// MarkImported transitions PENDING or ANALYZED -> IMPORTED. Both importers
// must win this compare-and-set before touching the ledger; a concurrent
// import that lost the race sees false and aborts.
func (r *SourceDocumentRepository) MarkImported(id uuid.UUID) (bool, error) {
	res := r.db.Model(&models.SourceDocument{}).
		Where("id = ? AND analysis_status IN ?", id,
			[]string{models.AnalysisPending, models.AnalysisAnalyzed}).
		Updates(map[string]interface{}{
			"analysis_status": models.AnalysisImported,
			"analyzed_at":     time.Now(),
		})
	return res.RowsAffected == 1, res.Error
}
