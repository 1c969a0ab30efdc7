package extraction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"project-finance-backend/internal/models"
)

// Store is where the analyzer's results are kept, keyed by project and
// document. Get returns (nil, nil) when no result exists.
type Store interface {
	Get(projectID, documentID uuid.UUID) (*Result, error)
}

// DBStore reads raw analyzer payloads out of the extraction_records table
// and decodes them on the way out.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Get(projectID, documentID uuid.UUID) (*Result, error) {
	var rec models.ExtractionRecord
	err := s.db.First(&rec, "project_id = ? AND document_id = ?", projectID, documentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(rec.Payload)
}

// Save upserts the analyzer payload for a document. A re-analysis replaces
// the previous result.
func (s *DBStore) Save(projectID, documentID uuid.UUID, raw []byte) error {
	rec := models.ExtractionRecord{
		ID:         uuid.New(),
		ProjectID:  projectID,
		DocumentID: documentID,
		Payload:    datatypes.JSON(raw),
		CreatedAt:  time.Now(),
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "document_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "created_at"}),
	}).Create(&rec).Error
}
