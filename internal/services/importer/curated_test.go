package importer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project-finance-backend/internal/models"
	"project-finance-backend/internal/testutil"
)

func TestCuratedImportCreatesSelectedCosts(t *testing.T) {
	db := testutil.NewDB(t)
	project := testutil.SeedProject(t, db, nil)
	doc := testutil.SeedDocument(t, db, project.ID, models.DocumentKindReceipt, models.AnalysisAnalyzed)

	resp, err := newTestService(db).CuratedImport(CuratedImportRequest{
		ProjectID:  project.ID,
		Extraction: CuratedExtractionRef{DocumentID: doc.ID},
		Items: []CuratedItem{
			{Description: "Printing", Amount: 120, SuggestedCategory: "Printing", Include: true},
			{Description: "Banner", Amount: 300, SuggestedCategory: "printing", Include: true},
			{Description: "Snacks", Amount: 55, SuggestedCategory: "Catering", Include: false},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.CostsCreated)
	require.Len(t, resp.Costs, 2)
	require.Len(t, resp.CategoriesCreated, 1)
	assert.Equal(t, "Printing", resp.CategoriesCreated[0].Name)
	assert.Equal(t, models.AnalysisImported, resp.Document.AnalysisStatus)

	// Both costs share the single created category.
	assert.Equal(t, resp.CategoriesCreated[0].ID, resp.Costs[0].CategoryID)
	assert.Equal(t, resp.CategoriesCreated[0].ID, resp.Costs[1].CategoryID)
	assert.Equal(t, 420.0, resp.Costs[0].Amount+resp.Costs[1].Amount)

	// The excluded item produced nothing; Catering was never created.
	assert.EqualValues(t, 2, countCosts(t, db))
	var catCount int64
	require.NoError(t, db.Model(&models.CostCategory{}).Count(&catCount).Error)
	assert.EqualValues(t, 1, catCount)

	for _, cost := range resp.Costs {
		assert.True(t, cost.MachineImported)
	}
}

func TestCuratedImportValidation(t *testing.T) {
	db := testutil.NewDB(t)
	project := testutil.SeedProject(t, db, nil)
	receipt := testutil.SeedDocument(t, db, project.ID, models.DocumentKindReceipt, models.AnalysisAnalyzed)
	contract := testutil.SeedDocument(t, db, project.ID, models.DocumentKindContract, models.AnalysisAnalyzed)
	other := testutil.SeedProject(t, db, nil)
	svc := newTestService(db)

	item := CuratedItem{Description: "Paper", Amount: 10, SuggestedCategory: "Office", Include: true}

	tests := []struct {
		name    string
		req     CuratedImportRequest
		wantMsg string
	}{
		{
			name:    "project missing",
			req:     CuratedImportRequest{ProjectID: uuid.New(), Extraction: CuratedExtractionRef{DocumentID: receipt.ID}, Items: []CuratedItem{item}},
			wantMsg: "Project not found",
		},
		{
			name:    "document missing",
			req:     CuratedImportRequest{ProjectID: project.ID, Extraction: CuratedExtractionRef{DocumentID: uuid.New()}, Items: []CuratedItem{item}},
			wantMsg: "Document not found",
		},
		{
			name:    "document belongs to another project",
			req:     CuratedImportRequest{ProjectID: other.ID, Extraction: CuratedExtractionRef{DocumentID: receipt.ID}, Items: []CuratedItem{item}},
			wantMsg: "Document not found",
		},
		{
			name:    "document is not a receipt",
			req:     CuratedImportRequest{ProjectID: project.ID, Extraction: CuratedExtractionRef{DocumentID: contract.ID}, Items: []CuratedItem{item}},
			wantMsg: "Document is not a receipt",
		},
		{
			name: "no items selected",
			req: CuratedImportRequest{ProjectID: project.ID, Extraction: CuratedExtractionRef{DocumentID: receipt.ID}, Items: []CuratedItem{
				{Description: "Paper", Amount: 10, SuggestedCategory: "Office", Include: false},
				{Description: "Pens", Amount: 5, SuggestedCategory: "Office", Include: false},
			}},
			wantMsg: "No items selected for import",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CuratedImport(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}

	// None of the failed requests touched the ledger or the documents.
	assert.EqualValues(t, 0, countCosts(t, db))
	assert.Equal(t, models.AnalysisAnalyzed, reloadDocument(t, db, receipt.ID).AnalysisStatus)
}

func TestCuratedImportExplicitCategoryPrecedence(t *testing.T) {
	db := testutil.NewDB(t)
	project := testutil.SeedProject(t, db, nil)
	doc := testutil.SeedDocument(t, db, project.ID, models.DocumentKindReceipt, models.AnalysisAnalyzed)
	travel := testutil.SeedCategory(t, db, "Travel", 1, true)

	resp, err := newTestService(db).CuratedImport(CuratedImportRequest{
		ProjectID:  project.ID,
		Extraction: CuratedExtractionRef{DocumentID: doc.ID},
		Items: []CuratedItem{
			{Description: "Taxi", Amount: 40, CategoryID: travel.ID.String(), SuggestedCategory: "Transportation", Include: true},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Costs, 1)
	assert.Equal(t, travel.ID, resp.Costs[0].CategoryID)
	assert.Empty(t, resp.CategoriesCreated)

	var catCount int64
	require.NoError(t, db.Model(&models.CostCategory{}).Count(&catCount).Error)
	assert.EqualValues(t, 1, catCount)
}

func TestCuratedImportInvalidCategoryAbortsBatch(t *testing.T) {
	db := testutil.NewDB(t)
	project := testutil.SeedProject(t, db, nil)
	doc := testutil.SeedDocument(t, db, project.ID, models.DocumentKindReceipt, models.AnalysisAnalyzed)
	inactive := testutil.SeedCategory(t, db, "Retired", 1, false)

	_, err := newTestService(db).CuratedImport(CuratedImportRequest{
		ProjectID:  project.ID,
		Extraction: CuratedExtractionRef{DocumentID: doc.ID},
		Items: []CuratedItem{
			{Description: "Paper", Amount: 10, SuggestedCategory: "Office", Include: true},
			{Description: "Toner", Amount: 90, CategoryID: inactive.ID.String(), Include: true},
		},
	})
	require.Error(t, err)

	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 1, itemErr.Index)
	assert.Equal(t, "Invalid category: "+inactive.ID.String(), itemErr.Err.Error())

	// The whole batch rolled back: no costs, no Office category, status kept.
	assert.EqualValues(t, 0, countCosts(t, db))
	var catCount int64
	require.NoError(t, db.Model(&models.CostCategory{}).Count(&catCount).Error)
	assert.EqualValues(t, 1, catCount)
	assert.Equal(t, models.AnalysisAnalyzed, reloadDocument(t, db, doc.ID).AnalysisStatus)
}

func TestCuratedImportItemWithoutCategoryAbortsBatch(t *testing.T) {
	db := testutil.NewDB(t)
	project := testutil.SeedProject(t, db, nil)
	doc := testutil.SeedDocument(t, db, project.ID, models.DocumentKindReceipt, models.AnalysisAnalyzed)

	_, err := newTestService(db).CuratedImport(CuratedImportRequest{
		ProjectID:  project.ID,
		Extraction: CuratedExtractionRef{DocumentID: doc.ID},
		Items: []CuratedItem{
			{Description: "Mystery line", Amount: 10, Include: true},
		},
	})
	require.Error(t, err)

	var itemErr *ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.ErrorIs(t, itemErr.Err, ErrMissingCategory)
	assert.EqualValues(t, 0, countCosts(t, db))
}

func TestCuratedImportRejectsImportedDocument(t *testing.T) {
	db := testutil.NewDB(t)
	project := testutil.SeedProject(t, db, nil)
	doc := testutil.SeedDocument(t, db, project.ID, models.DocumentKindReceipt, models.AnalysisImported)

	_, err := newTestService(db).CuratedImport(CuratedImportRequest{
		ProjectID:  project.ID,
		Extraction: CuratedExtractionRef{DocumentID: doc.ID},
		Items: []CuratedItem{
			{Description: "Paper", Amount: 10, SuggestedCategory: "Office", Include: true},
		},
	})

	assert.ErrorIs(t, err, ErrAlreadyImported)
	assert.EqualValues(t, 0, countCosts(t, db))
}
