package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInvoice(t *testing.T) {
	raw := []byte(`{
		"documentId": "5bd3f1a2-8c0a-4f7e-9f91-2d1d9f6a0c11",
		"type": "invoice",
		"confidence": "HIGH",
		"total": 15000,
		"lineItems": [{"description": "Stage design", "amount": 15000}]
	}`)

	res, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, TypeInvoice, res.Type)
	assert.Equal(t, ConfidenceHigh, res.Confidence)
	require.NotNil(t, res.Invoice)
	assert.Nil(t, res.Receipt)
	require.NotNil(t, res.Invoice.Total)
	assert.Equal(t, 15000.0, *res.Invoice.Total)
	require.Len(t, res.Invoice.LineItems, 1)
	assert.Equal(t, "Stage design", res.Invoice.LineItems[0].Description)
}

func TestDecodeReceipt(t *testing.T) {
	raw := []byte(`{
		"documentId": "5bd3f1a2-8c0a-4f7e-9f91-2d1d9f6a0c11",
		"type": "receipt",
		"confidence": "MEDIUM",
		"receiptDate": "2026-03-14T00:00:00Z",
		"items": [
			{"description": "Printing", "amount": 120, "quantity": 2, "unitPrice": 60, "suggestedCategory": "Printing", "confidence": "HIGH"},
			{"description": "Banner", "amount": 300}
		]
	}`)

	res, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, TypeReceipt, res.Type)
	require.NotNil(t, res.Receipt)
	assert.Nil(t, res.Invoice)
	require.NotNil(t, res.ReceiptDate)
	require.Len(t, res.Receipt.Items, 2)
	assert.Equal(t, "Printing", res.Receipt.Items[0].SuggestedCategory)
	require.NotNil(t, res.Receipt.Items[0].Quantity)
	assert.Equal(t, 2.0, *res.Receipt.Items[0].Quantity)
	assert.Nil(t, res.Receipt.Items[1].Quantity)
}

func TestDecodeRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown type tag", `{"type": "bank_statement", "confidence": "HIGH"}`},
		{"unknown confidence", `{"type": "receipt", "confidence": "VERY_HIGH"}`},
		{"not json", `total: 15000`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
