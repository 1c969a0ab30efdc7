package extraction

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result types produced by the document analyzer.
const (
	TypeInvoice = "invoice"
	TypeReceipt = "receipt"
)

// Confidence grades. Only HIGH is committed unattended.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// Result is the structured output of the external document analyzer for one
// source document. Exactly one of Invoice/Receipt is set, matching Type.
type Result struct {
	DocumentID  uuid.UUID
	Type        string
	Confidence  string
	ReceiptDate *time.Time
	Invoice     *InvoiceData
	Receipt     *ReceiptData
}

type InvoiceData struct {
	Total     *float64
	LineItems []LineItem
}

type LineItem struct {
	Description string
	Amount      float64
}

type ReceiptData struct {
	Items []ReceiptItem
}

type ReceiptItem struct {
	Description       string
	Amount            float64
	Quantity          *float64
	UnitPrice         *float64
	SuggestedCategory string
	Confidence        string
}

// payload is the wire shape the analyzer writes. Type-specific fields sit
// side by side; Decode sorts them into the union.
type payload struct {
	DocumentID  uuid.UUID  `json:"documentId"`
	Type        string     `json:"type"`
	Confidence  string     `json:"confidence"`
	ReceiptDate *time.Time `json:"receiptDate"`

	Total     *float64 `json:"total"`
	LineItems []struct {
		Description string  `json:"description"`
		Amount      float64 `json:"amount"`
	} `json:"lineItems"`

	Items []struct {
		Description       string   `json:"description"`
		Amount            float64  `json:"amount"`
		Quantity          *float64 `json:"quantity"`
		UnitPrice         *float64 `json:"unitPrice"`
		SuggestedCategory string   `json:"suggestedCategory"`
		Confidence        string   `json:"confidence"`
	} `json:"items"`
}

// Decode parses a raw analyzer payload into a Result. Unrecognized type
// tags are rejected here so downstream code never sees an open-ended shape.
func Decode(raw []byte) (*Result, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("malformed extraction payload: %w", err)
	}

	res := &Result{
		DocumentID:  p.DocumentID,
		Type:        p.Type,
		Confidence:  p.Confidence,
		ReceiptDate: p.ReceiptDate,
	}

	switch p.Type {
	case TypeInvoice:
		inv := &InvoiceData{Total: p.Total}
		for _, li := range p.LineItems {
			inv.LineItems = append(inv.LineItems, LineItem(li))
		}
		res.Invoice = inv
	case TypeReceipt:
		rec := &ReceiptData{}
		for _, it := range p.Items {
			rec.Items = append(rec.Items, ReceiptItem(it))
		}
		res.Receipt = rec
	default:
		return nil, fmt.Errorf("unrecognized extraction type %q", p.Type)
	}

	switch p.Confidence {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
	default:
		return nil, fmt.Errorf("unrecognized confidence grade %q", p.Confidence)
	}

	return res, nil
}
