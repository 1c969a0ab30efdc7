package importer

import "fmt"

// ValidationError is a caller mistake or insufficient extraction content.
// Handlers surface the message verbatim with a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError covers absent projects and documents.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

var (
	ErrNoInvoiceTotal  = &ValidationError{Msg: "Extraction has no invoice total"}
	ErrNoReceiptItems  = &ValidationError{Msg: "Extraction has no receipt items"}
	ErrNoItemsSelected = &ValidationError{Msg: "No items selected for import"}
	ErrMissingCategory = &ValidationError{Msg: "Cost item has no category"}

	// ErrAlreadyImported rejects re-entry into either importer for a
	// document whose status is terminal.
	ErrAlreadyImported = &ValidationError{Msg: "Document already imported"}
)

func errInvalidCategory(id string) error {
	return &ValidationError{Msg: fmt.Sprintf("Invalid category: %s", id)}
}

// ItemError pins a failure to one curated item so the caller knows which
// row to fix.
type ItemError struct {
	Index int
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
