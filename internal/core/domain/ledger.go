package domain

import "time"

// LedgerEntryType classifies a balance-affecting posting.
type LedgerEntryType string

const (
	// LedgerInvoiceIssued increases the client's outstanding balance.
	LedgerInvoiceIssued LedgerEntryType = "invoice_issued"
	// LedgerReceiptRecorded decreases the client's outstanding balance.
	LedgerReceiptRecorded LedgerEntryType = "receipt_recorded"
)

// LedgerEntry is the audit record of a single client-balance posting.
// DocNum is the invoice or receipt number that caused the posting and is the
// deduplication key.
type LedgerEntry struct {
	ID        string          `json:"id" bson:"_id,omitempty"`
	ClientID  string          `json:"client_id" bson:"client_id"`
	Type      LedgerEntryType `json:"type" bson:"type"`
	DocNum    string          `json:"doc_num" bson:"doc_num"`
	Amount    int64           `json:"amount" bson:"amount"`
	Timestamp time.Time       `json:"timestamp" bson:"timestamp"`
}

// Delta returns the signed balance change this entry applies.
func (e *LedgerEntry) Delta() int64 {
	if e.Type == LedgerReceiptRecorded {
		return -e.Amount
	}
	return e.Amount
}
