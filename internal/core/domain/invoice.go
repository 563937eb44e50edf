package domain

import (
	"errors"
	"time"
)

// InvoiceStatus represents the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var ErrInvoiceNotFound = errors.New("invoice not found")
var ErrInvoiceNotPayable = errors.New("invoice not open for payment")

// Invoice bills a client for airtime under a contract. Amount and AmountPaid
// are in kobo; the invoice flips to paid once receipts fully cover Amount.
type Invoice struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	DocNum      string        `json:"doc_num" bson:"doc_num"`
	ContractNum string        `json:"contract_num" bson:"contract_num"`
	ClientID    string        `json:"client_id" bson:"client_id"`
	ClientName  string        `json:"client_name" bson:"client_name"`
	Amount      int64         `json:"amount" bson:"amount"`
	AmountPaid  int64         `json:"amount_paid" bson:"amount_paid"`
	Status      InvoiceStatus `json:"status" bson:"status"`
	IssuedBy    string        `json:"issued_by" bson:"issued_by"`
	IssuedAt    time.Time     `json:"issued_at" bson:"issued_at"`
	DueAt       time.Time     `json:"due_at" bson:"due_at"`
}
