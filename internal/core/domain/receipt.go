package domain

import (
	"errors"
	"time"
)

// Accepted payment methods for receipts.
const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
	PaymentCheque   = "cheque"
	PaymentPOS      = "pos"
)

var ErrReceiptNotFound = errors.New("receipt not found")
var ErrInvalidPaymentMethod = errors.New("invalid payment method")
var ErrOverpayment = errors.New("receipt exceeds invoice outstanding amount")

// ValidPaymentMethod reports whether method is an accepted payment channel.
func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentTransfer, PaymentCheque, PaymentPOS:
		return true
	}
	return false
}

// Receipt acknowledges a payment against an invoice. Amount is in kobo.
type Receipt struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	DocNum     string    `json:"doc_num" bson:"doc_num"`
	InvoiceNum string    `json:"invoice_num" bson:"invoice_num"`
	ClientID   string    `json:"client_id" bson:"client_id"`
	Amount     int64     `json:"amount" bson:"amount"`
	Method     string    `json:"method" bson:"method"`
	RecordedBy string    `json:"recorded_by" bson:"recorded_by"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}
