package ports

import (
	"context"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// RecordReceiptInput carries the data needed to acknowledge a payment.
type RecordReceiptInput struct {
	InvoiceNum string
	Amount     int64
	Method     string
	RecordedBy string
}

// ReceiptRepository defines persistence for receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	List(ctx context.Context, clientID string) ([]*domain.Receipt, error)
}

// ReceiptService defines use-case operations for receipts.
type ReceiptService interface {
	Record(ctx context.Context, input RecordReceiptInput) (*domain.Receipt, error)
	List(ctx context.Context, clientID string) ([]*domain.Receipt, error)
}
