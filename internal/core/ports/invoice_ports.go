package ports

import (
	"context"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// IssueInvoiceInput carries the data needed to bill a contract.
type IssueInvoiceInput struct {
	ContractNum string
	Amount      int64
	DueDays     int
	IssuedBy    string
}

// InvoiceListFilter narrows invoice listings.
type InvoiceListFilter struct {
	ClientID string
	Status   string
}

// InvoiceRepository defines persistence for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	FindByDocNum(ctx context.Context, docNum string) (*domain.Invoice, error)
	List(ctx context.Context, filter InvoiceListFilter) ([]*domain.Invoice, error)
	// ApplyPayment atomically increments amount_paid and flips the status to
	// paid when the invoice is fully covered. Returns the updated invoice.
	ApplyPayment(ctx context.Context, docNum string, amount int64) (*domain.Invoice, error)
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	Issue(ctx context.Context, input IssueInvoiceInput) (*domain.Invoice, error)
	Get(ctx context.Context, docNum string) (*domain.Invoice, error)
	List(ctx context.Context, filter InvoiceListFilter) ([]*domain.Invoice, error)
}
