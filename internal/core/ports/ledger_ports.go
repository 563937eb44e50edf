package ports

import (
	"context"
	"time"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// LedgerPostingInput is the DTO handed from invoice/receipt services to the
// ledger dispatcher.
type LedgerPostingInput struct {
	ClientID  string
	Type      domain.LedgerEntryType
	DocNum    string
	Amount    int64
	Timestamp time.Time
}

// LedgerRepository persists balance postings to the audit trail.
type LedgerRepository interface {
	Insert(ctx context.Context, entry *domain.LedgerEntry) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.LedgerEntry, error)
}

// LedgerService applies balance postings.
type LedgerService interface {
	Post(ctx context.Context, posting LedgerPostingInput) error
}
