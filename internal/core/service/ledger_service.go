package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// PostingDedup abstracts the idempotency store (Redis) for ledger postings.
type PostingDedup interface {
	IsDuplicate(ctx context.Context, docNum string) (bool, error)
	Mark(ctx context.Context, docNum string) error
}

type ledgerService struct {
	clients ports.ClientRepository
	repo    ports.LedgerRepository
	dedup   PostingDedup
	log     zerolog.Logger
}

// NewLedgerService returns a LedgerService implementation.
func NewLedgerService(clients ports.ClientRepository, repo ports.LedgerRepository, dedup PostingDedup, log zerolog.Logger) ports.LedgerService {
	return &ledgerService{clients: clients, repo: repo, dedup: dedup, log: log}
}

// Post deduplicates and applies a single balance posting.
func (s *ledgerService) Post(ctx context.Context, posting ports.LedgerPostingInput) error {
	// 1. Idempotency check: silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, posting.DocNum)
	if err != nil {
		s.log.Warn().Err(err).Str("doc_num", posting.DocNum).Msg("dedup check failed, posting anyway")
	} else if isDup {
		s.log.Debug().Str("doc_num", posting.DocNum).Msg("duplicate posting skipped")
		return nil
	}

	entry := &domain.LedgerEntry{
		ClientID:  posting.ClientID,
		Type:      posting.Type,
		DocNum:    posting.DocNum,
		Amount:    posting.Amount,
		Timestamp: posting.Timestamp,
	}

	// 2. Mark before writing so a retried posting is not applied twice.
	if markErr := s.dedup.Mark(ctx, posting.DocNum); markErr != nil {
		s.log.Warn().Err(markErr).Str("doc_num", posting.DocNum).Msg("failed to set dedup key")
	}

	// 3. Apply the balance delta.
	if err := s.clients.AdjustBalance(ctx, posting.ClientID, entry.Delta()); err != nil {
		return fmt.Errorf("post ledger: adjust balance: %w", err)
	}

	// 4. Append to the audit trail (non-fatal on failure).
	if err := s.repo.Insert(ctx, entry); err != nil {
		s.log.Warn().Err(err).Str("doc_num", posting.DocNum).Msg("failed to insert ledger entry")
	}

	s.log.Info().
		Str("doc_num", posting.DocNum).
		Str("client_id", posting.ClientID).
		Str("type", string(posting.Type)).
		Int64("delta", entry.Delta()).
		Msg("ledger posting applied")

	return nil
}
