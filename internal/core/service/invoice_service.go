package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

const defaultDueDays = 30

// LedgerQueue abstracts the dispatcher that applies balance postings
// asynchronously with per-client ordering.
type LedgerQueue interface {
	Enqueue(posting ports.LedgerPostingInput)
}

// InvoiceService issues and tracks invoices against billable contracts.
type InvoiceService struct {
	repo      ports.InvoiceRepository
	contracts ports.ContractRepository
	numbers   NumberSource
	ledger    LedgerQueue
	log       zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, contracts ports.ContractRepository, numbers NumberSource, ledger LedgerQueue, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, contracts: contracts, numbers: numbers, ledger: ledger, log: log}
}

// Issue bills a contract. The contract must be approved or active; the
// invoiced amount defaults to the full contract value.
func (s *InvoiceService) Issue(ctx context.Context, input ports.IssueInvoiceInput) (*domain.Invoice, error) {
	contract, err := s.contracts.FindByDocNum(ctx, input.ContractNum)
	if err != nil {
		return nil, err
	}
	if !contract.Status.Billable() {
		return nil, domain.ErrContractNotBillable
	}

	amount := input.Amount
	if amount <= 0 {
		amount = contract.Amount
	}

	dueDays := input.DueDays
	if dueDays <= 0 {
		dueDays = defaultDueDays
	}

	docNum, err := s.numbers.Next(ctx, "INV")
	if err != nil {
		return nil, fmt.Errorf("invoice number: %w", err)
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		DocNum:      docNum,
		ContractNum: contract.DocNum,
		ClientID:    contract.ClientID,
		ClientName:  contract.ClientName,
		Amount:      amount,
		Status:      domain.InvoiceIssued,
		IssuedBy:    input.IssuedBy,
		IssuedAt:    now,
		DueAt:       now.AddDate(0, 0, dueDays),
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		s.log.Error().Err(err).Str("doc_num", docNum).Msg("failed to create invoice")
		return nil, err
	}

	s.ledger.Enqueue(ports.LedgerPostingInput{
		ClientID:  invoice.ClientID,
		Type:      domain.LedgerInvoiceIssued,
		DocNum:    invoice.DocNum,
		Amount:    invoice.Amount,
		Timestamp: now,
	})

	s.log.Info().Str("doc_num", docNum).Str("contract", contract.DocNum).Int64("amount", amount).Msg("invoice issued")
	return invoice, nil
}

func (s *InvoiceService) Get(ctx context.Context, docNum string) (*domain.Invoice, error) {
	return s.repo.FindByDocNum(ctx, docNum)
}

func (s *InvoiceService) List(ctx context.Context, filter ports.InvoiceListFilter) ([]*domain.Invoice, error) {
	return s.repo.List(ctx, filter)
}
