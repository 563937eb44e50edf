package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// ReceiptService records payments against invoices.
type ReceiptService struct {
	repo     ports.ReceiptRepository
	invoices ports.InvoiceRepository
	numbers  NumberSource
	ledger   LedgerQueue
	log      zerolog.Logger
}

func NewReceiptService(repo ports.ReceiptRepository, invoices ports.InvoiceRepository, numbers NumberSource, ledger LedgerQueue, log zerolog.Logger) *ReceiptService {
	return &ReceiptService{repo: repo, invoices: invoices, numbers: numbers, ledger: ledger, log: log}
}

// Record acknowledges a payment. The invoice must be open and the amount may
// not exceed the outstanding balance.
func (s *ReceiptService) Record(ctx context.Context, input ports.RecordReceiptInput) (*domain.Receipt, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidPaymentMethod(input.Method) {
		return nil, domain.ErrInvalidPaymentMethod
	}

	invoice, err := s.invoices.FindByDocNum(ctx, input.InvoiceNum)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceIssued {
		return nil, domain.ErrInvoiceNotPayable
	}
	if input.Amount > invoice.Amount-invoice.AmountPaid {
		return nil, domain.ErrOverpayment
	}

	docNum, err := s.numbers.Next(ctx, "RCP")
	if err != nil {
		return nil, fmt.Errorf("receipt number: %w", err)
	}

	now := time.Now().UTC()
	receipt := &domain.Receipt{
		DocNum:     docNum,
		InvoiceNum: invoice.DocNum,
		ClientID:   invoice.ClientID,
		Amount:     input.Amount,
		Method:     input.Method,
		RecordedBy: input.RecordedBy,
		RecordedAt: now,
	}

	if _, err := s.invoices.ApplyPayment(ctx, invoice.DocNum, input.Amount); err != nil {
		return nil, fmt.Errorf("apply payment: %w", err)
	}

	if err := s.repo.Create(ctx, receipt); err != nil {
		s.log.Error().Err(err).Str("doc_num", docNum).Msg("failed to create receipt")
		return nil, err
	}

	s.ledger.Enqueue(ports.LedgerPostingInput{
		ClientID:  receipt.ClientID,
		Type:      domain.LedgerReceiptRecorded,
		DocNum:    receipt.DocNum,
		Amount:    receipt.Amount,
		Timestamp: now,
	})

	s.log.Info().Str("doc_num", docNum).Str("invoice", invoice.DocNum).Int64("amount", input.Amount).Msg("receipt recorded")
	return receipt, nil
}

func (s *ReceiptService) List(ctx context.Context, clientID string) ([]*domain.Receipt, error) {
	return s.repo.List(ctx, clientID)
}
