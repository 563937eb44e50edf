package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

func approvedContract() *domain.Contract {
	return &domain.Contract{
		DocNum:     "CTR-2026-000001",
		ClientID:   "client_1",
		ClientName: "Dangote Cement PLC",
		Amount:     250_000_00,
		Status:     domain.ContractApproved,
	}
}

func TestInvoiceService_Issue_Success(t *testing.T) {
	repo := newStubInvoiceRepo()
	queue := &stubLedgerQueue{}
	svc := NewInvoiceService(repo, newStubContractRepo(approvedContract()), &stubNumberSource{}, queue, zerolog.Nop())

	invoice, err := svc.Issue(context.Background(), ports.IssueInvoiceInput{
		ContractNum: "CTR-2026-000001",
		IssuedBy:    "aisha_bello",
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if invoice.DocNum != "INV-2026-000001" {
		t.Fatalf("unexpected doc number: %s", invoice.DocNum)
	}
	if invoice.Amount != 250_000_00 {
		t.Fatalf("expected amount defaulted to contract value, got %d", invoice.Amount)
	}
	if invoice.Status != domain.InvoiceIssued {
		t.Fatalf("expected issued, got %s", invoice.Status)
	}

	if len(queue.postings) != 1 {
		t.Fatalf("expected one ledger posting, got %d", len(queue.postings))
	}
	posting := queue.postings[0]
	if posting.Type != domain.LedgerInvoiceIssued || posting.DocNum != invoice.DocNum || posting.Amount != invoice.Amount {
		t.Fatalf("unexpected posting: %+v", posting)
	}
}

func TestInvoiceService_Issue_PartialAmount(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo(), newStubContractRepo(approvedContract()), &stubNumberSource{}, &stubLedgerQueue{}, zerolog.Nop())

	invoice, err := svc.Issue(context.Background(), ports.IssueInvoiceInput{
		ContractNum: "CTR-2026-000001",
		Amount:      100_000_00,
		DueDays:     14,
	})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if invoice.Amount != 100_000_00 {
		t.Fatalf("expected partial amount, got %d", invoice.Amount)
	}
	if got := invoice.DueAt.Sub(invoice.IssuedAt).Hours(); got != 14*24 {
		t.Fatalf("expected 14 day terms, got %v hours", got)
	}
}

func TestInvoiceService_Issue_DraftContract(t *testing.T) {
	contract := approvedContract()
	contract.Status = domain.ContractDraft
	svc := NewInvoiceService(newStubInvoiceRepo(), newStubContractRepo(contract), &stubNumberSource{}, &stubLedgerQueue{}, zerolog.Nop())

	_, err := svc.Issue(context.Background(), ports.IssueInvoiceInput{ContractNum: "CTR-2026-000001"})
	if !errors.Is(err, domain.ErrContractNotBillable) {
		t.Fatalf("expected ErrContractNotBillable, got %v", err)
	}
}

func TestInvoiceService_Issue_UnknownContract(t *testing.T) {
	svc := NewInvoiceService(newStubInvoiceRepo(), newStubContractRepo(), &stubNumberSource{}, &stubLedgerQueue{}, zerolog.Nop())

	_, err := svc.Issue(context.Background(), ports.IssueInvoiceInput{ContractNum: "CTR-2026-000404"})
	if !errors.Is(err, domain.ErrContractNotFound) {
		t.Fatalf("expected ErrContractNotFound, got %v", err)
	}
}
