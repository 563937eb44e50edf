package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

func invoicePosting() ports.LedgerPostingInput {
	return ports.LedgerPostingInput{
		ClientID:  "client_1",
		Type:      domain.LedgerInvoiceIssued,
		DocNum:    "INV-2026-000001",
		Amount:    500_00,
		Timestamp: time.Now().UTC(),
	}
}

func TestLedgerService_Post_Charge(t *testing.T) {
	clients := newStubClientRepo(&domain.Client{ID: "client_1"})
	repo := &stubLedgerRepo{}
	svc := NewLedgerService(clients, repo, &stubPostingDedup{}, zerolog.Nop())

	if err := svc.Post(context.Background(), invoicePosting()); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	c, _ := clients.FindByID(context.Background(), "client_1")
	if c.Balance != 500_00 {
		t.Fatalf("expected balance 50000, got %d", c.Balance)
	}
	if len(repo.entries) != 1 {
		t.Fatalf("expected audit entry, got %d", len(repo.entries))
	}
}

func TestLedgerService_Post_CreditReducesBalance(t *testing.T) {
	clients := newStubClientRepo(&domain.Client{ID: "client_1", Balance: 500_00})
	svc := NewLedgerService(clients, &stubLedgerRepo{}, &stubPostingDedup{}, zerolog.Nop())

	posting := invoicePosting()
	posting.Type = domain.LedgerReceiptRecorded
	posting.DocNum = "RCP-2026-000001"
	posting.Amount = 200_00

	if err := svc.Post(context.Background(), posting); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}

	c, _ := clients.FindByID(context.Background(), "client_1")
	if c.Balance != 300_00 {
		t.Fatalf("expected balance 30000, got %d", c.Balance)
	}
}

func TestLedgerService_Post_DuplicateSkipped(t *testing.T) {
	clients := newStubClientRepo(&domain.Client{ID: "client_1"})
	repo := &stubLedgerRepo{}
	svc := NewLedgerService(clients, repo, &stubPostingDedup{dupResult: true}, zerolog.Nop())

	if err := svc.Post(context.Background(), invoicePosting()); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(clients.deltas) != 0 {
		t.Fatalf("duplicate posting should not touch the balance")
	}
	if len(repo.entries) != 0 {
		t.Fatalf("duplicate posting should not be audited")
	}
}

func TestLedgerService_Post_DedupErrorProcessesAnyway(t *testing.T) {
	clients := newStubClientRepo(&domain.Client{ID: "client_1"})
	svc := NewLedgerService(clients, &stubLedgerRepo{}, &stubPostingDedup{dupErr: errors.New("redis down")}, zerolog.Nop())

	if err := svc.Post(context.Background(), invoicePosting()); err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if len(clients.deltas) != 1 {
		t.Fatalf("posting should be applied when dedup is unavailable")
	}
}

func TestLedgerService_Post_UnknownClient(t *testing.T) {
	svc := NewLedgerService(newStubClientRepo(), &stubLedgerRepo{}, &stubPostingDedup{}, zerolog.Nop())

	if err := svc.Post(context.Background(), invoicePosting()); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestLedgerService_Post_AuditFailureNonFatal(t *testing.T) {
	clients := newStubClientRepo(&domain.Client{ID: "client_1"})
	repo := &stubLedgerRepo{insertErr: errors.New("mongo down")}
	svc := NewLedgerService(clients, repo, &stubPostingDedup{}, zerolog.Nop())

	if err := svc.Post(context.Background(), invoicePosting()); err != nil {
		t.Fatalf("audit failure should not fail the posting: %v", err)
	}
}
