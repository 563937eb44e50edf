package service

import (
	"context"
	"fmt"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs shared by contract, invoice, receipt and ledger tests
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	clients map[string]*domain.Client
	deltas  []int64
}

func newStubClientRepo(clients ...*domain.Client) *stubClientRepo {
	r := &stubClientRepo{clients: make(map[string]*domain.Client)}
	for _, c := range clients {
		r.clients[c.ID] = c
	}
	return r
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	clone := *client
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("client_%d", len(r.clients)+1)
	}
	r.clients[clone.ID] = &clone
	return &clone, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClientRepo) AdjustBalance(_ context.Context, id string, delta int64) error {
	c, ok := r.clients[id]
	if !ok {
		return domain.ErrClientNotFound
	}
	c.Balance += delta
	r.deltas = append(r.deltas, delta)
	return nil
}

type stubContractRepo struct {
	contracts map[string]*domain.Contract
}

func newStubContractRepo(contracts ...*domain.Contract) *stubContractRepo {
	r := &stubContractRepo{contracts: make(map[string]*domain.Contract)}
	for _, c := range contracts {
		r.contracts[c.DocNum] = c
	}
	return r
}

func (r *stubContractRepo) Create(_ context.Context, contract *domain.Contract) error {
	r.contracts[contract.DocNum] = contract
	return nil
}

func (r *stubContractRepo) FindByDocNum(_ context.Context, docNum string) (*domain.Contract, error) {
	c, ok := r.contracts[docNum]
	if !ok {
		return nil, domain.ErrContractNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContractRepo) List(_ context.Context, _ ports.ContractListFilter) ([]*domain.Contract, error) {
	out := make([]*domain.Contract, 0, len(r.contracts))
	for _, c := range r.contracts {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContractRepo) UpdateStatus(_ context.Context, docNum string, status domain.ContractStatus, entry domain.StatusHistoryEntry) error {
	c, ok := r.contracts[docNum]
	if !ok {
		return domain.ErrContractNotFound
	}
	c.Status = status
	c.StatusHistory = append(c.StatusHistory, entry)
	return nil
}

type stubInvoiceRepo struct {
	invoices map[string]*domain.Invoice
}

func newStubInvoiceRepo(invoices ...*domain.Invoice) *stubInvoiceRepo {
	r := &stubInvoiceRepo{invoices: make(map[string]*domain.Invoice)}
	for _, inv := range invoices {
		r.invoices[inv.DocNum] = inv
	}
	return r
}

func (r *stubInvoiceRepo) Create(_ context.Context, invoice *domain.Invoice) error {
	r.invoices[invoice.DocNum] = invoice
	return nil
}

func (r *stubInvoiceRepo) FindByDocNum(_ context.Context, docNum string) (*domain.Invoice, error) {
	inv, ok := r.invoices[docNum]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInvoiceRepo) List(_ context.Context, _ ports.InvoiceListFilter) ([]*domain.Invoice, error) {
	out := make([]*domain.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		clone := *inv
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubInvoiceRepo) ApplyPayment(_ context.Context, docNum string, amount int64) (*domain.Invoice, error) {
	inv, ok := r.invoices[docNum]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	inv.AmountPaid += amount
	if inv.AmountPaid >= inv.Amount {
		inv.Status = domain.InvoicePaid
	}
	clone := *inv
	return &clone, nil
}

type stubReceiptRepo struct {
	receipts []*domain.Receipt
}

func (r *stubReceiptRepo) Create(_ context.Context, receipt *domain.Receipt) error {
	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *stubReceiptRepo) List(_ context.Context, clientID string) ([]*domain.Receipt, error) {
	out := make([]*domain.Receipt, 0, len(r.receipts))
	for _, rc := range r.receipts {
		if clientID == "" || rc.ClientID == clientID {
			out = append(out, rc)
		}
	}
	return out, nil
}

type stubLedgerRepo struct {
	entries   []*domain.LedgerEntry
	insertErr error
}

func (r *stubLedgerRepo) Insert(_ context.Context, entry *domain.LedgerEntry) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubLedgerRepo) ListByClient(_ context.Context, clientID string) ([]*domain.LedgerEntry, error) {
	out := make([]*domain.LedgerEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubNumberSource struct {
	n int
}

func (s *stubNumberSource) Next(_ context.Context, docType string) (string, error) {
	s.n++
	return fmt.Sprintf("%s-2026-%06d", docType, s.n), nil
}

type stubLedgerQueue struct {
	postings []ports.LedgerPostingInput
}

func (q *stubLedgerQueue) Enqueue(posting ports.LedgerPostingInput) {
	q.postings = append(q.postings, posting)
}

type stubPostingDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubPostingDedup) IsDuplicate(_ context.Context, docNum string) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubPostingDedup) Mark(_ context.Context, docNum string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, docNum)
	return nil
}
