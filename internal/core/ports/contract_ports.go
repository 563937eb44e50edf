package ports

import (
	"context"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// CreateContractInput carries the data needed to draft an airtime contract.
type CreateContractInput struct {
	ClientID     string
	Campaign     string
	StationCodes []string
	Amount       int64
	CreatedBy    string
}

// ContractListFilter narrows contract listings.
type ContractListFilter struct {
	ClientID string
	Status   string
}

// ContractRepository defines persistence for contracts.
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	FindByDocNum(ctx context.Context, docNum string) (*domain.Contract, error)
	List(ctx context.Context, filter ContractListFilter) ([]*domain.Contract, error)
	// UpdateStatus atomically sets the new status and appends a history entry.
	UpdateStatus(ctx context.Context, docNum string, status domain.ContractStatus, entry domain.StatusHistoryEntry) error
}

// ContractService defines use-case operations for contracts.
type ContractService interface {
	Create(ctx context.Context, input CreateContractInput) (*domain.Contract, error)
	Get(ctx context.Context, docNum string) (*domain.Contract, error)
	List(ctx context.Context, filter ContractListFilter) ([]*domain.Contract, error)
	// Transition moves the contract through its status machine. Approval and
	// activation are restricted to station managers and super admins.
	Transition(ctx context.Context, docNum string, next domain.ContractStatus, actorRole, actor string) (*domain.Contract, error)
}
