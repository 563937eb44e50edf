package ports

import (
	"context"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// CreateClientInput carries the data needed to register an advertiser.
type CreateClientInput struct {
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	TIN           string
	Type          string
}

// ClientRepository defines persistence for advertiser accounts.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	// AdjustBalance atomically applies a signed delta to the client's
	// outstanding balance.
	AdjustBalance(ctx context.Context, id string, delta int64) error
}

// ClientService defines use-case operations for advertisers.
type ClientService interface {
	Create(ctx context.Context, input CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}
