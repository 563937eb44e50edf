package ports

import (
	"context"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// UserRepository defines persistence for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateStatus(ctx context.Context, username, status string) error
}
