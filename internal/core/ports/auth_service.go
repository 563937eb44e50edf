package ports

import (
	"context"

	"github.com/freedomradio/ecirs/internal/core/domain"
)

// RegisterInput carries the full staff registration payload.
type RegisterInput struct {
	Username     string
	Email        string
	Password     string
	FullName     string
	Phone        string
	Role         string
	StationCodes []string
	Status       string
}

// AuthService implements registration, login and profile lookup.
type AuthService interface {
	// Register creates a staff account and returns it with a freshly signed
	// token. The caller decides whether to adopt the token as its own session.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Me(ctx context.Context, username string) (*domain.User, error)
}

// UserService covers staff administration beyond registration.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	SetStatus(ctx context.Context, username, status string) (*domain.User, error)
}
