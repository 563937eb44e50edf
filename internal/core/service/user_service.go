package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// SessionRevoker abstracts the denylist (Redis) consulted by the auth
// middleware. Revoking makes a deactivated user's tokens unusable before
// they expire.
type SessionRevoker interface {
	Revoke(ctx context.Context, username string) error
	Restore(ctx context.Context, username string) error
}

// UserService covers staff administration beyond registration.
type UserService struct {
	repo    ports.UserRepository
	revoker SessionRevoker
	log     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, revoker SessionRevoker, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, revoker: revoker, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// SetStatus activates or deactivates a staff account. Deactivation also
// revokes outstanding tokens; revocation failures are logged but do not roll
// back the status change.
func (s *UserService) SetStatus(ctx context.Context, username, status string) (*domain.User, error) {
	if status != domain.StatusActive && status != domain.StatusInactive {
		return nil, domain.ErrInvalidInput
	}

	if err := s.repo.UpdateStatus(ctx, username, status); err != nil {
		return nil, err
	}

	if status == domain.StatusInactive {
		if err := s.revoker.Revoke(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to revoke sessions")
		}
	} else {
		if err := s.revoker.Restore(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("failed to restore sessions")
		}
	}

	return s.repo.FindByUsername(ctx, username)
}
