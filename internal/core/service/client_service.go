package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// ClientService manages advertiser accounts.
type ClientService struct {
	repo ports.ClientRepository
	log  zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, log: log}
}

func (s *ClientService) Create(ctx context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	if input.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != domain.ClientTypeDirect && input.Type != domain.ClientTypeAgency {
		input.Type = domain.ClientTypeDirect
	}

	now := time.Now().UTC()
	client := &domain.Client{
		CompanyName:   input.CompanyName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		TIN:           input.TIN,
		Type:          input.Type,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.log.Error().Err(err).Str("company", input.CompanyName).Msg("failed to create client")
		return nil, err
	}

	s.log.Info().Str("client_id", created.ID).Str("company", created.CompanyName).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}
