package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/ports"
)

// NumberSource abstracts the document-number sequence (Redis INCR).
type NumberSource interface {
	Next(ctx context.Context, docType string) (string, error)
}

// ContractService manages airtime contracts and their status machine.
type ContractService struct {
	repo    ports.ContractRepository
	clients ports.ClientRepository
	numbers NumberSource
	log     zerolog.Logger
}

func NewContractService(repo ports.ContractRepository, clients ports.ClientRepository, numbers NumberSource, log zerolog.Logger) *ContractService {
	return &ContractService{repo: repo, clients: clients, numbers: numbers, log: log}
}

// Create drafts a new contract for an existing advertiser.
func (s *ContractService) Create(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error) {
	if input.Campaign == "" || input.Amount <= 0 || len(input.StationCodes) == 0 {
		return nil, domain.ErrInvalidInput
	}

	client, err := s.clients.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	docNum, err := s.numbers.Next(ctx, "CTR")
	if err != nil {
		return nil, fmt.Errorf("contract number: %w", err)
	}

	now := time.Now().UTC()
	contract := &domain.Contract{
		DocNum:       docNum,
		ClientID:     client.ID,
		ClientName:   client.CompanyName,
		Campaign:     input.Campaign,
		StationCodes: input.StationCodes,
		Amount:       input.Amount,
		Status:       domain.ContractDraft,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    now,
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.ContractDraft, Timestamp: now, Actor: input.CreatedBy},
		},
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		s.log.Error().Err(err).Str("doc_num", docNum).Msg("failed to create contract")
		return nil, err
	}

	s.log.Info().Str("doc_num", docNum).Str("client_id", client.ID).Int64("amount", input.Amount).Msg("contract drafted")
	return contract, nil
}

func (s *ContractService) Get(ctx context.Context, docNum string) (*domain.Contract, error) {
	return s.repo.FindByDocNum(ctx, docNum)
}

func (s *ContractService) List(ctx context.Context, filter ports.ContractListFilter) ([]*domain.Contract, error) {
	return s.repo.List(ctx, filter)
}

// Transition moves the contract through its status machine. Approval and
// activation require a station manager or super admin.
func (s *ContractService) Transition(ctx context.Context, docNum string, next domain.ContractStatus, actorRole, actor string) (*domain.Contract, error) {
	if next == domain.ContractApproved || next == domain.ContractActive {
		if actorRole != domain.RoleStationManager && actorRole != domain.RoleSuperAdmin {
			return nil, domain.ErrForbidden
		}
	}

	contract, err := s.repo.FindByDocNum(ctx, docNum)
	if err != nil {
		return nil, err
	}

	if !contract.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, contract.Status, next)
	}

	entry := domain.StatusHistoryEntry{Status: next, Timestamp: time.Now().UTC(), Actor: actor}
	if err := s.repo.UpdateStatus(ctx, docNum, next, entry); err != nil {
		return nil, err
	}

	s.log.Info().Str("doc_num", docNum).Str("from", string(contract.Status)).Str("to", string(next)).Str("actor", actor).Msg("contract status changed")

	contract.Status = next
	contract.StatusHistory = append(contract.StatusHistory, entry)
	return contract, nil
}
