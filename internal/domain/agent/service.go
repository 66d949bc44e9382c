package agent

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cable-billing/internal/pkg/apperrors"
)

type Service interface {
	CreateAgent(ctx context.Context, firstName, lastName, phoneNumber string, isAdmin bool) (*Agent, error)
	GetAgent(ctx context.Context, agentID int64) (*Agent, error)
	ListAgents(ctx context.Context) ([]*Agent, error)
	UpdateAgent(ctx context.Context, agentID int64, firstName, lastName, phoneNumber string, isAdmin bool) (*Agent, error)
	DeleteAgent(ctx context.Context, agentID int64) error
}

var _ Service = (*agentService)(nil)

type agentService struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	if repo == nil {
		panic("agent repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &agentService{
		repo:   repo,
		logger: logger.With(slog.String("component", "agentService")),
	}
}

func (s *agentService) CreateAgent(ctx context.Context, firstName, lastName, phoneNumber string, isAdmin bool) (*Agent, error) {
	a, err := NewAgent(firstName, lastName, phoneNumber, isAdmin)
	if err != nil {
		s.logger.WarnContext(ctx, "Agent validation failed", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save new agent", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save agent: %w", err)
	}

	s.logger.InfoContext(ctx, "Agent created", slog.Int64("agentID", a.ID))
	return a, nil
}

func (s *agentService) GetAgent(ctx context.Context, agentID int64) (*Agent, error) {
	if agentID <= 0 {
		return nil, fmt.Errorf("%w: agent ID must be positive", apperrors.ErrInvalidArgument)
	}
	a, err := s.repo.FindByID(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent %d: %w", agentID, err)
	}
	return a, nil
}

func (s *agentService) ListAgents(ctx context.Context) ([]*Agent, error) {
	agents, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list agents", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

func (s *agentService) UpdateAgent(ctx context.Context, agentID int64, firstName, lastName, phoneNumber string, isAdmin bool) (*Agent, error) {
	a, err := s.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}

	a.FirstName = strings.TrimSpace(firstName)
	a.LastName = strings.TrimSpace(lastName)
	a.PhoneNumber = strings.TrimSpace(phoneNumber)
	a.IsAdmin = isAdmin
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update agent", slog.Int64("agentID", agentID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to update agent %d: %w", agentID, err)
	}
	return a, nil
}

func (s *agentService) DeleteAgent(ctx context.Context, agentID int64) error {
	if agentID <= 0 {
		return fmt.Errorf("%w: agent ID must be positive", apperrors.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, agentID); err != nil {
		s.logger.WarnContext(ctx, "Agent delete rejected", slog.Int64("agentID", agentID), slog.Any("error", err))
		return fmt.Errorf("failed to delete agent %d: %w", agentID, err)
	}
	s.logger.InfoContext(ctx, "Agent deleted", slog.Int64("agentID", agentID))
	return nil
}
