package connection

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cable-billing/internal/pkg/apperrors"
)

type Service interface {
	AddConnection(ctx context.Context, customerID int64, boxNumber string, startDate time.Time) (*Connection, error)
	GetConnection(ctx context.Context, connectionID int64) (*Connection, error)
	ListCustomerConnections(ctx context.Context, customerID int64) ([]*Connection, error)
}

var _ Service = (*connectionService)(nil)

type connectionService struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	if repo == nil {
		panic("connection repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &connectionService{
		repo:   repo,
		logger: logger.With(slog.String("component", "connectionService")),
	}
}

func (s *connectionService) AddConnection(ctx context.Context, customerID int64, boxNumber string, startDate time.Time) (*Connection, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer ID must be positive", apperrors.ErrInvalidArgument)
	}
	conn, err := NewConnection(customerID, boxNumber, startDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, conn); err != nil {
		s.logger.ErrorContext(ctx, "Failed to create connection", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	s.logger.InfoContext(ctx, "Connection created", slog.Int64("connectionID", conn.ID), slog.Int64("customerID", customerID))
	return conn, nil
}

func (s *connectionService) GetConnection(ctx context.Context, connectionID int64) (*Connection, error) {
	if connectionID <= 0 {
		return nil, fmt.Errorf("%w: connection ID must be positive", apperrors.ErrInvalidArgument)
	}
	conn, err := s.repo.FindByID(ctx, connectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection %d: %w", connectionID, err)
	}
	return conn, nil
}

func (s *connectionService) ListCustomerConnections(ctx context.Context, customerID int64) ([]*Connection, error) {
	conns, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list connections", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to list connections for customer %d: %w", customerID, err)
	}
	return conns, nil
}
