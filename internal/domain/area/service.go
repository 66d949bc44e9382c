package area

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cable-billing/internal/pkg/apperrors"
)

type Service interface {
	CreateArea(ctx context.Context, name string, agentID int64, collectionDate *int) (*Area, error)
	GetArea(ctx context.Context, areaID int64) (*Area, error)
	ListAreas(ctx context.Context, agentID int64) ([]*Area, error)
	UpdateArea(ctx context.Context, areaID int64, name string, agentID int64, collectionDate *int) (*Area, error)
	DeleteArea(ctx context.Context, areaID int64) error
}

var _ Service = (*areaService)(nil)

type areaService struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	if repo == nil {
		panic("area repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	return &areaService{
		repo:   repo,
		logger: logger.With(slog.String("component", "areaService")),
	}
}

func (s *areaService) CreateArea(ctx context.Context, name string, agentID int64, collectionDate *int) (*Area, error) {
	a, err := NewArea(name, agentID, collectionDate)
	if err != nil {
		s.logger.WarnContext(ctx, "Area validation failed", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Save(ctx, a); err != nil {
		s.logger.ErrorContext(ctx, "Failed to save area", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save area: %w", err)
	}
	s.logger.InfoContext(ctx, "Area created", slog.Int64("areaID", a.ID), slog.Int("collectionDate", a.CollectionDate))
	return a, nil
}

func (s *areaService) GetArea(ctx context.Context, areaID int64) (*Area, error) {
	if areaID <= 0 {
		return nil, fmt.Errorf("%w: area ID must be positive", apperrors.ErrInvalidArgument)
	}
	a, err := s.repo.FindByID(ctx, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get area %d: %w", areaID, err)
	}
	return a, nil
}

func (s *areaService) ListAreas(ctx context.Context, agentID int64) ([]*Area, error) {
	areas, err := s.repo.FindAll(ctx, agentID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list areas", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return areas, nil
}

func (s *areaService) UpdateArea(ctx context.Context, areaID int64, name string, agentID int64, collectionDate *int) (*Area, error) {
	existing, err := s.GetArea(ctx, areaID)
	if err != nil {
		return nil, err
	}

	updated, err := NewArea(name, agentID, collectionDate)
	if err != nil {
		return nil, err
	}
	if collectionDate == nil {
		updated.CollectionDate = existing.CollectionDate
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Save(ctx, updated); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update area", slog.Int64("areaID", areaID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to update area %d: %w", areaID, err)
	}
	return updated, nil
}

func (s *areaService) DeleteArea(ctx context.Context, areaID int64) error {
	if areaID <= 0 {
		return fmt.Errorf("%w: area ID must be positive", apperrors.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, areaID); err != nil {
		s.logger.WarnContext(ctx, "Area delete rejected", slog.Int64("areaID", areaID), slog.Any("error", err))
		return fmt.Errorf("failed to delete area %d: %w", areaID, err)
	}
	s.logger.InfoContext(ctx, "Area deleted", slog.Int64("areaID", areaID))
	return nil
}
