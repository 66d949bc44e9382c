package payment

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cable-billing/internal/event"
	"cable-billing/internal/infrastructure/monitoring"
)

type Service interface {
	RecordPayment(ctx context.Context, connectionID, employeeID, amount int64) (*Payment, error)
	ListConnectionPayments(ctx context.Context, connectionID int64) ([]Payment, error)
	ListCustomerPayments(ctx context.Context, customerID int64) ([]Payment, error)
	ListAllPayments(ctx context.Context) ([]Payment, error)
}

var _ Service = (*paymentService)(nil)

type paymentService struct {
	repo   Repository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewService(repo Repository, publisher event.EventPublisher, logger *slog.Logger) Service {
	if repo == nil {
		panic("payment repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &paymentService{
		repo:   repo,
		pub:    publisher,
		logger: logger.With(slog.String("component", "paymentService")),
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, connectionID, employeeID, amount int64) (*Payment, error) {
	logCtx := s.logger.With(slog.Int64("connectionID", connectionID), slog.Int64("employeeID", employeeID))
	logCtx.InfoContext(ctx, "Recording payment", slog.Int64("amount", amount))

	p, err := NewPayment(connectionID, employeeID, amount)
	if err != nil {
		logCtx.WarnContext(ctx, "Payment validation failed", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		logCtx.ErrorContext(ctx, "Failed to store payment", slog.Any("error", err))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	monitoring.RecordPaymentRecorded()

	evt := event.PaymentRecordedEvent{
		PaymentID:    p.ID,
		ConnectionID: p.ConnectionID,
		EmployeeID:   p.EmployeeID,
		Amount:       p.Amount,
		PaidAt:       p.PaidAt,
		Timestamp:    time.Now(),
	}
	if err := s.pub.PublishPaymentRecorded(ctx, evt); err != nil {
		logCtx.ErrorContext(ctx, "Failed to publish payment recorded event", slog.Any("error", err))
	}

	logCtx.InfoContext(ctx, "Payment recorded", slog.Int64("paymentID", p.ID))
	return p, nil
}

func (s *paymentService) ListConnectionPayments(ctx context.Context, connectionID int64) ([]Payment, error) {
	payments, err := s.repo.FindByConnection(ctx, connectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for connection %d: %w", connectionID, err)
	}
	return payments, nil
}

func (s *paymentService) ListCustomerPayments(ctx context.Context, customerID int64) ([]Payment, error) {
	payments, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for customer %d: %w", customerID, err)
	}
	return payments, nil
}

func (s *paymentService) ListAllPayments(ctx context.Context) ([]Payment, error) {
	payments, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list payments", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
