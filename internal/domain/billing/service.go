package billing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cable-billing/internal/domain/connection"
	"cable-billing/internal/event"
	"cable-billing/internal/infrastructure/monitoring"

	"github.com/jackc/pgx/v5"
)

type Service interface {
	// GenerateBill writes exactly one bill following the latest one.
	GenerateBill(ctx context.Context, connectionID int64, opts GenerateOptions) (*Bill, error)

	// Reconcile writes the monthly bills an active connection is missing as of asOf.
	// A future asOf is treated as now.
	Reconcile(ctx context.Context, connectionID int64, asOf time.Time) ([]Bill, error)

	// ListBills reads stored bills without generating any.
	ListBills(ctx context.Context, connectionID int64) ([]Bill, error)

	// Bills reconciles as of now and then lists.
	Bills(ctx context.Context, connectionID int64) ([]Bill, error)

	CustomerBills(ctx context.Context, customerID int64) ([]Bill, error)

	Balance(ctx context.Context, connectionID int64) (int64, error)

	TotalUnpaid(ctx context.Context, customerID int64) (int64, error)

	// SetConnectionActive toggles a connection and writes the closing bill for the gap.
	SetConnectionActive(ctx context.Context, connectionID int64, active bool) (*connection.Connection, *Bill, error)
}

var _ Service = (*billingService)(nil)

type billingService struct {
	repo        Repository
	payments    PaymentTotals
	connections ConnectionFinder
	tariff      Tariff
	pub         event.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

func NewService(repo Repository, payments PaymentTotals, connections ConnectionFinder, tariff Tariff,
	publisher event.EventPublisher, logger *slog.Logger) Service {
	if repo == nil || payments == nil || connections == nil {
		panic("billing service dependencies cannot be nil")
	}
	if err := tariff.Validate(); err != nil {
		panic(err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &billingService{
		repo:        repo,
		payments:    payments,
		connections: connections,
		tariff:      tariff,
		pub:         publisher,
		logger:      logger.With(slog.String("component", "billingService")),
		now:         time.Now,
	}
}

func (s *billingService) GenerateBill(ctx context.Context, connectionID int64, opts GenerateOptions) (bill *Bill, err error) {
	logCtx := s.logger.With(slog.Int64("connectionID", connectionID))
	logCtx.InfoContext(ctx, "Generating bill", slog.String("description", string(opts.Description)))

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.repo.RollbackTx(ctx, tx)
		}
	}()

	conn, err := s.repo.LockConnectionInTx(ctx, tx, connectionID)
	if err != nil {
		return nil, err
	}

	bill, err = s.nextBillInTx(ctx, tx, conn, opts)
	if err != nil {
		return nil, err
	}

	if err = s.repo.CommitTx(ctx, tx); err != nil {
		return nil, err
	}

	s.afterBillsWritten(ctx, []Bill{*bill})
	logCtx.InfoContext(ctx, "Bill generated", slog.Int64("billID", bill.ID), slog.Int64("amount", bill.Amount))
	return bill, nil
}

func (s *billingService) Reconcile(ctx context.Context, connectionID int64, asOf time.Time) (created []Bill, err error) {
	logCtx := s.logger.With(slog.Int64("connectionID", connectionID))
	if now := s.now(); asOf.After(now) {
		logCtx.WarnContext(ctx, "Reconcile date is in the future, using now", slog.Time("asOf", asOf))
		asOf = now
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.repo.RollbackTx(ctx, tx)
		}
	}()

	conn, err := s.repo.LockConnectionInTx(ctx, tx, connectionID)
	if err != nil {
		return nil, err
	}

	latest, err := s.repo.FindLatestBillInTx(ctx, tx, connectionID)
	if err != nil {
		return nil, err
	}

	created, err = PlanBackfill(conn, latest, s.tariff, asOf)
	if err != nil {
		return nil, err
	}

	for i := range created {
		if err = s.repo.InsertBillInTx(ctx, tx, &created[i]); err != nil {
			logCtx.ErrorContext(ctx, "Failed to insert backfilled bill", slog.Int("index", i), slog.Any("error", err))
			return nil, err
		}
	}

	if err = s.repo.CommitTx(ctx, tx); err != nil {
		return nil, err
	}

	if len(created) > 0 {
		s.afterBillsWritten(ctx, created)
		logCtx.InfoContext(ctx, "Connection reconciled", slog.Int("billsCreated", len(created)))
	}
	return created, nil
}

func (s *billingService) ListBills(ctx context.Context, connectionID int64) ([]Bill, error) {
	bills, err := s.repo.FindBillsByConnection(ctx, connectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for connection %d: %w", connectionID, err)
	}
	return bills, nil
}

func (s *billingService) Bills(ctx context.Context, connectionID int64) ([]Bill, error) {
	if _, err := s.Reconcile(ctx, connectionID, s.now()); err != nil {
		return nil, err
	}
	return s.ListBills(ctx, connectionID)
}

func (s *billingService) CustomerBills(ctx context.Context, customerID int64) ([]Bill, error) {
	conns, err := s.connections.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load connections for customer %d: %w", customerID, err)
	}

	all := make([]Bill, 0)
	for _, conn := range conns {
		bills, err := s.Bills(ctx, conn.ID)
		if err != nil {
			return nil, err
		}
		all = append(all, bills...)
	}
	return all, nil
}

func (s *billingService) Balance(ctx context.Context, connectionID int64) (int64, error) {
	bills, err := s.Bills(ctx, connectionID)
	if err != nil {
		return 0, err
	}
	paid, err := s.payments.SumByConnection(ctx, connectionID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments for connection %d: %w", connectionID, err)
	}
	return SumBills(bills) - paid, nil
}

func (s *billingService) TotalUnpaid(ctx context.Context, customerID int64) (int64, error) {
	conns, err := s.connections.FindByCustomer(ctx, customerID)
	if err != nil {
		return 0, fmt.Errorf("failed to load connections for customer %d: %w", customerID, err)
	}

	var total int64
	for _, conn := range conns {
		balance, err := s.Balance(ctx, conn.ID)
		if err != nil {
			return 0, err
		}
		total += balance
	}
	return total, nil
}

func (s *billingService) SetConnectionActive(ctx context.Context, connectionID int64, active bool) (conn *connection.Connection, bill *Bill, err error) {
	logCtx := s.logger.With(slog.Int64("connectionID", connectionID), slog.Bool("active", active))

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if err != nil {
			_ = s.repo.RollbackTx(ctx, tx)
		}
	}()

	conn, err = s.repo.LockConnectionInTx(ctx, tx, connectionID)
	if err != nil {
		return nil, nil, err
	}

	if conn.Active == active {
		if err = s.repo.CommitTx(ctx, tx); err != nil {
			return nil, nil, err
		}
		logCtx.InfoContext(ctx, "Connection already in requested state")
		return conn, nil, nil
	}

	if err = s.repo.SetConnectionActiveInTx(ctx, tx, connectionID, active); err != nil {
		return nil, nil, err
	}
	conn.Active = active

	now := s.now()
	opts := GenerateOptions{EndDate: &now, Description: DescriptionZeroDisconnection}
	if active {
		zero := int64(0)
		opts = GenerateOptions{EndDate: &now, Amount: &zero, Description: DescriptionZeroReconnection}
	}

	bill, err = s.nextBillInTx(ctx, tx, conn, opts)
	if errors.Is(err, ErrPeriodAlreadyBilled) {
		logCtx.InfoContext(ctx, "No closing bill needed, period already billed")
		bill, err = nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	if err = s.repo.CommitTx(ctx, tx); err != nil {
		return nil, nil, err
	}

	if bill != nil {
		s.afterBillsWritten(ctx, []Bill{*bill})
	}
	statusEvent := event.ConnectionStatusChangedEvent{
		ConnectionID: conn.ID,
		CustomerID:   conn.CustomerID,
		Active:       active,
		Timestamp:    now,
	}
	if pubErr := s.pub.PublishConnectionStatusChanged(ctx, statusEvent); pubErr != nil {
		logCtx.ErrorContext(ctx, "Failed to publish connection status event", slog.Any("error", pubErr))
	}

	logCtx.InfoContext(ctx, "Connection status changed")
	return conn, bill, nil
}

func (s *billingService) nextBillInTx(ctx context.Context, tx pgx.Tx, conn *connection.Connection, opts GenerateOptions) (*Bill, error) {
	latest, err := s.repo.FindLatestBillInTx(ctx, tx, conn.ID)
	if err != nil {
		return nil, err
	}

	bill, err := NextBill(conn, latest, s.tariff, opts)
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertBillInTx(ctx, tx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *billingService) afterBillsWritten(ctx context.Context, bills []Bill) {
	for _, b := range bills {
		monitoring.RecordBillGenerated(string(b.Description))

		evt := event.BillGeneratedEvent{
			BillID:       b.ID,
			ConnectionID: b.ConnectionID,
			FromDate:     b.FromDate,
			ToDate:       b.ToDate,
			Amount:       b.Amount,
			Description:  string(b.Description),
			Timestamp:    s.now(),
		}
		if err := s.pub.PublishBillGenerated(ctx, evt); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish bill generated event", slog.Int64("billID", b.ID), slog.Any("error", err))
		}
	}
}
