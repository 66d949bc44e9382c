package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/payment"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type PaymentRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ payment.Repository = (*PaymentRepository)(nil)

func NewPaymentRepository(db DBPool, logger *slog.Logger) *PaymentRepository {
	if db == nil {
		panic("DBPool cannot be nil for PaymentRepository")
	}
	return &PaymentRepository{db: db, logger: defaultLogger("PaymentRepository", logger)}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	query := `
        INSERT INTO payments (connection_id, employee_id, amount, paid_at)
        VALUES ($1, $2, $3, NOW())
        RETURNING id, paid_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query, p.ConnectionID, p.EmployeeID, p.Amount).Scan(&p.ID, &p.PaidAt)
	observe("CreatePayment", start, err)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to insert payment", slog.Int64("connectionID", p.ConnectionID), slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	return nil
}

func (r *PaymentRepository) FindByConnection(ctx context.Context, connectionID int64) ([]payment.Payment, error) {
	query := `
        SELECT id, connection_id, employee_id, amount, paid_at
        FROM payments
        WHERE connection_id = $1
        ORDER BY paid_at ASC, id ASC`
	return r.list(ctx, "ListConnectionPayments", query, connectionID)
}

func (r *PaymentRepository) FindByCustomer(ctx context.Context, customerID int64) ([]payment.Payment, error) {
	query := `
        SELECT p.id, p.connection_id, p.employee_id, p.amount, p.paid_at
        FROM payments p
        JOIN connections c ON c.id = p.connection_id
        WHERE c.customer_id = $1
        ORDER BY p.paid_at ASC, p.id ASC`
	return r.list(ctx, "ListCustomerPayments", query, customerID)
}

func (r *PaymentRepository) FindAll(ctx context.Context) ([]payment.Payment, error) {
	query := `
        SELECT id, connection_id, employee_id, amount, paid_at
        FROM payments
        ORDER BY paid_at DESC, id DESC`
	return r.list(ctx, "ListPayments", query)
}

func (r *PaymentRepository) FindRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]payment.Payment, error) {
	query := `
        SELECT id, connection_id, employee_id, amount, paid_at
        FROM (
            SELECT p.id, p.connection_id, p.employee_id, p.amount, p.paid_at
            FROM payments p
            JOIN connections c ON c.id = p.connection_id
            WHERE c.customer_id = $1
            ORDER BY p.paid_at DESC, p.id DESC
            LIMIT $2
        ) recent
        ORDER BY paid_at ASC, id ASC`
	return r.list(ctx, "ListRecentCustomerPayments", query, customerID, limit)
}

func (r *PaymentRepository) SumByConnection(ctx context.Context, connectionID int64) (int64, error) {
	var total int64
	start := time.Now()
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::BIGINT FROM payments WHERE connection_id = $1`, connectionID).
		Scan(&total)
	observe("SumConnectionPayments", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to sum payments", slog.Int64("connectionID", connectionID), slog.Any("error", err))
		return 0, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return total, nil
}

func (r *PaymentRepository) list(ctx context.Context, queryName, query string, args ...any) ([]payment.Payment, error) {
	start := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	observe(queryName, start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query payments", slog.String("query", queryName), slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (payment.Payment, error) {
		var p payment.Payment
		err := row.Scan(&p.ID, &p.ConnectionID, &p.EmployeeID, &p.Amount, &p.PaidAt)
		return p, err
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to scan payments", slog.String("query", queryName), slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return payments, nil
}
