package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

// BillRepository stores bills. All writes go through a transaction that first
// locks the connection row, so bill generation for one connection is serialized.
type BillRepository struct {
	txHelper
}

var _ billing.Repository = (*BillRepository)(nil)

func NewBillRepository(db DBPool, logger *slog.Logger) *BillRepository {
	if db == nil {
		panic("DBPool cannot be nil for BillRepository")
	}
	return &BillRepository{txHelper{db: db, logger: defaultLogger("BillRepository", logger)}}
}

func (r *BillRepository) LockConnectionInTx(ctx context.Context, tx pgx.Tx, connectionID int64) (*connection.Connection, error) {
	query := `
        SELECT ` + connectionColumns + `
        FROM connections c
        JOIN customers cu ON cu.id = c.customer_id
        WHERE c.id = $1
        FOR UPDATE OF c`

	start := time.Now()
	conn, err := scanConnection(tx.QueryRow(ctx, query, connectionID))
	observe("LockConnection", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Connection not found", slog.Int64("connectionID", connectionID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to lock connection", slog.Int64("connectionID", connectionID), slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return conn, nil
}

func (r *BillRepository) SetConnectionActiveInTx(ctx context.Context, tx pgx.Tx, connectionID int64, active bool) error {
	start := time.Now()
	cmdTag, err := tx.Exec(ctx, `UPDATE connections SET active = $1, updated_at = NOW() WHERE id = $2`, active, connectionID)
	observe("SetConnectionActive", start, err)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BillRepository) FindLatestBillInTx(ctx context.Context, tx pgx.Tx, connectionID int64) (*billing.Bill, error) {
	query := `
        SELECT id, connection_id, from_date, to_date, amount, description, created_at
        FROM bills
        WHERE connection_id = $1
        ORDER BY to_date DESC, id DESC
        LIMIT 1`

	start := time.Now()
	b, err := scanBill(tx.QueryRow(ctx, query, connectionID))
	observe("GetLatestBill", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to get latest bill", slog.Int64("connectionID", connectionID), slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return b, nil
}

func (r *BillRepository) InsertBillInTx(ctx context.Context, tx pgx.Tx, bill *billing.Bill) error {
	query := `
        INSERT INTO bills (connection_id, from_date, to_date, amount, description, created_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id, created_at`

	start := time.Now()
	err := tx.QueryRow(ctx, query, bill.ConnectionID, bill.FromDate, bill.ToDate, bill.Amount, string(bill.Description)).
		Scan(&bill.ID, &bill.CreatedAt)
	observe("InsertBill", start, err)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to insert bill",
			slog.Int64("connectionID", bill.ConnectionID), slog.Time("fromDate", bill.FromDate), slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	return nil
}

func (r *BillRepository) FindBillsByConnection(ctx context.Context, connectionID int64) ([]billing.Bill, error) {
	query := `
        SELECT id, connection_id, from_date, to_date, amount, description, created_at
        FROM bills
        WHERE connection_id = $1
        ORDER BY from_date ASC, id ASC`

	start := time.Now()
	rows, err := r.db.Query(ctx, query, connectionID)
	observe("ListBills", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query bills", slog.Int64("connectionID", connectionID), slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	bills := make([]billing.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		bills = append(bills, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return bills, nil
}

func scanBill(row pgx.Row) (*billing.Bill, error) {
	var (
		b           billing.Bill
		description string
	)
	if err := row.Scan(&b.ID, &b.ConnectionID, &b.FromDate, &b.ToDate, &b.Amount, &description, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.Description = billing.Description(description)
	return &b, nil
}
