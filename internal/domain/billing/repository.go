package billing

import (
	"context"

	"cable-billing/internal/domain/connection"

	"github.com/jackc/pgx/v5"
)

type Repository interface {
	BeginTx(ctx context.Context) (pgx.Tx, error)

	CommitTx(ctx context.Context, tx pgx.Tx) error

	RollbackTx(ctx context.Context, tx pgx.Tx) error

	// LockConnectionInTx loads the connection with a row lock held until tx ends.
	// Every bill write for a connection happens under this lock.
	LockConnectionInTx(ctx context.Context, tx pgx.Tx, connectionID int64) (*connection.Connection, error)

	SetConnectionActiveInTx(ctx context.Context, tx pgx.Tx, connectionID int64, active bool) error

	// FindLatestBillInTx returns nil without error when the connection has no bills.
	FindLatestBillInTx(ctx context.Context, tx pgx.Tx, connectionID int64) (*Bill, error)

	// InsertBillInTx returns apperrors.ErrConflict when a bill already starts on bill.FromDate.
	InsertBillInTx(ctx context.Context, tx pgx.Tx, bill *Bill) error

	FindBillsByConnection(ctx context.Context, connectionID int64) ([]Bill, error)
}

// PaymentTotals sums recorded payments.
type PaymentTotals interface {
	SumByConnection(ctx context.Context, connectionID int64) (int64, error)
}

type ConnectionFinder interface {
	FindByCustomer(ctx context.Context, customerID int64) ([]*connection.Connection, error)
}
