package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/connection"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const connectionColumns = `c.id, c.customer_id, c.active, c.start_date, c.box_number, c.created_at, c.updated_at,
            cu.has_digital_box`

type ConnectionRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ connection.Repository = (*ConnectionRepository)(nil)

func NewConnectionRepository(db DBPool, logger *slog.Logger) *ConnectionRepository {
	if db == nil {
		panic("DBPool cannot be nil for ConnectionRepository")
	}
	return &ConnectionRepository{db: db, logger: defaultLogger("ConnectionRepository", logger)}
}

func (r *ConnectionRepository) Create(ctx context.Context, conn *connection.Connection) error {
	query := `
        INSERT INTO connections (customer_id, active, start_date, box_number, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query, conn.CustomerID, conn.Active, conn.StartDate, conn.BoxNumber).
		Scan(&conn.ID, &conn.CreatedAt, &conn.UpdatedAt)
	observe("CreateConnection", start, err)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to insert connection", slog.Int64("customerID", conn.CustomerID), slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	r.logger.InfoContext(ctx, "Connection inserted successfully", slog.Int64("connectionID", conn.ID))
	return nil
}

func (r *ConnectionRepository) FindByID(ctx context.Context, connectionID int64) (*connection.Connection, error) {
	query := `
        SELECT ` + connectionColumns + `
        FROM connections c
        JOIN customers cu ON cu.id = c.customer_id
        WHERE c.id = $1`

	start := time.Now()
	conn, err := scanConnection(r.db.QueryRow(ctx, query, connectionID))
	observe("GetConnectionByID", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Connection not found", slog.Int64("connectionID", connectionID))
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return conn, nil
}

func (r *ConnectionRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*connection.Connection, error) {
	query := `
        SELECT ` + connectionColumns + `
        FROM connections c
        JOIN customers cu ON cu.id = c.customer_id
        WHERE c.customer_id = $1
        ORDER BY c.id ASC`

	start := time.Now()
	rows, err := r.db.Query(ctx, query, customerID)
	observe("ListCustomerConnections", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query connections", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	conns := make([]*connection.Connection, 0)
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return conns, nil
}

func (r *ConnectionRepository) FindActiveIDs(ctx context.Context) ([]int64, error) {
	logCtx := r.logger.With(slog.String("operation", "FindActiveIDs"))
	logCtx.DebugContext(ctx, "Attempting to get all active connection IDs")

	start := time.Now()
	rows, err := r.db.Query(ctx, `SELECT id FROM connections WHERE active = TRUE ORDER BY id`)
	observe("ListActiveConnectionIDs", start, err)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to query active connection IDs", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to collect active connection IDs", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	logCtx.DebugContext(ctx, "Active connection IDs loaded", slog.Int("count", len(ids)))
	return ids, nil
}

func scanConnection(row pgx.Row) (*connection.Connection, error) {
	var c connection.Connection
	err := row.Scan(&c.ID, &c.CustomerID, &c.Active, &c.StartDate, &c.BoxNumber, &c.CreatedAt, &c.UpdatedAt, &c.HasDigitalBox)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
