package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/authz"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

// SubjectResolver reads the ownership chain connection -> customer -> area -> agent.
type SubjectResolver struct {
	db     DBPool
	logger *slog.Logger
}

var _ authz.SubjectResolver = (*SubjectResolver)(nil)

func NewSubjectResolver(db DBPool, logger *slog.Logger) *SubjectResolver {
	if db == nil {
		panic("DBPool cannot be nil for SubjectResolver")
	}
	return &SubjectResolver{db: db, logger: defaultLogger("SubjectResolver", logger)}
}

func (r *SubjectResolver) AreaSubject(ctx context.Context, areaID int64) (authz.Subject, error) {
	var s authz.Subject
	err := r.resolve(ctx, "ResolveAreaSubject",
		`SELECT agent_id FROM areas WHERE id = $1`, areaID, &s.AgentID)
	return s, err
}

func (r *SubjectResolver) CustomerSubject(ctx context.Context, customerID int64) (authz.Subject, error) {
	s := authz.Subject{CustomerID: customerID}
	err := r.resolve(ctx, "ResolveCustomerSubject", `
        SELECT a.agent_id
        FROM customers cu
        JOIN areas a ON a.id = cu.area_id
        WHERE cu.id = $1`, customerID, &s.AgentID)
	return s, err
}

func (r *SubjectResolver) ConnectionSubject(ctx context.Context, connectionID int64) (authz.Subject, error) {
	var s authz.Subject
	err := r.resolve(ctx, "ResolveConnectionSubject", `
        SELECT cu.id, a.agent_id
        FROM connections c
        JOIN customers cu ON cu.id = c.customer_id
        JOIN areas a ON a.id = cu.area_id
        WHERE c.id = $1`, connectionID, &s.CustomerID, &s.AgentID)
	return s, err
}

func (r *SubjectResolver) resolve(ctx context.Context, queryName, query string, id int64, dest ...any) error {
	start := time.Now()
	err := r.db.QueryRow(ctx, query, id).Scan(dest...)
	observe(queryName, start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to resolve access subject", slog.String("query", queryName), slog.Any("error", err))
		return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return nil
}
