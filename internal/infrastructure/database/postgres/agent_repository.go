package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/agent"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type AgentRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ agent.Repository = (*AgentRepository)(nil)

func NewAgentRepository(db DBPool, logger *slog.Logger) *AgentRepository {
	if db == nil {
		panic("DBPool cannot be nil for AgentRepository")
	}
	return &AgentRepository{db: db, logger: defaultLogger("AgentRepository", logger)}
}

func (r *AgentRepository) Save(ctx context.Context, a *agent.Agent) error {
	if a == nil {
		return fmt.Errorf("%w: agent cannot be nil", apperrors.ErrInvalidArgument)
	}
	if a.ID == 0 {
		return r.create(ctx, a)
	}
	return r.update(ctx, a)
}

func (r *AgentRepository) create(ctx context.Context, a *agent.Agent) error {
	query := `
        INSERT INTO agents (first_name, last_name, phone_number, is_admin, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query, a.FirstName, a.LastName, a.PhoneNumber, a.IsAdmin).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	observe("CreateAgent", start, err)
	if err != nil {
		return translateDBError(err, r.logger)
	}

	r.logger.InfoContext(ctx, "Agent inserted successfully", slog.Int64("agentID", a.ID))
	return nil
}

func (r *AgentRepository) update(ctx context.Context, a *agent.Agent) error {
	query := `
        UPDATE agents
        SET first_name = $1,
            last_name = $2,
            phone_number = $3,
            is_admin = $4,
            updated_at = NOW()
        WHERE id = $5
        RETURNING updated_at`

	start := time.Now()
	err := r.db.QueryRow(ctx, query, a.FirstName, a.LastName, a.PhoneNumber, a.IsAdmin, a.ID).Scan(&a.UpdatedAt)
	observe("UpdateAgent", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Update affected zero rows, agent likely not found", slog.Int64("agentID", a.ID))
			return apperrors.ErrNotFound
		}
		return translateDBError(err, r.logger)
	}
	return nil
}

func (r *AgentRepository) FindByID(ctx context.Context, agentID int64) (*agent.Agent, error) {
	query := `
        SELECT id, first_name, last_name, phone_number, is_admin, created_at, updated_at
        FROM agents
        WHERE id = $1`

	var a agent.Agent
	start := time.Now()
	err := r.db.QueryRow(ctx, query, agentID).Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.PhoneNumber, &a.IsAdmin, &a.CreatedAt, &a.UpdatedAt,
	)
	observe("GetAgentByID", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Agent not found", slog.Int64("agentID", agentID))
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to get agent by ID", slog.Int64("agentID", agentID), slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &a, nil
}

func (r *AgentRepository) FindAll(ctx context.Context) ([]*agent.Agent, error) {
	query := `
        SELECT id, first_name, last_name, phone_number, is_admin, created_at, updated_at
        FROM agents
        ORDER BY id ASC`

	start := time.Now()
	rows, err := r.db.Query(ctx, query)
	observe("ListAgents", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query agents", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	agents := make([]*agent.Agent, 0)
	for rows.Next() {
		var a agent.Agent
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.PhoneNumber, &a.IsAdmin, &a.CreatedAt, &a.UpdatedAt); err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan agent row", slog.Any("error", err))
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		agents = append(agents, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return agents, nil
}

func (r *AgentRepository) Delete(ctx context.Context, agentID int64) error {
	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM agents WHERE id = $1`, agentID)
	observe("DeleteAgent", start, err)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, agent likely not found", slog.Int64("agentID", agentID))
		return apperrors.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Agent deleted successfully", slog.Int64("agentID", agentID))
	return nil
}
