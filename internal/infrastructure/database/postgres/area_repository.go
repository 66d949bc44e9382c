package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cable-billing/internal/domain/area"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

type AreaRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ area.Repository = (*AreaRepository)(nil)

func NewAreaRepository(db DBPool, logger *slog.Logger) *AreaRepository {
	if db == nil {
		panic("DBPool cannot be nil for AreaRepository")
	}
	return &AreaRepository{db: db, logger: defaultLogger("AreaRepository", logger)}
}

func (r *AreaRepository) Save(ctx context.Context, a *area.Area) error {
	if a == nil {
		return fmt.Errorf("%w: area cannot be nil", apperrors.ErrInvalidArgument)
	}

	var (
		err   error
		start = time.Now()
	)
	if a.ID == 0 {
		err = r.db.QueryRow(ctx, `
        INSERT INTO areas (name, agent_id, collection_date, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())
        RETURNING id, created_at, updated_at`,
			a.Name, a.AgentID, a.CollectionDate,
		).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
		observe("CreateArea", start, err)
	} else {
		err = r.db.QueryRow(ctx, `
        UPDATE areas
        SET name = $1, agent_id = $2, collection_date = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING updated_at`,
			a.Name, a.AgentID, a.CollectionDate, a.ID,
		).Scan(&a.UpdatedAt)
		observe("UpdateArea", start, err)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		r.logger.WarnContext(ctx, "Failed to save area", slog.Any("error", err))
		return translateDBError(err, r.logger)
	}
	return nil
}

func (r *AreaRepository) FindByID(ctx context.Context, areaID int64) (*area.Area, error) {
	query := `
        SELECT id, name, agent_id, collection_date, created_at, updated_at
        FROM areas
        WHERE id = $1`

	var a area.Area
	start := time.Now()
	err := r.db.QueryRow(ctx, query, areaID).Scan(&a.ID, &a.Name, &a.AgentID, &a.CollectionDate, &a.CreatedAt, &a.UpdatedAt)
	observe("GetAreaByID", start, err)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Area not found", slog.Int64("areaID", areaID))
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return &a, nil
}

func (r *AreaRepository) FindAll(ctx context.Context, agentID int64) ([]*area.Area, error) {
	query := `
        SELECT id, name, agent_id, collection_date, created_at, updated_at
        FROM areas`
	args := []any{}
	if agentID != 0 {
		query += " WHERE agent_id = $1"
		args = append(args, agentID)
	}
	query += " ORDER BY name ASC"

	start := time.Now()
	rows, err := r.db.Query(ctx, query, args...)
	observe("ListAreas", start, err)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query areas", slog.Any("error", err))
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	areas := make([]*area.Area, 0)
	for rows.Next() {
		var a area.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.AgentID, &a.CollectionDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
		}
		areas = append(areas, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
	}
	return areas, nil
}

func (r *AreaRepository) Delete(ctx context.Context, areaID int64) error {
	start := time.Now()
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM areas WHERE id = $1`, areaID)
	observe("DeleteArea", start, err)
	if err != nil {
		return translateDBError(err, r.logger)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	r.logger.InfoContext(ctx, "Area deleted successfully", slog.Int64("areaID", areaID))
	return nil
}
