package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"cable-billing/internal/domain/agent"
	"cable-billing/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var agentColumns = []string{"id", "first_name", "last_name", "phone_number", "is_admin", "created_at", "updated_at"}

func TestAgentRepository_SaveNew(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)
	now := time.Now()

	a := &agent.Agent{FirstName: "Sai", LastName: "Kumar", PhoneNumber: "0771234567"}
	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO agents")).
		WithArgs("Sai", "Kumar", "0771234567", false).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	require.NoError(t, repo.Save(ctx, a))
	assert.Equal(t, int64(3), a.ID)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestAgentRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)

	a := &agent.Agent{ID: 9, FirstName: "Sai", LastName: "Kumar", PhoneNumber: "0771234567", IsAdmin: true}
	mockPool.ExpectQuery(regexp.QuoteMeta("UPDATE agents")).
		WithArgs("Sai", "Kumar", "0771234567", true, int64(9)).
		WillReturnError(pgx.ErrNoRows)

	assert.ErrorIs(t, repo.Save(ctx, a), apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestAgentRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)
	now := time.Now()

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM agents")).
		WillReturnRows(pgxmock.NewRows(agentColumns).
			AddRow(int64(1), "Jeya", "R", "0711111111", true, now, now).
			AddRow(int64(2), "Sai", "K", "0722222222", false, now, now))

	agents, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	assert.True(t, agents[0].IsAdmin)
	assert.Equal(t, "Sai", agents[1].FirstName)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestAgentRepository_FindByIDNotFound(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)

	mockPool.ExpectQuery(regexp.QuoteMeta("FROM agents")).WithArgs(int64(5)).WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindByID(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAgentRepository_DeleteRestricted(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)

	mockPool.ExpectExec(regexp.QuoteMeta("DELETE FROM agents")).WithArgs(int64(1)).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "areas_agent_id_fkey"})

	assert.ErrorIs(t, repo.Delete(ctx, 1), apperrors.ErrReferentialIntegrity)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestAgentRepository_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)

	mockPool.ExpectExec(regexp.QuoteMeta("DELETE FROM agents")).WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Delete(ctx, 1), apperrors.ErrNotFound)
}

func TestAgentRepository_SaveDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	mockPool := newMockPool(t)
	repo := NewAgentRepository(mockPool, logger)

	a := &agent.Agent{FirstName: "Seera", LastName: "Nathan", PhoneNumber: "0771234567"}
	mockPool.ExpectQuery(regexp.QuoteMeta("INSERT INTO agents")).
		WithArgs("Seera", "Nathan", "0771234567", false).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "agents_phone_number_key"})

	err := repo.Save(ctx, a)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
