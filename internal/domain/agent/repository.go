package agent

import "context"

type Repository interface {
	Save(ctx context.Context, agent *Agent) error

	FindByID(ctx context.Context, agentID int64) (*Agent, error)

	FindAll(ctx context.Context) ([]*Agent, error)

	// Delete fails with apperrors.ErrReferentialIntegrity while areas or payments reference the agent.
	Delete(ctx context.Context, agentID int64) error
}
