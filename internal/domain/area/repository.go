package area

import "context"

type Repository interface {
	Save(ctx context.Context, area *Area) error

	FindByID(ctx context.Context, areaID int64) (*Area, error)

	// FindAll returns every area, or only the areas of agentID when it is non-zero.
	FindAll(ctx context.Context, agentID int64) ([]*Area, error)

	// Delete fails with apperrors.ErrReferentialIntegrity while customers reference the area.
	Delete(ctx context.Context, areaID int64) error
}
