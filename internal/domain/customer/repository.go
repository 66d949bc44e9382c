package customer

import (
	"context"

	"cable-billing/internal/domain/connection"
)

type Repository interface {
	// CreateWithConnection assigns the customer number and stores the customer
	// together with its first connection in one transaction.
	CreateWithConnection(ctx context.Context, cust *Customer, conn *connection.Connection) error

	// Update stores the customer; a changed AreaID issues a customer number from the new area.
	Update(ctx context.Context, cust *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	// FindAll returns every customer, or only those of areaID when it is non-zero.
	FindAll(ctx context.Context, areaID int64) ([]*Customer, error)

	// Delete fails with apperrors.ErrReferentialIntegrity while connections reference the customer.
	Delete(ctx context.Context, customerID int64) error
}
