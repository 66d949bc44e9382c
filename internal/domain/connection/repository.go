package connection

import "context"

type Repository interface {
	Create(ctx context.Context, conn *Connection) error

	FindByID(ctx context.Context, connectionID int64) (*Connection, error)

	FindByCustomer(ctx context.Context, customerID int64) ([]*Connection, error)

	FindActiveIDs(ctx context.Context) ([]int64, error)
}
