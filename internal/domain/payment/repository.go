package payment

import "context"

type Repository interface {
	// Create stores the payment and sets ID and PaidAt.
	Create(ctx context.Context, p *Payment) error

	FindByConnection(ctx context.Context, connectionID int64) ([]Payment, error)

	FindByCustomer(ctx context.Context, customerID int64) ([]Payment, error)

	FindAll(ctx context.Context) ([]Payment, error)

	SumByConnection(ctx context.Context, connectionID int64) (int64, error)

	// FindRecentByCustomer returns up to limit of the latest payments, oldest first.
	FindRecentByCustomer(ctx context.Context, customerID int64, limit int) ([]Payment, error)
}
