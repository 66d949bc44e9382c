package payment

import (
	"fmt"
	"time"

	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/validate"
)

// Payment is money collected against a connection by an agent.
type Payment struct {
	ID           int64     `json:"id"`
	ConnectionID int64     `json:"connectionId"`
	EmployeeID   int64     `json:"employeeId"`
	Amount       int64     `json:"amount"`
	PaidAt       time.Time `json:"paidAt"`
}

func NewPayment(connectionID, employeeID, amount int64) (*Payment, error) {
	if connectionID <= 0 {
		return nil, fmt.Errorf("%w: connection ID must be positive", apperrors.ErrInvalidArgument)
	}
	if employeeID <= 0 {
		return nil, apperrors.NewValidationError("employeeId", "payments must be collected by an employee")
	}
	if err := validate.Amount("amount", amount); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidPaymentAmount, err)
	}
	return &Payment{
		ConnectionID: connectionID,
		EmployeeID:   employeeID,
		Amount:       amount,
	}, nil
}
