package dto

import (
	"time"

	"cable-billing/internal/domain/payment"
)

type RecordPaymentRequest struct {
	Amount string `json:"amount"`
	// EmployeeID defaults to the authenticated employee.
	EmployeeID int64 `json:"employeeId,omitempty"`
}

func (r *RecordPaymentRequest) Validate() error {
	_, err := ParseMoney(r.Amount)
	return err
}

type PaymentResponse struct {
	ID           string    `json:"id"`
	ConnectionID string    `json:"connectionId"`
	EmployeeID   string    `json:"employeeId"`
	Amount       string    `json:"amount"`
	PaidAt       time.Time `json:"paidAt"`
}

func NewPaymentResponse(p payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           formatID(p.ID),
		ConnectionID: formatID(p.ConnectionID),
		EmployeeID:   formatID(p.EmployeeID),
		Amount:       FormatMoney(p.Amount),
		PaidAt:       p.PaidAt,
	}
}

func NewPaymentListResponse(payments []payment.Payment) []PaymentResponse {
	resp := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, NewPaymentResponse(p))
	}
	return resp
}
