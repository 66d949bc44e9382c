package connection

import (
	"strings"
	"time"

	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/dates"
	"cable-billing/internal/pkg/validate"
)

// Connection is one service line of a customer. Bills accrue only while it is active.
type Connection struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Active     bool      `json:"active"`
	StartDate  time.Time `json:"startDate"`
	BoxNumber  string    `json:"boxNumber"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// HasDigitalBox is read from the owning customer and selects the tariff.
	HasDigitalBox bool `json:"hasDigitalBox"`
}

func NewConnection(customerID int64, boxNumber string, startDate time.Time) (*Connection, error) {
	c := &Connection{
		CustomerID: customerID,
		Active:     true,
		StartDate:  dates.Date(startDate),
		BoxNumber:  strings.TrimSpace(boxNumber),
	}
	if err := validate.NotBlank("boxNumber", c.BoxNumber); err != nil {
		return nil, err
	}
	if startDate.IsZero() {
		return nil, apperrors.NewValidationError("startDate", "cannot be empty")
	}
	return c, nil
}
