package dto

import (
	"fmt"
	"strings"
	"time"

	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
)

type CreateConnectionRequest struct {
	BoxNumber string `json:"boxNumber"`
	StartDate string `json:"startDate"`
}

func (r *CreateConnectionRequest) Validate() error {
	if strings.TrimSpace(r.BoxNumber) == "" {
		return fmt.Errorf("boxNumber cannot be empty")
	}
	_, err := ParseDate("startDate", r.StartDate)
	return err
}

type ConnectionResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	Active        bool      `json:"active"`
	StartDate     string    `json:"startDate"`
	BoxNumber     string    `json:"boxNumber"`
	HasDigitalBox bool      `json:"hasDigitalBox"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewConnectionResponse(c *connection.Connection) ConnectionResponse {
	if c == nil {
		return ConnectionResponse{}
	}
	return ConnectionResponse{
		ID:            formatID(c.ID),
		CustomerID:    formatID(c.CustomerID),
		Active:        c.Active,
		StartDate:     FormatDate(c.StartDate),
		BoxNumber:     c.BoxNumber,
		HasDigitalBox: c.HasDigitalBox,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func NewConnectionListResponse(conns []*connection.Connection) []ConnectionResponse {
	resp := make([]ConnectionResponse, 0, len(conns))
	for _, c := range conns {
		resp = append(resp, NewConnectionResponse(c))
	}
	return resp
}

// ToggleResponse reports the connection state together with the bill written for the gap, if any.
type ToggleResponse struct {
	Connection ConnectionResponse `json:"connection"`
	Bill       *BillResponse      `json:"bill,omitempty"`
}

func NewToggleResponse(c *connection.Connection, b *billing.Bill) ToggleResponse {
	resp := ToggleResponse{Connection: NewConnectionResponse(c)}
	if b != nil {
		bill := NewBillResponse(*b)
		resp.Bill = &bill
	}
	return resp
}

// GenerateBillRequest is optional; an empty body bills the next full period at the tariff fee.
type GenerateBillRequest struct {
	EndDate     *string `json:"endDate,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (r *GenerateBillRequest) Validate() error {
	if r.EndDate != nil {
		if _, err := ParseDate("endDate", *r.EndDate); err != nil {
			return err
		}
	}
	if r.Amount != nil {
		if _, err := ParseMoney(*r.Amount); err != nil {
			return err
		}
	}
	switch billing.Description(r.Description) {
	case "", billing.DescriptionMonthly, billing.DescriptionZeroDisconnection, billing.DescriptionZeroReconnection:
		return nil
	default:
		return fmt.Errorf("unknown description %q", r.Description)
	}
}

func (r *GenerateBillRequest) Options() billing.GenerateOptions {
	var opts billing.GenerateOptions
	if r.EndDate != nil {
		end, _ := ParseDate("endDate", *r.EndDate)
		opts.EndDate = &end
	}
	if r.Amount != nil {
		amount, _ := ParseMoney(*r.Amount)
		opts.Amount = &amount
	}
	opts.Description = billing.Description(r.Description)
	return opts
}

type BillResponse struct {
	ID           string    `json:"id"`
	ConnectionID string    `json:"connectionId"`
	FromDate     string    `json:"fromDate"`
	ToDate       string    `json:"toDate"`
	Days         int       `json:"days"`
	Amount       string    `json:"amount"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewBillResponse(b billing.Bill) BillResponse {
	return BillResponse{
		ID:           formatID(b.ID),
		ConnectionID: formatID(b.ConnectionID),
		FromDate:     FormatDate(b.FromDate),
		ToDate:       FormatDate(b.ToDate),
		Days:         b.Days(),
		Amount:       FormatMoney(b.Amount),
		Description:  string(b.Description),
		CreatedAt:    b.CreatedAt,
	}
}

func NewBillListResponse(bills []billing.Bill) []BillResponse {
	resp := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		resp = append(resp, NewBillResponse(b))
	}
	return resp
}

type BalanceResponse struct {
	ConnectionID string `json:"connectionId"`
	Balance      string `json:"balance"`
}
