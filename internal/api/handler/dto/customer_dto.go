package dto

import (
	"fmt"
	"strings"
	"time"

	"cable-billing/internal/domain/customer"
)

type CreateCustomerRequest struct {
	AreaID              int64  `json:"areaId"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	PhoneNumber         string `json:"phoneNumber"`
	Address             string `json:"address"`
	IdentityNo          string `json:"identityNo"`
	HasDigitalBox       bool   `json:"hasDigitalBox"`
	OfferPowerIntake    bool   `json:"offerPowerIntake"`
	ConnectionStartDate string `json:"connectionStartDate"`
	BoxNumber           string `json:"boxNumber"`
}

func (r *CreateCustomerRequest) Validate() error {
	if r.AreaID <= 0 {
		return fmt.Errorf("areaId must be a positive number")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	if strings.TrimSpace(r.BoxNumber) == "" {
		return fmt.Errorf("boxNumber cannot be empty")
	}
	if _, err := ParseDate("connectionStartDate", r.ConnectionStartDate); err != nil {
		return err
	}
	return nil
}

func (r *CreateCustomerRequest) Params() customer.OnboardParams {
	start, _ := ParseDate("connectionStartDate", r.ConnectionStartDate)
	return customer.OnboardParams{
		AreaID:              r.AreaID,
		FirstName:           r.FirstName,
		LastName:            r.LastName,
		PhoneNumber:         r.PhoneNumber,
		Address:             r.Address,
		IdentityNo:          r.IdentityNo,
		HasDigitalBox:       r.HasDigitalBox,
		OfferPowerIntake:    r.OfferPowerIntake,
		ConnectionStartDate: start,
		BoxNumber:           r.BoxNumber,
	}
}

type UpdateCustomerRequest struct {
	AreaID           int64  `json:"areaId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	PhoneNumber      string `json:"phoneNumber"`
	Address          string `json:"address"`
	IdentityNo       string `json:"identityNo"`
	HasDigitalBox    bool   `json:"hasDigitalBox"`
	OfferPowerIntake bool   `json:"offerPowerIntake"`
	UnderRepair      bool   `json:"underRepair"`
}

func (r *UpdateCustomerRequest) Validate() error {
	if r.AreaID <= 0 {
		return fmt.Errorf("areaId must be a positive number")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	return nil
}

func (r *UpdateCustomerRequest) Params() customer.UpdateParams {
	return customer.UpdateParams{
		AreaID:           r.AreaID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PhoneNumber:      r.PhoneNumber,
		Address:          r.Address,
		IdentityNo:       r.IdentityNo,
		HasDigitalBox:    r.HasDigitalBox,
		OfferPowerIntake: r.OfferPowerIntake,
		UnderRepair:      r.UnderRepair,
	}
}

type CustomerResponse struct {
	ID                  string              `json:"id"`
	AreaID              string              `json:"areaId"`
	CustomerNumber      string              `json:"customerNumber"`
	FirstName           string              `json:"firstName"`
	LastName            string              `json:"lastName"`
	PhoneNumber         string              `json:"phoneNumber"`
	Address             string              `json:"address"`
	IdentityNo          string              `json:"identityNo"`
	HasDigitalBox       bool                `json:"hasDigitalBox"`
	OfferPowerIntake    bool                `json:"offerPowerIntake"`
	UnderRepair         bool                `json:"underRepair"`
	ConnectionStartDate string              `json:"connectionStartDate"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	Connection          *ConnectionResponse `json:"connection,omitempty"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		ID:                  formatID(cust.ID),
		AreaID:              formatID(cust.AreaID),
		CustomerNumber:      cust.CustomerNumber,
		FirstName:           cust.FirstName,
		LastName:            cust.LastName,
		PhoneNumber:         cust.PhoneNumber,
		Address:             cust.Address,
		IdentityNo:          cust.IdentityNo,
		HasDigitalBox:       cust.HasDigitalBox,
		OfferPowerIntake:    cust.OfferPowerIntake,
		UnderRepair:         cust.UnderRepair,
		ConnectionStartDate: FormatDate(cust.ConnectionStartDate),
		CreatedAt:           cust.CreatedAt,
		UpdatedAt:           cust.UpdatedAt,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}

type TotalUnpaidResponse struct {
	CustomerID  string `json:"customerId"`
	TotalUnpaid string `json:"totalUnpaid"`
}
