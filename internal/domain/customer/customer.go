package customer

import (
	"strconv"
	"strings"
	"time"

	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/validate"
)

const customerNumberPrefixLen = 3

type Customer struct {
	ID                  int64     `json:"id"`
	AreaID              int64     `json:"areaId"`
	CustomerNumber      string    `json:"customerNumber"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	PhoneNumber         string    `json:"phoneNumber"`
	Address             string    `json:"address"`
	IdentityNo          string    `json:"identityNo"`
	HasDigitalBox       bool      `json:"hasDigitalBox"`
	OfferPowerIntake    bool      `json:"offerPowerIntake"`
	UnderRepair         bool      `json:"underRepair"`
	ConnectionStartDate time.Time `json:"connectionStartDate"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (c *Customer) Validate() error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Address = strings.TrimSpace(c.Address)

	if err := validate.NotBlank("firstName", c.FirstName); err != nil {
		return err
	}
	if err := validate.PhoneNumber("phoneNumber", c.PhoneNumber); err != nil {
		return err
	}
	if c.AreaID <= 0 {
		return apperrors.NewValidationError("areaId", "customer must belong to an area")
	}
	if _, err := ParseIdentity(c.IdentityNo); err != nil {
		return err
	}
	return nil
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Customer) Age(now time.Time) (int, error) {
	id, err := ParseIdentity(c.IdentityNo)
	if err != nil {
		return 0, err
	}
	return id.Age(now), nil
}

func (c *Customer) Gender() (Gender, error) {
	id, err := ParseIdentity(c.IdentityNo)
	if err != nil {
		return "", err
	}
	return id.Gender(), nil
}

// GenerateCustomerNumber builds the per-area customer number from the first
// three characters of the area name and the next sequence value.
func GenerateCustomerNumber(areaName string, customersInArea int) string {
	prefix := []rune(strings.TrimSpace(areaName))
	if len(prefix) > customerNumberPrefixLen {
		prefix = prefix[:customerNumberPrefixLen]
	}
	return string(prefix) + strconv.Itoa(customersInArea+1)
}
