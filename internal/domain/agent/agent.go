package agent

import (
	"strings"
	"time"

	"cable-billing/internal/pkg/validate"
)

// Agent is an employee who collects payments for the areas assigned to them.
type Agent struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewAgent(firstName, lastName, phoneNumber string, isAdmin bool) (*Agent, error) {
	a := &Agent{
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phoneNumber),
		IsAdmin:     isAdmin,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Agent) Validate() error {
	if err := validate.NotBlank("firstName", a.FirstName); err != nil {
		return err
	}
	return validate.PhoneNumber("phoneNumber", a.PhoneNumber)
}

func (a *Agent) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
