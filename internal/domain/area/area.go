package area

import (
	"fmt"
	"strings"
	"time"

	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/validate"
)

const (
	DefaultCollectionDate = 1
	MinCollectionDate     = 0
	MaxCollectionDate     = 30
)

// Area is a geographic billing zone. CollectionDate is the day of the month
// payments are expected.
type Area struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	AgentID        int64     `json:"agentId"`
	CollectionDate int       `json:"collectionDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewArea builds a validated area. A nil collectionDate falls back to DefaultCollectionDate.
func NewArea(name string, agentID int64, collectionDate *int) (*Area, error) {
	a := &Area{
		Name:           strings.TrimSpace(name),
		AgentID:        agentID,
		CollectionDate: DefaultCollectionDate,
	}
	if collectionDate != nil {
		a.CollectionDate = *collectionDate
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Area) Validate() error {
	if err := validate.NotBlank("name", a.Name); err != nil {
		return err
	}
	if a.AgentID <= 0 {
		return apperrors.NewValidationError("agentId", "an area needs exactly one agent")
	}
	if err := validate.Range("collectionDate", a.CollectionDate, MinCollectionDate, MaxCollectionDate); err != nil {
		return fmt.Errorf("collection date must be between %d and %d: %w", MinCollectionDate, MaxCollectionDate, err)
	}
	return nil
}
