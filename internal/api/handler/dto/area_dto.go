package dto

import (
	"fmt"
	"strings"
	"time"

	"cable-billing/internal/domain/area"
)

type AreaRequest struct {
	Name           string `json:"name"`
	AgentID        int64  `json:"agentId"`
	CollectionDate *int   `json:"collectionDate,omitempty"`
}

func (r *AreaRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if r.AgentID <= 0 {
		return fmt.Errorf("agentId must be a positive number")
	}
	return nil
}

type AreaResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AgentID        string    `json:"agentId"`
	CollectionDate int       `json:"collectionDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewAreaResponse(a *area.Area) AreaResponse {
	if a == nil {
		return AreaResponse{}
	}
	return AreaResponse{
		ID:             formatID(a.ID),
		Name:           a.Name,
		AgentID:        formatID(a.AgentID),
		CollectionDate: a.CollectionDate,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func NewAreaListResponse(areas []*area.Area) []AreaResponse {
	resp := make([]AreaResponse, 0, len(areas))
	for _, a := range areas {
		resp = append(resp, NewAreaResponse(a))
	}
	return resp
}
