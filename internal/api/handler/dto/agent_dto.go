package dto

import (
	"fmt"
	"strings"
	"time"

	"cable-billing/internal/domain/agent"
)

type AgentRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	IsAdmin     bool   `json:"isAdmin"`
}

func (r *AgentRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("firstName cannot be empty")
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		return fmt.Errorf("phoneNumber cannot be empty")
	}
	return nil
}

type AgentResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	IsAdmin     bool      `json:"isAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewAgentResponse(a *agent.Agent) AgentResponse {
	if a == nil {
		return AgentResponse{}
	}
	return AgentResponse{
		ID:          formatID(a.ID),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		PhoneNumber: a.PhoneNumber,
		IsAdmin:     a.IsAdmin,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewAgentListResponse(agents []*agent.Agent) []AgentResponse {
	resp := make([]AgentResponse, 0, len(agents))
	for _, a := range agents {
		resp = append(resp, NewAgentResponse(a))
	}
	return resp
}
