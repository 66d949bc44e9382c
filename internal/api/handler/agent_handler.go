package handler

import (
	"log/slog"
	"net/http"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/domain/agent"
	"cable-billing/internal/domain/authz"
)

type AgentHandler struct {
	service agent.Service
	guard   *authz.Guard
	logger  *slog.Logger
}

func NewAgentHandler(s agent.Service, guard *authz.Guard, l *slog.Logger) *AgentHandler {
	return &AgentHandler{
		service: s,
		guard:   guard,
		logger:  l.With("component", "AgentHandler"),
	}
}

// CreateAgent registers a new agent.
//
// @Summary Create an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param request body dto.AgentRequest true "Agent details"
// @Success 201 {object} dto.AgentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Only administrators may create agents"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents [post]
// @Security BearerAuth
func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Check(r.Context(), authz.ResourceAgent, authz.ActionCreate, authz.Subject{}); err != nil {
		respondError(w, err)
		return
	}
	var req dto.AgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}

	created, err := h.service.CreateAgent(r.Context(), req.FirstName, req.LastName, req.PhoneNumber, req.IsAdmin)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto.NewAgentResponse(created))
}

// ListAgents returns every agent.
//
// @Summary List agents
// @Tags Agents
// @Produce json
// @Success 200 {array} dto.AgentResponse
// @Failure 403 {object} dto.ErrorResponse "Only administrators may list agents"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents [get]
// @Security BearerAuth
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Check(r.Context(), authz.ResourceAgent, authz.ActionList, authz.Subject{}); err != nil {
		respondError(w, err)
		return
	}
	agents, err := h.service.ListAgents(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAgentListResponse(agents))
}

// GetAgent returns one agent. Agents may read their own record.
//
// @Summary Retrieve an agent
// @Tags Agents
// @Produce json
// @Param agentID path int true "Agent ID"
// @Success 200 {object} dto.AgentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid agent ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Router /agents/{agentID} [get]
// @Security BearerAuth
func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := getIDFromURL(r, "agentID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.Check(r.Context(), authz.ResourceAgent, authz.ActionView, authz.Subject{AgentID: agentID}); err != nil {
		respondError(w, err)
		return
	}
	a, err := h.service.GetAgent(r.Context(), agentID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAgentResponse(a))
}

// UpdateAgent replaces an agent's details.
//
// @Summary Update an agent
// @Tags Agents
// @Accept json
// @Produce json
// @Param agentID path int true "Agent ID"
// @Param request body dto.AgentRequest true "Agent details"
// @Success 200 {object} dto.AgentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Router /agents/{agentID} [put]
// @Security BearerAuth
func (h *AgentHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := getIDFromURL(r, "agentID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.Check(r.Context(), authz.ResourceAgent, authz.ActionUpdate, authz.Subject{AgentID: agentID}); err != nil {
		respondError(w, err)
		return
	}
	var req dto.AgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}

	updated, err := h.service.UpdateAgent(r.Context(), agentID, req.FirstName, req.LastName, req.PhoneNumber, req.IsAdmin)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAgentResponse(updated))
}

// DeleteAgent removes an agent that no longer owns areas or payments.
//
// @Summary Delete an agent
// @Tags Agents
// @Param agentID path int true "Agent ID"
// @Success 204 "Agent deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Failure 409 {object} dto.ErrorResponse "Agent still referenced by areas or payments"
// @Router /agents/{agentID} [delete]
// @Security BearerAuth
func (h *AgentHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := getIDFromURL(r, "agentID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.Check(r.Context(), authz.ResourceAgent, authz.ActionDelete, authz.Subject{AgentID: agentID}); err != nil {
		respondError(w, err)
		return
	}
	if err := h.service.DeleteAgent(r.Context(), agentID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
