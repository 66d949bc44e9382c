package handler

import (
	"log/slog"
	"net/http"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/domain/area"
	"cable-billing/internal/domain/authz"
)

type AreaHandler struct {
	service area.Service
	guard   *authz.Guard
	logger  *slog.Logger
}

func NewAreaHandler(s area.Service, guard *authz.Guard, l *slog.Logger) *AreaHandler {
	return &AreaHandler{
		service: s,
		guard:   guard,
		logger:  l.With("component", "AreaHandler"),
	}
}

// CreateArea adds a billing area with its responsible agent.
//
// @Summary Create an area
// @Description collectionDate defaults to 1 and must lie within 0..30.
// @Tags Areas
// @Accept json
// @Produce json
// @Param request body dto.AreaRequest true "Area details"
// @Success 201 {object} dto.AreaResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /areas [post]
// @Security BearerAuth
func (h *AreaHandler) CreateArea(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Check(r.Context(), authz.ResourceArea, authz.ActionCreate, authz.Subject{}); err != nil {
		respondError(w, err)
		return
	}
	var req dto.AreaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}

	created, err := h.service.CreateArea(r.Context(), req.Name, req.AgentID, req.CollectionDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto.NewAreaResponse(created))
}

// ListAreas lists areas. Non-admin employees only see their own areas.
//
// @Summary List areas
// @Tags Areas
// @Produce json
// @Param agentId query int false "Filter by agent"
// @Success 200 {array} dto.AreaResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /areas [get]
// @Security BearerAuth
func (h *AreaHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Check(r.Context(), authz.ResourceArea, authz.ActionList, authz.Subject{}); err != nil {
		respondError(w, err)
		return
	}
	agentID, err := queryID(r, "agentId")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if actor := authz.FromContext(r.Context()); !actor.IsPrivileged() {
		agentID = actor.ID
	}

	areas, err := h.service.ListAreas(r.Context(), agentID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAreaListResponse(areas))
}

// GetArea returns one area.
//
// @Summary Retrieve an area
// @Tags Areas
// @Produce json
// @Param areaID path int true "Area ID"
// @Success 200 {object} dto.AreaResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid area ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Area not found"
// @Router /areas/{areaID} [get]
// @Security BearerAuth
func (h *AreaHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := getIDFromURL(r, "areaID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.CheckArea(r.Context(), authz.ResourceArea, authz.ActionView, areaID); err != nil {
		respondError(w, err)
		return
	}
	a, err := h.service.GetArea(r.Context(), areaID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAreaResponse(a))
}

// UpdateArea replaces an area's name, agent and collection date.
//
// @Summary Update an area
// @Tags Areas
// @Accept json
// @Produce json
// @Param areaID path int true "Area ID"
// @Param request body dto.AreaRequest true "Area details"
// @Success 200 {object} dto.AreaResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Area not found"
// @Router /areas/{areaID} [put]
// @Security BearerAuth
func (h *AreaHandler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := getIDFromURL(r, "areaID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.CheckArea(r.Context(), authz.ResourceArea, authz.ActionUpdate, areaID); err != nil {
		respondError(w, err)
		return
	}
	var req dto.AreaRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}

	updated, err := h.service.UpdateArea(r.Context(), areaID, req.Name, req.AgentID, req.CollectionDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAreaResponse(updated))
}

// DeleteArea removes an area without customers.
//
// @Summary Delete an area
// @Tags Areas
// @Param areaID path int true "Area ID"
// @Success 204 "Area deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Area not found"
// @Failure 409 {object} dto.ErrorResponse "Area still has customers"
// @Router /areas/{areaID} [delete]
// @Security BearerAuth
func (h *AreaHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := getIDFromURL(r, "areaID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.CheckArea(r.Context(), authz.ResourceArea, authz.ActionDelete, areaID); err != nil {
		respondError(w, err)
		return
	}
	if err := h.service.DeleteArea(r.Context(), areaID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
