package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/config"
	"cable-billing/internal/domain/agent"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/pkg/jwtauth"
)

type AuthHandler struct {
	cfg    config.AuthConfig
	agents agent.Service
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthHandler(cfg config.AuthConfig, agents agent.Service, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		agents: agents,
		logger: l.With("component", "AuthHandler"),
		now:    time.Now,
	}
}

// GenerateBearerToken issues a signed token for a role.
//
// @Summary Generate a JWT bearer token
// @Description Issues a token for a superuser, an employee (agent ID) or a customer (customer ID). Employee tokens carry the agent's admin flag.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Role and subject ID"
// @Success 200 {object} dto.TokenResponse "Token successfully generated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request parameters"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func (h *AuthHandler) GenerateBearerToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode token request", slog.Any("error", err))
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}

	kind, err := jwtauth.ParseRole(strings.ToLower(strings.TrimSpace(req.Role)))
	if err != nil {
		respondError(w, err)
		return
	}

	var actor authz.Actor
	switch kind {
	case authz.KindSuperUser:
		actor = authz.SuperUser()
	case authz.KindCustomer:
		actor = authz.Customer(req.ID)
	case authz.KindEmployee:
		a, err := h.agents.GetAgent(r.Context(), req.ID)
		if err != nil {
			respondError(w, err)
			return
		}
		actor = authz.Employee(a.ID, a.IsAdmin)
	}

	now := h.now()
	token, err := jwtauth.Issue(h.cfg.JWTSecret, actor, h.cfg.TokenTTL, now)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to sign token", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Issued bearer token",
		slog.String("role", kind.String()), slog.Int64("subjectID", actor.ID))
	respondJSON(w, http.StatusOK, dto.TokenResponse{
		Token:     "Bearer " + token,
		ExpiresAt: now.Add(h.cfg.TokenTTL).UTC(),
	})
}
