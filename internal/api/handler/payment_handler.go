package handler

import (
	"log/slog"
	"net/http"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/payment"
)

type PaymentHandler struct {
	service payment.Service
	guard   *authz.Guard
	logger  *slog.Logger
}

func NewPaymentHandler(s payment.Service, guard *authz.Guard, l *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: s,
		guard:   guard,
		logger:  l.With("component", "PaymentHandler"),
	}
}

// ListPayments returns every recorded payment.
//
// @Summary List all payments
// @Tags Payments
// @Produce json
// @Success 200 {array} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse "Employees only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments [get]
// @Security BearerAuth
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Check(r.Context(), authz.ResourcePayment, authz.ActionList, authz.Subject{}); err != nil {
		respondError(w, err)
		return
	}
	payments, err := h.service.ListAllPayments(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewPaymentListResponse(payments))
}
