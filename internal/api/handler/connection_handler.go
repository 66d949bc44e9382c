package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/payment"
	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/dates"
)

type ConnectionHandler struct {
	connections connection.Service
	billing     billing.Service
	payments    payment.Service
	guard       *authz.Guard
	logger      *slog.Logger
	now         func() time.Time
}

func NewConnectionHandler(connections connection.Service, billingService billing.Service, payments payment.Service,
	guard *authz.Guard, l *slog.Logger) *ConnectionHandler {
	return &ConnectionHandler{
		connections: connections,
		billing:     billingService,
		payments:    payments,
		guard:       guard,
		logger:      l.With("component", "ConnectionHandler"),
		now:         time.Now,
	}
}

func (h *ConnectionHandler) connectionID(w http.ResponseWriter, r *http.Request, resource authz.Resource, action authz.Action) (int64, bool) {
	connectionID, err := getIDFromURL(r, "connectionID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return 0, false
	}
	if err := h.guard.CheckConnection(r.Context(), resource, action, connectionID); err != nil {
		respondError(w, err)
		return 0, false
	}
	return connectionID, true
}

// GetConnection returns one connection.
//
// @Summary Retrieve a connection
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Success 200 {object} dto.ConnectionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid connection ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Router /connections/{connectionID} [get]
// @Security BearerAuth
func (h *ConnectionHandler) GetConnection(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourceConnection, authz.ActionView)
	if !ok {
		return
	}
	conn, err := h.connections.GetConnection(r.Context(), connectionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewConnectionResponse(conn))
}

// Activate reconnects a connection and writes the zero-amount bill covering the disconnected gap.
//
// @Summary Activate a connection
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Success 200 {object} dto.ToggleResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent billing conflict"
// @Router /connections/{connectionID}/activate [put]
// @Security BearerAuth
func (h *ConnectionHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true)
}

// Deactivate disconnects a connection and bills the days used since the last bill.
//
// @Summary Deactivate a connection
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Success 200 {object} dto.ToggleResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent billing conflict"
// @Router /connections/{connectionID}/deactivate [put]
// @Security BearerAuth
func (h *ConnectionHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false)
}

func (h *ConnectionHandler) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	connectionID, ok := h.connectionID(w, r, authz.ResourceConnection, authz.ActionUpdate)
	if !ok {
		return
	}
	conn, bill, err := h.billing.SetConnectionActive(r.Context(), connectionID, active)
	if err != nil {
		respondError(w, err)
		return
	}
	h.logger.InfoContext(r.Context(), "Connection toggled",
		slog.Int64("connectionID", connectionID), slog.Bool("active", active), slog.Bool("billed", bill != nil))
	respondJSON(w, http.StatusOK, dto.NewToggleResponse(conn, bill))
}

// ListBills reconciles the connection up to today and returns its bills.
//
// @Summary List a connection's bills
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Success 200 {array} dto.BillResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent billing conflict"
// @Router /connections/{connectionID}/bills [get]
// @Security BearerAuth
func (h *ConnectionHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourceBill, authz.ActionView)
	if !ok {
		return
	}
	bills, err := h.billing.Bills(r.Context(), connectionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewBillListResponse(bills))
}

// GenerateBill writes the single bill following the latest one.
//
// @Summary Generate the next bill
// @Description An optional endDate pro-rates a partial period; amount overrides the tariff fee.
// @Tags Connections
// @Accept json
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Param request body dto.GenerateBillRequest false "Generation options"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid options or period already billed"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent billing conflict"
// @Router /connections/{connectionID}/bills [post]
// @Security BearerAuth
func (h *ConnectionHandler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourceBill, authz.ActionCreate)
	if !ok {
		return
	}
	var req dto.GenerateBillRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, invalidArgument(err))
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}

	bill, err := h.billing.GenerateBill(r.Context(), connectionID, req.Options())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto.NewBillResponse(*bill))
}

// Reconcile writes the monthly bills the connection is missing.
//
// @Summary Reconcile a connection's bills
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Param asOf query string false "Reconcile as of this date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} dto.BillResponse "Bills written by this run"
// @Failure 400 {object} dto.ErrorResponse "Invalid or future asOf date"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent billing conflict"
// @Router /connections/{connectionID}/reconcile [post]
// @Security BearerAuth
func (h *ConnectionHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourceBill, authz.ActionCreate)
	if !ok {
		return
	}
	asOf := h.now()
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		parsed, err := dto.ParseDate("asOf", raw)
		if err != nil {
			respondError(w, invalidArgument(err))
			return
		}
		if parsed.After(dates.Date(asOf)) {
			respondError(w, apperrors.NewValidationError("asOf", "cannot be after today"))
			return
		}
		asOf = parsed
	}

	bills, err := h.billing.Reconcile(r.Context(), connectionID, asOf)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewBillListResponse(bills))
}

// GetBalance returns billed minus paid for the connection.
//
// @Summary Balance of a connection
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Router /connections/{connectionID}/balance [get]
// @Security BearerAuth
func (h *ConnectionHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourceBill, authz.ActionView)
	if !ok {
		return
	}
	balance, err := h.billing.Balance(r.Context(), connectionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.BalanceResponse{
		ConnectionID: strconv.FormatInt(connectionID, 10),
		Balance:      dto.FormatMoney(balance),
	})
}

// ListPayments lists payments recorded against the connection.
//
// @Summary List a connection's payments
// @Tags Connections
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Router /connections/{connectionID}/payments [get]
// @Security BearerAuth
func (h *ConnectionHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourcePayment, authz.ActionView)
	if !ok {
		return
	}
	payments, err := h.payments.ListConnectionPayments(r.Context(), connectionID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewPaymentListResponse(payments))
}

// RecordPayment records money collected by the calling employee.
//
// @Summary Record a payment
// @Description Admins and the superuser record on behalf of another employee via employeeId.
// @Tags Connections
// @Accept json
// @Produce json
// @Param connectionID path int true "Connection ID"
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount"
// @Failure 403 {object} dto.ErrorResponse "Only the area's agent or an admin may collect"
// @Failure 404 {object} dto.ErrorResponse "Connection not found"
// @Router /connections/{connectionID}/payments [post]
// @Security BearerAuth
func (h *ConnectionHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	connectionID, ok := h.connectionID(w, r, authz.ResourcePayment, authz.ActionCreate)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentAmount, err))
		return
	}
	amount, _ := dto.ParseMoney(req.Amount)

	actor := authz.FromContext(r.Context())
	var employeeID int64
	if actor.Kind == authz.KindEmployee {
		employeeID = actor.ID
	}
	if req.EmployeeID != 0 && req.EmployeeID != employeeID {
		if !actor.IsPrivileged() {
			respondError(w, fmt.Errorf("%w: only admins may record payments for another employee", apperrors.ErrForbidden))
			return
		}
		employeeID = req.EmployeeID
	}

	p, err := h.payments.RecordPayment(r.Context(), connectionID, employeeID, amount)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto.NewPaymentResponse(*p))
}
