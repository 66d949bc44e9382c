package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/customer"
	"cable-billing/internal/domain/payment"
	"cable-billing/internal/domain/risk"
)

type CustomerHandler struct {
	customers   customer.Service
	connections connection.Service
	billing     billing.Service
	payments    payment.Service
	risk        risk.Service
	guard       *authz.Guard
	logger      *slog.Logger
}

func NewCustomerHandler(customers customer.Service, connections connection.Service, billingService billing.Service,
	payments payment.Service, riskService risk.Service, guard *authz.Guard, l *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers:   customers,
		connections: connections,
		billing:     billingService,
		payments:    payments,
		risk:        riskService,
		guard:       guard,
		logger:      l.With("component", "CustomerHandler"),
	}
}

func (h *CustomerHandler) customerID(w http.ResponseWriter, r *http.Request, resource authz.Resource, action authz.Action) (int64, bool) {
	customerID, err := getIDFromURL(r, "customerID")
	if err != nil {
		respondError(w, invalidArgument(err))
		return 0, false
	}
	if err := h.guard.CheckCustomer(r.Context(), resource, action, customerID); err != nil {
		respondError(w, err)
		return 0, false
	}
	return customerID, true
}

// CreateCustomer onboards a customer together with their first connection.
//
// @Summary Onboard a customer
// @Description Creates the customer, assigns the next customer number in the area and opens the first connection.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer and first connection"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Area not found"
// @Router /customers [post]
// @Security BearerAuth
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := h.guard.CheckArea(r.Context(), authz.ResourceCustomer, authz.ActionCreate, req.AreaID); err != nil {
		respondError(w, err)
		return
	}

	cust, conn, err := h.customers.OnboardCustomer(r.Context(), req.Params())
	if err != nil {
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerResponse(cust)
	if conn != nil {
		c := dto.NewConnectionResponse(conn)
		resp.Connection = &c
	}
	respondJSON(w, http.StatusCreated, resp)
}

// ListCustomers lists customers, optionally within one area.
//
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param areaId query int false "Filter by area"
// @Success 200 {array} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /customers [get]
// @Security BearerAuth
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if err := h.guard.Check(r.Context(), authz.ResourceCustomer, authz.ActionList, authz.Subject{}); err != nil {
		respondError(w, err)
		return
	}
	areaID, err := queryID(r, "areaId")
	if err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if areaID > 0 {
		if err := h.guard.CheckArea(r.Context(), authz.ResourceArea, authz.ActionView, areaID); err != nil {
			respondError(w, err)
			return
		}
	}

	customers, err := h.customers.ListCustomers(r.Context(), areaID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// GetCustomer returns one customer.
//
// @Summary Retrieve a customer
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{customerID} [get]
// @Security BearerAuth
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceCustomer, authz.ActionView)
	if !ok {
		return
	}
	cust, err := h.customers.GetCustomer(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(cust))
}

// UpdateCustomer replaces a customer's details.
//
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param request body dto.UpdateCustomerRequest true "Customer details"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{customerID} [put]
// @Security BearerAuth
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceCustomer, authz.ActionUpdate)
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	// Moving a customer needs rights on the destination area too.
	if err := h.guard.CheckArea(r.Context(), authz.ResourceCustomer, authz.ActionUpdate, req.AreaID); err != nil {
		respondError(w, err)
		return
	}

	updated, err := h.customers.UpdateCustomer(r.Context(), customerID, req.Params())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(updated))
}

// DeleteCustomer removes a customer with no connections left.
//
// @Summary Delete a customer
// @Tags Customers
// @Param customerID path int true "Customer ID"
// @Success 204 "Customer deleted"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Customer still has connections"
// @Router /customers/{customerID} [delete]
// @Security BearerAuth
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceCustomer, authz.ActionDelete)
	if !ok {
		return
	}
	if err := h.customers.DeleteCustomer(r.Context(), customerID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddConnection opens another connection for a customer.
//
// @Summary Add a connection
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID"
// @Param request body dto.CreateConnectionRequest true "Connection details"
// @Success 201 {object} dto.ConnectionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{customerID}/connections [post]
// @Security BearerAuth
func (h *CustomerHandler) AddConnection(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceConnection, authz.ActionCreate)
	if !ok {
		return
	}
	var req dto.CreateConnectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, invalidArgument(err))
		return
	}
	start, _ := dto.ParseDate("startDate", req.StartDate)

	conn, err := h.connections.AddConnection(r.Context(), customerID, req.BoxNumber, start)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, dto.NewConnectionResponse(conn))
}

// ListConnections lists a customer's connections.
//
// @Summary List a customer's connections
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {array} dto.ConnectionResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{customerID}/connections [get]
// @Security BearerAuth
func (h *CustomerHandler) ListConnections(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceConnection, authz.ActionView)
	if !ok {
		return
	}
	conns, err := h.connections.ListCustomerConnections(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewConnectionListResponse(conns))
}

// ListBills brings every connection of the customer up to date and returns their bills.
//
// @Summary List a customer's bills
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {array} dto.BillResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent billing conflict"
// @Router /customers/{customerID}/bills [get]
// @Security BearerAuth
func (h *CustomerHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceBill, authz.ActionView)
	if !ok {
		return
	}
	bills, err := h.billing.CustomerBills(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewBillListResponse(bills))
}

// GetTotalUnpaid sums the balances of every connection of the customer.
//
// @Summary Total unpaid amount of a customer
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.TotalUnpaidResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{customerID}/total-unpaid [get]
// @Security BearerAuth
func (h *CustomerHandler) GetTotalUnpaid(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceBill, authz.ActionView)
	if !ok {
		return
	}
	total, err := h.billing.TotalUnpaid(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.TotalUnpaidResponse{
		CustomerID:  strconv.FormatInt(customerID, 10),
		TotalUnpaid: dto.FormatMoney(total),
	})
}

// ListPayments lists payments across every connection of the customer.
//
// @Summary List a customer's payments
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Router /customers/{customerID}/payments [get]
// @Security BearerAuth
func (h *CustomerHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourcePayment, authz.ActionView)
	if !ok {
		return
	}
	payments, err := h.payments.ListCustomerPayments(r.Context(), customerID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewPaymentListResponse(payments))
}

// GetRisk scores the customer's expected payment day and default probability.
//
// @Summary Payment risk of a customer
// @Description Returns 503 when a model artifact cannot be loaded.
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID"
// @Success 200 {object} dto.RiskResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 503 {object} dto.ErrorResponse "Risk estimate unavailable"
// @Router /customers/{customerID}/risk [get]
// @Security BearerAuth
func (h *CustomerHandler) GetRisk(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r, authz.ResourceRisk, authz.ActionView)
	if !ok {
		return
	}
	assessment, err := h.risk.Assess(r.Context(), customerID)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Risk assessment failed",
			slog.Int64("customerID", customerID), slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewRiskResponse(assessment))
}
