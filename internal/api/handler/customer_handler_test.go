package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cable-billing/internal/api/handler/dto"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/customer"
	"cable-billing/internal/domain/payment"
	"cable-billing/internal/domain/risk"
	"cable-billing/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerMocks struct {
	customers   *MockCustomerService
	connections *MockConnectionService
	billing     *MockBillingService
	payments    *MockPaymentService
	risk        *MockRiskService
}

func newCustomerHandler(guard *authz.Guard) (*CustomerHandler, customerMocks) {
	m := customerMocks{
		customers:   new(MockCustomerService),
		connections: new(MockConnectionService),
		billing:     new(MockBillingService),
		payments:    new(MockPaymentService),
		risk:        new(MockRiskService),
	}
	return NewCustomerHandler(m.customers, m.connections, m.billing, m.payments, m.risk, guard, testLogger), m
}

func TestCustomerHandlerCreateCustomer(t *testing.T) {
	body := []byte(`{"areaId":2,"firstName":"Nimal","lastName":"Silva","phoneNumber":"0771234567",
		"address":"12 Temple Rd","identityNo":"851234567V","hasDigitalBox":true,
		"connectionStartDate":"2024-03-05","boxNumber":"BX-9"}`)
	params := customer.OnboardParams{
		AreaID:              2,
		FirstName:           "Nimal",
		LastName:            "Silva",
		PhoneNumber:         "0771234567",
		Address:             "12 Temple Rd",
		IdentityNo:          "851234567V",
		HasDigitalBox:       true,
		ConnectionStartDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		BoxNumber:           "BX-9",
	}

	t.Run("area agent onboards customer with first connection", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.customers.On("OnboardCustomer", mock.Anything, params).Return(
			&customer.Customer{ID: 42, AreaID: 2, CustomerNumber: "KAN0001", FirstName: "Nimal"},
			&connection.Connection{ID: 7, CustomerID: 42, Active: true, BoxNumber: "BX-9"},
			nil)
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, newRequest(http.MethodPost, "/customers", body, authz.Employee(5, false), nil))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.CustomerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "KAN0001", resp.CustomerNumber)
		require.NotNil(t, resp.Connection)
		assert.Equal(t, "7", resp.Connection.ID)
		assert.True(t, resp.Connection.Active)
		m.customers.AssertExpectations(t)
	})

	t.Run("agent of another area is forbidden", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, newRequest(http.MethodPost, "/customers", body, authz.Employee(8, false), nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		m.customers.AssertNotCalled(t, "OnboardCustomer", mock.Anything, mock.Anything)
	})

	t.Run("invalid identity number", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.customers.On("OnboardCustomer", mock.Anything, params).
			Return(nil, nil, apperrors.NewValidationError("identityNo", "unrecognised format"))
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, newRequest(http.MethodPost, "/customers", body, authz.SuperUser(), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "identityNo", resp.Error.Field)
	})

	t.Run("bad start date", func(t *testing.T) {
		h, _ := newCustomerHandler(ownedBy())
		rec := httptest.NewRecorder()

		h.CreateCustomer(rec, newRequest(http.MethodPost, "/customers",
			[]byte(`{"areaId":2,"firstName":"Nimal","connectionStartDate":"March","boxNumber":"BX-9"}`), authz.SuperUser(), nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCustomerHandlerListCustomers(t *testing.T) {
	t.Run("filters by area", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.customers.On("ListCustomers", mock.Anything, int64(2)).Return([]*customer.Customer{{ID: 1}, {ID: 2}}, nil)
		rec := httptest.NewRecorder()

		h.ListCustomers(rec, newRequest(http.MethodGet, "/customers?areaId=2", nil, authz.Employee(5, false), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.CustomerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})

	t.Run("customers cannot list", func(t *testing.T) {
		h, _ := newCustomerHandler(ownedBy())
		rec := httptest.NewRecorder()

		h.ListCustomers(rec, newRequest(http.MethodGet, "/customers", nil, authz.Customer(42), nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCustomerHandlerGetCustomer(t *testing.T) {
	params := map[string]string{"customerID": "42"}

	t.Run("customer reads own record", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.customers.On("GetCustomer", mock.Anything, int64(42)).Return(&customer.Customer{ID: 42}, nil)
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, newRequest(http.MethodGet, "/customers/42", nil, authz.Customer(42), params))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("another customer is forbidden", func(t *testing.T) {
		h, _ := newCustomerHandler(ownedBy())
		rec := httptest.NewRecorder()

		h.GetCustomer(rec, newRequest(http.MethodGet, "/customers/42", nil, authz.Customer(7), params))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCustomerHandlerUpdateAndDelete(t *testing.T) {
	params := map[string]string{"customerID": "42"}

	t.Run("update", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.customers.On("UpdateCustomer", mock.Anything, int64(42), customer.UpdateParams{
			AreaID: 2, FirstName: "Nimal", PhoneNumber: "0771234567", IdentityNo: "851234567V", UnderRepair: true,
		}).Return(&customer.Customer{ID: 42, UnderRepair: true}, nil)
		rec := httptest.NewRecorder()

		h.UpdateCustomer(rec, newRequest(http.MethodPut, "/customers/42",
			[]byte(`{"areaId":2,"firstName":"Nimal","phoneNumber":"0771234567","identityNo":"851234567V","underRepair":true}`),
			authz.Employee(5, false), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.CustomerResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.UnderRepair)
	})

	t.Run("delete requires privilege", func(t *testing.T) {
		h, _ := newCustomerHandler(ownedBy())
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, newRequest(http.MethodDelete, "/customers/42", nil, authz.Employee(5, false), params))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete blocked by connections", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.customers.On("DeleteCustomer", mock.Anything, int64(42)).Return(apperrors.ErrReferentialIntegrity)
		rec := httptest.NewRecorder()

		h.DeleteCustomer(rec, newRequest(http.MethodDelete, "/customers/42", nil, authz.SuperUser(), params))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCustomerHandlerConnections(t *testing.T) {
	params := map[string]string{"customerID": "42"}

	t.Run("add connection", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		m.connections.On("AddConnection", mock.Anything, int64(42), "BX-10", start).
			Return(&connection.Connection{ID: 8, CustomerID: 42, Active: true, StartDate: start, BoxNumber: "BX-10"}, nil)
		rec := httptest.NewRecorder()

		h.AddConnection(rec, newRequest(http.MethodPost, "/customers/42/connections",
			[]byte(`{"boxNumber":"BX-10","startDate":"2024-06-01"}`), authz.Employee(5, false), params))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp dto.ConnectionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "2024-06-01", resp.StartDate)
	})

	t.Run("list connections", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.connections.On("ListCustomerConnections", mock.Anything, int64(42)).
			Return([]*connection.Connection{{ID: 7}, {ID: 8}}, nil)
		rec := httptest.NewRecorder()

		h.ListConnections(rec, newRequest(http.MethodGet, "/customers/42/connections", nil, authz.Customer(42), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.ConnectionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Len(t, resp, 2)
	})
}

func TestCustomerHandlerBillingViews(t *testing.T) {
	params := map[string]string{"customerID": "42"}

	t.Run("bills", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.billing.On("CustomerBills", mock.Anything, int64(42)).Return([]billing.Bill{
			{ID: 1, ConnectionID: 7, Amount: 900, Description: billing.DescriptionMonthly,
				FromDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ToDate: time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)},
		}, nil)
		rec := httptest.NewRecorder()

		h.ListBills(rec, newRequest(http.MethodGet, "/customers/42/bills", nil, authz.Customer(42), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.BillResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "900.00", resp[0].Amount)
	})

	t.Run("total unpaid", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.billing.On("TotalUnpaid", mock.Anything, int64(42)).Return(int64(1700), nil)
		rec := httptest.NewRecorder()

		h.GetTotalUnpaid(rec, newRequest(http.MethodGet, "/customers/42/total-unpaid", nil, authz.Customer(42), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"customerId":"42","totalUnpaid":"1700.00"}`, rec.Body.String())
	})

	t.Run("payments", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.payments.On("ListCustomerPayments", mock.Anything, int64(42)).
			Return([]payment.Payment{{ID: 1, ConnectionID: 7, EmployeeID: 5, Amount: 500}}, nil)
		rec := httptest.NewRecorder()

		h.ListPayments(rec, newRequest(http.MethodGet, "/customers/42/payments", nil, authz.Employee(5, false), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp []dto.PaymentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "500.00", resp[0].Amount)
	})
}

func TestCustomerHandlerGetRisk(t *testing.T) {
	params := map[string]string{"customerID": "42"}

	t.Run("assessment", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.risk.On("Assess", mock.Anything, int64(42)).Return(&risk.Assessment{
			CustomerID:          42,
			ExpectedDelay:       10,
			ExpectedPaymentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			DefaultProbability:  0.2,
		}, nil)
		rec := httptest.NewRecorder()

		h.GetRisk(rec, newRequest(http.MethodGet, "/customers/42/risk", nil, authz.Employee(5, false), params))

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp dto.RiskResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, 10, resp.ExpectedDelay)
		assert.Equal(t, "2024-06-10", resp.ExpectedPaymentDate)
	})

	t.Run("model unavailable", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		m.risk.On("Assess", mock.Anything, int64(42)).
			Return(nil, apperrors.NewModelUnavailableError("delay", errors.New("no such file")))
		rec := httptest.NewRecorder()

		h.GetRisk(rec, newRequest(http.MethodGet, "/customers/42/risk", nil, authz.SuperUser(), params))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("customers cannot see their own risk", func(t *testing.T) {
		h, m := newCustomerHandler(ownedBy())
		rec := httptest.NewRecorder()

		h.GetRisk(rec, newRequest(http.MethodGet, "/customers/42/risk", nil, authz.Customer(42), params))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		m.risk.AssertNotCalled(t, "Assess", mock.Anything, mock.Anything)
	})
}
