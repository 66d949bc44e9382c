package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"cable-billing/internal/domain/agent"
	"cable-billing/internal/domain/area"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/customer"
	"cable-billing/internal/domain/payment"
	"cable-billing/internal/domain/risk"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubResolver struct {
	subject authz.Subject
	err     error
}

func (s stubResolver) AreaSubject(context.Context, int64) (authz.Subject, error) {
	return s.subject, s.err
}

func (s stubResolver) CustomerSubject(context.Context, int64) (authz.Subject, error) {
	return s.subject, s.err
}

func (s stubResolver) ConnectionSubject(context.Context, int64) (authz.Subject, error) {
	return s.subject, s.err
}

// ownedBy builds a guard whose every record belongs to customer 42 in an area run by agent 5.
func ownedBy() *authz.Guard {
	return authz.NewGuard(stubResolver{subject: authz.Subject{AgentID: 5, CustomerID: 42}}, testLogger)
}

func newRequest(method, target string, body []byte, actor authz.Actor, params map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(authz.WithActor(ctx, actor))
}

type MockAgentService struct {
	mock.Mock
}

func (m *MockAgentService) CreateAgent(ctx context.Context, firstName, lastName, phoneNumber string, isAdmin bool) (*agent.Agent, error) {
	args := m.Called(ctx, firstName, lastName, phoneNumber, isAdmin)
	if a, ok := args.Get(0).(*agent.Agent); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentService) GetAgent(ctx context.Context, agentID int64) (*agent.Agent, error) {
	args := m.Called(ctx, agentID)
	if a, ok := args.Get(0).(*agent.Agent); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentService) ListAgents(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	if a, ok := args.Get(0).([]*agent.Agent); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentService) UpdateAgent(ctx context.Context, agentID int64, firstName, lastName, phoneNumber string, isAdmin bool) (*agent.Agent, error) {
	args := m.Called(ctx, agentID, firstName, lastName, phoneNumber, isAdmin)
	if a, ok := args.Get(0).(*agent.Agent); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAgentService) DeleteAgent(ctx context.Context, agentID int64) error {
	return m.Called(ctx, agentID).Error(0)
}

type MockAreaService struct {
	mock.Mock
}

func (m *MockAreaService) CreateArea(ctx context.Context, name string, agentID int64, collectionDate *int) (*area.Area, error) {
	args := m.Called(ctx, name, agentID, collectionDate)
	if a, ok := args.Get(0).(*area.Area); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAreaService) GetArea(ctx context.Context, areaID int64) (*area.Area, error) {
	args := m.Called(ctx, areaID)
	if a, ok := args.Get(0).(*area.Area); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAreaService) ListAreas(ctx context.Context, agentID int64) ([]*area.Area, error) {
	args := m.Called(ctx, agentID)
	if a, ok := args.Get(0).([]*area.Area); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAreaService) UpdateArea(ctx context.Context, areaID int64, name string, agentID int64, collectionDate *int) (*area.Area, error) {
	args := m.Called(ctx, areaID, name, agentID, collectionDate)
	if a, ok := args.Get(0).(*area.Area); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAreaService) DeleteArea(ctx context.Context, areaID int64) error {
	return m.Called(ctx, areaID).Error(0)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) OnboardCustomer(ctx context.Context, params customer.OnboardParams) (*customer.Customer, *connection.Connection, error) {
	args := m.Called(ctx, params)
	c, _ := args.Get(0).(*customer.Customer)
	conn, _ := args.Get(1).(*connection.Connection)
	return c, conn, args.Error(2)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, customerID int64) (*customer.Customer, error) {
	args := m.Called(ctx, customerID)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, areaID int64) ([]*customer.Customer, error) {
	args := m.Called(ctx, areaID)
	if c, ok := args.Get(0).([]*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, params customer.UpdateParams) (*customer.Customer, error) {
	args := m.Called(ctx, customerID, params)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	return m.Called(ctx, customerID).Error(0)
}

type MockConnectionService struct {
	mock.Mock
}

func (m *MockConnectionService) AddConnection(ctx context.Context, customerID int64, boxNumber string, startDate time.Time) (*connection.Connection, error) {
	args := m.Called(ctx, customerID, boxNumber, startDate)
	if c, ok := args.Get(0).(*connection.Connection); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConnectionService) GetConnection(ctx context.Context, connectionID int64) (*connection.Connection, error) {
	args := m.Called(ctx, connectionID)
	if c, ok := args.Get(0).(*connection.Connection); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConnectionService) ListCustomerConnections(ctx context.Context, customerID int64) ([]*connection.Connection, error) {
	args := m.Called(ctx, customerID)
	if c, ok := args.Get(0).([]*connection.Connection); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) GenerateBill(ctx context.Context, connectionID int64, opts billing.GenerateOptions) (*billing.Bill, error) {
	args := m.Called(ctx, connectionID, opts)
	if b, ok := args.Get(0).(*billing.Bill); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBillingService) Reconcile(ctx context.Context, connectionID int64, asOf time.Time) ([]billing.Bill, error) {
	args := m.Called(ctx, connectionID, asOf)
	if b, ok := args.Get(0).([]billing.Bill); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBillingService) ListBills(ctx context.Context, connectionID int64) ([]billing.Bill, error) {
	args := m.Called(ctx, connectionID)
	if b, ok := args.Get(0).([]billing.Bill); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBillingService) Bills(ctx context.Context, connectionID int64) ([]billing.Bill, error) {
	args := m.Called(ctx, connectionID)
	if b, ok := args.Get(0).([]billing.Bill); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBillingService) CustomerBills(ctx context.Context, customerID int64) ([]billing.Bill, error) {
	args := m.Called(ctx, customerID)
	if b, ok := args.Get(0).([]billing.Bill); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBillingService) Balance(ctx context.Context, connectionID int64) (int64, error) {
	args := m.Called(ctx, connectionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingService) TotalUnpaid(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBillingService) SetConnectionActive(ctx context.Context, connectionID int64, active bool) (*connection.Connection, *billing.Bill, error) {
	args := m.Called(ctx, connectionID, active)
	c, _ := args.Get(0).(*connection.Connection)
	b, _ := args.Get(1).(*billing.Bill)
	return c, b, args.Error(2)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, connectionID, employeeID, amount int64) (*payment.Payment, error) {
	args := m.Called(ctx, connectionID, employeeID, amount)
	if p, ok := args.Get(0).(*payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentService) ListConnectionPayments(ctx context.Context, connectionID int64) ([]payment.Payment, error) {
	args := m.Called(ctx, connectionID)
	if p, ok := args.Get(0).([]payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentService) ListCustomerPayments(ctx context.Context, customerID int64) ([]payment.Payment, error) {
	args := m.Called(ctx, customerID)
	if p, ok := args.Get(0).([]payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentService) ListAllPayments(ctx context.Context) ([]payment.Payment, error) {
	args := m.Called(ctx)
	if p, ok := args.Get(0).([]payment.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRiskService struct {
	mock.Mock
}

func (m *MockRiskService) ExpectedDelay(ctx context.Context, customerID int64) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}

func (m *MockRiskService) ExpectedPaymentDate(ctx context.Context, customerID int64) (time.Time, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockRiskService) DefaultProbability(ctx context.Context, customerID int64) (float64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockRiskService) Assess(ctx context.Context, customerID int64) (*risk.Assessment, error) {
	args := m.Called(ctx, customerID)
	if a, ok := args.Get(0).(*risk.Assessment); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	_ agent.Service      = (*MockAgentService)(nil)
	_ area.Service       = (*MockAreaService)(nil)
	_ customer.Service   = (*MockCustomerService)(nil)
	_ connection.Service = (*MockConnectionService)(nil)
	_ billing.Service    = (*MockBillingService)(nil)
	_ payment.Service    = (*MockPaymentService)(nil)
	_ risk.Service       = (*MockRiskService)(nil)
)

var anyActor = authz.SuperUser()
