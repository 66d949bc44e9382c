package customer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"cable-billing/internal/domain/connection"
	"cable-billing/internal/event"
	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/dates"
)

type OnboardParams struct {
	AreaID              int64
	FirstName           string
	LastName            string
	PhoneNumber         string
	Address             string
	IdentityNo          string
	HasDigitalBox       bool
	OfferPowerIntake    bool
	ConnectionStartDate time.Time
	BoxNumber           string
}

type UpdateParams struct {
	AreaID           int64
	FirstName        string
	LastName         string
	PhoneNumber      string
	Address          string
	IdentityNo       string
	HasDigitalBox    bool
	OfferPowerIntake bool
	UnderRepair      bool
}

type Service interface {
	OnboardCustomer(ctx context.Context, params OnboardParams) (*Customer, *connection.Connection, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	ListCustomers(ctx context.Context, areaID int64) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, customerID int64, params UpdateParams) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

var _ Service = (*customerService)(nil)

type customerService struct {
	repo   Repository
	pub    event.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, publisher event.EventPublisher, logger *slog.Logger) Service {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}
	if publisher == nil {
		publisher = event.NopPublisher{}
	}
	return &customerService{
		repo:   repo,
		pub:    publisher,
		logger: logger.With(slog.String("component", "customerService")),
		now:    time.Now,
	}
}

func (s *customerService) OnboardCustomer(ctx context.Context, params OnboardParams) (*Customer, *connection.Connection, error) {
	s.logger.InfoContext(ctx, "Attempting to onboard customer", slog.Int64("areaID", params.AreaID))

	startDate := params.ConnectionStartDate
	if startDate.IsZero() {
		startDate = s.now()
	}

	cust := &Customer{
		AreaID:              params.AreaID,
		FirstName:           params.FirstName,
		LastName:            params.LastName,
		PhoneNumber:         strings.TrimSpace(params.PhoneNumber),
		Address:             params.Address,
		IdentityNo:          strings.TrimSpace(params.IdentityNo),
		HasDigitalBox:       params.HasDigitalBox,
		OfferPowerIntake:    params.OfferPowerIntake,
		ConnectionStartDate: dates.Date(startDate),
	}
	if err := cust.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Customer validation failed", slog.Any("error", err))
		return nil, nil, err
	}

	conn, err := connection.NewConnection(0, params.BoxNumber, startDate)
	if err != nil {
		return nil, nil, err
	}
	conn.HasDigitalBox = cust.HasDigitalBox

	if err := s.repo.CreateWithConnection(ctx, cust, conn); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store onboarded customer", slog.Any("error", err))
		return nil, nil, fmt.Errorf("failed to onboard customer: %w", err)
	}

	s.logger.InfoContext(ctx, "Customer onboarded",
		slog.Int64("customerID", cust.ID),
		slog.String("customerNumber", cust.CustomerNumber),
		slog.Int64("connectionID", conn.ID))

	evt := event.CustomerOnboardedEvent{
		CustomerID:     cust.ID,
		CustomerNumber: cust.CustomerNumber,
		AreaID:         cust.AreaID,
		ConnectionID:   conn.ID,
		Timestamp:      s.now(),
	}
	if err := s.pub.PublishCustomerOnboarded(ctx, evt); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish customer onboarded event", slog.Any("error", err))
	}

	return cust, conn, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customer ID must be positive", apperrors.ErrInvalidArgument)
	}
	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}
	return cust, nil
}

func (s *customerService) ListCustomers(ctx context.Context, areaID int64) ([]*Customer, error) {
	customers, err := s.repo.FindAll(ctx, areaID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to list customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, params UpdateParams) (*Customer, error) {
	cust, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	cust.AreaID = params.AreaID
	cust.FirstName = params.FirstName
	cust.LastName = params.LastName
	cust.PhoneNumber = strings.TrimSpace(params.PhoneNumber)
	cust.Address = params.Address
	cust.IdentityNo = strings.TrimSpace(params.IdentityNo)
	cust.HasDigitalBox = params.HasDigitalBox
	cust.OfferPowerIntake = params.OfferPowerIntake
	cust.UnderRepair = params.UnderRepair
	if err := cust.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update customer", slog.Int64("customerID", customerID), slog.Any("error", err))
		return nil, fmt.Errorf("failed to update customer %d: %w", customerID, err)
	}
	s.logger.InfoContext(ctx, "Customer updated", slog.Int64("customerID", customerID))
	return cust, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	if customerID <= 0 {
		return fmt.Errorf("%w: customer ID must be positive", apperrors.ErrInvalidArgument)
	}
	if err := s.repo.Delete(ctx, customerID); err != nil {
		s.logger.WarnContext(ctx, "Customer delete rejected", slog.Int64("customerID", customerID), slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}
	s.logger.InfoContext(ctx, "Customer deleted", slog.Int64("customerID", customerID))
	return nil
}
