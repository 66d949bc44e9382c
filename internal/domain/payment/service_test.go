package payment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cable-billing/internal/domain/payment"
	"cable-billing/internal/event"
	"cable-billing/internal/pkg/apperrors"
	"cable-billing/internal/pkg/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	event.NopPublisher
	payments []event.PaymentRecordedEvent
}

func (p *recordingPublisher) PublishPaymentRecorded(_ context.Context, evt event.PaymentRecordedEvent) error {
	p.payments = append(p.payments, evt)
	return nil
}

func setupTest() (*payment.MockRepository, *recordingPublisher, payment.Service) {
	mockRepo := new(payment.MockRepository)
	pub := &recordingPublisher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mockRepo, pub, payment.NewService(mockRepo, pub, logger)
}

func TestPaymentService_RecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, pub, service := setupTest()
		paidAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(p *payment.Payment) bool {
			return p.ConnectionID == 3 && p.EmployeeID == 2 && p.Amount == 500
		})).Return(func(_ context.Context, p *payment.Payment) error {
			p.ID = 77
			p.PaidAt = paidAt
			return nil
		}).Once()

		p, err := service.RecordPayment(ctx, 3, 2, 500)
		require.NoError(t, err)
		assert.Equal(t, int64(77), p.ID)
		require.Len(t, pub.payments, 1)
		assert.Equal(t, paidAt, pub.payments[0].PaidAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

		_, err := service.RecordPayment(ctx, 3, 2, 0)
		assert.NoError(t, err)
	})

	t.Run("Negative amount", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		_, err := service.RecordPayment(ctx, 3, 2, -1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentAmount)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Amount above ceiling", func(t *testing.T) {
		mockRepo, _, service := setupTest()
		_, err := service.RecordPayment(ctx, 3, 2, validate.MaxAmount+1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentAmount)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing collector", func(t *testing.T) {
		_, _, service := setupTest()
		_, err := service.RecordPayment(ctx, 3, 0, 100)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Unknown connection", func(t *testing.T) {
		mockRepo, pub, service := setupTest()
		mockRepo.On("Create", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

		_, err := service.RecordPayment(ctx, 99, 2, 100)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Empty(t, pub.payments)
	})
}

func TestPaymentService_Listing(t *testing.T) {
	ctx := context.Background()
	mockRepo, _, service := setupTest()

	mockRepo.On("FindByConnection", ctx, int64(1)).Return([]payment.Payment{{ID: 1}}, nil).Once()
	mockRepo.On("FindByCustomer", ctx, int64(2)).Return([]payment.Payment{{ID: 1}, {ID: 2}}, nil).Once()
	mockRepo.On("FindAll", ctx).Return(nil, apperrors.ErrDatabase).Once()

	byConn, err := service.ListConnectionPayments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byConn, 1)

	byCustomer, err := service.ListCustomerPayments(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 2)

	_, err = service.ListAllPayments(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDatabase)
}
