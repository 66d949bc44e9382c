package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingKeyBillGenerated           = "bill.generated"
	routingKeyPaymentRecorded         = "payment.recorded"
	routingKeyConnectionStatusChanged = "connection.status.changed"
	routingKeyCustomerOnboarded       = "customer.onboarded"
	publisherAppID                    = "cable-billing"
)

type EventPublisher interface {
	PublishBillGenerated(ctx context.Context, event BillGeneratedEvent) error
	PublishPaymentRecorded(ctx context.Context, event PaymentRecordedEvent) error
	PublishConnectionStatusChanged(ctx context.Context, event ConnectionStatusChangedEvent) error
	PublishCustomerOnboarded(ctx context.Context, event CustomerOnboardedEvent) error
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQEventPublisher struct {
	openChannel  func() (amqpChannel, error)
	exchangeName string
	logger       *slog.Logger
}

var _ EventPublisher = (*RabbitMQEventPublisher)(nil)

func NewRabbitMQEventPublisher(conn *amqp.Connection, exchangeName string, logger *slog.Logger) (*RabbitMQEventPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("RabbitMQ connection cannot be nil")
	}
	if exchangeName == "" {
		return nil, fmt.Errorf("RabbitMQ exchange name cannot be empty")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	tempCh, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary channel for exchange declaration: %w", err)
	}
	defer tempCh.Close()

	err = tempCh.ExchangeDeclare(
		exchangeName,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", exchangeName, err)
	}
	logger.Info("Ensured RabbitMQ exchange exists", "exchange", exchangeName, "type", amqp.ExchangeTopic)

	opener := func() (amqpChannel, error) {
		return conn.Channel()
	}
	return newPublisher(opener, exchangeName, logger), nil
}

func newPublisher(opener func() (amqpChannel, error), exchangeName string, logger *slog.Logger) *RabbitMQEventPublisher {
	return &RabbitMQEventPublisher{
		openChannel:  opener,
		exchangeName: exchangeName,
		logger:       logger.With("component", "RabbitMQEventPublisher", "exchange", exchangeName),
	}
}

func (p *RabbitMQEventPublisher) PublishBillGenerated(ctx context.Context, event BillGeneratedEvent) error {
	return p.publish(ctx, routingKeyBillGenerated, event)
}

func (p *RabbitMQEventPublisher) PublishPaymentRecorded(ctx context.Context, event PaymentRecordedEvent) error {
	return p.publish(ctx, routingKeyPaymentRecorded, event)
}

func (p *RabbitMQEventPublisher) PublishConnectionStatusChanged(ctx context.Context, event ConnectionStatusChangedEvent) error {
	return p.publish(ctx, routingKeyConnectionStatusChanged, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerOnboarded(ctx context.Context, event CustomerOnboardedEvent) error {
	return p.publish(ctx, routingKeyCustomerOnboarded, event)
}

func (p *RabbitMQEventPublisher) publish(ctx context.Context, routingKey string, payload any) error {
	logCtx := p.logger.With(slog.String("routingKey", routingKey))

	channel, err := p.openChannel()
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to open RabbitMQ channel", slog.Any("error", err))
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer channel.Close()

	body, err := json.Marshal(payload)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to marshal event payload to JSON", slog.Any("error", err))
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	logCtx.DebugContext(ctx, "Publishing message", "bodySize", len(body))

	err = channel.PublishWithContext(
		ctx,
		p.exchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			AppId:        publisherAppID,
		},
	)
	if err != nil {
		logCtx.ErrorContext(ctx, "Failed to publish message to RabbitMQ", slog.Any("error", err))
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logCtx.InfoContext(ctx, "Successfully published message")
	return nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

var _ EventPublisher = NopPublisher{}

func (NopPublisher) PublishBillGenerated(context.Context, BillGeneratedEvent) error { return nil }

func (NopPublisher) PublishPaymentRecorded(context.Context, PaymentRecordedEvent) error { return nil }

func (NopPublisher) PublishConnectionStatusChanged(context.Context, ConnectionStatusChangedEvent) error {
	return nil
}

func (NopPublisher) PublishCustomerOnboarded(context.Context, CustomerOnboardedEvent) error {
	return nil
}
