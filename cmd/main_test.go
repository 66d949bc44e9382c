package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"cable-billing/internal/batch"
	"cable-billing/internal/config"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/event"
	"cable-billing/internal/infrastructure/logging"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleLister struct{}

func (idleLister) FindActiveIDs(context.Context) ([]int64, error) { return nil, nil }

type idleBilling struct{ billing.Service }

func testLogger() *slog.Logger {
	return logging.NewLogger(config.LoggerConfig{Level: "error"})
}

func TestStartServer(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:         0,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			IdleTimeout:  5 * time.Second,
		},
	}
	logger := testLogger()
	router := http.NewServeMux()

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)

	assert.NotNil(t, srv, "Server should not be nil")
	assert.NotNil(t, serverErrors, "Server errors channel should not be nil")
	assert.NotNil(t, shutdownChan, "Shutdown channel should not be nil")
	_ = srv.Close()
}

func TestHandleShutdown(t *testing.T) {
	logger := testLogger()
	cronScheduler := cron.New()
	srv := &http.Server{}
	shutdownChan := make(chan os.Signal, 1)
	serverErrors := make(chan error, 1)
	serverErrors <- nil

	go func() {
		shutdownChan <- syscall.SIGINT
	}()

	handleShutdown(srv, cronScheduler, nil, nil, shutdownChan, serverErrors, logger)
}

func TestStartBatchJobs(t *testing.T) {
	logger := testLogger()
	job := batch.NewReconcileJob(idleLister{}, idleBilling{}, 2, logger)

	t.Run("default schedule", func(t *testing.T) {
		c := startBatchJobs(&config.Config{}, logger, job)
		defer c.Stop()
		require.Len(t, c.Entries(), 1)
	})

	t.Run("invalid schedule leaves scheduler empty", func(t *testing.T) {
		cfg := &config.Config{Batch: config.BatchConfig{ReconcileSchedule: "not a schedule"}}
		c := startBatchJobs(cfg, logger, job)
		defer c.Stop()
		assert.Empty(t, c.Entries())
	})
}

func TestReconcileTimeout(t *testing.T) {
	assert.Equal(t, time.Hour, reconcileTimeout(config.BatchConfig{}))
	assert.Equal(t, 10*time.Minute, reconcileTimeout(config.BatchConfig{ReconcileTimeout: 10 * time.Minute}))
}

func TestRabbitMQURI(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.RabbitMQConfig
		want    string
		wantErr bool
	}{
		{name: "with credentials", cfg: config.RabbitMQConfig{Host: "mq", Port: 5673, Username: "u", Password: "p"}, want: "amqp://u:p@mq:5673/"},
		{name: "default port", cfg: config.RabbitMQConfig{Host: "mq"}, want: "amqp://mq:5672/"},
		{name: "missing host", cfg: config.RabbitMQConfig{}, wantErr: true},
		{name: "username without password", cfg: config.RabbitMQConfig{Host: "mq", Username: "u"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rabbitMQURI(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalInfrastructureDisabled(t *testing.T) {
	logger := testLogger()
	cfg := &config.Config{}

	assert.Nil(t, initializeRabbitMQ(cfg, logger))
	assert.Nil(t, initializeRedisClient(cfg, logger))
	assert.Equal(t, event.NopPublisher{}, initializePublisher(cfg, nil, logger))

	closeRabbitMQConnection(nil, logger)
	closeRedisClient(nil, logger)
}
