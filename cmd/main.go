package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cable-billing/internal/api"
	"cable-billing/internal/batch"
	"cable-billing/internal/config"
	"cable-billing/internal/domain/agent"
	"cable-billing/internal/domain/area"
	"cable-billing/internal/domain/authz"
	"cable-billing/internal/domain/billing"
	"cable-billing/internal/domain/connection"
	"cable-billing/internal/domain/customer"
	"cable-billing/internal/domain/payment"
	"cable-billing/internal/domain/risk"
	"cable-billing/internal/event"
	"cable-billing/internal/infrastructure/database/postgres"
	"cable-billing/internal/infrastructure/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// @title Cable Billing API
// @version 1.0
// @description Billing, payments and payment-risk scoring for a cable TV operator.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, logger := initializeApp()

	dbPool := initializeDatabase(cfg, logger)
	defer closeDatabase(dbPool, logger)
	migrateDatabase(cfg, dbPool, logger)

	rabbitMQConn := initializeRabbitMQ(cfg, logger)
	publisher := initializePublisher(cfg, rabbitMQConn, logger)
	redisClient := initializeRedisClient(cfg, logger)

	services, connectionRepo := initializeServices(cfg, dbPool, publisher, logger)
	reconcileJob := batch.NewReconcileJob(connectionRepo, services.Billing, cfg.Batch.Workers, logger)
	cronScheduler := startBatchJobs(cfg, logger, reconcileJob)

	var limiterClient redis.Cmdable
	if redisClient != nil {
		limiterClient = redisClient
	}
	router := api.SetupRouter(services, cfg, limiterClient, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cronScheduler, rabbitMQConn, redisClient, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Logger)
	slog.SetDefault(logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

func initializeDatabase(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	logger.Info("Initializing database connection pool...")
	dbPool, err := postgres.NewConnectionPool(context.Background(), cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}
	return dbPool
}

func migrateDatabase(cfg *config.Config, dbPool postgres.DBPool, logger *slog.Logger) {
	if !cfg.Database.AutoMigrate {
		logger.Info("Schema migration disabled, assuming schema is in place.")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, dbPool, logger); err != nil {
		logger.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}
}

func closeDatabase(dbPool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("Closing database connection pool...")
	dbPool.Close()
}

func initializeServices(cfg *config.Config, db postgres.DBPool, publisher event.EventPublisher,
	logger *slog.Logger) (api.Services, *postgres.ConnectionRepository) {
	logger.Info("Initializing application components...")

	agentRepo := postgres.NewAgentRepository(db, logger)
	areaRepo := postgres.NewAreaRepository(db, logger)
	customerRepo := postgres.NewCustomerRepository(db, logger)
	connectionRepo := postgres.NewConnectionRepository(db, logger)
	billRepo := postgres.NewBillRepository(db, logger)
	paymentRepo := postgres.NewPaymentRepository(db, logger)

	tariff := billing.Tariff{DigitalFee: cfg.Billing.DigitalFee, AnalogFee: cfg.Billing.AnalogFee}

	return api.Services{
		Agents:      agent.NewService(agentRepo, logger),
		Areas:       area.NewService(areaRepo, logger),
		Customers:   customer.NewService(customerRepo, publisher, logger),
		Connections: connection.NewService(connectionRepo, logger),
		Billing:     billing.NewService(billRepo, paymentRepo, connectionRepo, tariff, publisher, logger),
		Payments:    payment.NewService(paymentRepo, publisher, logger),
		Risk:        initializeRiskScorer(cfg.Model, db, paymentRepo, logger),
		Guard:       authz.NewGuard(postgres.NewSubjectResolver(db, logger), logger),
	}, connectionRepo
}

func initializeRiskScorer(cfg config.ModelConfig, db postgres.DBPool, paymentRepo *postgres.PaymentRepository,
	logger *slog.Logger) risk.Service {
	contract, err := risk.LoadContract(cfg.ContractPath)
	if err != nil {
		logger.Error("Failed to load model contract", "path", cfg.ContractPath, "error", err)
		os.Exit(1)
	}

	store := risk.NewArtifactStore(risk.ArtifactPaths{
		DelayModel:   cfg.DelayModelPath,
		DefaultModel: cfg.DefaultModelPath,
		Scaler:       cfg.ScalerPath,
	}, contract, cfg.CacheArtifacts, logger)

	profiles := postgres.NewRiskProfileRepository(db, paymentRepo, contract.Delay.TimeSeriesOffset, logger)
	logger.Info("Risk scorer ready", "cacheArtifacts", cfg.CacheArtifacts, "delayModel", cfg.DelayModelPath)
	return risk.NewService(profiles, store, contract, logger)
}

func initializePublisher(cfg *config.Config, conn *amqp.Connection, logger *slog.Logger) event.EventPublisher {
	if conn == nil {
		logger.Info("No message broker configured, domain events are dropped.")
		return event.NopPublisher{}
	}
	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.RabbitMQ.ExchangeName, logger)
	if err != nil {
		logger.Error("Failed to initialize RabbitMQ publisher, domain events are dropped", "error", err)
		return event.NopPublisher{}
	}
	return publisher
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, cronScheduler *cron.Cron, rabbitConn *amqp.Connection, redisClient *redis.Client,
	shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	triggerReason := waitForShutdownTrigger(shutdownChan, serverErrors, logger)

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)

	stopCronScheduler(cronScheduler, logger)
	closeRabbitMQConnection(rabbitConn, logger)
	closeRedisClient(redisClient, logger)
	shutdownHTTPServer(srv, serverErrors, logger)

	logger.Info("Application shutdown process complete.")
}

func waitForShutdownTrigger(shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) string {
	select {
	case sig := <-shutdownChan:
		logger.Info("Shutdown signal received.", "signal", sig.String())
		return "signal: " + sig.String()
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		logger.Info("Server goroutine finished before signal.", "error", err)
		return "server exited"
	}
}

func stopCronScheduler(cronScheduler *cron.Cron, logger *slog.Logger) {
	logger.Info("Stopping cron scheduler...")
	cronCtx := cronScheduler.Stop()
	select {
	case <-cronCtx.Done():
		logger.Info("Cron scheduler stopped gracefully.")
	case <-time.After(15 * time.Second):
		logger.Warn("Cron scheduler shutdown timed out.")
	}
}

func closeRabbitMQConnection(rabbitConn *amqp.Connection, logger *slog.Logger) {
	if rabbitConn == nil {
		logger.Info("RabbitMQ connection was not established, skipping close.")
		return
	}
	if rabbitConn.IsClosed() {
		logger.Info("RabbitMQ connection already closed, skipping close.")
		return
	}
	logger.Info("Closing RabbitMQ connection...")
	if err := rabbitConn.Close(); err != nil {
		logger.Error("Failed to close RabbitMQ connection gracefully", slog.Any("error", err))
	} else {
		logger.Info("RabbitMQ connection closed.")
	}
}

func shutdownHTTPServer(srv *http.Server, serverErrors <-chan error, logger *slog.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}
}

// initializeRedisClient returns nil when redis is disabled. An enabled but unreachable redis is fatal.
func initializeRedisClient(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Redis.Enabled {
		logger.Info("Redis disabled, rate limiting stays in-process.")
		return nil
	}
	logger.Info("Initializing central Redis client...")
	if cfg.Redis.Address == "" {
		logger.Error("Redis address is not configured.")
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if status := rdb.Ping(ctx); status.Err() != nil {
		logger.Error("Failed to connect to Redis", "error", status.Err(), "addr", cfg.Redis.Address)
		_ = rdb.Close()
		os.Exit(1)
	}

	logger.Info("Central Redis client connected successfully.", "addr", cfg.Redis.Address, "db", cfg.Redis.DB)
	return rdb
}

func closeRedisClient(redisClient *redis.Client, logger *slog.Logger) {
	if redisClient == nil {
		logger.Info("Redis client was not initialized, skipping close.")
		return
	}
	logger.Info("Closing central Redis client connection...")
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close central Redis client connection gracefully", "error", err)
	} else {
		logger.Info("Central Redis client connection closed.")
	}
}

// reconcileTimeout falls back to an hour when unset.
func reconcileTimeout(cfg config.BatchConfig) time.Duration {
	if cfg.ReconcileTimeout <= 0 {
		return time.Hour
	}
	return cfg.ReconcileTimeout
}

func startBatchJobs(cfg *config.Config, logger *slog.Logger, reconcileJob *batch.ReconcileJob) *cron.Cron {
	logger.Info("Initializing batch job scheduler...")
	c := cron.New()

	scheduleSpec := cfg.Batch.ReconcileSchedule
	if scheduleSpec == "" {
		scheduleSpec = "0 2 * * *"
		logger.Warn("Reconcile schedule not configured, using default", "schedule", scheduleSpec)
	}
	jobTimeout := reconcileTimeout(cfg.Batch)

	jobID, err := c.AddJob(scheduleSpec, cron.FuncJob(func() {
		jobLogger := logger.With("job_name", "Reconcile")
		jobLogger.Info("Cron triggered: Running bill reconciliation job.")

		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if runErr := reconcileJob.Run(ctx); runErr != nil {
			jobLogger.Error("Bill reconciliation job finished with error", slog.Any("error", runErr))
		} else {
			jobLogger.Info("Bill reconciliation job finished successfully.")
		}
	}))

	if err != nil {
		logger.Error("Failed to schedule reconciliation job", "schedule", scheduleSpec, slog.Any("error", err))
	} else {
		logger.Info("Scheduled reconciliation job", "schedule", scheduleSpec, "job_id", jobID)
	}

	c.Start()
	logger.Info("Cron scheduler started.")
	return c
}

func setupLogger(cfg config.LoggerConfig) *slog.Logger {
	return logging.NewLogger(cfg)
}

func connectRabbitMQ(uri string, logger *slog.Logger) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	retryCount := 5
	for i := 1; i <= retryCount; i++ {
		conn, err = amqp.Dial(uri)
		if err == nil {
			logger.Info("Successfully connected to RabbitMQ")

			go func() {
				blockChan := conn.NotifyBlocked(make(chan amqp.Blocking))
				closeChan := conn.NotifyClose(make(chan *amqp.Error))

				select {
				case b := <-blockChan:
					logger.Warn("RabbitMQ Connection Blocked", "reason", b.Reason)
				case e := <-closeChan:
					logger.Error("RabbitMQ Connection Closed", slog.Any("error", e))
				}
			}()

			return conn, nil
		}
		logger.Warn("Failed to connect to RabbitMQ, retrying...",
			slog.Int("attempt", i),
			slog.Int("max_attempts", retryCount),
			slog.Any("error", err),
		)
		time.Sleep(time.Duration(i*2) * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", retryCount, err)
}

func rabbitMQURI(cfg config.RabbitMQConfig) (string, error) {
	if cfg.Host == "" {
		return "", fmt.Errorf("RabbitMQ host is not configured")
	}
	if (cfg.Username == "") != (cfg.Password == "") {
		return "", fmt.Errorf("RabbitMQ username and password must be provided together")
	}
	port := cfg.Port
	if port == 0 {
		port = 5672
	}
	if cfg.Username != "" {
		return fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.Username, cfg.Password, cfg.Host, port), nil
	}
	return fmt.Sprintf("amqp://%s:%d/", cfg.Host, port), nil
}

// initializeRabbitMQ returns nil when the broker is disabled or unreachable; events are then dropped.
func initializeRabbitMQ(cfg *config.Config, logger *slog.Logger) *amqp.Connection {
	if !cfg.RabbitMQ.Enabled {
		return nil
	}
	uri, err := rabbitMQURI(cfg.RabbitMQ)
	if err != nil {
		logger.Error("Invalid RabbitMQ configuration", "error", err)
		return nil
	}
	conn, err := connectRabbitMQ(uri, logger)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		return nil
	}
	return conn
}
