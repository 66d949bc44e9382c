package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"cable-billing/internal/domain/billing"
	"cable-billing/internal/infrastructure/monitoring"
	"cable-billing/internal/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// ActiveConnectionLister returns the IDs of connections that currently accrue bills.
type ActiveConnectionLister interface {
	FindActiveIDs(ctx context.Context) ([]int64, error)
}

// ReconcileJob writes the monthly bills every active connection is missing.
type ReconcileJob struct {
	connections ActiveConnectionLister
	billing     billing.Service
	workers     int
	logger      *slog.Logger
	now         func() time.Time
}

func NewReconcileJob(connections ActiveConnectionLister, billingSvc billing.Service, workers int, logger *slog.Logger) *ReconcileJob {
	if connections == nil || billingSvc == nil || logger == nil {
		panic("ReconcileJob dependencies cannot be nil")
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &ReconcileJob{
		connections: connections,
		billing:     billingSvc,
		workers:     workers,
		logger:      logger.With("job", "Reconcile"),
		now:         time.Now,
	}
}

func (j *ReconcileJob) Run(ctx context.Context) error {
	startTime := time.Now()
	asOf := j.now()
	j.logger.InfoContext(ctx, "Starting bill reconciliation job.", slog.Time("asOf", asOf))

	ids, err := j.connections.FindActiveIDs(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to get active connection IDs, aborting job.", slog.Any("error", err))
		monitoring.RecordReconcileRun("failed")
		return fmt.Errorf("cannot run job, failed to get active connections: %w", err)
	}
	j.logger.InfoContext(ctx, "Fetched active connection IDs.", slog.Int("count", len(ids)))

	var processed, billsWritten, conflicts, errorCount atomic.Int32

	g := new(errgroup.Group)
	g.SetLimit(j.workers)
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			logCtx := j.logger.With(slog.Int64("connectionID", id))
			bills, runErr := j.billing.Reconcile(ctx, id, asOf)
			switch {
			case runErr == nil:
				processed.Add(1)
				billsWritten.Add(int32(len(bills)))
				if len(bills) > 0 {
					logCtx.DebugContext(ctx, "Connection reconciled.", slog.Int("bills", len(bills)))
				}
			case errors.Is(runErr, apperrors.ErrConflict):
				// Another writer billed the same period; the next run picks up whatever is left.
				conflicts.Add(1)
				logCtx.WarnContext(ctx, "Concurrent billing detected, skipping connection.", slog.Any("error", runErr))
			case errors.Is(runErr, apperrors.ErrNotFound):
				logCtx.WarnContext(ctx, "Connection disappeared during reconciliation.", slog.Any("error", runErr))
			default:
				errorCount.Add(1)
				logCtx.ErrorContext(ctx, "Failed to reconcile connection.", slog.Any("error", runErr))
			}
			return nil
		})
	}
	_ = g.Wait()

	summaryLog := j.logger.With(
		slog.Duration("duration", time.Since(startTime)),
		slog.Int("total_active_connections", len(ids)),
		slog.Int("connections_processed", int(processed.Load())),
		slog.Int("bills_written", int(billsWritten.Load())),
		slog.Int("conflicts", int(conflicts.Load())),
		slog.Int("errors_encountered", int(errorCount.Load())),
	)

	if ctxErr := ctx.Err(); ctxErr != nil {
		summaryLog.WarnContext(ctx, "Bill reconciliation job interrupted.", slog.Any("error", ctxErr))
		monitoring.RecordReconcileRun("interrupted")
		return fmt.Errorf("reconciliation interrupted: %w", ctxErr)
	}
	if n := errorCount.Load(); n > 0 {
		summaryLog.WarnContext(ctx, "Bill reconciliation job finished with errors.")
		monitoring.RecordReconcileRun("partial")
		return fmt.Errorf("job completed with %d errors", n)
	}
	summaryLog.InfoContext(ctx, "Bill reconciliation job finished successfully.")
	monitoring.RecordReconcileRun("success")
	return nil
}
