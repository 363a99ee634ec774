package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CapacityReconciliationSchedule runs at second zero of every minute.
const CapacityReconciliationSchedule = "0 * * * * *"

// ReconcileCapacityHandler recomputes restaurant order counters.
type ReconcileCapacityHandler interface {
	Handle(ctx context.Context, cmd commands.ReconcileCapacityCommand) (int64, error)
}

// CapacityReconciliationJob repairs drift in the restaurant capacity counters
// left behind by failed best-effort decrements.
type CapacityReconciliationJob struct {
	handler ReconcileCapacityHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCapacityReconciliationJob creates the job.
func NewCapacityReconciliationJob(handler ReconcileCapacityHandler, logger *slog.Logger) *CapacityReconciliationJob {
	return &CapacityReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "capacity_reconciliation_job"),
	}
}

// Name identifies the job in logs and errors.
func (j *CapacityReconciliationJob) Name() string {
	return "capacity reconciliation job"
}

// Start schedules the job every minute.
func (j *CapacityReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(CapacityReconciliationSchedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job started (running every minute)")
	return nil
}

// RunOnce reconciles the counters and logs the corrections.
func (j *CapacityReconciliationJob) RunOnce(ctx context.Context) {
	corrected, err := j.handler.Handle(ctx, commands.NewReconcileCapacityCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Capacity reconciliation job failed", "error", err)
		return
	}
	if corrected > 0 {
		j.logger.WarnContext(ctx, "Corrected drifted capacity counters", "restaurants", corrected)
	}
}

// Stop stops the job and waits for a running reconciliation to finish.
func (j *CapacityReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Capacity reconciliation job stopped")
}
