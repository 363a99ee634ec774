package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LoyaltyExpirySchedule runs at the top of every hour.
const LoyaltyExpirySchedule = "0 0 * * * *"

// ExpireLoyaltyCoinsHandler expires one batch of due earned entries.
type ExpireLoyaltyCoinsHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireLoyaltyCoinsCommand) (int, error)
}

// LoyaltyExpiryJob forfeits earned coins whose expiry has passed.
type LoyaltyExpiryJob struct {
	handler   ExpireLoyaltyCoinsHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLoyaltyExpiryJob creates the job. Each run expires at most batchSize entries;
// the rest are picked up by the next run.
func NewLoyaltyExpiryJob(handler ExpireLoyaltyCoinsHandler, batchSize int, logger *slog.Logger) *LoyaltyExpiryJob {
	return &LoyaltyExpiryJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "loyalty_expiry_job"),
	}
}

// Name identifies the job in logs and errors.
func (j *LoyaltyExpiryJob) Name() string {
	return "loyalty expiry job"
}

// Start schedules the job hourly.
func (j *LoyaltyExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(LoyaltyExpirySchedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Loyalty expiry job started (running hourly)")
	return nil
}

// RunOnce expires one batch and logs the outcome.
func (j *LoyaltyExpiryJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewExpireLoyaltyCoinsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Loyalty expiry job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Loyalty expiry job failed", "expired", expired, "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired loyalty coins", "entries", expired)
	}
}

// Stop stops the job and waits for a running batch to finish.
func (j *LoyaltyExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Loyalty expiry job stopped")
}
