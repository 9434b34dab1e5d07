package jobs

import (
	"context"
	"log/slog"

	"commerce/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NumberRepairJob manages the scheduled repair of unnumbered orders.
// Runs every minute to backfill display numbers for orders whose creating
// transaction crashed between insert and numbering.
type NumberRepairJob struct {
	handler commands.RepairOrderNumbersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewNumberRepairJob creates a new job for order number repair.
// Uses RepairOrderNumbersCommandHandler to process one batch per run.
func NewNumberRepairJob(handler commands.RepairOrderNumbersCommandHandler, logger *slog.Logger) *NumberRepairJob {
	return &NumberRepairJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "number_repair_job"),
	}
}

// Start begins the number repair job to run every minute.
func (j *NumberRepairJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRepairOrderNumbersCommand()

		repaired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Number repair job failed", "error", err)
			return
		}
		if repaired > 0 {
			j.logger.InfoContext(ctx, "Number repair job assigned missing numbers", "count", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Number repair job started (running every minute)")
	return nil
}

// Stop stops the number repair job.
func (j *NumberRepairJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Number repair job stopped")
}
