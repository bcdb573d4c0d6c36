package jobs

import (
	"context"
	"log/slog"

	"boozebuddies/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob runs the automatic assignment pass on a schedule. Every
// 15 seconds it matches the oldest unassigned order with the nearest
// available driver within the configured radius.
type OrderDispatchJob struct {
	handler commands.DispatchOrdersCommandHandler
	command commands.DispatchOrdersCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderDispatchJob creates the dispatch job with the given search radius
// in kilometers. The radius is validated up front so a misconfigured job
// fails at startup rather than on every tick.
func NewOrderDispatchJob(
	handler commands.DispatchOrdersCommandHandler,
	radiusKm float64,
	logger *slog.Logger,
) (*OrderDispatchJob, error) {
	command, err := commands.NewDispatchOrdersCommand(radiusKm)
	if err != nil {
		return nil, err
	}

	return &OrderDispatchJob{
		handler: handler,
		command: command,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_dispatch_job"),
	}, nil
}

// Start begins the dispatch job to run every 15 seconds.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		// A pass with no waiting order or no driver in range returns nil,
		// so anything surfacing here is a real failure.
		if err := j.handler.Handle(ctx, j.command); err != nil {
			j.logger.ErrorContext(ctx, "Order dispatch pass failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started (running every 15 seconds)")
	return nil
}

// Stop stops the dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
