package jobs

import (
	"fmt"
	"log/slog"

	"boozebuddies/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderDispatchJob *OrderDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	dispatchHandler commands.DispatchOrdersCommandHandler,
	dispatchRadiusKm float64,
	logger *slog.Logger,
) (*JobManager, error) {
	dispatchJob, err := NewOrderDispatchJob(dispatchHandler, dispatchRadiusKm, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create order dispatch job: %w", err)
	}

	return &JobManager{
		orderDispatchJob: dispatchJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderDispatchJob.Stop()
}
