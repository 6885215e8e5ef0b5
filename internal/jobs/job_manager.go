package jobs

import (
	"fmt"
	"log/slog"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverNotificationJob *DriverNotificationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cookedUnassignedHandler queries.GetCookedUnassignedOrdersQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverNotificationJob: NewDriverNotificationJob(cookedUnassignedHandler, publisher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverNotificationJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver notification job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverNotificationJob.Stop()
}
