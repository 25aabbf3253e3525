// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. Jobs are managed through JobManager which
// offers a unified start/stop interface; failed starts stop any jobs
// that already came up.
package jobs

import (
	"fmt"
	"log/slog"

	"oms/internal/core/application/usecases/queries"
	"oms/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	offerNotificationJob *OfferNotificationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingOrdersHandler queries.GetResponsePendingOrdersQueryHandler,
	users ports.UserServiceClient,
	dispatcher ports.EventDispatcher,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		offerNotificationJob: NewOfferNotificationJob(pendingOrdersHandler, users, dispatcher, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerNotificationJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer notification job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerNotificationJob.Stop()
}
