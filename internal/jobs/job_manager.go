package jobs

import (
	"fmt"

	"mandi/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates the scheduled jobs of the application behind a
// single start and stop interface.
type JobManager struct {
	delegationReminderJob *DelegationReminderJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	incompleteOffersHandler queries.GetIncompleteOffersQueryHandler,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		delegationReminderJob: NewDelegationReminderJob(incompleteOffersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.delegationReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start delegation reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.delegationReminderJob.Stop()
}
