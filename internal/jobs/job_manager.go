package jobs

import (
	"fmt"
	"log/slog"

	"zapship/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	cashoutReminderJob *CashoutReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	pendingCashoutTotalsHandler queries.GetPendingCashoutTotalsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		cashoutReminderJob: NewCashoutReminderJob(pendingCashoutTotalsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.cashoutReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start cashout reminder job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cashoutReminderJob.Stop()
}
