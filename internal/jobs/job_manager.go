package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"assistance/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	assignmentExpirationJob *AssignmentExpirationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	expireAssignmentsHandler commands.ExpireAssignmentsCommandHandler,
	responseTimeout time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		assignmentExpirationJob: NewAssignmentExpirationJob(expireAssignmentsHandler, responseTimeout, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment expiration job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.assignmentExpirationJob.Stop()
}
