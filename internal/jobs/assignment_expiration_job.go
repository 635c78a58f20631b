package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"assistance/internal/core/application/usecases/commands"
)

// AssignmentExpirationJob periodically returns orders whose assigned driver
// never answered to the assignment pool, and retries pending driver releases
// left behind by earlier post-commit failures.
type AssignmentExpirationJob struct {
	handler         commands.ExpireAssignmentsCommandHandler
	responseTimeout time.Duration
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewAssignmentExpirationJob creates the sweep job. responseTimeout is how
// long a driver may sit on an assignment before it expires.
func NewAssignmentExpirationJob(
	handler commands.ExpireAssignmentsCommandHandler,
	responseTimeout time.Duration,
	logger *slog.Logger,
) *AssignmentExpirationJob {
	return &AssignmentExpirationJob{
		handler:         handler,
		responseTimeout: responseTimeout,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "assignment_expiration_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *AssignmentExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireAssignmentsCommand(j.responseTimeout)
		if err != nil {
			j.logger.ErrorContext(ctx, "Assignment expiration job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Assignment expiration sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment expiration job started",
		"responseTimeout", j.responseTimeout.String())
	return nil
}

// Stop stops the sweep job.
func (j *AssignmentExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment expiration job stopped")
}
