// Package jobs provides scheduled background tasks for the assistance system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. AssignmentExpirationJob - Runs every minute to return orders with
// unanswered driver assignments to the assignment pool and to retry pending
// driver releases.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireAssignmentsHandler, responseTimeout, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiration sweep visits every overdue order and joins per-order
// failures into one error, which the job logs. A failing order never stops
// the rest of the sweep.
package jobs
