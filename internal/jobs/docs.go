// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the alerting service.
//
// # Available Jobs
//
// 1. RuleEvaluationJob - Runs on a configurable schedule to evaluate active alert
// rules against undelivered orders, creating alerts and notifications as needed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(executeRulesHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The rule evaluation job defaults to the cron expression "0 */5 * * * *",
// which runs the sweep every five minutes. The schedule can be overridden
// through configuration to tune sweep frequency per deployment.
//
// # Error Handling
//
// - Evaluation runs record success and failure outcomes in Prometheus counters
// - Per-order evaluation failures are counted but never abort a running sweep
package jobs
