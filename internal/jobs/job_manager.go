package jobs

import (
	"fmt"
	"log/slog"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ruleEvaluationJob *RuleEvaluationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	executeRulesHandler commands.ExecuteAlertRulesCommandHandler,
	evaluationSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ruleEvaluationJob: NewRuleEvaluationJob(executeRulesHandler, evaluationSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ruleEvaluationJob.Start(); err != nil {
		return fmt.Errorf("failed to start rule evaluation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ruleEvaluationJob.Stop()
}
