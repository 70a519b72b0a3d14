package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// defaultSchedule runs the sweep every five minutes.
const defaultSchedule = "0 */5 * * * *"

// RuleEvaluationJob runs the alert rule evaluation sweep on a cron schedule.
// Each run scans undelivered orders against the active rules, raises alerts
// and fans out notifications.
type RuleEvaluationJob struct {
	handler  commands.ExecuteAlertRulesCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewRuleEvaluationJob creates the scheduled sweep. The schedule is a
// six-field cron expression with seconds; an empty string falls back to the
// five minute default.
func NewRuleEvaluationJob(
	handler commands.ExecuteAlertRulesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *RuleEvaluationJob {
	if schedule == "" {
		schedule = defaultSchedule
	}

	return &RuleEvaluationJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "rule_evaluation_job"),
	}
}

// Start begins the scheduled rule evaluation.
func (j *RuleEvaluationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rule evaluation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduled rule evaluation.
func (j *RuleEvaluationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rule evaluation job stopped")
}

func (j *RuleEvaluationJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewExecuteAlertRulesCommand("scheduled")
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build sweep command", "error", err)
		return
	}

	start := time.Now()
	result, err := j.handler.Handle(ctx, cmd)
	metrics.SweepDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.SweepRunsTotal.WithLabelValues("failure").Inc()
		j.logger.ErrorContext(ctx, "Rule evaluation sweep failed", "error", err)
		return
	}

	metrics.SweepRunsTotal.WithLabelValues("success").Inc()
	metrics.SweepAlertsCreated.Add(float64(result.AlertsCreated))
	metrics.SweepNotificationsCreated.Add(float64(result.NotificationsCreated))
	metrics.SweepFailedEvaluations.Add(float64(result.FailedEvaluations))

	j.logger.InfoContext(ctx, "Rule evaluation sweep completed",
		"rulesEvaluated", result.RulesEvaluated,
		"ordersScanned", result.OrdersScanned,
		"alertsCreated", result.AlertsCreated,
		"notificationsCreated", result.NotificationsCreated,
		"uniqueUsersNotified", result.UniqueUsersNotified,
		"failedEvaluations", result.FailedEvaluations,
	)
}
